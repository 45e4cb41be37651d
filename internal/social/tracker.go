package social

import (
	"sync"

	"github.com/google/uuid"
)

// Tracker - оптимистичные подписки: применить сразу, затем подтвердить или
// откатить по результату вызова. Операции адресуются pending-id.
type Tracker struct {
	mu       sync.Mutex
	ops      map[string]pendingOp
	byTarget map[string]string // target -> id последней операции
}

type pendingOp struct {
	target string
	prev   bool
	next   bool
}

func NewTracker() *Tracker {
	return &Tracker{
		ops:      make(map[string]pendingOp),
		byTarget: make(map[string]string),
	}
}

// Begin регистрирует переключение для target из состояния current.
// Возвращает id операции и оптимистичное состояние.
func (t *Tracker) Begin(target string, current bool) (string, bool) {
	id := uuid.NewString()
	next := ToggleFollowOptimistic(current)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.ops[id] = pendingOp{target: target, prev: current, next: next}
	t.byTarget[target] = id

	return id, next
}

// Settle завершает операцию: err == nil - оптимистичное состояние становится
// итоговым, иначе откат к исходному. ok == false - неизвестный id.
func (t *Tracker) Settle(id string, err error) (final bool, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	op, ok := t.ops[id]
	if !ok {
		return false, false
	}

	delete(t.ops, id)
	if t.byTarget[op.target] == id {
		delete(t.byTarget, op.target)
	}

	if err != nil {
		return op.prev, true
	}

	return op.next, true
}

// Pending - оптимистичное состояние для target, пока операция не завершена.
func (t *Tracker) Pending(target string) (bool, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id, ok := t.byTarget[target]
	if !ok {
		return false, false
	}

	return t.ops[id].next, true
}

// Len - число незавершённых операций.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.ops)
}
