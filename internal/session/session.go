// session - локальное хранилище единственной резидентной сессии.
//
// Контракт Store:
//   - Load: отсутствующая запись и битый JSON - это (nil, nil), а не ошибка;
//     ошибка возвращается только при сбое самого носителя;
//   - Save: перезапись целиком;
//   - Clear: удаление, отсутствие записи не ошибка;
//   - Patch: применить только переданные поля, no-op без сессии.
//
// Сеть не используется (кроме redis-бэкенда, который живёт рядом с процессом).
package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/pribylovaa/sort-a-short/internal/models"
)

// DefaultKey - единственный известный ключ хранения сессии.
const DefaultKey = "sortashort_session"

// ErrNilSession - попытка сохранить nil.
var ErrNilSession = errors.New("nil session")

// Store описывает локальное хранилище сессии.
type Store interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context) error
	Patch(ctx context.Context, p models.SessionPatch) error
}

// Decode разбирает сохранённую сессию. Пустые данные, битый JSON и запись
// без email считаются отсутствующей сессией.
func Decode(data []byte) *models.Session {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}

	if s.Email == "" {
		return nil
	}

	return &s
}

// Encode сериализует сессию для записи.
func Encode(s *models.Session) ([]byte, error) {
	if s == nil {
		return nil, ErrNilSession
	}

	return json.Marshal(s)
}
