// errors - единая таксономия ошибок клиентского ядра.
//
// Сырые HTTP-статусы и сообщения апстрим-API классифицируются ровно один раз,
// на границе API-клиента (Classify/Transport). Выше по стеку код ветвится по Kind
// через errors.Is(err, ErrQuotaExceeded) и т.п., не разбирая строки.
//
// Для локального view API пакет же отдаёт обратный маппинг Kind -> HTTP (ToHTTP/WriteError).
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind - класс ошибки, по которому ветвится вызывающий код.
type Kind int

const (
	KindInternal Kind = iota
	KindAuth
	KindValidation
	KindQuotaExceeded
	KindNotFound
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindNotFound:
		return "not_found"
	case KindNetwork:
		return "network"
	default:
		return "internal"
	}
}

var (
	// ErrAuth - неверные учётные данные, неподтверждённый аккаунт, неверный код.
	ErrAuth = stderrors.New("auth")
	// ErrValidation - некорректный ввод или нарушение политики (имя занято и т.п.).
	ErrValidation = stderrors.New("validation")
	// ErrQuotaExceeded - закончилась энергия (бизнес-правило, не сбой).
	ErrQuotaExceeded = stderrors.New("quota exceeded")
	// ErrNotFound - сущность не найдена.
	ErrNotFound = stderrors.New("not found")
	// ErrNetwork - транзиентный сбой, повтор безопасен.
	ErrNetwork = stderrors.New("network")
	// ErrInternal - программная ошибка.
	ErrInternal = stderrors.New("internal")
)

// MsgNoEnergy - пользовательское сообщение для KindQuotaExceeded.
const MsgNoEnergy = "no energy left"

const pathSignUp = "/api/auth/signup"

// Error - классифицированная ошибка.
// Message - безопасный текст для пользователя (для Auth/Validation - дословно от сервера).
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Status  int // HTTP-статус апстрима, 0 - ответа не было
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}

	b.WriteString(e.UserMessage())

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is позволяет сравнивать с сентинелами: errors.Is(err, ErrNotFound).
func (e *Error) Is(target error) bool {
	return target == sentinel(e.Kind)
}

// UserMessage - текст для показа пользователю.
func (e *Error) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}

	return defaultMessage(e.Kind)
}

// New создаёт классифицированную ошибку.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Message: msg}
}

// Wrap оборачивает причину в ошибку заданного класса.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf извлекает класс ошибки. Отмена/дедлайн контекста считаются сетевыми.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}

	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}

	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return KindNetwork
	}

	return KindInternal
}

// Classify переводит ответ апстрима в Kind. Для 2xx возвращает nil.
//
// Таблица (сверху вниз, первое совпадение):
//   - 429 и 5xx -> Network, в том числе на /api/auth/*;
//   - 400 на /api/auth/signup (слабый пароль, email занят) -> Validation;
//   - прочий не-2xx от /api/auth/* и 401 -> Auth;
//   - 403 на POST /api/history -> QuotaExceeded;
//   - 403 прочее -> Auth;
//   - 404 -> NotFound;
//   - прочие 4xx -> Validation.
func Classify(op, method, path string, status int, serverMsg string) *Error {
	if status >= 200 && status < 300 {
		return nil
	}

	e := &Error{Op: op, Status: status, Message: strings.TrimSpace(serverMsg)}

	switch {
	case status == http.StatusTooManyRequests, status >= 500:
		e.Kind = KindNetwork
	case status == http.StatusBadRequest && path == pathSignUp:
		e.Kind = KindValidation
	case strings.HasPrefix(path, "/api/auth/"), status == http.StatusUnauthorized:
		e.Kind = KindAuth
	case status == http.StatusForbidden && method == http.MethodPost && path == "/api/history":
		e.Kind = KindQuotaExceeded
		e.Message = MsgNoEnergy
	case status == http.StatusForbidden:
		e.Kind = KindAuth
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	case status >= 400:
		e.Kind = KindValidation
	default:
		e.Kind = KindNetwork
	}

	return e
}

// Transport оборачивает ошибку транспорта (нет ответа) как сетевую.
func Transport(op string, err error) *Error {
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

func sentinel(k Kind) error {
	switch k {
	case KindAuth:
		return ErrAuth
	case KindValidation:
		return ErrValidation
	case KindQuotaExceeded:
		return ErrQuotaExceeded
	case KindNotFound:
		return ErrNotFound
	case KindNetwork:
		return ErrNetwork
	default:
		return ErrInternal
	}
}

func defaultMessage(k Kind) string {
	switch k {
	case KindAuth:
		return "authentication failed"
	case KindValidation:
		return "invalid argument"
	case KindQuotaExceeded:
		return MsgNoEnergy
	case KindNotFound:
		return "not found"
	case KindNetwork:
		return "service unavailable"
	default:
		return "internal error"
	}
}

// APIError - формат ошибки локального view API.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse - корневой объект ответа с ошибкой.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP переводит ошибку в HTTP-статус view API и тело ответа.
// err == nil и неклассифицированные ошибки дают 500/internal без утечки деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	kind := KindOf(err)

	msg := defaultMessage(kind)
	var e *Error
	if stderrors.As(err, &e) && kind != KindInternal && kind != KindNetwork {
		msg = e.UserMessage()
	}

	return httpStatus(kind), ErrorResponse{
		Error: APIError{
			Code:    kind.String(),
			Message: msg,
		},
	}
}

// WriteError пишет ошибку в ответ, добавляя request_id из X-Request-Id.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func httpStatus(k Kind) int {
	switch k {
	case KindAuth:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindQuotaExceeded:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
