// api - HTTP-клиент внешнего REST API Sort a Short.
//
// Каждая операция делает ровно один запрос. Ответ классифицируется один раз
// (internal/errors.Classify), выше по стеку код ветвится только по Kind.
// Повторов нет: повтор всегда инициирует пользователь.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pribylovaa/sort-a-short/internal/clients/transport"
	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/session"
)

// maxBody - верхняя граница читаемого тела ответа.
const maxBody = 1 << 20

// Client - клиент REST API. Безопасен для конкурентного использования.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	store   session.Store
	now     func() time.Time

	// lastT - последний выданный _t (строго возрастает).
	lastT atomic.Int64
}

type Option func(*Client)

// WithHTTPClient задаёт HTTP-клиент (обычно с цепочкой transport.Chain).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithClock подменяет часы (тесты).
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// New создаёт клиент. store получает сессию при SignIn и очищается при SignOut.
func New(baseURL string, store session.Store, opts ...Option) (*Client, error) {
	const op = "clients/api/New"

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: parse base url: %w", op, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%s: unsupported scheme %q", op, u.Scheme)
	}
	if store == nil {
		return nil, fmt.Errorf("%s: nil session store", op)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{},
		store:   store,
		now:     time.Now,
	}

	for _, o := range opts {
		o(c)
	}

	return c, nil
}

// call - описание одного запроса.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	header http.Header
	body   any

	// lenient - 2xx с пустым или недекодируемым телом считается успехом.
	lenient bool
}

// do выполняет запрос и декодирует тело 2xx-ответа в out (если out != nil).
//
// Ошибки:
//   - нет ответа (сеть, таймаут, отмена) -> KindNetwork;
//   - не-2xx -> Classify;
//   - 2xx с недекодируемым телом -> KindNetwork.
func (c *Client) do(ctx context.Context, in call, out any) error {
	u := *c.baseURL
	u.Path = u.Path + in.path
	if len(in.query) > 0 {
		u.RawQuery = in.query.Encode()
	}

	var body io.Reader
	if in.body != nil {
		b, err := json.Marshal(in.body)
		if err != nil {
			return apperrors.Wrap(apperrors.KindInternal, in.op, fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(c.withAuth(ctx, in.path), in.method, u.String(), body)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, in.op, fmt.Errorf("build request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range in.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Transport(in.op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return apperrors.Transport(in.op, fmt.Errorf("read body: %w", err))
	}

	if e := apperrors.Classify(in.op, in.method, in.path, resp.StatusCode, serverMessage(data)); e != nil {
		return e
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		if in.lenient {
			return nil
		}
		return apperrors.Wrap(apperrors.KindNetwork, in.op, fmt.Errorf("decode response: %w", err))
	}

	return nil
}

// withAuth кладёт access token текущей сессии в контекст (заголовок ставит
// transport.WithMetadata). Для /api/auth/* токен не передаётся.
func (c *Client) withAuth(ctx context.Context, path string) context.Context {
	if strings.HasPrefix(path, "/api/auth/") {
		return ctx
	}

	s, err := c.store.Load(ctx)
	if err != nil || s == nil || s.Token == "" {
		return ctx
	}

	return context.WithValue(ctx, transport.CtxAuthToken, s.Token)
}

// cacheBuster возвращает строго возрастающее значение для _t.
func (c *Client) cacheBuster() string {
	for {
		prev := c.lastT.Load()
		next := c.now().UnixNano()
		if next <= prev {
			next = prev + 1
		}

		if c.lastT.CompareAndSwap(prev, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}

// serverMessage достаёт текст ошибки из тела ответа:
// {"body"|"message"|"error": "..."} или сырой текст.
func serverMessage(data []byte) string {
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return ""
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err == nil {
		for _, k := range []string{"body", "message", "error"} {
			if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}

		return ""
	}

	// JSON-строка ("...") тоже допустима.
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return strings.TrimSpace(s)
	}

	return raw
}

// statusOf - HTTP-статус апстрима у классифицированной ошибки (0 - ответа не было).
func statusOf(err error) int {
	var e *apperrors.Error
	if errors.As(err, &e) {
		return e.Status
	}

	return 0
}
