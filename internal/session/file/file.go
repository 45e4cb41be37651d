// file - реализация session.Store поверх JSON-файла.
// Запись атомарная: временный файл в том же каталоге + rename.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/pribylovaa/sort-a-short/internal/session"
)

// Store хранит сессию в одном файле.
type Store struct {
	mu   sync.Mutex
	path string
}

// DefaultPath - <user config dir>/sortashort/<key>.json.
func DefaultPath(key string) (string, error) {
	const op = "session/file/DefaultPath"

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return filepath.Join(dir, "sortashort", key+".json"), nil
}

// New создаёт хранилище; каталог создаётся лениво при первой записи.
func New(path string) *Store {
	return &Store{path: path}
}

// Path - путь к файлу сессии.
func (s *Store) Path() string { return s.path }

func (s *Store) Load(_ context.Context) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *Store) Save(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(sess)
}

func (s *Store) Clear(_ context.Context) error {
	const op = "session/file/Clear"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) Patch(_ context.Context, p models.SessionPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.load()
	if err != nil {
		return err
	}

	if cur == nil {
		return nil
	}

	cur.Apply(p)
	return s.save(cur)
}

func (s *Store) load() (*models.Session, error) {
	const op = "session/file/load"

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return session.Decode(data), nil
}

func (s *Store) save(sess *models.Session) error {
	const op = "session/file/save"

	data, err := session.Encode(sess)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%s: mkdir: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("%s: temp: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: write: %w", op, err)
	}

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: chmod: %w", op, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: close: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%s: rename: %w", op, err)
	}

	return nil
}

// Проверка выполнения контракта верхнего уровня.
var _ session.Store = (*Store)(nil)
