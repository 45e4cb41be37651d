// redis - реализация session.Store поверх одного ключа Redis.
// Используется, когда компаньон работает без локального диска рядом с общим кешем.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pribylovaa/sort-a-short/internal/config"
	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/pribylovaa/sort-a-short/internal/session"
)

// Store хранит сессию под ключом key.
type Store struct {
	client *goredis.Client
	key    string
}

// Connect открывает клиент по конфигу и проверяет доступность (PING).
func Connect(ctx context.Context, cfg config.SessionConfig) (*goredis.Client, error) {
	const op = "session/redis/Connect"

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return client, nil
}

// New создаёт хранилище поверх готового клиента.
func New(client *goredis.Client, key string) *Store {
	if key == "" {
		key = session.DefaultKey
	}

	return &Store{client: client, key: key}
}

func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	const op = "session/redis/Load"

	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return session.Decode(data), nil
}

func (s *Store) Save(ctx context.Context, sess *models.Session) error {
	const op = "session/redis/Save"

	data, err := session.Encode(sess)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	const op = "session/redis/Clear"

	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Patch выполняет read-modify-write под WATCH, чтобы не затереть параллельную запись.
func (s *Store) Patch(ctx context.Context, p models.SessionPatch) error {
	const op = "session/redis/Patch"

	err := s.client.Watch(ctx, func(tx *goredis.Tx) error {
		data, err := tx.Get(ctx, s.key).Bytes()
		if err != nil {
			if errors.Is(err, goredis.Nil) {
				return nil
			}
			return err
		}

		cur := session.Decode(data)
		if cur == nil {
			return nil
		}

		cur.Apply(p)

		out, err := session.Encode(cur)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, s.key, out, 0)
			return nil
		})
		return err
	}, s.key)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Проверка выполнения контракта верхнего уровня.
var _ session.Store = (*Store)(nil)
