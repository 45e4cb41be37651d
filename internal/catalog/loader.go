package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/sort-a-short/internal/config"
	"github.com/pribylovaa/sort-a-short/pkg/log"
)

// maxObject - верхняя граница размера справочника.
const maxObject = 16 << 20

// ObjectGetter - чтение объекта из бакета (S3).
type ObjectGetter interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
}

// Loader читает справочники по адресу:
//   - s3://bucket/key - через ObjectGetter;
//   - http(s)://... - GET с ?t=<unix ms> против кэшей CDN;
//   - иначе путь к локальному файлу.
type Loader struct {
	HTTP *http.Client
	S3   ObjectGetter
	Now  func() time.Time
}

// Read возвращает содержимое по адресу location.
func (l *Loader) Read(ctx context.Context, location string) ([]byte, error) {
	const op = "catalog/Loader.Read"

	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// "C:\..." на Windows тоже сюда.
		return readFile(location)
	}

	switch u.Scheme {
	case "s3":
		if l.S3 == nil {
			return nil, fmt.Errorf("%s: s3 source %q without s3 client", op, location)
		}
		return l.S3.Get(ctx, u.Host, strings.TrimPrefix(u.Path, "/"))
	case "http", "https":
		return l.readHTTP(ctx, u)
	case "file":
		return readFile(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme %q", op, u.Scheme)
	}
}

// Load читает и разбирает оба справочника.
func (l *Loader) Load(ctx context.Context, cfg config.CatalogConfig) (*Catalog, error) {
	const op = "catalog/Load"

	rawMovies, err := l.Read(ctx, cfg.CatalogURL)
	if err != nil {
		return nil, fmt.Errorf("%s: catalog: %w", op, err)
	}

	movies, err := DecodeMovies(rawMovies)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rawCollections, err := l.Read(ctx, cfg.CollectionsURL)
	if err != nil {
		return nil, fmt.Errorf("%s: collections: %w", op, err)
	}

	collections, err := DecodeCollections(rawCollections)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("catalog_loaded",
		slog.Int("movies", len(movies)),
		slog.Int("collections", len(collections)),
	)

	return New(movies, collections, cfg.MediaBaseURL), nil
}

func (l *Loader) readHTTP(ctx context.Context, u *url.URL) ([]byte, error) {
	const op = "catalog/Loader.readHTTP"

	now := time.Now
	if l.Now != nil {
		now = l.Now
	}

	q := u.Query()
	q.Set("t", strconv.FormatInt(now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}

	hc := l.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxObject))
	if err != nil {
		return nil, fmt.Errorf("%s: read: %w", op, err)
	}

	return data, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog/readFile: %w", err)
	}

	return data, nil
}

// NeedsS3 - используется ли s3:// хотя бы в одном источнике.
func NeedsS3(cfg config.CatalogConfig) bool {
	return strings.HasPrefix(cfg.CatalogURL, "s3://") || strings.HasPrefix(cfg.CollectionsURL, "s3://")
}
