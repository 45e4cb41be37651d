package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/sort-a-short/internal/config"
)

// ErrObjectNotFound - объекта нет в бакете.
var ErrObjectNotFound = errors.New("object not found")

// S3 читает справочники из S3-совместимого хранилища (MinIO, AWS S3).
type S3 struct {
	client *mclient.Client
}

// NewS3 создаёт клиент: endpoint нормализуется (схема определяет Secure),
// пустые ключи - анонимный доступ к публичному бакету.
func NewS3(cfg config.S3Config) (*S3, error) {
	const op = "catalog/NewS3"

	endpoint := cfg.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	opts := &mclient.Options{
		Secure: secure,
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" {
		opts.Creds = credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, "")
	} else {
		opts.Creds = credentials.NewStatic("", "", "", credentials.SignatureAnonymous)
	}

	client, err := mclient.New(endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &S3{client: client}, nil
}

// Get читает объект целиком (не больше maxObject байт).
func (s *S3) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	const op = "catalog/S3.Get"

	obj, err := s.client.GetObject(ctx, bucket, key, mclient.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapS3Err(err))
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, maxObject))
	if err != nil {
		return nil, fmt.Errorf("%s: %s/%s: %w", op, bucket, key, mapS3Err(err))
	}

	return data, nil
}

func mapS3Err(err error) error {
	resp := mclient.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" || resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, resp.Message)
	}

	return err
}
