package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore keeps uploaded CV files. The returned key goes onto the
// CVRecord's url column; the file itself is never stored in the database.
type ObjectStore interface {
	Upload(ctx context.Context, key string, content []byte, contentType string) (string, error)
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

type minioStore struct {
	cfg    Config
	client *minio.Client
	logger *slog.Logger
}

func NewMinioStore(cfg Config, logger *slog.Logger) (ObjectStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &minioStore{cfg: cfg, client: client, logger: logger}, nil
}

func (s *minioStore) Upload(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(
		ctx,
		s.cfg.Bucket,
		key,
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		s.logger.Error("storage.upload.failed", "key", key, "error", err)
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	s.logger.Info("storage.upload.ok", "key", key, "bytes", len(content))
	return fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, key), nil
}

func (s *minioStore) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.cfg.Bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", key, err)
	}
	return u.String(), nil
}
