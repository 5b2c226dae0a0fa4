package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore persists uploaded binary objects and returns a publicly
// resolvable URL for each.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// Config holds the S3-compatible endpoint settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	UseSSL    bool
}

// S3ImageStore uploads images to an S3-compatible bucket.
type S3ImageStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewS3ImageStore(cfg Config) (*S3ImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &S3ImageStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Upload stores the bytes under a fresh fleet/ key and returns its public URL.
func (s *S3ImageStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	key := ObjectKey(contentType)

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.publicURL + "/" + key, nil
}

// ObjectKey derives a unique storage key from the content type.
func ObjectKey(contentType string) string {
	return "fleet/" + uuid.NewString() + "." + FileExtension(contentType)
}

// FileExtension maps a content type to a file extension: the subtype is used
// verbatim except jpeg, which becomes jpg.
func FileExtension(contentType string) string {
	ext := contentType
	if idx := strings.LastIndex(contentType, "/"); idx >= 0 {
		ext = contentType[idx+1:]
	}
	if ext == "jpeg" {
		ext = "jpg"
	}
	return ext
}

var _ ImageStore = (*S3ImageStore)(nil)
