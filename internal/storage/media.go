// Package storage provides the media-storage collaborator backed by MinIO.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cliptube/internal/config"
	"cliptube/internal/observability"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MediaStore accepts uploaded blobs and returns a durable reference URL.
type MediaStore interface {
	Upload(ctx context.Context, kind, filename, contentType string, size int64, r io.Reader) (string, error)
}

// Media kinds used as object key prefixes.
const (
	KindVideo     = "videos"
	KindThumbnail = "thumbnails"
	KindAvatar    = "avatars"
)

type minioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioStore connects to MinIO, ensures the bucket exists, and returns a MediaStore.
func NewMinioStore(cfg *config.Config) (MediaStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	publicURL := cfg.MinioPublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinioUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinioEndpoint)
	}

	return &minioStore{
		client:    client,
		bucket:    cfg.MinioBucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores the blob under a random object key and returns its durable URL.
// The original filename only contributes its extension; keys never collide.
func (s *minioStore) Upload(ctx context.Context, kind, filename, contentType string, size int64, r io.Reader) (string, error) {
	objectName := fmt.Sprintf("%s/%s%s", kind, uuid.New().String(), path.Ext(filename))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		observability.MediaUploads.WithLabelValues(kind, "error").Inc()
		return "", fmt.Errorf("failed to upload %s: %w", kind, err)
	}

	observability.MediaUploads.WithLabelValues(kind, "ok").Inc()
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}
