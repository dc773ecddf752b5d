package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"docvault/internal/config"
)

// minioStorage implements the Storage interface against an S3-compatible
// backend (MinIO, AWS S3, etc.). It is safe for concurrent use by multiple
// goroutines.
type minioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates the storage client and verifies the configured bucket
// exists. The bucket is never created here: a missing bucket is surfaced as
// ErrNotFound so misconfiguration fails loudly at startup.
//
// Credentials are resolved through an ordered provider chain tried
// first-success: static keys from configuration (when set), then the
// MinIO/AWS environment variables, the shared AWS credentials file, and
// finally the instance metadata service. If no provider yields usable
// credentials, requests fail with ErrAuth.
func NewMinIO(cfg config.MinIOConfig) (Storage, error) {
	providers := []credentials.Provider{}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		providers = append(providers, &credentials.Static{
			Value: credentials.Value{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
				SignerType:      credentials.SignatureV4,
			},
		})
	}
	providers = append(providers,
		&credentials.EnvMinio{},
		&credentials.EnvAWS{},
		&credentials.FileAWSCredentials{},
		&credentials.IAM{},
	)

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewChainCredentials(providers),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create client: %v", ErrTransport, err)
	}

	ms := &minioStorage{client: cli, bucket: cfg.Bucket}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, classify(err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %q does not exist", ErrNotFound, cfg.Bucket)
	}

	return ms, nil
}

// Put uploads an object using streaming I/O only. An existing object at the
// same key is overwritten; the last writer wins.
func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	info, err := m.client.PutObject(ctx, m.bucket, key, r, opt.Size, minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
	})
	if err != nil {
		return ObjectInfo{}, classify(err)
	}
	return ObjectInfo{
		Key:          key,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  opt.ContentType,
		LastModified: time.Now(),
	}, nil
}

// Exists checks object presence via a metadata-only stat; no content is
// downloaded.
func (m *minioStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, classify(err)
	}
	return true, nil
}

// PresignGet generates a pre-signed URL for GET with the specified expiry.
// This is a local signature computation plus no object access.
func (m *minioStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", classify(err)
	}
	return u.String(), nil
}

// Delete removes an object by key.
func (m *minioStorage) Delete(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return classify(err)
	}
	return nil
}

// classify folds a backend failure into the closed error set exactly once,
// at this boundary. Unknown codes and plain network errors become
// ErrTransport.
func classify(err error) error {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %s", ErrNotFound, resp.Message)
	case "AccessDenied", "AllAccessDisabled":
		return fmt.Errorf("%w: %s", ErrPermission, resp.Message)
	case "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken", "CredentialsNotSupported":
		return fmt.Errorf("%w: %s", ErrAuth, resp.Message)
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
