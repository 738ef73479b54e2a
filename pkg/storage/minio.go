package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"

	"github.com/instroom/minio-file/pkg/config"
)

// Client is the MinIO-backed ObjectStore used for real transfers
type Client struct {
	mc     *minio.Client
	bucket string
	log    zerolog.Logger
}

var _ ObjectStore = (*Client)(nil)

// New builds a client session from a validated configuration and ensures
// the target bucket exists, creating it when absent. Repeated invocations
// against an existing bucket skip the creation step.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Client, error) {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	}

	if cfg.InsecureSkipVerify {
		log.Warn().
			Str("endpoint", cfg.Endpoint).
			Msg("TLS certificate verification disabled, connection is open to interception")
		opts.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	mc, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, WrapError("init client", cfg.Endpoint, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
	}

	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, WrapError("check bucket", cfg.Bucket, apiError(err, ErrConnFailed))
	}

	if !exists {
		if err := mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, WrapError("create bucket", cfg.Bucket, apiError(err, ErrAccessDenied))
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("bucket created")
	} else {
		log.Debug().Str("bucket", cfg.Bucket).Msg("bucket exists")
	}

	return &Client{
		mc:     mc,
		bucket: cfg.Bucket,
		log:    log,
	}, nil
}

func (c *Client) Bucket() string { return c.bucket }

// Upload stores a single local file under key
func (c *Client) Upload(ctx context.Context, sourcePath, key string) (string, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", WrapError("upload", sourcePath, ErrNotFound)
		}
		return "", WrapError("upload", sourcePath, err)
	}
	if info.IsDir() {
		return "", WrapError("upload", sourcePath, fmt.Errorf("%w: is a directory, not a file", ErrTransfer))
	}

	if key == "" {
		key = filepath.Base(sourcePath)
	}
	key = filepath.ToSlash(key)

	start := time.Now()
	uploaded, err := c.mc.FPutObject(ctx, c.bucket, key, sourcePath, minio.PutObjectOptions{})
	if err != nil {
		return "", WrapError("upload", key, apiError(err, ErrTransfer))
	}

	c.log.Info().
		Str("file", sourcePath).
		Str("key", key).
		Int64("size", uploaded.Size).
		Dur("duration", time.Since(start)).
		Msg("upload succeeded")

	return key, nil
}

// List returns the objects in the bucket, optionally filtered by prefix
func (c *Client) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo

	for obj := range c.mc.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, WrapError("list", c.bucket, apiError(obj.Err, ErrConnFailed))
		}
		objects = append(objects, ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	return objects, nil
}

// Download fetches the object stored under key into destPath
func (c *Client) Download(ctx context.Context, key, destPath string) error {
	if err := c.mc.FGetObject(ctx, c.bucket, key, destPath, minio.GetObjectOptions{}); err != nil {
		return WrapError("download", key, apiError(err, ErrTransfer))
	}

	c.log.Info().
		Str("key", key).
		Str("file", destPath).
		Msg("download succeeded")

	return nil
}

// Close is a no-op for the MinIO client; the session dies with the process
func (c *Client) Close() error {
	return nil
}

// apiError translates a minio client error into the local taxonomy.
// Responses without an S3 error code never reached the service.
func apiError(err error, fallback error) error {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return ErrNotFound
	case "AccessDenied", "AllAccessDisabled", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	}
	if resp.Code == "" {
		return fmt.Errorf("%w: %v", ErrConnFailed, err)
	}
	return fmt.Errorf("%w: %v", fallback, err)
}
