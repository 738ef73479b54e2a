//go:build integration
// +build integration

package storage_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/instroom/minio-file/pkg/config"
	"github.com/instroom/minio-file/pkg/storage"
)

const (
	minioImage    = "quay.io/minio/minio:RELEASE.2024-01-16T16-07-38Z"
	minioUser     = "integration"
	minioPassword = "integration-secret"
)

func setupMinioContainer(ctx context.Context, t *testing.T) (testcontainers.Container, string) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        minioImage,
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     minioUser,
			"MINIO_ROOT_PASSWORD": minioPassword,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start MinIO container")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	return container, fmt.Sprintf("%s:%s", host, port.Port())
}

func testConfig(endpoint, bucket string) *config.Config {
	return &config.Config{
		AccessKey: minioUser,
		SecretKey: minioPassword,
		Endpoint:  endpoint,
		Bucket:    bucket,
		Secure:    false,
	}
}

func TestMinioIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, endpoint := setupMinioContainer(ctx, t)
	defer container.Terminate(ctx)

	t.Run("bucket_creation_is_idempotent", func(t *testing.T) {
		cfg := testConfig(endpoint, "fresh-bucket")

		// First invocation creates the bucket.
		store, err := storage.New(ctx, cfg, zerolog.Nop())
		require.NoError(t, err)
		require.NoError(t, store.Close())

		// Second invocation finds it and must not fail.
		store, err = storage.New(ctx, cfg, zerolog.Nop())
		require.NoError(t, err)
		require.NoError(t, store.Close())
	})

	t.Run("directory_upload_list_and_round_trip", func(t *testing.T) {
		cfg := testConfig(endpoint, "transfer-bucket")
		store, err := storage.New(ctx, cfg, zerolog.Nop())
		require.NoError(t, err)
		defer store.Close()

		files := map[string]string{
			"report.txt":          "quarterly report\n",
			"models/weights.bin":  "\x00\x01\x02\x03binary-ish",
			"models/metadata.csv": "name,rows\nweights,4\n",
		}
		root := t.TempDir()
		for name, content := range files {
			path := filepath.Join(root, filepath.FromSlash(name))
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		}

		summary, err := store.UploadDir(ctx, root)
		require.NoError(t, err)
		assert.Equal(t, len(files), summary.Uploaded)
		assert.Zero(t, summary.Failed)

		objects, err := store.List(ctx, "")
		require.NoError(t, err)
		listed := make(map[string]bool, len(objects))
		for _, obj := range objects {
			listed[obj.Key] = true
		}
		for name := range files {
			assert.True(t, listed[name], "uploaded key %s must appear in listing", name)
		}

		// Prefix filtering narrows the listing.
		objects, err = store.List(ctx, "models/")
		require.NoError(t, err)
		assert.Len(t, objects, 2)

		// Downloaded bytes must match the original file exactly.
		dest := filepath.Join(t.TempDir(), "weights.bin")
		require.NoError(t, store.Download(ctx, "models/weights.bin", dest))
		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, []byte(files["models/weights.bin"]), got)
	})

	t.Run("single_file_upload", func(t *testing.T) {
		cfg := testConfig(endpoint, "transfer-bucket")
		store, err := storage.New(ctx, cfg, zerolog.Nop())
		require.NoError(t, err)
		defer store.Close()

		path := filepath.Join(t.TempDir(), "single.txt")
		require.NoError(t, os.WriteFile(path, []byte("single file"), 0644))

		key, err := store.Upload(ctx, path, "")
		require.NoError(t, err)
		assert.Equal(t, "single.txt", key)
	})

	t.Run("missing_local_file", func(t *testing.T) {
		cfg := testConfig(endpoint, "transfer-bucket")
		store, err := storage.New(ctx, cfg, zerolog.Nop())
		require.NoError(t, err)
		defer store.Close()

		_, err = store.Upload(ctx, filepath.Join(t.TempDir(), "ghost.txt"), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("missing_remote_key", func(t *testing.T) {
		cfg := testConfig(endpoint, "transfer-bucket")
		store, err := storage.New(ctx, cfg, zerolog.Nop())
		require.NoError(t, err)
		defer store.Close()

		err = store.Download(ctx, "no/such/key", filepath.Join(t.TempDir(), "out"))
		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("bad_credentials", func(t *testing.T) {
		cfg := testConfig(endpoint, "transfer-bucket")
		cfg.SecretKey = "wrong-secret"

		_, err := storage.New(ctx, cfg, zerolog.Nop())
		require.Error(t, err)
		assert.True(t, storage.IsFatal(err), "credential errors must be fatal")
	})
}
