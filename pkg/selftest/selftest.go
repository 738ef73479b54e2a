// Package selftest implements the no-argument smoke mode: it generates a
// handful of sample files, uploads them, lists the bucket and downloads
// one file back to verify the round trip.
package selftest

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/instroom/minio-file/pkg/storage"
)

type sampleFile struct {
	name    string
	content string
}

var sampleFiles = []sampleFile{
	{"hello.txt", "hello from the minio-file self-test\n"},
	{"data/values.csv", "id,value\n1,alpha\n2,beta\n3,gamma\n"},
	{"notes/readme.md", "# sample\n\nround-trip verification file\n"},
}

// roundTripFile is the sample whose content is downloaded and compared
const roundTripFile = "hello.txt"

// Run executes the self-test against the given store. When prefix is
// empty a timestamped one is generated so repeated runs do not collide.
func Run(ctx context.Context, store storage.ObjectStore, prefix string, log zerolog.Logger) error {
	if prefix == "" {
		prefix = fmt.Sprintf("selftest-%d", time.Now().Unix())
	}

	root, err := os.MkdirTemp("", "minio-file-selftest-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(root)

	for _, f := range sampleFiles {
		path := filepath.Join(root, prefix, filepath.FromSlash(f.name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create sample directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("failed to write sample file %s: %w", path, err)
		}
	}

	log.Info().
		Str("bucket", store.Bucket()).
		Str("prefix", prefix).
		Int("files", len(sampleFiles)).
		Msg("self-test: uploading sample files")

	summary, err := store.UploadDir(ctx, root)
	if err != nil {
		return fmt.Errorf("self-test upload failed: %w", err)
	}
	if summary.Failed > 0 {
		return fmt.Errorf("self-test upload failed for %d of %d files", summary.Failed, len(summary.Results))
	}

	objects, err := store.List(ctx, prefix)
	if err != nil {
		return fmt.Errorf("self-test list failed: %w", err)
	}

	listed := make(map[string]bool, len(objects))
	for _, obj := range objects {
		listed[obj.Key] = true
	}
	for _, f := range sampleFiles {
		key := prefix + "/" + f.name
		if !listed[key] {
			return fmt.Errorf("self-test: uploaded key %s missing from listing", key)
		}
	}

	key := prefix + "/" + roundTripFile
	dest := filepath.Join(root, "roundtrip.out")
	if err := store.Download(ctx, key, dest); err != nil {
		return fmt.Errorf("self-test download failed: %w", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		return fmt.Errorf("failed to read downloaded file: %w", err)
	}
	var want []byte
	for _, f := range sampleFiles {
		if f.name == roundTripFile {
			want = []byte(f.content)
		}
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("self-test: downloaded content for %s differs from original (%d vs %d bytes)", key, len(got), len(want))
	}

	log.Info().
		Int("uploaded", summary.Uploaded).
		Int64("bytes", summary.Bytes).
		Str("round_trip", key).
		Msg("self-test passed")

	return nil
}
