package storage

import (
	"context"
	"time"
)

// ObjectStore represents the bucket-scoped operations the tool performs
// against the object-storage service
type ObjectStore interface {
	// Bucket returns the name of the bucket all operations target
	Bucket() string

	// Upload stores a single local file under the given key and returns
	// the resolved key
	Upload(ctx context.Context, sourcePath string, key string) (string, error)

	// UploadDir walks the directory rooted at root and uploads every
	// contained file, deriving each key from the file's path relative to
	// root. Individual failures are collected, not fatal.
	UploadDir(ctx context.Context, root string) (*Summary, error)

	// List returns the objects currently in the bucket, optionally
	// filtered by key prefix
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// Download fetches the object stored under key into destPath
	Download(ctx context.Context, key string, destPath string) error

	// Close releases the client session
	Close() error
}

// ObjectInfo represents metadata about a stored object
type ObjectInfo struct {
	Key          string    // Object key within the bucket
	Size         int64     // Size in bytes
	LastModified time.Time // Last modification time
}

// Result represents the outcome of a single file transfer
type Result struct {
	Path     string // Local file path
	Key      string // Object key
	Size     int64  // Bytes transferred
	Success  bool
	Error    error
	Duration time.Duration
}

// Summary aggregates the per-file results of a directory upload
type Summary struct {
	Results  []Result
	Uploaded int
	Failed   int
	Bytes    int64
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	if r.Success {
		s.Uploaded++
		s.Bytes += r.Size
	} else {
		s.Failed++
	}
}

// Failures returns only the failed results
func (s *Summary) Failures() []Result {
	var failed []Result
	for _, r := range s.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}
