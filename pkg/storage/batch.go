package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// transferItem pairs a local file with the object key derived from its
// path relative to the walked root
type transferItem struct {
	path string
	key  string
	size int64
}

// UploadDir uploads every file under root, one blocking transfer at a
// time. A failing file is recorded in the summary and the batch moves on;
// only a missing or unreadable root is fatal.
func (c *Client) UploadDir(ctx context.Context, root string) (*Summary, error) {
	items, err := walkFiles(root)
	if err != nil {
		return nil, err
	}
	return uploadAll(ctx, c, items, c.log), nil
}

// singleUploader is the part of ObjectStore the batch loop needs
type singleUploader interface {
	Upload(ctx context.Context, sourcePath string, key string) (string, error)
}

func uploadAll(ctx context.Context, up singleUploader, items []transferItem, log zerolog.Logger) *Summary {
	summary := &Summary{}

	for _, item := range items {
		start := time.Now()
		key, err := up.Upload(ctx, item.path, item.key)
		result := Result{
			Path:     item.path,
			Key:      item.key,
			Size:     item.size,
			Success:  err == nil,
			Error:    err,
			Duration: time.Since(start),
		}
		if err == nil {
			result.Key = key
		} else {
			log.Error().
				Err(err).
				Str("file", item.path).
				Str("key", item.key).
				Msg("upload failed, continuing with remaining files")
		}
		summary.add(result)
	}

	return summary
}

// walkFiles enumerates the files under root recursively, deriving each
// object key as the slash-separated path relative to root. Enumeration
// order is whatever the filesystem walk yields.
func walkFiles(root string) ([]transferItem, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, WrapError("walk", root, ErrNotFound)
		}
		return nil, WrapError("walk", root, err)
	}

	if !info.IsDir() {
		return []transferItem{{path: root, key: filepath.Base(root), size: info.Size()}}, nil
	}

	var items []transferItem
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		var size int64
		if fi, err := d.Info(); err == nil {
			size = fi.Size()
		}
		items = append(items, transferItem{
			path: path,
			key:  filepath.ToSlash(rel),
			size: size,
		})
		return nil
	})
	if err != nil {
		return nil, WrapError("walk", root, err)
	}

	return items, nil
}
