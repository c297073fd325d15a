package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/neonthreads/storefront/internal/cart/app"
	"github.com/neonthreads/storefront/internal/cart/domain"
)

// FileStore keeps the cart snapshot in a single JSON file, the server-side
// stand-in for the browser's local storage record.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(ctx context.Context) ([]domain.LineItem, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, app.ErrNoSnapshot
		}
		return nil, fmt.Errorf("read snapshot %s: %w", f.path, err)
	}

	items, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", f.path, err)
	}
	return items, nil
}

// Save writes the snapshot through a temp file and a rename, so a crash
// mid-write never leaves a truncated record behind.
func (f *FileStore) Save(ctx context.Context, items []domain.LineItem) error {
	data, err := Encode(items)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".cart-snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}
