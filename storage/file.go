package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/malusev998/currency"
)

const DefaultCacheFileName = ".curr-cache"

// FileStorage keeps the whole rate store in a single file.
type FileStorage struct {
	Path string
}

var _ currency.Storage = FileStorage{}

// DefaultCachePath is ~/.curr-cache, or .curr-cache in the working directory
// when the home directory cannot be determined.
func DefaultCachePath() string {
	dir, err := os.UserHomeDir()

	if err != nil {
		if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, DefaultCacheFileName)
}

func NewFileStorage(path string) FileStorage {
	if path == "" {
		path = DefaultCachePath()
	}

	return FileStorage{Path: path}
}

// Load treats a missing or empty file as an empty cache.
func (f FileStorage) Load(_ context.Context) (*currency.RateStore, error) {
	data, err := os.ReadFile(f.Path)

	if errors.Is(err, fs.ErrNotExist) {
		return currency.NewRateStore(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("error while reading cache file %s: %w", f.Path, err)
	}

	rates, err := decodeSnapshot(data)

	if err != nil {
		return nil, fmt.Errorf("error while decoding cache file %s: %w", f.Path, err)
	}

	return rates, nil
}

func (f FileStorage) Save(_ context.Context, rates *currency.RateStore) error {
	data, err := encodeSnapshot(rates)

	if err != nil {
		return err
	}

	if err := os.WriteFile(f.Path, data, 0o600); err != nil {
		return fmt.Errorf("error while writing cache file %s: %w", f.Path, err)
	}

	return nil
}

func (f FileStorage) Name() string {
	return string(File)
}

func (f FileStorage) Close() error {
	return nil
}
