package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/currency/storage"
)

func TestFileStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("MissingFile", func(t *testing.T) {
		asserts := require.New(t)
		st := storage.NewFileStorage(filepath.Join(t.TempDir(), "missing"))

		rates, err := st.Load(ctx)

		asserts.Nil(err)
		asserts.Equal(0, rates.Len())
	})

	t.Run("EmptyFile", func(t *testing.T) {
		asserts := require.New(t)
		path := filepath.Join(t.TempDir(), "empty")
		asserts.Nil(os.WriteFile(path, nil, 0o600))

		rates, err := storage.NewFileStorage(path).Load(ctx)

		asserts.Nil(err)
		asserts.Equal(0, rates.Len())
	})

	t.Run("CorruptFile", func(t *testing.T) {
		asserts := require.New(t)
		path := filepath.Join(t.TempDir(), "corrupt")
		asserts.Nil(os.WriteFile(path, []byte("definitely not bson"), 0o600))

		rates, err := storage.NewFileStorage(path).Load(ctx)

		asserts.Nil(rates)
		asserts.ErrorIs(err, storage.ErrCorruptCache)
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		asserts := require.New(t)
		st := storage.NewFileStorage(filepath.Join(t.TempDir(), ".curr-cache"))
		expected := fakeRates(5)

		asserts.Nil(st.Save(ctx, expected))

		actual, err := st.Load(ctx)
		asserts.Nil(err)
		requireSameRates(t, expected, actual)
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		asserts := require.New(t)
		st := storage.NewFileStorage(filepath.Join(t.TempDir(), ".curr-cache"))

		asserts.Nil(st.Save(ctx, fakeRates(10)))
		expected := fakeRates(1)
		asserts.Nil(st.Save(ctx, expected))

		actual, err := st.Load(ctx)
		asserts.Nil(err)
		requireSameRates(t, expected, actual)
	})

	t.Run("UnwritablePath", func(t *testing.T) {
		asserts := require.New(t)
		st := storage.NewFileStorage(filepath.Join(t.TempDir(), "missing-dir", ".curr-cache"))

		asserts.NotNil(st.Save(ctx, fakeRates(1)))
	})
}

func TestDefaultCachePath(t *testing.T) {
	t.Parallel()

	require.Equal(t, storage.DefaultCacheFileName, filepath.Base(storage.DefaultCachePath()))
}
