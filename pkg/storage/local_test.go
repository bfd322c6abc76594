package storage_test

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"

	"github.com/dmitrymomot/qrgen/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestNewLocalStorage(t *testing.T) {
	t.Parallel()
	t.Run("rejects empty base directory", func(t *testing.T) {
		t.Parallel()
		s, err := storage.NewLocalStorage("", "/files/")
		require.Error(t, err)
		require.Nil(t, s)
		assert.ErrorIs(t, err, storage.ErrInvalidConfig)
	})

	t.Run("creates the base directory", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nested", "artifacts")
		s, err := storage.NewLocalStorage(dir, "/files/")
		require.NoError(t, err)

		info, err := os.Stat(s.Dir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestLocalStorageSave(t *testing.T) {
	t.Parallel()
	t.Run("rejects nil image", func(t *testing.T) {
		t.Parallel()
		s, err := storage.NewLocalStorage(t.TempDir(), "/files/")
		require.NoError(t, err)

		a, err := s.Save(context.Background(), nil)
		require.Error(t, err)
		require.Nil(t, a)
		assert.ErrorIs(t, err, storage.ErrNilImage)
	})

	t.Run("persists a decodable PNG under the unique name pattern", func(t *testing.T) {
		t.Parallel()
		s, err := storage.NewLocalStorage(t.TempDir(), "/files/")
		require.NoError(t, err)

		a, err := s.Save(context.Background(), testImage(color.RGBA{R: 200, A: 255}))
		require.NoError(t, err)
		require.NotNil(t, a)

		assert.Regexp(t, regexp.MustCompile(`^qr_code_[0-9a-f]{32}\.png$`), a.Filename)
		assert.Equal(t, "/files/"+a.Filename, a.URL)
		assert.Positive(t, a.Size)

		f, err := os.Open(a.Path)
		require.NoError(t, err)
		defer f.Close()
		img, err := png.Decode(f)
		require.NoError(t, err, "stored artifact should be a valid PNG")
		assert.Equal(t, 8, img.Bounds().Dx())
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		s, err := storage.NewLocalStorage(dir, "/files/")
		require.NoError(t, err)

		_, err = s.Save(context.Background(), testImage(color.RGBA{G: 200, A: 255}))
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp", "temporary file should have been renamed away")
		}
	})

	t.Run("concurrent saves yield distinct artifacts", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		s, err := storage.NewLocalStorage(dir, "/files/")
		require.NoError(t, err)

		const n = 16
		var wg sync.WaitGroup
		names := make([]string, n)
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				a, err := s.Save(context.Background(), testImage(color.RGBA{B: uint8(i * 10), A: 255}))
				if err != nil {
					errs[i] = err
					return
				}
				names[i] = a.Filename
			}(i)
		}
		wg.Wait()

		seen := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			require.NoError(t, errs[i])
			assert.False(t, seen[names[i]], "filename %s issued twice", names[i])
			seen[names[i]] = true
		}

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, n, "every call should have produced exactly one file")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()
		s, err := storage.NewLocalStorage(t.TempDir(), "/files/")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		a, err := s.Save(ctx, testImage(color.RGBA{A: 255}))
		require.Error(t, err)
		require.Nil(t, a)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalStorageOpen(t *testing.T) {
	t.Parallel()
	t.Run("round trips stored bytes", func(t *testing.T) {
		t.Parallel()
		s, err := storage.NewLocalStorage(t.TempDir(), "/files/")
		require.NoError(t, err)

		a, err := s.Save(context.Background(), testImage(color.RGBA{R: 1, G: 2, B: 3, A: 255}))
		require.NoError(t, err)

		rc, err := s.Open(context.Background(), a.Filename)
		require.NoError(t, err)
		defer rc.Close()

		img, err := png.Decode(rc)
		require.NoError(t, err)
		assert.Equal(t, 8, img.Bounds().Dx())
	})

	t.Run("reports missing artifacts", func(t *testing.T) {
		t.Parallel()
		s, err := storage.NewLocalStorage(t.TempDir(), "/files/")
		require.NoError(t, err)

		rc, err := s.Open(context.Background(), "qr_code_0123456789abcdef0123456789abcdef.png")
		require.Error(t, err)
		require.Nil(t, rc)
		assert.ErrorIs(t, err, storage.ErrArtifactNotFound)
	})

	t.Run("rejects filenames outside the generated pattern", func(t *testing.T) {
		t.Parallel()
		s, err := storage.NewLocalStorage(t.TempDir(), "/files/")
		require.NoError(t, err)

		for _, name := range []string{"../../etc/passwd", "qr_code_zz.png", "other.png", ""} {
			rc, err := s.Open(context.Background(), name)
			require.Error(t, err, "name %q should be rejected", name)
			require.Nil(t, rc)
			assert.ErrorIs(t, err, storage.ErrInvalidFilename)
		}
	})
}

func TestLocalStorageExists(t *testing.T) {
	t.Parallel()
	s, err := storage.NewLocalStorage(t.TempDir(), "/files/")
	require.NoError(t, err)

	a, err := s.Save(context.Background(), testImage(color.RGBA{A: 255}))
	require.NoError(t, err)

	assert.True(t, s.Exists(context.Background(), a.Filename))
	assert.False(t, s.Exists(context.Background(), "qr_code_0123456789abcdef0123456789abcdef.png"))
	assert.False(t, s.Exists(context.Background(), "../sneaky.png"))
}
