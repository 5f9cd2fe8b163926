package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLoader serves fixed images and counts lookups
type countingLoader struct {
	images map[string]image.Image
	calls  map[string]int
}

func (l *countingLoader) Load(name string) (image.Image, error) {
	l.calls[name]++
	img, ok := l.images[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return img, nil
}

func createTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"goblin.png": {Data: createTestPNG(t, 8, 6)},
		"broken.png": {Data: []byte("not an image")},
	}
	l := NewFSLoader(fsys)

	img, err := l.Load("goblin.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())

	_, err = l.Load("broken.png")
	assert.Error(t, err)

	_, err = l.Load("missing.png")
	assert.Error(t, err)
}

func TestResolverSource(t *testing.T) {
	found := image.NewRGBA(image.Rect(0, 0, 4, 4))
	loader := &countingLoader{
		images: map[string]image.Image{"player.png": found},
		calls:  map[string]int{},
	}
	r := NewResolver(loader)

	tests := []struct {
		name        string
		asset       string
		wantMissing bool
	}{
		{"known asset", "player.png", false},
		{"unknown asset", "ghost.png", true},
		{"empty name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := r.Source(tt.asset)
			require.NotNil(t, img)
			assert.Equal(t, tt.wantMissing, r.missing[tt.asset])
			if tt.wantMissing {
				assert.Equal(t, image.Rect(0, 0, PlaceholderSize, PlaceholderSize), img.Bounds())
			} else {
				assert.Same(t, found, img)
			}
		})
	}
}

func TestResolverCachesFailures(t *testing.T) {
	loader := &countingLoader{images: map[string]image.Image{}, calls: map[string]int{}}
	r := NewResolver(loader)

	for i := 0; i < 3; i++ {
		r.Source("ghost.png")
	}
	assert.Equal(t, 1, loader.calls["ghost.png"])
}

func TestNilLoaderUsesPlaceholder(t *testing.T) {
	r := NewResolver(nil)
	img := r.Source("anything.png")
	assert.True(t, r.missing["anything.png"])
	assert.Equal(t, PlaceholderSize, img.Bounds().Dx())
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder()
	assert.Equal(t, placeholderBorder, img.RGBAAt(0, 0))
	assert.Equal(t, placeholderFill, img.RGBAAt(PlaceholderSize/2, PlaceholderSize/2))
}
