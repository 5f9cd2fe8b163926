// Package assets resolves image names to drawable images.
// Missing or broken files resolve to a placeholder so rendering never fails.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/spellsword/internal/infrastructure/logger"
)

// PlaceholderSize is the edge length of generated placeholder images
const PlaceholderSize = 32

var (
	placeholderFill   = color.RGBA{200, 0, 200, 255}
	placeholderBorder = color.RGBA{40, 0, 40, 255}
)

// Loader decodes an image by name
type Loader interface {
	Load(name string) (image.Image, error)
}

// FSLoader decodes PNG or JPEG files from a file system
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader over fsys
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// Load opens and decodes name
func (l *FSLoader) Load(name string) (image.Image, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return img, nil
}

// Resolver caches images by name. Not safe for concurrent use.
type Resolver struct {
	loader  Loader
	sources map[string]image.Image
	images  map[string]*ebiten.Image
	missing map[string]bool
	log     *logrus.Entry
}

// NewResolver creates a resolver. A nil loader resolves everything to the placeholder.
func NewResolver(loader Loader) *Resolver {
	return &Resolver{
		loader:  loader,
		sources: make(map[string]image.Image),
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
		log:     logger.Component("assets"),
	}
}

// Source returns the decoded image for name, or the placeholder.
// A failed name is warned about once and never retried.
func (r *Resolver) Source(name string) image.Image {
	if img, ok := r.sources[name]; ok {
		return img
	}

	img, err := r.load(name)
	if err != nil {
		r.missing[name] = true
		r.log.WithFields(logrus.Fields{"asset": name, "error": err}).Warn("asset missing, using placeholder")
		img = Placeholder()
	}
	r.sources[name] = img
	return img
}

func (r *Resolver) load(name string) (image.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("empty asset name")
	}
	if r.loader == nil {
		return nil, fmt.Errorf("no loader for %s", name)
	}
	return r.loader.Load(name)
}

// Resolve returns the GPU image for name, creating it on first use
func (r *Resolver) Resolve(name string) *ebiten.Image {
	if img, ok := r.images[name]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(r.Source(name))
	r.images[name] = img
	return img
}

// Placeholder returns a bordered magenta square
func Placeholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{placeholderFill}, image.Point{}, draw.Src)
	for i := 0; i < PlaceholderSize; i++ {
		img.Set(i, 0, placeholderBorder)
		img.Set(i, PlaceholderSize-1, placeholderBorder)
		img.Set(0, i, placeholderBorder)
		img.Set(PlaceholderSize-1, i, placeholderBorder)
	}
	return img
}
