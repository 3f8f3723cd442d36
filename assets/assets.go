package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"math"
	"path/filepath"
	"strings"

	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/render"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images spritesets.yaml
	animationFS embed.FS
)

// ImageLoader resolves sprite sources to decoded images and caches them.
// Sources ending in .svg are rasterized at their intrinsic size.
type ImageLoader struct {
	fsys  fs.FS
	cache map[string]image.Image
}

// NewImageLoader reads from fsys, or from the embedded images when fsys is nil.
func NewImageLoader(fsys fs.FS) *ImageLoader {
	if fsys == nil {
		fsys = animationFS
	}
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]image.Image),
	}
}

// Image returns the sheet for source, loading it on first use.
func (l *ImageLoader) Image(source string) (render.Sheet, error) {
	img, err := l.Load(source)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Load returns the decoded image for source.
func (l *ImageLoader) Load(source string) (image.Image, error) {
	if img, ok := l.cache[source]; ok {
		return img, nil
	}

	data, err := fs.ReadFile(l.fsys, source)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", source, err)
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(source), ".svg") {
		img, err = RasterizeSVG(bytes.NewReader(data))
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", source, err)
	}

	l.cache[source] = img
	return img, nil
}

// Add registers an image obtained elsewhere, such as a fetched sprite.
func (l *ImageLoader) Add(source string, img image.Image) {
	l.cache[source] = img
}

// Preload loads every source of every set.
func (l *ImageLoader) Preload(sets map[string]*animations.Set) error {
	for name, s := range sets {
		for _, src := range s.Sources() {
			if _, err := l.Load(src); err != nil {
				return fmt.Errorf("sprite set %s: %w", name, err)
			}
		}
	}
	return nil
}

// RasterizeSVG renders an SVG document at the size given by its viewBox.
func RasterizeSVG(r io.Reader) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg has empty viewBox %vx%v", icon.ViewBox.W, icon.ViewBox.H)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// LoadSpriteSets decodes the embedded sprite-set definitions.
func LoadSpriteSets() (map[string]*animations.Set, error) {
	return animations.LoadSetsFS(animationFS, config.Animation.SpriteSetsPath)
}
