package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font loads and parses the font asset called name.
func (b *Bundle) Font(name string) (*opentype.Font, error) {
	p, err := b.resolve(KindFont, name, fontDirs, fontExts)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(b.fsys, p)
	if err != nil {
		return nil, &ConfigurationError{Asset: name, Kind: KindFont, Err: err}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &ConfigurationError{Asset: name, Kind: KindFont, Err: fmt.Errorf("parse %s: %w", p, err)}
	}
	return f, nil
}

// Glyph is a rasterized label, trimmed to its ink bounds.
type Glyph struct {
	Label string
	Image *image.RGBA
}

// Width returns the glyph image width in pixels.
func (g Glyph) Width() float64 {
	if g.Image == nil {
		return 0
	}
	return float64(g.Image.Bounds().Dx())
}

// Height returns the glyph image height in pixels.
func (g Glyph) Height() float64 {
	if g.Image == nil {
		return 0
	}
	return float64(g.Image.Bounds().Dy())
}

// Numerals holds the rasterized hour labels 1 through 12.
type Numerals struct {
	glyphs [12]Glyph
	extent float64
}

// RasterizeNumerals renders the labels "1".."12" with f at size points
// (72 DPI, so one point is one logical pixel) in color c.
func RasterizeNumerals(f *opentype.Font, size float64, c color.Color) (*Numerals, error) {
	if f == nil {
		return nil, errors.New("assets: nil font")
	}
	if size <= 0 {
		return nil, fmt.Errorf("assets: invalid numeral size %v", size)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("assets: create face: %w", err)
	}
	defer face.Close()

	n := &Numerals{}
	src := image.NewUniform(c)
	for i := range n.glyphs {
		label := strconv.Itoa(i + 1)
		g := rasterize(face, src, label)
		n.glyphs[i] = g
		n.extent = max(n.extent, g.Width(), g.Height())
	}
	return n, nil
}

func rasterize(face font.Face, src image.Image, label string) Glyph {
	bounds, _ := font.BoundString(face, label)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(label)
	return Glyph{Label: label, Image: dst}
}

// Glyph returns the rasterized label for hour n (1..12).
func (n *Numerals) Glyph(hour int) (Glyph, bool) {
	if n == nil || hour < 1 || hour > len(n.glyphs) {
		return Glyph{}, false
	}
	return n.glyphs[hour-1], true
}

// Extent is the largest glyph dimension, used to keep labels inside the dial.
func (n *Numerals) Extent() float64 {
	if n == nil {
		return 0
	}
	return n.extent
}
