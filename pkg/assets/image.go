package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Image loads and decodes the image asset called name.
func (b *Bundle) Image(name string) (image.Image, error) {
	p, err := b.resolve(KindImage, name, imageDirs, imageExts)
	if err != nil {
		return nil, err
	}
	file, err := b.fsys.Open(p)
	if err != nil {
		return nil, &ConfigurationError{Asset: name, Kind: KindImage, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &ConfigurationError{Asset: name, Kind: KindImage, Err: fmt.Errorf("decode %s: %w", p, err)}
	}
	return img, nil
}

// CoverRect returns the centered region of a srcW×srcH image that,
// scaled uniformly, exactly covers a dstW×dstH box (aspect fill).
func CoverRect(src image.Rectangle, dstW, dstH int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 || dstW <= 0 || dstH <= 0 {
		return image.Rectangle{}
	}
	// Compare aspect ratios with integers: sw/sh vs dstW/dstH.
	w, h := sw, sh
	if sw*dstH > dstW*sh {
		w = max(sh*dstW/dstH, 1)
	} else {
		h = max(sw*dstH/dstW, 1)
	}
	x := src.Min.X + (sw-w)/2
	y := src.Min.Y + (sh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// AspectFill scales src to cover a w×h image, cropping the overflow evenly
// on both sides. It returns nil when either side is empty.
func AspectFill(src image.Image, w, h int) *image.RGBA {
	if src == nil || w <= 0 || h <= 0 {
		return nil
	}
	sr := CoverRect(src.Bounds(), w, h)
	if sr.Empty() {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sr, draw.Src, nil)
	return dst
}
