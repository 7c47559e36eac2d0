package clock

import (
	"image"

	"github.com/go-drift/drift/pkg/graphics"
)

// Canvas is the subset of graphics.Canvas a clock face draws with.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(radians float64)
	ClipRRect(rrect graphics.RRect)
	DrawRect(rect graphics.Rect, paint graphics.Paint)
	DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint)
	DrawLine(start, end graphics.Offset, paint graphics.Paint)
	DrawImage(img image.Image, position graphics.Offset)
	DrawImageRect(img image.Image, srcRect, dstRect graphics.Rect, quality graphics.FilterQuality, cacheKey uintptr)
	DrawRRectShadow(rrect graphics.RRect, shadow graphics.BoxShadow)
	SaveLayerBlur(bounds graphics.Rect, sigmaX, sigmaY float64)
}
