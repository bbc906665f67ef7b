package vignette

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector. Hotspot positions and sizes use it for normalized
// [0, 1] coordinates; everything else uses it for pixels.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// whitePixel is a 1x1 white image used for solid color fills (back button,
// bubble background).
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// warnf reports a recoverable configuration or call error on stderr.
// The triggering operation degrades or no-ops; nothing in this package
// propagates a fault to the caller.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[vignette] warning: "+format+"\n", args...)
}

// errorf reports a missing-collaborator or missing-asset error on stderr.
func errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[vignette] error: "+format+"\n", args...)
}
