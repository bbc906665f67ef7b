package vignette

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// camAnim holds the active camera tweens. Position and zoom animate
// independently; a nil tween means that channel is idle.
type camAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenZ *gween.Tween
	doneX  bool
	doneY  bool
	doneZ  bool
}

// Camera is the world view for the backdrop scene: a center position and a
// zoom factor, both tweenable. Point-and-click scenes do not rotate, so
// there is no rotation channel.
//
// Starting a new move or zoom replaces any tween in flight; the new one
// begins from the current values.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in).
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	anim *camAnim
}

// NewCamera creates a camera centered on the middle of viewport at zoom 1.
func NewCamera(viewport Rect) *Camera {
	center := viewport.Center()
	return &Camera{
		X:        center.X,
		Y:        center.Y,
		Zoom:     1.0,
		Viewport: viewport,
	}
}

// MoveTo animates the camera center to the given world position over
// duration seconds, keeping the current zoom.
func (c *Camera) MoveTo(x, y float64, duration float32, fn ease.TweenFunc) {
	c.anim = &camAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, fn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, fn),
		doneZ:  true,
	}
}

// ZoomTo animates the camera center to (x, y) and the zoom to the given
// factor over duration seconds. The usual call when clicking toward a
// scene object: lean the view in while the close-up fades up.
func (c *Camera) ZoomTo(x, y, zoom float64, duration float32, fn ease.TweenFunc) {
	c.anim = &camAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, fn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, fn),
		tweenZ: gween.New(float32(c.Zoom), float32(zoom), duration, fn),
	}
}

// Reset animates back to the viewport center at zoom 1.
func (c *Camera) Reset(duration float32, fn ease.TweenFunc) {
	center := c.Viewport.Center()
	c.ZoomTo(center.X, center.Y, 1.0, duration, fn)
}

// Animating reports whether a camera tween is in flight.
func (c *Camera) Animating() bool {
	return c.anim != nil
}

// Update advances the active tweens by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.anim == nil {
		return
	}
	a := c.anim
	if !a.doneX {
		v, done := a.tweenX.Update(dt)
		c.X = float64(v)
		a.doneX = done
	}
	if !a.doneY {
		v, done := a.tweenY.Update(dt)
		c.Y = float64(v)
		a.doneY = done
	}
	if !a.doneZ {
		v, done := a.tweenZ.Update(dt)
		c.Zoom = float64(v)
		a.doneZ = done
	}
	if a.doneX && a.doneY && a.doneZ {
		c.anim = nil
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	center := c.Viewport.Center()
	return center.X + (wx-c.X)*c.Zoom, center.Y + (wy-c.Y)*c.Zoom
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	center := c.Viewport.Center()
	return c.X + (sx-center.X)/c.Zoom, c.Y + (sy-center.Y)/c.Zoom
}
