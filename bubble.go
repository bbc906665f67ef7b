package vignette

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween/ease"
)

// Bubble is the thought-bubble overlay: a short line of text that fades in,
// lingers, and fades back out on its own. The Navigator hides it whenever a
// close-up opens (it implements Overlay), since the close-up takes visual
// precedence.
type Bubble struct {
	// Duration is how long the text stays up before auto-hiding, in
	// seconds, measured from the end of the fade-in.
	Duration float32
	// FadeIn and FadeOut are the fade durations in seconds.
	FadeIn  float32
	FadeOut float32

	text      string
	pos       Vec2
	img       *ebiten.Image
	visible   bool
	hiding    bool
	remaining float32
	fade      fadeAnim
}

// NewBubble creates a bubble with default timings, anchored at the given
// screen position.
func NewBubble(x, y float64) *Bubble {
	return &Bubble{
		Duration: 2.5,
		FadeIn:   0.15,
		FadeOut:  0.25,
		pos:      Vec2{X: x, Y: y},
	}
}

// Show displays text, fading in and restarting the linger timer. A bubble
// already up swaps its text immediately and keeps fading from the current
// alpha.
func (b *Bubble) Show(text string) {
	b.text = text
	b.img = nil // re-rendered on next Draw
	b.visible = true
	b.hiding = false
	b.remaining = b.Duration
	b.fade.start(1, b.FadeIn, ease.Linear)
}

// Hide fades the bubble out immediately, cancelling the linger timer.
func (b *Bubble) Hide() {
	if !b.visible {
		return
	}
	b.hiding = true
	b.fade.start(0, b.FadeOut, ease.Linear)
	if !b.fade.active() {
		b.deactivate()
	}
}

// Visible reports whether the bubble is up, including mid fade-out.
func (b *Bubble) Visible() bool {
	return b.visible
}

// Text returns the displayed text, or "" when hidden.
func (b *Bubble) Text() string {
	if !b.visible {
		return ""
	}
	return b.text
}

// SetPosition moves the bubble's top-left anchor.
func (b *Bubble) SetPosition(x, y float64) {
	b.pos = Vec2{X: x, Y: y}
}

// Update advances fades and the linger timer by dt seconds.
func (b *Bubble) Update(dt float32) {
	if !b.visible {
		return
	}
	finished := b.fade.update(dt)
	if b.hiding {
		if finished {
			b.deactivate()
		}
		return
	}
	if b.fade.active() {
		return // still fading in; the linger timer starts after
	}
	b.remaining -= dt
	if b.remaining <= 0 {
		b.Hide()
	}
}

// Draw renders the bubble: debug text over a dimmed box, tinted by the fade
// alpha.
func (b *Bubble) Draw(screen *ebiten.Image) {
	if !b.visible || b.text == "" || b.fade.value <= 0 {
		return
	}
	if b.img == nil {
		b.img = renderBubbleImage(b.text)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(b.pos.X, b.pos.Y)
	op.ColorScale.ScaleAlpha(float32(b.fade.value))
	screen.DrawImage(b.img, op)
}

func (b *Bubble) deactivate() {
	b.visible = false
	b.hiding = false
	b.text = ""
	b.img = nil
}

// renderBubbleImage rasterizes text onto a fresh dimmed box using the debug
// font (8x16 glyphs, plus padding).
func renderBubbleImage(text string) *ebiten.Image {
	w := 8*len(text) + 16
	img := ebiten.NewImage(w, 24)
	img.Fill(color.RGBA{0, 0, 0, 160})
	ebitenutil.DebugPrintAt(img, text, 8, 4)
	return img
}
