package vignette

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Presenter shows and hides one full-screen image with a timed fade. The
// Navigator consumes it through this interface so tests can inject a fake.
//
// Show and Hide replace any fade already in flight; the image handle itself
// is the identity IsShowing checks against.
type Presenter interface {
	Show(img *ebiten.Image)
	Hide()
	IsVisible() bool
	IsShowing(img *ebiten.Image) bool
}

// Default fade durations in seconds.
const (
	defaultFadeIn  float32 = 0.35
	defaultFadeOut float32 = 0.35
)

// FadePresenter is the package's Presenter: it letterboxes the image into
// its viewport and alpha-fades it in and out. Drive it from the game loop
// with Update and Draw.
//
// Starting a new fade cancels the in-flight one; the replacement picks up
// from the current alpha, so a Show issued mid-Hide fades back up from
// wherever the fade-out had reached.
type FadePresenter struct {
	// FadeIn and FadeOut are the fade durations in seconds. Zero or
	// negative snaps instantly.
	FadeIn  float32
	FadeOut float32
	// Ease shapes both fades. Defaults to linear.
	Ease ease.TweenFunc

	viewport Rect
	image    *ebiten.Image
	fade     fadeAnim
	visible  bool
	hiding   bool
}

// NewFadePresenter creates a presenter that fills viewport, with default
// fade durations.
func NewFadePresenter(viewport Rect) *FadePresenter {
	return &FadePresenter{
		FadeIn:   defaultFadeIn,
		FadeOut:  defaultFadeOut,
		viewport: viewport,
	}
}

// Show begins fading img in, replacing whatever is showing. A nil image is
// logged but still takes the slot: the presenter counts as visible and
// draws nothing, which is how an invalid close-up degrades.
func (p *FadePresenter) Show(img *ebiten.Image) {
	if img == nil {
		warnf("presenter: Show with nil image")
	}
	p.image = img
	p.visible = true
	p.hiding = false
	p.fade.start(1, p.FadeIn, p.easeFn())
}

// Hide begins fading the current image out and deactivates when the fade
// completes. No-op when nothing is visible.
func (p *FadePresenter) Hide() {
	if !p.visible {
		return
	}
	p.hiding = true
	p.fade.start(0, p.FadeOut, p.easeFn())
	if !p.fade.active() {
		p.deactivate()
	}
}

// IsVisible reports whether an image is up, including one still fading out.
func (p *FadePresenter) IsVisible() bool {
	return p.visible
}

// IsShowing reports whether img is the image currently up. Identity is the
// handle itself.
func (p *FadePresenter) IsShowing(img *ebiten.Image) bool {
	return p.visible && p.image == img
}

// Alpha returns the current fade alpha in [0, 1].
func (p *FadePresenter) Alpha() float64 {
	return p.fade.value
}

// SetViewport changes the screen rectangle the image is fitted into.
func (p *FadePresenter) SetViewport(r Rect) {
	p.viewport = r
}

// Update advances the active fade by dt seconds.
func (p *FadePresenter) Update(dt float32) {
	if p.fade.update(dt) && p.hiding {
		p.deactivate()
	}
}

// Draw renders the current image centered and scaled to fit the viewport,
// tinted by the fade alpha.
func (p *FadePresenter) Draw(screen *ebiten.Image) {
	if !p.visible || p.image == nil || p.fade.value <= 0 {
		return
	}
	b := p.image.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	scale := math.Min(p.viewport.Width/iw, p.viewport.Height/ih)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		p.viewport.X+(p.viewport.Width-iw*scale)/2,
		p.viewport.Y+(p.viewport.Height-ih*scale)/2,
	)
	op.ColorScale.ScaleAlpha(float32(p.fade.value))
	screen.DrawImage(p.image, op)
}

func (p *FadePresenter) deactivate() {
	p.visible = false
	p.hiding = false
	p.image = nil
}

func (p *FadePresenter) easeFn() ease.TweenFunc {
	if p.Ease != nil {
		return p.Ease
	}
	return ease.Linear
}
