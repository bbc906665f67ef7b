package vignette

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// clickDeadZone is the maximum press-to-release travel in pixels for a
	// press/release pair to still count as a click.
	clickDeadZone = 4.0

	backButtonSize   = 36.0
	backButtonMargin = 12.0
)

// Stage wires one playable scene together: the backdrop image and its
// clickable objects, the camera, and the close-up machinery (Navigator,
// FadePresenter, Bubble, Inventory). It owns the per-frame click state
// machine and the draw order.
//
// Stage implements the Update/Draw half of ebiten.Game; embed or call it
// from your game type.
type Stage struct {
	// Background is the backdrop artwork, drawn through the camera.
	Background *ebiten.Image
	// Debug tints live hit-target rectangles so authored hotspots can be
	// checked by eye.
	Debug bool

	viewport  Rect
	nav       *Navigator
	presenter *FadePresenter
	bubble    *Bubble
	inventory *Inventory
	camera    *Camera

	interactables []Interactable
	backButton    Rect
	backImg       *ebiten.Image

	// Pointer state: a click is a press and release over (nearly) the same
	// point. Travel beyond the dead zone cancels it.
	pointerDown    bool
	pressX, pressY float64
	clickArmed     bool

	injectQueue []syntheticPointerEvent
	walkthrough *Walkthrough
}

// NewStage creates a stage filling viewport, with all collaborators
// constructed and wired: the navigator presents through a FadePresenter and
// hides the stage bubble whenever a close-up opens.
func NewStage(viewport Rect) *Stage {
	presenter := NewFadePresenter(viewport)
	bubble := NewBubble(viewport.X+backButtonMargin, viewport.Y+viewport.Height-40)
	s := &Stage{
		viewport:  viewport,
		presenter: presenter,
		bubble:    bubble,
		inventory: NewInventory(),
		camera:    NewCamera(viewport),
		nav:       NewNavigator(presenter, bubble, viewport),
		backButton: Rect{
			X:      viewport.X + backButtonMargin,
			Y:      viewport.Y + backButtonMargin,
			Width:  backButtonSize,
			Height: backButtonSize,
		},
	}
	return s
}

// Navigator returns the stage's close-up navigator.
func (s *Stage) Navigator() *Navigator { return s.nav }

// Presenter returns the stage's fade presenter.
func (s *Stage) Presenter() *FadePresenter { return s.presenter }

// Bubble returns the stage's thought bubble.
func (s *Stage) Bubble() *Bubble { return s.bubble }

// Inventory returns the stage's inventory.
func (s *Stage) Inventory() *Inventory { return s.inventory }

// Camera returns the stage's camera.
func (s *Stage) Camera() *Camera { return s.camera }

// AddInteractable registers a clickable scene object. Later additions sit
// on top for hit testing.
func (s *Stage) AddInteractable(it Interactable) {
	if it == nil {
		warnf("stage: AddInteractable with nil interactable")
		return
	}
	s.interactables = append(s.interactables, it)
}

// RemoveInteractable unregisters a scene object. No-op if absent.
func (s *Stage) RemoveInteractable(it Interactable) {
	for i, cur := range s.interactables {
		if cur == it {
			copy(s.interactables[i:], s.interactables[i+1:])
			s.interactables[len(s.interactables)-1] = nil
			s.interactables = s.interactables[:len(s.interactables)-1]
			return
		}
	}
}

// Update advances fades, the bubble timer, and camera tweens, then
// processes one pointer sample (injected events take precedence over the
// real mouse). Call once per tick.
func (s *Stage) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.presenter.Update(dt)
	s.bubble.Update(dt)
	s.camera.Update(dt)
	if s.walkthrough != nil {
		s.walkthrough.step(s)
	}
	s.processInput()
}

// processInput feeds one pointer sample through the click state machine.
func (s *Stage) processInput() {
	if s.processInjected() {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(float64(mx), float64(my), pressed)
}

// processPointer runs the press/release click state machine for one sample.
func (s *Stage) processPointer(x, y float64, pressed bool) {
	switch {
	case pressed && !s.pointerDown:
		s.pointerDown = true
		s.clickArmed = true
		s.pressX, s.pressY = x, y
	case pressed && s.pointerDown:
		if s.clickArmed && math.Hypot(x-s.pressX, y-s.pressY) > clickDeadZone {
			s.clickArmed = false
		}
	case !pressed && s.pointerDown:
		s.pointerDown = false
		if s.clickArmed && math.Hypot(x-s.pressX, y-s.pressY) <= clickDeadZone {
			s.click(x, y)
		}
		s.clickArmed = false
	}
}

// click routes a completed click. Inside a close-up the back button and the
// live hit-targets consume everything — clicks never fall through to the
// world behind the close-up. Outside, the click is resolved against scene
// objects in reverse registration order (topmost first).
func (s *Stage) click(x, y float64) {
	if s.nav.IsInCloseUp() {
		if s.backButton.Contains(x, y) {
			s.nav.GoBack()
			return
		}
		s.nav.HandleClick(x, y)
		return
	}
	wx, wy := s.camera.ScreenToWorld(x, y)
	for i := len(s.interactables) - 1; i >= 0; i-- {
		if s.interactables[i].Contains(wx, wy) {
			s.interactables[i].OnInteract()
			return
		}
	}
}

// Draw renders the stage: backdrop through the camera, then the close-up
// presenter, the back button while navigation is open, and the bubble on
// top.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.Background != nil {
		op := &ebiten.DrawImageOptions{}
		center := s.viewport.Center()
		op.GeoM.Translate(-s.camera.X, -s.camera.Y)
		op.GeoM.Scale(s.camera.Zoom, s.camera.Zoom)
		op.GeoM.Translate(center.X, center.Y)
		screen.DrawImage(s.Background, op)
	}

	s.presenter.Draw(screen)

	if s.nav.IsInCloseUp() {
		if s.Debug {
			for _, t := range s.nav.Targets() {
				drawRect(screen, t.Rect, color.RGBA{255, 255, 0, 64})
			}
		}
		s.drawBackButton(screen)
	}

	s.bubble.Draw(screen)
}

// drawBackButton renders the back control: visible iff a close-up is open.
func (s *Stage) drawBackButton(screen *ebiten.Image) {
	if s.backImg == nil {
		s.backImg = ebiten.NewImage(int(backButtonSize), int(backButtonSize))
		s.backImg.Fill(color.RGBA{0, 0, 0, 160})
		ebitenutil.DebugPrintAt(s.backImg, "<", int(backButtonSize)/2-4, int(backButtonSize)/2-8)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.backButton.X, s.backButton.Y)
	screen.DrawImage(s.backImg, op)
}

// drawRect fills a screen-space rectangle with a solid color.
func drawRect(screen *ebiten.Image, r Rect, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(whitePixel, op)
}
