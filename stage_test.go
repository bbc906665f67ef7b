package vignette

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// drainInjected runs the pointer state machine until the injection queue is
// empty, without touching the real mouse.
func drainInjected(s *Stage) {
	for len(s.injectQueue) > 0 {
		s.processInput()
	}
}

func newTestStage() *Stage {
	return NewStage(Rect{Width: 800, Height: 600})
}

func TestStageClickOpensCloseUp(t *testing.T) {
	s := newTestStage()
	drawer := &CloseUp{ID: "drawer", Image: ebiten.NewImage(4, 4)}
	s.AddInteractable(NewCloseUpObject(s.Navigator(),
		Rect{X: 100, Y: 100, Width: 50, Height: 50}, drawer))

	// Default camera is identity (centered, zoom 1): screen == world.
	s.InjectClick(125, 125)
	drainInjected(s)

	if !s.Navigator().IsInCloseUp() {
		t.Fatal("clicking the object should open its close-up")
	}
	if s.Navigator().CurrentCloseUp() != drawer {
		t.Error("wrong close-up opened")
	}
	if !s.Presenter().IsShowing(drawer.Image) {
		t.Error("presenter should be showing the close-up image")
	}
}

func TestStageClickMissesObject(t *testing.T) {
	s := newTestStage()
	s.AddInteractable(NewCloseUpObject(s.Navigator(),
		Rect{X: 100, Y: 100, Width: 50, Height: 50},
		&CloseUp{ID: "c", Image: ebiten.NewImage(4, 4)}))

	s.InjectClick(300, 300)
	drainInjected(s)

	if s.Navigator().IsInCloseUp() {
		t.Error("a miss should not open anything")
	}
}

func TestStageHotspotClickNavigatesDeeper(t *testing.T) {
	s := newTestStage()
	inner := &CloseUp{ID: "inner", Image: ebiten.NewImage(4, 4)}
	outer := &CloseUp{ID: "outer", Image: ebiten.NewImage(4, 4),
		Hotspots: []*Hotspot{{ID: "go_in", Kind: HotspotNavigate, Target: inner,
			Position: Vec2{X: 0.5, Y: 0.5}, Size: Vec2{X: 0.2, Y: 0.2}}}}

	s.Navigator().ShowCloseUp(outer)
	s.InjectClick(400, 300) // hotspot center in an 800x600 viewport
	drainInjected(s)

	if s.Navigator().Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", s.Navigator().Depth())
	}
	if s.Navigator().CurrentCloseUp() != inner {
		t.Error("hotspot click should navigate to the nested close-up")
	}
}

func TestStageBackButton(t *testing.T) {
	s := newTestStage()
	s.Navigator().ShowCloseUp(&CloseUp{ID: "c", Image: ebiten.NewImage(4, 4)})

	// Back button sits at the top-left margin.
	s.InjectClick(s.backButton.X+2, s.backButton.Y+2)
	drainInjected(s)

	if s.Navigator().IsInCloseUp() {
		t.Error("back button click should pop the only close-up")
	}
}

// While a close-up is open, clicks that hit neither the back button nor a
// hotspot are swallowed — they never reach the world behind the close-up.
func TestStageCloseUpSwallowsClicks(t *testing.T) {
	s := newTestStage()
	s.AddInteractable(NewItemObject(s.Inventory(), nil,
		Rect{X: 280, Y: 280, Width: 40, Height: 40}, "key", ""))
	s.Navigator().ShowCloseUp(&CloseUp{ID: "c", Image: ebiten.NewImage(4, 4)})

	s.InjectClick(300, 300) // over the item, but a close-up is open
	drainInjected(s)

	if s.Inventory().Has("key") {
		t.Error("click inside a close-up must not reach the world")
	}
	if s.Navigator().Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Navigator().Depth())
	}
}

func TestStageItemPickup(t *testing.T) {
	s := newTestStage()
	item := NewItemObject(s.Inventory(), s.Bubble(),
		Rect{X: 200, Y: 200, Width: 40, Height: 40}, "key", "A small brass key.")
	s.AddInteractable(item)

	s.InjectClick(220, 220)
	drainInjected(s)

	if !s.Inventory().Has("key") {
		t.Fatal("clicking the item should collect it")
	}
	if !item.Collected() {
		t.Error("item should report collected")
	}
	if s.Bubble().Text() != "A small brass key." {
		t.Errorf("bubble text = %q, want the pickup line", s.Bubble().Text())
	}

	// A second click passes through the collected item.
	s.InjectClick(220, 220)
	drainInjected(s)
	if s.Inventory().Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Inventory().Count())
	}
}

func TestStageTopmostInteractableWins(t *testing.T) {
	s := newTestStage()
	under := &CloseUp{ID: "under", Image: ebiten.NewImage(4, 4)}
	over := &CloseUp{ID: "over", Image: ebiten.NewImage(4, 4)}
	s.AddInteractable(NewCloseUpObject(s.Navigator(), Rect{X: 0, Y: 0, Width: 800, Height: 600}, under))
	s.AddInteractable(NewCloseUpObject(s.Navigator(), Rect{X: 100, Y: 100, Width: 100, Height: 100}, over))

	s.InjectClick(150, 150)
	drainInjected(s)

	if s.Navigator().CurrentCloseUp() != over {
		t.Error("later-registered interactable should win overlapping clicks")
	}
}

// Press and release more than the dead zone apart is a drag attempt, not a
// click.
func TestStageDragBeyondDeadZoneCancelsClick(t *testing.T) {
	s := newTestStage()
	s.AddInteractable(NewCloseUpObject(s.Navigator(),
		Rect{X: 0, Y: 0, Width: 800, Height: 600},
		&CloseUp{ID: "c", Image: ebiten.NewImage(4, 4)}))

	s.processPointer(100, 100, true)
	s.processPointer(200, 200, true)
	s.processPointer(200, 200, false)

	if s.Navigator().IsInCloseUp() {
		t.Error("press/release far apart must not count as a click")
	}
}

func TestStageRemoveInteractable(t *testing.T) {
	s := newTestStage()
	obj := NewCloseUpObject(s.Navigator(),
		Rect{X: 0, Y: 0, Width: 800, Height: 600},
		&CloseUp{ID: "c", Image: ebiten.NewImage(4, 4)})
	s.AddInteractable(obj)
	s.RemoveInteractable(obj)

	s.InjectClick(400, 300)
	drainInjected(s)

	if s.Navigator().IsInCloseUp() {
		t.Error("removed interactable should not receive clicks")
	}
}

func TestStageClickThroughCamera(t *testing.T) {
	s := newTestStage()
	s.Camera().X, s.Camera().Y = 200, 150 // pan toward the top-left quadrant
	s.AddInteractable(NewCloseUpObject(s.Navigator(),
		Rect{X: 180, Y: 130, Width: 40, Height: 40},
		&CloseUp{ID: "c", Image: ebiten.NewImage(4, 4)}))

	// World (200,150) is at the viewport center (400,300) now.
	s.InjectClick(400, 300)
	drainInjected(s)

	if !s.Navigator().IsInCloseUp() {
		t.Error("click should be resolved through the camera transform")
	}
}

func TestStageDrawSmoke(t *testing.T) {
	s := newTestStage()
	s.Background = ebiten.NewImage(800, 600)
	s.Debug = true
	s.Navigator().ShowCloseUp(&CloseUp{ID: "c", Image: ebiten.NewImage(400, 300),
		Hotspots: []*Hotspot{{ID: "h", Kind: HotspotNavigate,
			Target:   &CloseUp{ID: "t", Image: ebiten.NewImage(4, 4)},
			Position: Vec2{X: 0.5, Y: 0.5}, Size: Vec2{X: 0.2, Y: 0.2}}}})
	s.Bubble().Show("hello")

	screen := ebiten.NewImage(800, 600)
	s.Draw(screen) // presenter, debug rects, back button, bubble
}

func TestStageInjectQueueOrder(t *testing.T) {
	s := newTestStage()
	s.InjectClick(10, 10)
	if len(s.injectQueue) != 2 {
		t.Fatalf("queued events = %d, want 2", len(s.injectQueue))
	}
	s.processInput()
	if len(s.injectQueue) != 1 {
		t.Fatalf("after one update: queued events = %d, want 1", len(s.injectQueue))
	}
	s.processInput()
	if len(s.injectQueue) != 0 {
		t.Errorf("after two updates: queued events = %d, want 0", len(s.injectQueue))
	}
}
