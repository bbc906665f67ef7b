// Package vignette is the interaction layer of a 2D point-and-click
// adventure game, built for [Ebitengine]: click routing, close-up
// ("inspect") navigation with a back-stack, data-driven hotspots, inventory
// collection, and the transient feedback around it all (thought bubble,
// camera zoom, fades).
//
// # Quick start
//
// Build a [Stage], register the scene's clickable objects, and drive it
// from your ebiten.Game:
//
//	stage := vignette.NewStage(vignette.Rect{Width: 800, Height: 600})
//	stage.Background = backdrop
//	stage.AddInteractable(vignette.NewCloseUpObject(
//		stage.Navigator(), drawerBounds, drawerCloseUp))
//
//	func (g *Game) Update() error        { g.stage.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.stage.Draw(s) }
//
// # Close-ups and hotspots
//
// A [CloseUp] is authored data: an image plus clickable [Hotspot] regions
// in normalized [0, 1] coordinates. Hotspots reference further close-ups,
// forming a graph (cycles allowed). The [Navigator] keeps a LIFO stack of
// visited close-ups: clicking a hotspot pushes deeper, [Navigator.GoBack]
// pops and fully redisplays the previous view. Hit-targets are destroyed
// and respawned on every navigation step, so the clickable set is always a
// pure function of the stack top.
//
// A [Library] can own descriptor lifetime and look close-ups up by ID.
//
// # Presentation
//
// The Navigator displays artwork through the [Presenter] interface;
// [FadePresenter] is the stock implementation, alpha-fading images in and
// out with [gween] tweens. Starting a new fade cancels the in-flight one
// and continues from the current alpha. [Bubble] and [Camera] use the same
// tween discipline for thought-bubble text and zoom/scroll.
//
// The package is single-threaded and frame-driven: call Update/Draw from
// the game loop only.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package vignette
