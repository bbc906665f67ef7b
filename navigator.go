package vignette

// Overlay is a transient feedback element, such as a thought bubble. The
// Navigator hides it at the start of every ShowCloseUp because a close-up
// takes visual precedence.
type Overlay interface {
	Hide()
}

// Navigator owns close-up navigation: the back-stack of visited close-ups,
// the hit-targets for the one on top, and the presenter that fades the
// artwork in and out.
//
// All methods are total: bad input and bad wiring are logged and the call
// becomes a no-op, never a panic. Navigator is single-threaded like the
// rest of the package; call it from the game loop only.
type Navigator struct {
	presenter Presenter
	overlay   Overlay
	viewport  Rect

	stack   []*CloseUp
	targets []*HitTarget
	current *CloseUp
}

// NewNavigator creates a Navigator that displays close-ups through
// presenter, hides overlay whenever one opens, and places hit-targets
// against viewport. overlay may be nil.
func NewNavigator(presenter Presenter, overlay Overlay, viewport Rect) *Navigator {
	return &Navigator{
		presenter: presenter,
		overlay:   overlay,
		viewport:  viewport,
	}
}

// ShowCloseUp displays c and pushes it onto the navigation stack.
// A nil close-up is logged and ignored. Validation runs but never gates
// display: an invalid close-up is still shown as best it can be.
func (n *Navigator) ShowCloseUp(c *CloseUp) {
	n.display(c, true)
}

// display is the one code path that changes the displayed close-up.
// GoBack re-enters it with push=false so re-showing the previous stack top
// does not push a duplicate.
func (n *Navigator) display(c *CloseUp, push bool) {
	if c == nil {
		warnf("ShowCloseUp called with nil close-up")
		return
	}
	c.IsValid() // advisory only

	if push {
		n.stack = append(n.stack, c)
	}
	n.current = c

	if n.overlay != nil {
		n.overlay.Hide()
	}
	if n.presenter == nil {
		errorf("navigator has no presenter; cannot show close-up %q", c.ID)
		return
	}
	n.presenter.Show(c.Image)
	n.rebuildTargets(c)
}

// GoBack pops the top close-up. With history remaining it fully redisplays
// the new top (image and hit-targets are rebuilt, not restored); on the
// last pop it leaves close-up mode and hides the presenter. On an empty
// stack it logs and does nothing.
func (n *Navigator) GoBack() {
	if len(n.stack) == 0 {
		warnf("GoBack with no close-up open")
		return
	}
	n.stack[len(n.stack)-1] = nil
	n.stack = n.stack[:len(n.stack)-1]

	if len(n.stack) > 0 {
		n.display(n.stack[len(n.stack)-1], false)
		return
	}
	n.current = nil
	n.destroyTargets()
	if n.presenter != nil {
		n.presenter.Hide()
	}
}

// Clear unconditionally leaves close-up mode in one step: stack emptied,
// hit-targets destroyed, presenter hidden. An escape hatch for scene
// transitions that bypasses normal pop semantics.
func (n *Navigator) Clear() {
	for i := range n.stack {
		n.stack[i] = nil
	}
	n.stack = n.stack[:0]
	n.current = nil
	n.destroyTargets()
	if n.presenter != nil {
		n.presenter.Hide()
	}
}

// IsInCloseUp reports whether a close-up is currently displayed.
func (n *Navigator) IsInCloseUp() bool {
	return len(n.stack) > 0
}

// CurrentCloseUp returns the displayed close-up, or nil outside close-up
// mode.
func (n *Navigator) CurrentCloseUp() *CloseUp {
	return n.current
}

// Depth returns the navigation stack depth.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// SetViewport changes the container bounds used to place hit-targets.
// Takes effect on the next rebuild; live targets keep their spawn-time
// placement.
func (n *Navigator) SetViewport(r Rect) {
	n.viewport = r
}

// Targets returns the live hit-targets in display order.
// The returned slice MUST NOT be mutated by the caller.
func (n *Navigator) Targets() []*HitTarget {
	return n.targets
}

// HandleClick routes a screen-space click to the topmost hit-target under
// it and reports whether one was activated. Later hotspots draw on top, so
// the list is walked in reverse.
func (n *Navigator) HandleClick(x, y float64) bool {
	for i := len(n.targets) - 1; i >= 0; i-- {
		t := n.targets[i]
		if t.onClick != nil && t.Rect.Contains(x, y) {
			t.onClick()
			return true
		}
	}
	return false
}

// rebuildTargets destroys every live hit-target, then spawns a fresh set
// from c's hotspot list. Invalid hotspots are skipped with a warning. The
// full teardown-then-rebuild keeps the target set a pure function of the
// stack top; two close-ups never have targets alive at once.
func (n *Navigator) rebuildTargets(c *CloseUp) {
	n.destroyTargets()
	for _, h := range c.Hotspots {
		if !h.IsValid() {
			warnf("close-up %q: skipping invalid hotspot %q", c.ID, h.ID)
			continue
		}
		n.targets = append(n.targets, newHitTarget(h, n.viewport, n))
	}
}

// destroyTargets disposes and drops all live hit-targets.
func (n *Navigator) destroyTargets() {
	for i, t := range n.targets {
		t.dispose()
		n.targets[i] = nil
	}
	n.targets = n.targets[:0]
}
