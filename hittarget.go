package vignette

// HitTarget is the runtime instantiation of a hotspot: an actual clickable
// screen rectangle, alive only while its close-up is the one displayed.
// The Navigator spawns one per valid hotspot on every stack-top change and
// destroys the whole set before building the next — targets never survive a
// navigation step.
type HitTarget struct {
	// Hotspot is the descriptor this target was spawned from.
	Hotspot *Hotspot
	// Rect is the pixel rectangle, computed once at spawn time from the
	// hotspot's normalized coordinates and the container bounds current at
	// that moment. There is no live re-layout; a resize takes effect on the
	// next rebuild.
	Rect Rect

	onClick func()
}

// newHitTarget spawns a target for h placed against container, wired to
// navigate through nav when activated.
func newHitTarget(h *Hotspot, container Rect, nav *Navigator) *HitTarget {
	t := &HitTarget{
		Hotspot: h,
		Rect:    placementRect(h, container),
	}
	t.onClick = func() { t.activate(nav) }
	return t
}

// placementRect converts normalized center/size coordinates into a pixel
// rectangle inside container.
func placementRect(h *Hotspot, container Rect) Rect {
	cx := container.X + h.Position.X*container.Width
	cy := container.Y + h.Position.Y*container.Height
	w := h.Size.X * container.Width
	ht := h.Size.Y * container.Height
	return Rect{X: cx - w/2, Y: cy - ht/2, Width: w, Height: ht}
}

// activate dispatches a click on this target by hotspot kind. Unknown kinds
// warn and do nothing so that data authored for a newer kind degrades
// instead of misfiring.
func (t *HitTarget) activate(nav *Navigator) {
	switch t.Hotspot.Kind {
	case HotspotNavigate:
		if t.Hotspot.Target == nil {
			warnf("hotspot %q has no target close-up", t.Hotspot.ID)
			return
		}
		nav.ShowCloseUp(t.Hotspot.Target)
	default:
		warnf("hotspot %q has unhandled kind %d", t.Hotspot.ID, t.Hotspot.Kind)
	}
}

// dispose detaches the click handler. A disposed target still held by a
// stale reference can no longer re-enter the Navigator.
func (t *HitTarget) dispose() {
	t.onClick = nil
}
