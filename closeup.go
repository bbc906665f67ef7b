package vignette

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// HotspotKind selects what activating a hotspot does.
type HotspotKind uint8

const (
	// HotspotNavigate opens the hotspot's Target close-up, pushed onto the
	// navigation stack. The only kind today; dispatch warns and ignores
	// kinds it does not recognize so new ones can be added safely.
	HotspotNavigate HotspotKind = iota
)

// Hotspot is an authored clickable region inside a close-up. Position and
// Size are normalized to [0, 1] against the owning close-up's container:
// Position is the region's center, Size its width and height.
//
// Target references another CloseUp and may point back at an ancestor —
// descriptors form a graph, cycles included. Nothing walks the graph
// eagerly, so cycles only matter one click at a time.
type Hotspot struct {
	ID       string
	Position Vec2
	Size     Vec2
	Kind     HotspotKind
	Target   *CloseUp
}

// IsValid reports whether the hotspot is usable. A navigate hotspot needs a
// Target; every other configuration passes.
func (h *Hotspot) IsValid() bool {
	return h.Kind != HotspotNavigate || h.Target != nil
}

// CloseUp describes a full-screen detail view: its artwork and the clickable
// hotspots layered over it. Close-ups are authored before play and must not
// be mutated while displayed; the Navigator references them without taking
// ownership.
//
// Hotspots keep insertion order, which is also display order: later entries
// sit on top and win overlapping clicks.
type CloseUp struct {
	ID       string
	Name     string
	Image    *ebiten.Image
	Hotspots []*Hotspot
}

// IsValid reports whether the close-up can be displayed. Only a missing
// Image fails; an empty ID or invalid hotspots are logged as warnings but
// still report true. Callers treat false as unusable, so the advisory
// problems deliberately stay out of the result.
func (c *CloseUp) IsValid() bool {
	if c.ID == "" {
		warnf("close-up %q has an empty ID", c.Name)
	}
	for _, h := range c.Hotspots {
		if !h.IsValid() {
			warnf("close-up %q: hotspot %q navigates nowhere (no target)", c.ID, h.ID)
		}
	}
	if c.Image == nil {
		errorf("close-up %q has no image", c.ID)
		return false
	}
	return true
}

// Library is an ordered registry of close-ups keyed by ID. It exists so a
// scene can own descriptor lifetime in one place; Target fields between
// close-ups remain plain pointers, which makes cycles ordinary graph edges.
type Library struct {
	order []*CloseUp
	byID  map[string]*CloseUp
}

// NewLibrary creates an empty close-up registry.
func NewLibrary() *Library {
	return &Library{byID: make(map[string]*CloseUp)}
}

// Add registers a close-up. A missing ID is derived from the display name.
// A nil close-up or a duplicate ID is logged and ignored.
func (l *Library) Add(c *CloseUp) {
	if c == nil {
		warnf("library: Add called with nil close-up")
		return
	}
	if c.ID == "" {
		c.ID = deriveID(c.Name)
	}
	if _, ok := l.byID[c.ID]; ok {
		warnf("library: duplicate close-up ID %q ignored", c.ID)
		return
	}
	l.byID[c.ID] = c
	l.order = append(l.order, c)
}

// Get returns the close-up with the given ID, or nil.
func (l *Library) Get(id string) *CloseUp {
	return l.byID[id]
}

// Len returns the number of registered close-ups.
func (l *Library) Len() int {
	return len(l.order)
}

// CloseUps returns the registered close-ups in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (l *Library) CloseUps() []*CloseUp {
	return l.order
}

// deriveID builds a stable ID from a display name: lowercased, trimmed,
// spaces collapsed to underscores.
func deriveID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
