package vignette

// Interactable is a clickable object in the backdrop scene. The Stage
// resolves a world-space click to the topmost Interactable containing it
// and invokes OnInteract.
type Interactable interface {
	// Contains reports whether the world point (x, y) hits this object.
	Contains(x, y float64) bool
	// OnInteract runs the object's click behavior.
	OnInteract()
}

// CloseUpObject is a scene object that opens a close-up when clicked: the
// standard "inspect this thing" hook. It hands its Target straight to the
// Navigator, which copes with a nil target by logging.
type CloseUpObject struct {
	// Bounds is the clickable region in world coordinates.
	Bounds Rect
	// Target is the close-up to open.
	Target *CloseUp

	nav *Navigator
}

// NewCloseUpObject creates a clickable region that opens target through nav.
func NewCloseUpObject(nav *Navigator, bounds Rect, target *CloseUp) *CloseUpObject {
	return &CloseUpObject{Bounds: bounds, Target: target, nav: nav}
}

// Contains reports whether the world point hits the object.
func (o *CloseUpObject) Contains(x, y float64) bool {
	return o.Bounds.Contains(x, y)
}

// OnInteract opens the target close-up.
func (o *CloseUpObject) OnInteract() {
	o.nav.ShowCloseUp(o.Target)
}

// ItemObject is a scene object collected into the inventory when clicked.
// Once collected it stops hit-testing, so the pixels underneath become
// clickable again without removing the object from the stage.
type ItemObject struct {
	// Bounds is the clickable region in world coordinates.
	Bounds Rect
	// ItemID is the inventory ID recorded on pickup.
	ItemID string
	// Line, if set, is spoken through the thought bubble on pickup.
	Line string

	inv       *Inventory
	bubble    *Bubble
	collected bool
}

// NewItemObject creates a collectable region. bubble may be nil.
func NewItemObject(inv *Inventory, bubble *Bubble, bounds Rect, itemID, line string) *ItemObject {
	return &ItemObject{Bounds: bounds, ItemID: itemID, Line: line, inv: inv, bubble: bubble}
}

// Contains reports whether the world point hits the (uncollected) item.
func (o *ItemObject) Contains(x, y float64) bool {
	return !o.collected && o.Bounds.Contains(x, y)
}

// OnInteract collects the item and shows the pickup line.
func (o *ItemObject) OnInteract() {
	if !o.inv.Collect(o.ItemID) {
		return
	}
	o.collected = true
	if o.bubble != nil && o.Line != "" {
		o.bubble.Show(o.Line)
	}
}

// Collected reports whether the item has been picked up.
func (o *ItemObject) Collected() bool {
	return o.collected
}
