package vignette

// Inventory is the collected-item list: an ordered sequence plus a
// membership set. Items are plain string IDs; artwork and naming live with
// whatever UI displays them.
type Inventory struct {
	items []string
	held  map[string]bool
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{held: make(map[string]bool)}
}

// Collect adds an item and reports whether it was added. Collecting an
// item twice, or an empty ID, is logged and ignored.
func (inv *Inventory) Collect(id string) bool {
	if id == "" {
		warnf("inventory: Collect with empty item ID")
		return false
	}
	if inv.held[id] {
		warnf("inventory: item %q already collected", id)
		return false
	}
	inv.held[id] = true
	inv.items = append(inv.items, id)
	return true
}

// Has reports whether the item has been collected.
func (inv *Inventory) Has(id string) bool {
	return inv.held[id]
}

// Count returns the number of collected items.
func (inv *Inventory) Count() int {
	return len(inv.items)
}

// Items returns the collected item IDs in collection order. The caller may
// keep or mutate the returned slice.
func (inv *Inventory) Items() []string {
	out := make([]string, len(inv.items))
	copy(out, inv.items)
	return out
}

// Remove takes an item out of the inventory (e.g. after it is used on
// something) and reports whether it was held.
func (inv *Inventory) Remove(id string) bool {
	if !inv.held[id] {
		return false
	}
	delete(inv.held, id)
	for i, it := range inv.items {
		if it == id {
			copy(inv.items[i:], inv.items[i+1:])
			inv.items = inv.items[:len(inv.items)-1]
			break
		}
	}
	return true
}
