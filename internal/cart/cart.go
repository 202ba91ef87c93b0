// Package cart implements the concession cart aggregation engine.  A
// cart aggregates catalog items into quantity lines and maintains a
// cached running total.  Carts are session scoped, live only in memory
// and perform no I/O; surfacing toasts or any other feedback after a
// mutation is entirely the caller's concern.
package cart

import "github.com/cinemagico/customer-api/internal/model"

// Cart holds the selected items of one session.  Lines keep insertion
// order for display.  The total is a cached projection of the line set
// and is recomputed on every mutation so it can never drift.
type Cart struct {
	lines []model.CartLine
	total uint64
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the given catalog item.  If a line for the
// item id already exists its quantity is incremented, otherwise a new
// line with quantity 1 is appended.  The item data is snapshotted into
// the line on first add.  AddItem cannot fail: there are no stock or
// capacity limits in this domain.
func (c *Cart) AddItem(item model.CatalogItem) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			c.recompute()
			return
		}
	}
	c.lines = append(c.lines, model.CartLine{Item: item, Quantity: 1})
	c.recompute()
}

// RemoveItem removes one unit of the item with the given id.  When the
// line quantity drops to zero the line is deleted; a quantity-zero line
// is never retained.  Removing an id that is not in the cart is a
// no-op, not an error.
func (c *Cart) RemoveItem(itemID uint64) {
	for i := range c.lines {
		if c.lines[i].Item.ID != itemID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		c.recompute()
		return
	}
}

// Clear empties the cart and resets the total to zero.
func (c *Cart) Clear() {
	c.lines = nil
	c.total = 0
}

// Total returns the cached cart total in minor currency units.  It is
// always equal to the sum of Subtotal() over the current lines.
func (c *Cart) Total() uint64 {
	return c.total
}

// Lines returns a copy of the current lines in insertion order.  The
// copy keeps callers from mutating cart state behind the engine's back.
func (c *Cart) Lines() []model.CartLine {
	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) recompute() {
	var sum uint64
	for _, l := range c.lines {
		sum += l.Subtotal()
	}
	c.total = sum
}
