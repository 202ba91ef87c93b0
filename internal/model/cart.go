package model

// CartLine is one aggregated entry in a cart.  The catalog item is
// embedded as an immutable snapshot taken at add time, so later catalog
// edits never change what the customer already priced.
//
// Fields:
//  Item     – snapshot of the catalog item when it was first added.
//  Quantity – number of units; always >= 1.  A line whose quantity
//             would reach zero is removed from the cart instead.
type CartLine struct {
	Item     CatalogItem `json:"item"`
	Quantity uint32      `json:"cantidad"`
}

// Subtotal returns the line price contribution (unit price x quantity).
func (l CartLine) Subtotal() uint64 {
	return uint64(l.Item.PriceCents) * uint64(l.Quantity)
}
