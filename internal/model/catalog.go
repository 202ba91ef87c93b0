package model

// CatalogItem describes one purchasable concession unit: a combo, an
// individual snack or a beverage.  Items are immutable once seeded and
// are referenced from cart lines by ID.
//
// Fields:
//  ID          – identifier, unique across ALL catalog sections
//                (combos, snacks and beverages share one id space).
//  Name        – display name shown to the customer.
//  Description – short display description.
//  PriceCents  – price in the minor currency unit (COP has no
//                fractional cents in this domain); never negative.
//  Image       – relative path of the product image asset.
type CatalogItem struct {
	ID          uint64 `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	PriceCents  uint32 `json:"precio"`
	Image       string `json:"imagen"`
}

// CatalogSection names a group of catalog items as presented to the
// client: "combos", "snacks" or "bebidas".
type CatalogSection string

const (
	SectionCombos CatalogSection = "combos"
	SectionSnacks CatalogSection = "snacks"
	SectionDrinks CatalogSection = "bebidas"
)
