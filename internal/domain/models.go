package domain

// Category buckets for catalog items. The shop view exposes an extra
// pseudo-category "All" that matches everything; it is never stored.
const (
	CategoryFreshwater  = "Freshwater"
	CategorySaltwater   = "Saltwater"
	CategoryExotic      = "Exotic"
	CategoryAccessories = "Accessories"
)

// Categories lists the storable categories in display order.
var Categories = []string{CategoryFreshwater, CategorySaltwater, CategoryExotic, CategoryAccessories}

// CategoryAll bypasses the category predicate in the shop view.
const CategoryAll = "All"

// Sort modes for the shop view. Default keeps catalog order; the price modes
// must sort stably so ties keep their relative order.
const (
	SortDefault   = "default"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// Fish is a sellable catalog item (live fish or accessory).
type Fish struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	ScientificName string  `yaml:"scientificName"`
	Price          float64 `yaml:"price"`
	// OriginalPrice is the reference/"list" price. A discount is shown only
	// when it is strictly greater than Price; lower values are legal but
	// display nothing.
	OriginalPrice float64 `yaml:"originalPrice"`
	Stock         int     `yaml:"stock"`
	Description   string  `yaml:"description"`
	ImageURL      string  `yaml:"imageUrl"`
	Category      string  `yaml:"category"`
	Habitat       string  `yaml:"habitat"`
}

// HasDiscount reports whether the reference price is meaningful for display.
func (f Fish) HasDiscount() bool {
	return f.OriginalPrice > f.Price
}

// DiscountPercent is the rounded percent-off badge value, 0 without discount.
func (f Fish) DiscountPercent() int {
	if !f.HasDiscount() {
		return 0
	}
	return int((f.OriginalPrice-f.Price)/f.OriginalPrice*100 + 0.5)
}

// Availability mirrors the stock badge shown on shop cards.
type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty"`
}

// CartLine pairs a value snapshot of a catalog item with a chosen quantity.
// Later catalog edits never change a line that is already in the cart.
type CartLine struct {
	Fish
	Quantity int
}

// Subtotal is price times quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Order status values. Only pending -> confirmed is wired in the admin view;
// the ledger itself accepts any value.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
)

// Order is an immutable snapshot of a checked-out cart. Total is fixed at
// submission time and never recomputed, even if catalog prices change later.
type Order struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	Items         []CartLine
	Total         float64
	Date          string // RFC3339 submission timestamp
	Status        string
}
