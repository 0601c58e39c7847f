package models

// CartLine is one entry in the cart: a product snapshot plus a quantity.
// The title and price are copied from the catalog at the moment of add so a
// later feed change cannot reprice an existing cart.
type CartLine struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	// Qty is always >= 1. Decrement floors at 1; removal is explicit.
	Qty int `json:"qty"`
}

// CartTotals are derived from the line sequence and never stored.
type CartTotals struct {
	// Count is the sum of line quantities.
	Count int `json:"count"`
	// Amount is the sum of qty * price over all lines.
	Amount float64 `json:"amount"`
}

// Receipt is the simulated-payment acknowledgment produced when a checkout
// flow is confirmed. No real settlement happens anywhere.
type Receipt struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}
