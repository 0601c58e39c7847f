package models

// Platform is a supported social-media platform in the catalog.
type Platform struct {
	// Key is the stable identifier used in URLs and package records (e.g. "instagram").
	Key string `json:"key"`
	// Name is the display name (e.g. "Twitter (X)").
	Name string `json:"name"`
	// Color is the brand color used for presentation.
	Color string `json:"color"`
}

// CatalogItem is a one-off purchasable package. Items are supplied by the
// static feed at load time and never mutated.
type CatalogItem struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Title    string `json:"title"`
	// QtyLabel is the human label for the package size ("1K", "10K").
	QtyLabel string  `json:"qtyLabel"`
	Price    float64 `json:"price"`
	// OldPrice is the prior price used for discount display. Zero when absent.
	OldPrice float64 `json:"oldPrice,omitempty"`
	// Discount is the advertised discount percentage.
	Discount int `json:"discount,omitempty"`
	// Delivery is the delivery-time label ("1-3 days", "Instant").
	Delivery string   `json:"delivery"`
	Features []string `json:"features"`
	// Type groups packages by service kind (followers, likes, views, subscribers).
	Type string `json:"type"`
	// Sale marks promotional offers.
	Sale bool `json:"sale,omitempty"`
}

// SubscriptionPlan is a recurring plan. Same lifecycle as CatalogItem.
type SubscriptionPlan struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Period  string  `json:"period"`
	Summary string  `json:"summary"`
	// Highlight marks the plan presented as the featured choice.
	Highlight bool     `json:"highlight,omitempty"`
	Features  []string `json:"features"`
	// CTA is the call-to-action label on the plan card.
	CTA string `json:"cta"`
}

// Testimonial is a marketing success story shown on the home page.
type Testimonial struct {
	Handle    string `json:"handle"`
	Name      string `json:"name"`
	Niche     string `json:"niche"`
	Rating    int    `json:"rating"`
	MonthsAgo int    `json:"monthsAgo"`
	Before    int    `json:"before"`
	After     int    `json:"after"`
	Growth    string `json:"growth"`
	Package   string `json:"package"`
	Quote     string `json:"quote"`
}

// BlogPost is a marketing article stub.
type BlogPost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Metrics are the headline numbers shown in the hero section.
type Metrics struct {
	Orders      int     `json:"orders"`
	SuccessRate float64 `json:"successRate"`
	Platforms   int     `json:"platforms"`
}

// Hero is the landing-page headline copy.
type Hero struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Bullets  []string `json:"bullets"`
}

// ContactInfo is the static support contact block.
type ContactInfo struct {
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
