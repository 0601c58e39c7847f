package catalog

import "github.com/popularsmm/storefront/internal/models"

// Catalog is the read-only feed of purchasable packages, subscription
// plans and marketing content. It is built once at startup and never
// mutated, so lookups need no locking.
type Catalog struct {
	packages []models.CatalogItem
	plans    []models.SubscriptionPlan

	byID          map[string]models.CatalogItem
	planByID      map[string]models.SubscriptionPlan
	byPlatform    map[string][]models.CatalogItem
	platformByKey map[string]models.Platform
}

// New builds the catalog from the static feed.
func New() *Catalog {
	c := &Catalog{
		packages:      packages,
		plans:         plans,
		byID:          make(map[string]models.CatalogItem, len(packages)),
		planByID:      make(map[string]models.SubscriptionPlan, len(plans)),
		byPlatform:    make(map[string][]models.CatalogItem),
		platformByKey: make(map[string]models.Platform, len(platforms)),
	}
	for _, p := range packages {
		c.byID[p.ID] = p
		c.byPlatform[p.Platform] = append(c.byPlatform[p.Platform], p)
	}
	for _, p := range plans {
		c.planByID[p.ID] = p
	}
	for _, p := range platforms {
		c.platformByKey[p.Key] = p
	}
	return c
}

// Packages returns all one-off packages in feed order.
func (c *Catalog) Packages() []models.CatalogItem {
	out := make([]models.CatalogItem, len(c.packages))
	copy(out, c.packages)
	return out
}

// Package looks up a one-off package by identifier.
func (c *Catalog) Package(id string) (models.CatalogItem, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// PackagesByPlatform returns the packages for one platform in feed order.
func (c *Catalog) PackagesByPlatform(key string) []models.CatalogItem {
	src := c.byPlatform[key]
	out := make([]models.CatalogItem, len(src))
	copy(out, src)
	return out
}

// Plans returns all subscription plans in feed order.
func (c *Catalog) Plans() []models.SubscriptionPlan {
	out := make([]models.SubscriptionPlan, len(c.plans))
	copy(out, c.plans)
	return out
}

// Plan looks up a subscription plan by identifier.
func (c *Catalog) Plan(id string) (models.SubscriptionPlan, bool) {
	p, ok := c.planByID[id]
	return p, ok
}

// Platforms returns the supported platforms in display order.
func (c *Catalog) Platforms() []models.Platform {
	out := make([]models.Platform, len(platforms))
	copy(out, platforms)
	return out
}

// Platform looks up a platform by key.
func (c *Catalog) Platform(key string) (models.Platform, bool) {
	p, ok := c.platformByKey[key]
	return p, ok
}

// Metrics returns the headline site metrics.
func (c *Catalog) Metrics() models.Metrics {
	return siteMetrics
}

// Hero returns the landing-page headline copy.
func (c *Catalog) Hero() models.Hero {
	return hero
}

// Contacts returns the static support contact block.
func (c *Catalog) Contacts() models.ContactInfo {
	return contactInfo
}

// Testimonials returns the marketing success stories.
func (c *Catalog) Testimonials() []models.Testimonial {
	out := make([]models.Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// BlogPosts returns the blog article stubs.
func (c *Catalog) BlogPosts() []models.BlogPost {
	out := make([]models.BlogPost, len(blogPosts))
	copy(out, blogPosts)
	return out
}

// FAQs returns the question/answer pairs.
func (c *Catalog) FAQs() []models.FAQ {
	out := make([]models.FAQ, len(faqs))
	copy(out, faqs)
	return out
}
