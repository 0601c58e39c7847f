package cart

import (
	"github.com/popularsmm/storefront/internal/models"
	"github.com/popularsmm/storefront/internal/storage"
	"github.com/popularsmm/storefront/pkg/logger"
)

// Item is the product snapshot handed to Add: the identifier, title and
// unit price of a catalog package or subscription plan.
type Item struct {
	ID    string
	Title string
	Price float64
}

// ItemFromPackage builds a cart item from a one-off package.
func ItemFromPackage(p models.CatalogItem) Item {
	return Item{ID: p.ID, Title: p.Title, Price: p.Price}
}

// ItemFromPlan builds a cart item from a subscription plan.
func ItemFromPlan(p models.SubscriptionPlan) Item {
	return Item{ID: p.ID, Title: p.Name, Price: p.Price}
}

// Store holds the session's cart: an ordered line sequence keyed by
// product identifier plus a drawer-visibility flag. Every mutation
// persists the full sequence; totals are always derived, never stored.
type Store struct {
	logger   *logger.Logger
	storage  models.Storage
	notifier models.Notifier

	lines   []models.CartLine
	visible bool
}

// New constructs a store and hydrates it from durable storage. An absent
// or unreadable value yields an empty cart, never an error.
func New(store models.Storage, notifier models.Notifier, logger *logger.Logger) *Store {
	s := &Store{
		logger:   logger,
		storage:  store,
		notifier: notifier,
	}

	var lines []models.CartLine
	if err := store.Load(storage.KeyCartItems, &lines); err != nil {
		s.logger.Debug("Cart storage empty or unreadable, starting fresh ", "error ", err)
		lines = nil
	}
	s.lines = lines

	return s
}

// Add appends a new line with quantity 1, or increments the quantity of an
// existing line with the same identifier. Adding a new line opens the
// drawer. Always succeeds.
func (s *Store) Add(item Item) {
	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Qty++
			s.persist()
			s.notifier.Notify("Cart updated", item.Title+" quantity increased")
			return
		}
	}

	s.lines = append(s.lines, models.CartLine{
		ID:    item.ID,
		Title: item.Title,
		Price: item.Price,
		Qty:   1,
	})
	s.visible = true
	s.persist()
	s.notifier.Notify("Added to cart", item.Title)
}

// Remove deletes the line with the given identifier. No-op if absent.
func (s *Store) Remove(id string) {
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// Increment raises the quantity of the given line by one. No-op if absent.
func (s *Store) Increment(id string) {
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Qty++
			s.persist()
			return
		}
	}
}

// Decrement lowers the quantity of the given line by one, floored at 1.
// It never removes the line; removal is explicit. No-op if absent.
func (s *Store) Decrement(id string) {
	for i := range s.lines {
		if s.lines[i].ID == id {
			if s.lines[i].Qty > 1 {
				s.lines[i].Qty--
				s.persist()
			}
			return
		}
	}
}

// Clear empties the line sequence.
func (s *Store) Clear() {
	s.lines = nil
	s.persist()
}

// Lines returns a copy of the line sequence in insertion order.
func (s *Store) Lines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Totals derives the item count and amount from the line sequence.
func (s *Store) Totals() models.CartTotals {
	var t models.CartTotals
	for _, l := range s.lines {
		t.Count += l.Qty
		t.Amount += float64(l.Qty) * l.Price
	}
	return t
}

// Visible reports whether the cart drawer is open.
func (s *Store) Visible() bool {
	return s.visible
}

// SetVisible toggles the cart drawer.
func (s *Store) SetVisible(v bool) {
	s.visible = v
}

// persist writes the full line sequence to durable storage. Storage
// failures are soft: the in-memory cart stays authoritative for the
// session and the error is only logged.
func (s *Store) persist() {
	if err := s.storage.Save(storage.KeyCartItems, s.lines); err != nil {
		s.logger.Error("Failed to persist cart ", "error ", err)
	}
}
