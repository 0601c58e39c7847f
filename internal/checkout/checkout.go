package checkout

import (
	"errors"
	"math"

	"github.com/popularsmm/storefront/internal/cart"
	"github.com/popularsmm/storefront/internal/models"
	"github.com/popularsmm/storefront/pkg/logger"
)

// State of the checkout flow. The flow is linear: Closed -> Open ->
// Confirmed -> Closed, with Cancel short-circuiting back to Closed.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateConfirmed
)

var (
	// ErrEmptyCart is returned when opening the flow with nothing to pay for.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNotOpen is returned for confirm/cancel/select outside the Open state.
	ErrNotOpen = errors.New("checkout is not open")
	// ErrUnknownMethod is returned for a method outside the declared set.
	ErrUnknownMethod = errors.New("unknown payment method")
)

// Summary is the recomputed breakdown shown while the flow is open. Fees
// are always zero; there is no tax or fee engine.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Fees     float64 `json:"fees"`
	Total    float64 `json:"total"`
}

// Flow is the modal checkout over a cart store. It snapshots the totals
// when opened and clears the cart on confirmation. No real settlement
// happens; confirm only emits a simulated-payment receipt.
type Flow struct {
	logger *logger.Logger
	cart   *cart.Store

	state    State
	method   string
	snapshot models.CartTotals
}

// New builds a closed flow over the given cart.
func New(c *cart.Store, logger *logger.Logger) *Flow {
	return &Flow{
		logger: logger,
		cart:   c,
		state:  StateClosed,
		method: models.PaymentMethods[0],
	}
}

// State returns the current flow state.
func (f *Flow) State() State {
	return f.state
}

// Method returns the currently selected payment method.
func (f *Flow) Method() string {
	return f.method
}

// Open enters the flow, snapshotting the cart totals. It fails when the
// cart is empty.
func (f *Flow) Open() error {
	if f.cart.Totals().Count == 0 {
		return ErrEmptyCart
	}
	f.state = StateOpen
	f.method = models.PaymentMethods[0]
	f.snapshot = f.cart.Totals()
	return nil
}

// SelectMethod picks one payment method from the declared set. Membership
// is the only validation.
func (f *Flow) SelectMethod(method string) error {
	if f.state != StateOpen {
		return ErrNotOpen
	}
	for _, m := range models.PaymentMethods {
		if m == method {
			f.method = method
			return nil
		}
	}
	return ErrUnknownMethod
}

// Summary recomputes subtotal/fees/total from the live cart totals.
func (f *Flow) Summary() Summary {
	t := f.cart.Totals()
	return Summary{Subtotal: t.Amount, Fees: 0, Total: t.Amount}
}

// Confirm emits the simulated-payment receipt for the snapshotted amount,
// clears the cart and closes the flow.
func (f *Flow) Confirm() (*models.Receipt, error) {
	if f.state != StateOpen {
		return nil, ErrNotOpen
	}

	receipt := &models.Receipt{
		Method: f.method,
		Amount: roundCents(f.snapshot.Amount),
		Count:  f.snapshot.Count,
	}

	f.state = StateConfirmed
	f.cart.Clear()
	f.state = StateClosed

	f.logger.Info("Checkout confirmed ", "method ", receipt.Method, "amount ", receipt.Amount)
	return receipt, nil
}

// Cancel leaves the flow without side effects.
func (f *Flow) Cancel() error {
	if f.state != StateOpen {
		return ErrNotOpen
	}
	f.state = StateClosed
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
