package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popularsmm/storefront/internal/cart"
	"github.com/popularsmm/storefront/internal/models"
	"github.com/popularsmm/storefront/internal/storage"
	"github.com/popularsmm/storefront/pkg/logger"
)

type nopNotifier struct{}

func (nopNotifier) Notify(title, message string) {}

func newTestCart(t *testing.T) *cart.Store {
	t.Helper()
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return cart.New(fs, nopNotifier{}, logger.NewNop())
}

func TestOpenEmptyCart(t *testing.T) {
	f := New(newTestCart(t), logger.NewNop())

	assert.ErrorIs(t, f.Open(), ErrEmptyCart)
	assert.Equal(t, StateClosed, f.State())
}

func TestDefaultMethod(t *testing.T) {
	c := newTestCart(t)
	c.Add(cart.Item{ID: "a", Title: "A", Price: 1})

	f := New(c, logger.NewNop())
	require.NoError(t, f.Open())
	assert.Equal(t, models.MethodStripe, f.Method())
}

func TestSelectMethod(t *testing.T) {
	c := newTestCart(t)
	c.Add(cart.Item{ID: "a", Title: "A", Price: 1})

	f := New(c, logger.NewNop())
	require.NoError(t, f.Open())

	require.NoError(t, f.SelectMethod(models.MethodManual))
	assert.Equal(t, models.MethodManual, f.Method())

	assert.ErrorIs(t, f.SelectMethod("bitcoin"), ErrUnknownMethod)
	assert.Equal(t, models.MethodManual, f.Method())
}

func TestSelectMethodWhileClosed(t *testing.T) {
	f := New(newTestCart(t), logger.NewNop())
	assert.ErrorIs(t, f.SelectMethod(models.MethodPayPal), ErrNotOpen)
}

func TestConfirmClearsCartAndCloses(t *testing.T) {
	c := newTestCart(t)
	c.Add(cart.Item{ID: "ig-f-1k", Title: "1K Instagram Followers", Price: 4.99})
	c.Add(cart.Item{ID: "ig-f-1k", Title: "1K Instagram Followers", Price: 4.99})

	f := New(c, logger.NewNop())
	require.NoError(t, f.Open())
	require.NoError(t, f.SelectMethod(models.MethodPayPal))

	receipt, err := f.Confirm()
	require.NoError(t, err)
	assert.Equal(t, models.MethodPayPal, receipt.Method)
	assert.InDelta(t, 9.98, receipt.Amount, 1e-9)
	assert.Equal(t, 2, receipt.Count)

	assert.Equal(t, StateClosed, f.State())
	assert.Equal(t, 0, c.Totals().Count)
}

func TestConfirmUsesSnapshotAmount(t *testing.T) {
	c := newTestCart(t)
	c.Add(cart.Item{ID: "a", Title: "A", Price: 10})

	f := New(c, logger.NewNop())
	require.NoError(t, f.Open())

	// The cart mutates while the flow is open; the receipt carries the
	// amount snapshotted at Open.
	c.Add(cart.Item{ID: "b", Title: "B", Price: 5})

	receipt, err := f.Confirm()
	require.NoError(t, err)
	assert.InDelta(t, 10.0, receipt.Amount, 1e-9)
}

func TestCancelHasNoSideEffects(t *testing.T) {
	c := newTestCart(t)
	c.Add(cart.Item{ID: "a", Title: "A", Price: 10})

	f := New(c, logger.NewNop())
	require.NoError(t, f.Open())
	require.NoError(t, f.Cancel())

	assert.Equal(t, StateClosed, f.State())
	assert.Equal(t, 1, c.Totals().Count)

	_, err := f.Confirm()
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestSummaryFeesAlwaysZero(t *testing.T) {
	c := newTestCart(t)
	c.Add(cart.Item{ID: "a", Title: "A", Price: 7.5})

	f := New(c, logger.NewNop())
	require.NoError(t, f.Open())

	sum := f.Summary()
	assert.InDelta(t, 7.5, sum.Subtotal, 1e-9)
	assert.Zero(t, sum.Fees)
	assert.InDelta(t, 7.5, sum.Total, 1e-9)
}
