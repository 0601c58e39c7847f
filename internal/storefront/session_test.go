package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popularsmm/storefront/internal/config"
	"github.com/popularsmm/storefront/internal/models"
	"github.com/popularsmm/storefront/pkg/logger"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := &config.Config{
		DataDir:     t.TempDir(),
		SettingsURL: "http://127.0.0.1:1",
	}
	s, err := NewSession(cfg, logger.NewNop())
	require.NoError(t, err)
	return s
}

func TestAddPackageFromCatalog(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.AddPackage("ig-f-1k"))
	require.NoError(t, s.AddPackage("ig-f-1k"))

	lines := s.Cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)
	assert.InDelta(t, 9.98, s.Cart.Totals().Amount, 1e-9)

	assert.Error(t, s.AddPackage("nope"))
}

func TestAddPlanFromCatalog(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.AddPlan("sub-growth"))

	lines := s.Cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Growth", lines[0].Title)
	assert.InDelta(t, 49.99, lines[0].Price, 1e-9)

	assert.Error(t, s.AddPlan("nope"))
}

func TestCheckoutThroughSession(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.AddPackage("tt-v-10k"))
	require.NoError(t, s.Checkout.Open())

	receipt, err := s.Checkout.Confirm()
	require.NoError(t, err)
	assert.Equal(t, models.MethodStripe, receipt.Method)
	assert.Equal(t, 0, s.Cart.Totals().Count)
}
