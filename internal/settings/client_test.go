package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popularsmm/storefront/internal/models"
	"github.com/popularsmm/storefront/pkg/logger"
)

func TestLoadFallsBackToDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, logger.NewNop())
	settings := c.Load(context.Background())

	assert.False(t, settings.Stripe.Enabled)
	assert.False(t, settings.SSLCommerz.Enabled)
	assert.False(t, settings.PayPal.Enabled)
	assert.Empty(t, settings.Stripe.Data)
}

func TestLoadUnreachableServer(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", logger.NewNop())
	settings := c.Load(context.Background())
	assert.Equal(t, Defaults(), settings)
}

func TestLoadCachesServerResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/payments/settings", r.URL.Path)
		json.NewEncoder(w).Encode(models.PaymentSettings{
			Stripe: models.Gateway{Enabled: true, Data: map[string]string{"secretKey": "sk_test"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, logger.NewNop())
	settings := c.Load(context.Background())

	assert.True(t, settings.Stripe.Enabled)
	assert.Equal(t, "sk_test", settings.Stripe.Data["secretKey"])
	assert.Equal(t, settings, c.Settings())
}

func TestSaveReplacesCacheWithResponse(t *testing.T) {
	var received models.SettingsUpdate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(models.PaymentSettings{
			Stripe:     models.Gateway{Enabled: true, Data: map[string]string{"secretKey": "sk"}},
			SSLCommerz: models.Gateway{Data: map[string]string{}},
			PayPal:     models.Gateway{Data: map[string]string{}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, logger.NewNop())
	update := &models.SettingsUpdate{
		Stripe: &models.Gateway{Enabled: true, Data: map[string]string{"secretKey": "sk"}},
	}

	settings, err := c.Save(context.Background(), update)
	require.NoError(t, err)

	// Only the stripe node was sent.
	require.NotNil(t, received.Stripe)
	assert.Nil(t, received.SSLCommerz)
	assert.Nil(t, received.PayPal)

	assert.True(t, settings.Stripe.Enabled)
	assert.Equal(t, settings, c.Settings())
	assert.False(t, c.Saving())
}

func TestSaveFailureLeavesCacheUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, logger.NewNop())
	before := c.Settings()

	_, err := c.Save(context.Background(), &models.SettingsUpdate{
		Stripe: &models.Gateway{Enabled: true, Data: map[string]string{}},
	})
	require.Error(t, err)

	assert.Equal(t, before, c.Settings())
	assert.False(t, c.Saving())
}

func TestSaveFieldOverwritesSingleField(t *testing.T) {
	var received models.SettingsUpdate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(models.PaymentSettings{
				PayPal: models.Gateway{Enabled: true, Data: map[string]string{"clientId": "cid", "secret": "old"}},
			})
		case http.MethodPut:
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(models.PaymentSettings{
				PayPal: models.Gateway{Enabled: true, Data: received.PayPal.Data},
			})
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, logger.NewNop())
	c.Load(context.Background())

	settings, err := c.SaveField(context.Background(), models.GatewayPayPal, "secret", "new")
	require.NoError(t, err)

	// The full node went over the wire with one field overwritten.
	require.NotNil(t, received.PayPal)
	assert.True(t, received.PayPal.Enabled)
	assert.Equal(t, "cid", received.PayPal.Data["clientId"])
	assert.Equal(t, "new", received.PayPal.Data["secret"])

	assert.Equal(t, "new", settings.PayPal.Data["secret"])
}

func TestSetEnabledKeepsCredentialFields(t *testing.T) {
	var received models.SettingsUpdate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(models.PaymentSettings{
				Stripe: models.Gateway{Enabled: false, Data: map[string]string{"secretKey": "sk"}},
			})
		case http.MethodPut:
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(models.PaymentSettings{Stripe: *received.Stripe})
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, logger.NewNop())
	c.Load(context.Background())

	settings, err := c.SetEnabled(context.Background(), models.GatewayStripe, true)
	require.NoError(t, err)

	require.NotNil(t, received.Stripe)
	assert.True(t, received.Stripe.Enabled)
	assert.Equal(t, "sk", received.Stripe.Data["secretKey"])
	assert.True(t, settings.Stripe.Enabled)
}

func TestSaveFieldUnknownGateway(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", logger.NewNop())
	_, err := c.SaveField(context.Background(), "venmo", "key", "v")
	assert.Error(t, err)
}

func TestFieldSchema(t *testing.T) {
	stripe := FieldSchema(models.GatewayStripe)
	require.Len(t, stripe, 2)
	assert.Equal(t, "publishableKey", stripe[0].Name)
	assert.Equal(t, "secretKey", stripe[1].Name)

	assert.Len(t, FieldSchema(models.GatewaySSLCommerz), 2)
	assert.Len(t, FieldSchema(models.GatewayPayPal), 2)
	assert.Empty(t, FieldSchema("venmo"))
}
