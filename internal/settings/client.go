package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/popularsmm/storefront/internal/models"
	"github.com/popularsmm/storefront/pkg/logger"
)

// Field describes one credential input for a gateway. Forms are generated
// from this schema rather than by iterating credential maps.
type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// gatewayFields is the declared credential schema per gateway.
var gatewayFields = map[string][]Field{
	models.GatewayStripe: {
		{Name: "publishableKey", Label: "Publishable Key"},
		{Name: "secretKey", Label: "Secret Key"},
	},
	models.GatewaySSLCommerz: {
		{Name: "storeId", Label: "Store ID"},
		{Name: "storePassword", Label: "Store Password"},
	},
	models.GatewayPayPal: {
		{Name: "clientId", Label: "Client ID"},
		{Name: "secret", Label: "Secret"},
	},
}

// FieldSchema returns the credential field list for a gateway.
func FieldSchema(gateway string) []Field {
	fields := gatewayFields[gateway]
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Defaults is the fallback configuration: every gateway disabled with
// empty credential fields.
func Defaults() *models.PaymentSettings {
	return &models.PaymentSettings{
		Stripe:     models.Gateway{Data: map[string]string{}},
		SSLCommerz: models.Gateway{Data: map[string]string{}},
		PayPal:     models.Gateway{Data: map[string]string{}},
	}
}

// Client is the thin proxy over the remote payment-settings endpoint. It
// holds a cached copy of the settings; the server response is always the
// authoritative value after a save. Outgoing writes are serialized so the
// client cannot interleave its own saves.
type Client struct {
	logger  *logger.Logger
	baseURL string
	http    *http.Client

	mu     sync.Mutex
	cached *models.PaymentSettings
	saving bool
}

// NewClient builds a proxy for the given base URL.
func NewClient(baseURL string, logger *logger.Logger) *Client {
	return &Client{
		logger:  logger,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cached:  Defaults(),
	}
}

// Load fetches the current settings. On any failure (network, status,
// parse) it falls back to the defaults; no error reaches the caller.
func (c *Client) Load(ctx context.Context) *models.PaymentSettings {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/payments/settings", nil)
	if err != nil {
		return c.fallback(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fallback(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.fallback(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var settings models.PaymentSettings
	if err := json.NewDecoder(resp.Body).Decode(&settings); err != nil {
		return c.fallback(err)
	}

	c.mu.Lock()
	c.cached = &settings
	c.mu.Unlock()
	return &settings
}

func (c *Client) fallback(err error) *models.PaymentSettings {
	c.logger.Warn("Failed to load payment settings, using defaults ", "error ", err)
	defaults := Defaults()
	c.mu.Lock()
	c.cached = defaults
	c.mu.Unlock()
	return defaults
}

// Settings returns the cached copy.
func (c *Client) Settings() *models.PaymentSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cached
}

// Saving reports whether a save is in flight.
func (c *Client) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

// Save sends a partial update (whole-node replacement per named gateway)
// and replaces the cached settings with the server's authoritative
// response. On failure the cache is left untouched and the error is
// returned so the caller can surface a retry.
func (c *Client) Save(ctx context.Context, update *models.SettingsUpdate) (*models.PaymentSettings, error) {
	c.mu.Lock()
	if c.saving {
		// Serialize our own writes; the caller retries after the
		// in-flight save settles.
		c.mu.Unlock()
		return nil, fmt.Errorf("a save is already in flight")
	}
	c.saving = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.saving = false
		c.mu.Unlock()
	}()

	body, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize settings update: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/payments/settings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build settings request: %s", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to save settings: unexpected status %d", resp.StatusCode)
	}

	var settings models.PaymentSettings
	if err := json.NewDecoder(resp.Body).Decode(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings response: %s", err)
	}

	c.mu.Lock()
	c.cached = &settings
	c.mu.Unlock()
	return &settings, nil
}

// SaveField commits one edited credential field: it takes the cached node
// for the gateway, overwrites the single field and sends a full save of
// that node. This mirrors the storefront's per-field commit behavior.
func (c *Client) SaveField(ctx context.Context, gateway, field, value string) (*models.PaymentSettings, error) {
	c.mu.Lock()
	node, ok := c.cached.Gateway(gateway)
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown gateway %q", gateway)
	}

	data := make(map[string]string, len(node.Data)+1)
	for k, v := range node.Data {
		data[k] = v
	}
	data[field] = value

	update := &models.SettingsUpdate{}
	switch gateway {
	case models.GatewayStripe:
		update.Stripe = &models.Gateway{Enabled: node.Enabled, Data: data}
	case models.GatewaySSLCommerz:
		update.SSLCommerz = &models.Gateway{Enabled: node.Enabled, Data: data}
	case models.GatewayPayPal:
		update.PayPal = &models.Gateway{Enabled: node.Enabled, Data: data}
	}

	return c.Save(ctx, update)
}

// SetEnabled commits the enablement toggle for one gateway.
func (c *Client) SetEnabled(ctx context.Context, gateway string, enabled bool) (*models.PaymentSettings, error) {
	c.mu.Lock()
	node, ok := c.cached.Gateway(gateway)
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown gateway %q", gateway)
	}

	data := make(map[string]string, len(node.Data))
	for k, v := range node.Data {
		data[k] = v
	}

	update := &models.SettingsUpdate{}
	switch gateway {
	case models.GatewayStripe:
		update.Stripe = &models.Gateway{Enabled: enabled, Data: data}
	case models.GatewaySSLCommerz:
		update.SSLCommerz = &models.Gateway{Enabled: enabled, Data: data}
	case models.GatewayPayPal:
		update.PayPal = &models.Gateway{Enabled: enabled, Data: data}
	}

	return c.Save(ctx, update)
}
