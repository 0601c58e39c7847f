package models

// Gateway keys recognized by the settings store.
const (
	GatewayStripe     = "stripe"
	GatewaySSLCommerz = "sslcommerz"
	GatewayPayPal     = "paypal"
)

// GatewayKeys lists the supported gateways in display order.
var GatewayKeys = []string{GatewayStripe, GatewaySSLCommerz, GatewayPayPal}

// Payment methods selectable in the checkout flow. "manual" covers manual
// and UPI payment with no gateway involvement.
const (
	MethodStripe     = "stripe"
	MethodSSLCommerz = "sslcommerz"
	MethodPayPal     = "paypal"
	MethodManual     = "manual"
)

// PaymentMethods lists the selectable checkout methods; the first entry is
// the default selection.
var PaymentMethods = []string{MethodStripe, MethodSSLCommerz, MethodPayPal, MethodManual}

// Gateway is the enablement flag plus credential fields for one payment
// provider. Credentials are stored but never wired to real transactions.
type Gateway struct {
	Enabled bool              `json:"enabled"`
	Data    map[string]string `json:"data"`
}

// PaymentSettings is the full settings document: one node per gateway.
type PaymentSettings struct {
	Stripe     Gateway `json:"stripe"`
	SSLCommerz Gateway `json:"sslcommerz"`
	PayPal     Gateway `json:"paypal"`
	// UpdatedAt is the Unix timestamp of the last server-side write.
	UpdatedAt int64 `json:"updated_at"`
}

// Gateway returns the node for the given key.
func (s *PaymentSettings) Gateway(key string) (Gateway, bool) {
	switch key {
	case GatewayStripe:
		return s.Stripe, true
	case GatewaySSLCommerz:
		return s.SSLCommerz, true
	case GatewayPayPal:
		return s.PayPal, true
	}
	return Gateway{}, false
}

// SetGateway replaces the node for the given key. Unknown keys are ignored.
func (s *PaymentSettings) SetGateway(key string, gw Gateway) {
	switch key {
	case GatewayStripe:
		s.Stripe = gw
	case GatewaySSLCommerz:
		s.SSLCommerz = gw
	case GatewayPayPal:
		s.PayPal = gw
	}
}

// SettingsUpdate is a partial settings write: each present node replaces
// the whole {enabled, data} node for that gateway, absent nodes are left
// untouched.
type SettingsUpdate struct {
	Stripe     *Gateway `json:"stripe,omitempty"`
	SSLCommerz *Gateway `json:"sslcommerz,omitempty"`
	PayPal     *Gateway `json:"paypal,omitempty"`
}

// Gateway returns the update node for the given key, or nil.
func (u *SettingsUpdate) Gateway(key string) *Gateway {
	switch key {
	case GatewayStripe:
		return u.Stripe
	case GatewaySSLCommerz:
		return u.SSLCommerz
	case GatewayPayPal:
		return u.PayPal
	}
	return nil
}

// GatewayRecord is the persisted form of one gateway node.
type GatewayRecord struct {
	// Key is the gateway identifier (stripe, sslcommerz, paypal).
	Key string `json:"key" gorm:"column:key;primaryKey"`
	// Enabled indicates whether the gateway is switched on.
	Enabled bool `json:"enabled" gorm:"column:enabled"`
	// Data is the JSON-serialized credential field map.
	Data string `json:"data" gorm:"column:data"`
	// UpdatedAt is the Unix timestamp of the last write.
	UpdatedAt int64 `json:"updated_at" gorm:"column:updated_at"`
}

// StatusCheck is a client heartbeat record.
type StatusCheck struct {
	ID         string `json:"id" gorm:"column:id;primaryKey"`
	ClientName string `json:"client_name" gorm:"column:client_name"`
	Timestamp  int64  `json:"timestamp" gorm:"column:timestamp;index"`
}
