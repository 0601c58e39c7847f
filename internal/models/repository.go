package models

// Repository is the server-side settings store behind the payments API.
type Repository interface {
	// GetSettings returns the full settings document, creating defaults
	// for gateways that have never been written.
	GetSettings() (*PaymentSettings, error)
	// UpdateSettings applies a partial update (whole-node replacement per
	// named gateway) and returns the resulting full document.
	UpdateSettings(update *SettingsUpdate) (*PaymentSettings, error)

	AddStatusCheck(check *StatusCheck) error
	ListStatusChecks() ([]*StatusCheck, error)

	Close() error
}
