package storefront

import (
	"fmt"

	"github.com/popularsmm/storefront/internal/cart"
	"github.com/popularsmm/storefront/internal/catalog"
	"github.com/popularsmm/storefront/internal/checkout"
	"github.com/popularsmm/storefront/internal/config"
	"github.com/popularsmm/storefront/internal/leads"
	"github.com/popularsmm/storefront/internal/notifier"
	"github.com/popularsmm/storefront/internal/settings"
	"github.com/popularsmm/storefront/internal/storage"
	"github.com/popularsmm/storefront/pkg/logger"
)

// Session is the explicitly constructed client-side state for one
// storefront session: the catalog feed, the cart and its checkout flow,
// the two lead logs and the payment-settings proxy. It is handed to the
// view layer by reference and lives for the session duration; there is no
// implicit global.
type Session struct {
	logger *logger.Logger

	Catalog  *catalog.Catalog
	Cart     *cart.Store
	Checkout *checkout.Flow
	Trials   *leads.TrialLog
	Contacts *leads.ContactLog
	Settings *settings.Client
}

// NewSession wires a session from configuration: durable stores under the
// data directory, the settings proxy against the configured API, and a
// Telegram admin channel when one is configured.
func NewSession(cfg *config.Config, log *logger.Logger) (*Session, error) {
	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open durable storage: %v", err)
	}

	var telegram *notifier.TelegramNotifier
	if cfg.TelegramBotToken != "" {
		telegram, err = notifier.NewTelegramNotifier(log, cfg.TelegramBotToken, cfg.TelegramAdminChatID)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize telegram notifier: %v", err)
		}
	}
	notify := notifier.NewNotifier(log, telegram)

	cartStore := cart.New(store, notify, log)

	return &Session{
		logger:   log,
		Catalog:  catalog.New(),
		Cart:     cartStore,
		Checkout: checkout.New(cartStore, log),
		Trials:   leads.NewTrialLog(store, notify, log),
		Contacts: leads.NewContactLog(store, notify, log),
		Settings: settings.NewClient(cfg.SettingsURL, log),
	}, nil
}

// AddPackage puts a one-off package in the cart by identifier.
func (s *Session) AddPackage(id string) error {
	p, ok := s.Catalog.Package(id)
	if !ok {
		return fmt.Errorf("unknown package %q", id)
	}
	s.Cart.Add(cart.ItemFromPackage(p))
	return nil
}

// AddPlan puts a subscription plan in the cart by identifier.
func (s *Session) AddPlan(id string) error {
	p, ok := s.Catalog.Plan(id)
	if !ok {
		return fmt.Errorf("unknown plan %q", id)
	}
	s.Cart.Add(cart.ItemFromPlan(p))
	return nil
}
