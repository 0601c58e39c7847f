package leads

import (
	"errors"
	"fmt"
	"time"

	"github.com/popularsmm/storefront/internal/models"
	"github.com/popularsmm/storefront/internal/storage"
	"github.com/popularsmm/storefront/pkg/logger"
)

// ErrMissingFields is the blocking validation failure surfaced when a
// required field is empty. Nothing is written in that case.
var ErrMissingFields = errors.New("all fields are required")

// TrialLog is the append-only log of free-test requests, most recent
// first. Records are immutable once created.
type TrialLog struct {
	logger   *logger.Logger
	storage  models.Storage
	notifier models.Notifier

	records []models.TrialRequest
}

// NewTrialLog constructs the log and hydrates it from durable storage.
// Unreadable or absent storage yields an empty log.
func NewTrialLog(store models.Storage, notifier models.Notifier, logger *logger.Logger) *TrialLog {
	l := &TrialLog{logger: logger, storage: store, notifier: notifier}

	var records []models.TrialRequest
	if err := store.Load(storage.KeyFreeTests, &records); err != nil {
		l.logger.Debug("Free-test storage empty or unreadable, starting fresh ", "error ", err)
		records = nil
	}
	l.records = records

	return l
}

// Submit validates the fields, prepends a new record and persists the full
// sequence. The sample is always mock-delivered.
func (l *TrialLog) Submit(platform, handle, sample string) (*models.TrialRequest, error) {
	if platform == "" || handle == "" || sample == "" {
		return nil, ErrMissingFields
	}

	now := time.Now()
	record := models.TrialRequest{
		ID:       now.UnixMilli(),
		Platform: platform,
		Handle:   handle,
		Sample:   sample,
		TS:       now.Format(time.RFC3339),
		Status:   "Delivered (mock)",
	}

	l.records = append([]models.TrialRequest{record}, l.records...)
	if err := l.storage.Save(storage.KeyFreeTests, l.records); err != nil {
		l.logger.Error("Failed to persist free-test log ", "error ", err)
	}

	l.notifier.Notify("Free test requested", fmt.Sprintf("%s %s for %s", platform, sample, handle))
	return &record, nil
}

// Records returns a copy of the log, most recent first.
func (l *TrialLog) Records() []models.TrialRequest {
	out := make([]models.TrialRequest, len(l.records))
	copy(out, l.records)
	return out
}

// ContactLog is the append-only log of contact messages. Same lifecycle
// and ordering as TrialLog.
type ContactLog struct {
	logger   *logger.Logger
	storage  models.Storage
	notifier models.Notifier

	records []models.ContactMessage
}

// NewContactLog constructs the log and hydrates it from durable storage.
func NewContactLog(store models.Storage, notifier models.Notifier, logger *logger.Logger) *ContactLog {
	l := &ContactLog{logger: logger, storage: store, notifier: notifier}

	var records []models.ContactMessage
	if err := store.Load(storage.KeyContactSent, &records); err != nil {
		l.logger.Debug("Contact storage empty or unreadable, starting fresh ", "error ", err)
		records = nil
	}
	l.records = records

	return l
}

// Submit validates the fields, prepends a new record and persists the full
// sequence.
func (l *ContactLog) Submit(name, email, message string) (*models.ContactMessage, error) {
	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}

	now := time.Now()
	record := models.ContactMessage{
		ID:      now.UnixMilli(),
		Name:    name,
		Email:   email,
		Message: message,
		TS:      now.Format(time.RFC3339),
	}

	l.records = append([]models.ContactMessage{record}, l.records...)
	if err := l.storage.Save(storage.KeyContactSent, l.records); err != nil {
		l.logger.Error("Failed to persist contact log ", "error ", err)
	}

	l.notifier.Notify("New contact message", fmt.Sprintf("%s <%s>", name, email))
	return &record, nil
}

// Records returns a copy of the log, most recent first.
func (l *ContactLog) Records() []models.ContactMessage {
	out := make([]models.ContactMessage, len(l.records))
	copy(out, l.records)
	return out
}
