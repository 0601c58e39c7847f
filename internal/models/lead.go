package models

// TrialRequest is a free-test submission. Records are append-only: created
// on submission, never mutated or deleted.
type TrialRequest struct {
	// ID is the creation timestamp in milliseconds.
	ID int64 `json:"id"`
	// Platform is the platform key the sample should be delivered on.
	Platform string `json:"platform"`
	// Handle is the profile link or @username.
	Handle string `json:"handle"`
	// Sample is the sample type (likes, followers, views).
	Sample string `json:"sample"`
	// TS is the RFC3339 creation time.
	TS string `json:"ts"`
	// Status is a display label; samples are always mock-delivered.
	Status string `json:"status"`
}

// ContactMessage is a contact-form submission. Same append-only lifecycle
// as TrialRequest.
type ContactMessage struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	TS      string `json:"ts"`
}
