package models

// Storage is the durable client-side key/value store. Values are plain
// records serialized as JSON under a fixed namespaced key.
type Storage interface {
	// Save persists value under key, replacing any previous value.
	Save(key string, value interface{}) error
	// Load reads the value stored under key into out. Absent or corrupt
	// values return an error; callers always map that to an empty default.
	Load(key string, out interface{}) error
}

// Notifier receives the transient user-facing notifications the stores
// emit (the toast analog), and admin-side lead alerts.
type Notifier interface {
	Notify(title, message string)
}

// APIServer is the HTTP API surface.
type APIServer interface {
	Start()
	Shutdown() error
}
