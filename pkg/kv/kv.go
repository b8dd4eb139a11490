// Package kv wraps persistent and session-scoped key-value storage behind a
// small typed contract with JSON (de)serialization and failure containment.
package kv

// Store is the key-value contract shared by persistent and session storage.
//
// Set serializes structured values to JSON and writes primitives as-is; any
// write failure is contained and reported as false, never panicked. Get
// returns nil when the key is absent or unreadable; a value that parses as
// JSON comes back decoded, anything else comes back as the raw string.
// Remove is idempotent.
type Store interface {
	Set(key string, value any) bool
	Get(key string) any
	// Raw returns the stored bytes without JSON interpretation, for callers
	// that own their own codec.
	Raw(key string) ([]byte, bool)
	Remove(key string) bool
}
