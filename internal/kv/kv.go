// Package kv provides the local key-value storage medium backing all
// persisted prepdeck state. Every record lives in a single sqlite table
// under a fixed key; callers treat slots as opaque serialized strings.
package kv

// Slots is the minimal slot-access contract. Implementations report
// storage-medium failures through the error return; policy for those
// failures (fallback, silent degradation) belongs to the callers.
type Slots interface {
	// Get returns the value stored under key. found is false when the
	// slot has never been written or was deleted.
	Get(key string) (value string, found bool, err error)

	// Set writes value under key, replacing any prior value.
	Set(key, value string) error

	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(key string) error
}
