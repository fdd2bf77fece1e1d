// Package store implements the versioned, self-healing session
// collection on top of the kv slot medium.
//
// The store keeps two generations of the collection: the primary slot
// and a backup slot holding the second-most-recent good state. Every
// write follows the backup-then-write discipline, and every read
// re-validates what it finds, so a corrupted primary degrades to the
// backup and a double corruption degrades to an empty collection.
// No operation here returns an error: storage failures are logged and
// absorbed, trading strict signaling for an always-responsive tool.
package store

import (
	"github.com/rs/zerolog"

	"github.com/takeru/prepdeck/internal/kv"
	"github.com/takeru/prepdeck/internal/session"
)

// Slot keys within the kv namespace.
const (
	primarySlot = "practice.sessions"
	backupSlot  = "practice.sessions.backup"
	scratchSlot = "practice.scratch"
)

// Store mediates all access to the persisted session collection.
// It is stateless: every operation re-reads the medium, so callers that
// cache must refresh after mutations.
type Store struct {
	slots kv.Slots
	log   zerolog.Logger
}

// New creates a Store over the given slot medium.
func New(slots kv.Slots, log zerolog.Logger) *Store {
	return &Store{slots: slots, log: log}
}

// Load returns the current validated collection, repairing or
// re-initializing the persisted slots as needed. It never fails.
func (s *Store) Load() session.Collection {
	raw, found := s.read(primarySlot)
	if !found {
		empty := session.NewCollection()
		s.writeBoth(empty)
		return empty
	}

	if c, ok := session.DecodeCollection([]byte(raw)); ok {
		return c
	}
	s.log.Warn().Msg("primary session record unreadable, trying backup")

	if braw, found := s.read(backupSlot); found {
		if c, ok := session.DecodeCollection([]byte(braw)); ok {
			// Promote the backup so the next load is clean.
			s.write(primarySlot, braw)
			return c
		}
	}

	s.log.Warn().Msg("backup session record unreadable, resetting to empty")
	empty := session.NewCollection()
	s.writeBoth(empty)
	return empty
}

// Mutate applies transform transactionally: load, transform a deep
// clone, validate, back up the current primary, write. An invalid
// transform result is discarded and the pre-transform collection is
// returned unchanged. The mutation is rejected, never partially
// applied.
func (s *Store) Mutate(transform func(session.Collection) session.Collection) session.Collection {
	current := s.Load()

	next := transform(current.Clone())
	next.Normalize()
	if !next.Valid() {
		s.log.Warn().Msg("mutation produced an invalid collection, rejected")
		return current
	}

	data, err := session.EncodeCollection(next)
	if err != nil {
		s.log.Warn().Err(err).Msg("mutation result not serializable, rejected")
		return current
	}

	// Best-effort backup of the current primary. Failure to back up
	// does not block the write.
	if raw, found := s.read(primarySlot); found {
		s.write(backupSlot, raw)
	}

	s.write(primarySlot, string(data))
	return next
}

// Upsert replaces the session with matching id, or prepends it.
func (s *Store) Upsert(sess *session.Session) session.Collection {
	return s.Mutate(func(c session.Collection) session.Collection {
		return c.Upsert(sess)
	})
}

// Remove drops the session with matching id.
func (s *Store) Remove(id string) session.Collection {
	return s.Mutate(func(c session.Collection) session.Collection {
		return c.Remove(id)
	})
}

// Scratch returns the free-text scratch pad, empty when absent.
func (s *Store) Scratch() string {
	raw, _ := s.read(scratchSlot)
	return raw
}

// SetScratch overwrites the scratch pad.
func (s *Store) SetScratch(text string) {
	s.write(scratchSlot, text)
}

// Reset clears the session slots (and the scratch pad).
func (s *Store) Reset() {
	for _, key := range []string{primarySlot, backupSlot, scratchSlot} {
		if err := s.slots.Delete(key); err != nil {
			s.log.Debug().Err(err).Str("slot", key).Msg("delete failed")
		}
	}
}

// read fetches a slot, absorbing medium errors into "absent".
func (s *Store) read(key string) (string, bool) {
	raw, found, err := s.slots.Get(key)
	if err != nil {
		s.log.Debug().Err(err).Str("slot", key).Msg("read failed")
		return "", false
	}
	return raw, found
}

// write stores a slot, absorbing medium errors.
func (s *Store) write(key, value string) {
	if err := s.slots.Set(key, value); err != nil {
		s.log.Debug().Err(err).Str("slot", key).Msg("write failed")
	}
}

// writeBoth persists the collection to the primary and backup slots.
func (s *Store) writeBoth(c session.Collection) {
	data, err := session.EncodeCollection(c)
	if err != nil {
		s.log.Debug().Err(err).Msg("encode failed")
		return
	}
	s.write(primarySlot, string(data))
	s.write(backupSlot, string(data))
}
