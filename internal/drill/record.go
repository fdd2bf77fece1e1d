// Package drill implements weighted-random replay of previously-missed
// questions, with per-item outcome tracking kept separate from the
// session collection. The scheduler never mutates sessions.
package drill

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/takeru/prepdeck/internal/kv"
)

// recordSlot is the kv key holding the drill outcome map.
const recordSlot = "practice.drill"

// Outcome is the result of one drill attempt.
type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
)

// Record is the most recent drill outcome for one item. Each commit
// overwrites the prior record; there is no streak or history tracking.
type Record struct {
	LastReviewedAt int64   `json:"lastReviewedAt"` // epoch ms
	LastOutcome    Outcome `json:"lastOutcome"`
	LastTimeSec    float64 `json:"lastTimeSec,omitempty"`
}

// RecordStore persists the per-item Record map in its own slot.
// Like the session store, it absorbs all storage errors.
type RecordStore struct {
	slots kv.Slots
	log   zerolog.Logger
}

// NewRecordStore creates a RecordStore over the given slot medium.
func NewRecordStore(slots kv.Slots, log zerolog.Logger) *RecordStore {
	return &RecordStore{slots: slots, log: log}
}

// Load returns the current record map, empty when absent or unreadable.
func (s *RecordStore) Load() map[string]Record {
	raw, found, err := s.slots.Get(recordSlot)
	if err != nil {
		s.log.Debug().Err(err).Msg("drill record read failed")
		return map[string]Record{}
	}
	if !found {
		return map[string]Record{}
	}
	var records map[string]Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil || records == nil {
		s.log.Warn().Msg("drill record unreadable, starting empty")
		return map[string]Record{}
	}
	return records
}

// Commit overwrites the record for key with the new outcome.
func (s *RecordStore) Commit(key string, outcome Outcome, timeSec float64, now time.Time) {
	records := s.Load()
	records[key] = Record{
		LastReviewedAt: now.UnixMilli(),
		LastOutcome:    outcome,
		LastTimeSec:    timeSec,
	}
	data, err := json.Marshal(records)
	if err != nil {
		s.log.Debug().Err(err).Msg("drill record encode failed")
		return
	}
	if err := s.slots.Set(recordSlot, string(data)); err != nil {
		s.log.Debug().Err(err).Msg("drill record write failed")
	}
}

// Reset clears all drill records.
func (s *RecordStore) Reset() {
	if err := s.slots.Delete(recordSlot); err != nil {
		s.log.Debug().Err(err).Msg("drill record delete failed")
	}
}
