package drill

import (
	"math"
	"math/rand"
	"time"
)

// Weight tuning constants.
const (
	wrongDecayHours = 48  // recency boost decay constant
	slownessCapSec  = 120 // answer time cap for the slowness factor
	minWeight       = 0.05
)

// weight computes the selection weight for one item as the product of
// four independent factors:
//
//  1. recency of wrongness: up to 3x for just-missed items, decaying
//     toward 1x with a 48h constant
//  2. slowness: up to 2.5x for items that took 120s or more
//  3. review staleness: suppresses items drilled within the last day
//  4. last outcome: favors items still being missed
//
// Factors 3 and 4 apply only when the item has been drilled before.
func weight(it Item, rec *Record, now time.Time) float64 {
	hoursWrong := now.Sub(time.UnixMilli(it.WrongAt)).Hours()
	w := 1 + 2*math.Exp(-hoursWrong/wrongDecayHours)

	baseSec := float64(it.AnswerSec)
	if rec != nil && rec.LastTimeSec > 0 {
		baseSec = rec.LastTimeSec
	}
	w *= 1 + 1.5*math.Min(1, baseSec/slownessCapSec)

	if rec != nil {
		hoursReviewed := now.Sub(time.UnixMilli(rec.LastReviewedAt)).Hours()
		switch {
		case hoursReviewed < 2:
			w *= 0.2
		case hoursReviewed < 8:
			w *= 0.6
		case hoursReviewed < 24:
			w *= 0.8
		}
		if rec.LastOutcome == OutcomeCorrect {
			w *= 0.7
		} else {
			w *= 1.3
		}
	}

	if w < minWeight {
		w = minWeight
	}
	return w
}

// Picker selects the next drill item by weighted random draw.
type Picker struct {
	rand *rand.Rand
}

// NewPicker creates a Picker seeded from the current time.
func NewPicker() *Picker {
	return &Picker{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewPickerWithRand creates a Picker with a caller-supplied source,
// used by tests for deterministic draws.
func NewPickerWithRand(r *rand.Rand) *Picker {
	return &Picker{rand: r}
}

// Pick draws one item from the pool proportionally to weight.
// ok is false when the pool is empty.
func (p *Picker) Pick(pool []Item, records map[string]Record, now time.Time) (Item, bool) {
	if len(pool) == 0 {
		return Item{}, false
	}

	weights := make([]float64, len(pool))
	total := 0.0
	for i, it := range pool {
		var rec *Record
		if r, found := records[it.Key]; found {
			rec = &r
		}
		weights[i] = weight(it, rec, now)
		total += weights[i]
	}

	return pickAt(pool, weights, p.rand.Float64()*total), true
}

// pickAt walks the pool subtracting weights until the remainder goes
// non-positive. Floating-point summation can exhaust the scan without
// selecting; the last element is the fallback.
func pickAt(pool []Item, weights []float64, r float64) Item {
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return pool[i]
		}
	}
	return pool[len(pool)-1]
}
