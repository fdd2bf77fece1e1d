package drill

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takeru/prepdeck/internal/session"
)

func testItem(num int, wrongAt time.Time, answerSec int) Item {
	return Item{
		Key:       ItemKey(session.SubjectMath1, num),
		Subject:   session.SubjectMath1,
		Number:    num,
		WrongAt:   wrongAt.UnixMilli(),
		AnswerSec: answerSec,
	}
}

func TestWeight_Factors(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		item Item
		rec  *Record
		want float64
	}{
		{
			name: "just wrong, max slowness, never drilled",
			item: testItem(1, now, 120),
			rec:  nil,
			want: 3 * 2.5, // full recency boost times full slowness
		},
		{
			name: "wrong long ago, instant answer, never drilled",
			item: testItem(1, now.Add(-1000*time.Hour), 0),
			rec:  nil,
			want: 1 * 1,
		},
		{
			name: "drilled a minute ago and got it right",
			item: testItem(1, now, 120),
			rec: &Record{
				LastReviewedAt: now.Add(-time.Minute).UnixMilli(),
				LastOutcome:    OutcomeCorrect,
				LastTimeSec:    120,
			},
			want: 3 * 2.5 * 0.2 * 0.7,
		},
		{
			name: "drilled three hours ago and missed",
			item: testItem(1, now, 120),
			rec: &Record{
				LastReviewedAt: now.Add(-3 * time.Hour).UnixMilli(),
				LastOutcome:    OutcomeWrong,
				LastTimeSec:    120,
			},
			want: 3 * 2.5 * 0.6 * 1.3,
		},
		{
			name: "drilled yesterday afternoon",
			item: testItem(1, now, 120),
			rec: &Record{
				LastReviewedAt: now.Add(-10 * time.Hour).UnixMilli(),
				LastOutcome:    OutcomeWrong,
				LastTimeSec:    120,
			},
			want: 3 * 2.5 * 0.8 * 1.3,
		},
		{
			name: "drill time overrides historic answer time",
			item: testItem(1, now.Add(-1000*time.Hour), 120),
			rec: &Record{
				LastReviewedAt: now.Add(-48 * time.Hour).UnixMilli(),
				LastOutcome:    OutcomeWrong,
				LastTimeSec:    60,
			},
			want: 1 * 1.75 * 1.3, // slowness from the 60s drill time
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weight(tt.item, tt.rec, now)
			assert.InDelta(t, tt.want, got, 0.05)
		})
	}
}

func TestWeight_NeverBelowFloor(t *testing.T) {
	now := time.Now()
	item := testItem(1, now.Add(-100000*time.Hour), 0)
	rec := &Record{
		LastReviewedAt: now.UnixMilli(),
		LastOutcome:    OutcomeCorrect,
	}
	assert.GreaterOrEqual(t, weight(item, rec, now), minWeight)
}

func TestPick_EmptyPool(t *testing.T) {
	p := NewPicker()
	_, ok := p.Pick(nil, map[string]Record{}, time.Now())
	assert.False(t, ok)
}

func TestPick_SingleItemAlwaysSelected(t *testing.T) {
	p := NewPickerWithRand(rand.New(rand.NewSource(1)))
	pool := []Item{testItem(1, time.Now().Add(-10000*time.Hour), 0)}
	records := map[string]Record{
		pool[0].Key: {
			LastReviewedAt: time.Now().UnixMilli(),
			LastOutcome:    OutcomeCorrect,
		},
	}

	for i := 0; i < 100; i++ {
		it, ok := p.Pick(pool, records, time.Now())
		require.True(t, ok)
		assert.Equal(t, pool[0].Key, it.Key)
	}
}

func TestPick_StalenessSuppression(t *testing.T) {
	now := time.Now()
	wrongAt := now.Add(-24 * time.Hour)

	// Two otherwise-identical items: X was drilled (correctly) a minute
	// ago, Y never. Y must win clearly more often.
	x := testItem(1, wrongAt, 60)
	y := testItem(2, wrongAt, 60)
	records := map[string]Record{
		x.Key: {
			LastReviewedAt: now.Add(-time.Minute).UnixMilli(),
			LastOutcome:    OutcomeCorrect,
			LastTimeSec:    60,
		},
	}

	p := NewPickerWithRand(rand.New(rand.NewSource(42)))
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		it, ok := p.Pick([]Item{x, y}, records, now)
		require.True(t, ok)
		counts[it.Key]++
	}

	assert.Greater(t, counts[y.Key], counts[x.Key])
}

func TestPickAt_LinearScan(t *testing.T) {
	pool := []Item{testItem(1, time.Now(), 0), testItem(2, time.Now(), 0), testItem(3, time.Now(), 0)}
	weights := []float64{1, 2, 3}

	assert.Equal(t, 1, pickAt(pool, weights, 0.5).Number)
	assert.Equal(t, 2, pickAt(pool, weights, 1.5).Number)
	assert.Equal(t, 3, pickAt(pool, weights, 4.0).Number)
}

func TestPickAt_ExhaustedRemainderFallsBackToLast(t *testing.T) {
	pool := []Item{testItem(1, time.Now(), 0), testItem(2, time.Now(), 0)}
	weights := []float64{1, 1}

	// Float summation can leave r slightly above the true total; the
	// scan must still select something.
	got := pickAt(pool, weights, 2.0000001)
	assert.Equal(t, 2, got.Number)
}
