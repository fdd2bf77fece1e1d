package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestNew_Defaults(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	s := New(SubjectPhysics, 5, 12, 40, "", now)

	require.NotEmpty(t, s.ID)
	assert.Equal(t, "2026-03-14 09:30", s.Name)
	assert.Equal(t, 8, s.RangeSize())
	assert.Len(t, s.Questions, 8)
	assert.Equal(t, Millis(now), s.StartedAt)
	assert.Zero(t, s.EndedAt)
	assert.Equal(t, Version, s.Version)
	for _, q := range s.Questions {
		assert.Equal(t, TagNone, q.Tag)
		assert.Nil(t, q.Correct)
	}
}

func TestNew_KeepsGivenName(t *testing.T) {
	s := New(SubjectMath1, 1, 3, 10, "mock exam 2", time.Now())
	assert.Equal(t, "mock exam 2", s.Name)
}

func TestIndexOf(t *testing.T) {
	s := New(SubjectMath1, 10, 14, 30, "", time.Now())

	assert.Equal(t, 0, s.IndexOf(10))
	assert.Equal(t, 4, s.IndexOf(14))
	assert.Equal(t, -1, s.IndexOf(9))
	assert.Equal(t, -1, s.IndexOf(15))
	assert.Equal(t, 12, s.Number(2))
}

func TestFinish_SetsEndedAtOnce(t *testing.T) {
	s := New(SubjectMath1, 1, 4, 20, "", time.Now())
	first := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	s.Finish(first)
	require.Equal(t, Millis(first), s.EndedAt)

	s.Finish(second)
	assert.Equal(t, Millis(first), s.EndedAt, "EndedAt is set once")
}

func TestComputeScore_CountsOnlyMarkedCorrect(t *testing.T) {
	s := New(SubjectMath1, 1, 4, 20, "", time.Now())
	s.Questions[0].Correct = boolPtr(true)
	s.Questions[1].Correct = boolPtr(false)
	// Questions[2] unmarked, Questions[3] unmarked.

	score := s.ComputeScore()
	assert.Equal(t, Score{Correct: 1, Total: 4}, score)
}

func TestWrongAt_FallsBackToStartedAt(t *testing.T) {
	s := New(SubjectMath1, 1, 2, 10, "", time.Now())
	assert.Equal(t, s.StartedAt, s.WrongAt())

	s.EndedAt = s.StartedAt + 60_000
	assert.Equal(t, s.EndedAt, s.WrongAt())
}

func TestEnforcePin(t *testing.T) {
	tests := []struct {
		name       string
		answer     Answer
		wantPinned bool
	}{
		{"pin survives with explanation", Answer{Pinned: true, Explanation: "misread the axis"}, true},
		{"pin survives with screenshot", Answer{Pinned: true, Screenshot: "data:image/png;base64,AAAA"}, true},
		{"pin cleared when both empty", Answer{Pinned: true}, false},
		{"unpinned stays unpinned", Answer{Explanation: "whatever"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.answer
			a.EnforcePin()
			assert.Equal(t, tt.wantPinned, a.Pinned)
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	s := New(SubjectMath2, 1, 3, 15, "orig", time.Now())
	s.Questions[0].Correct = boolPtr(true)
	s.Score = &Score{Correct: 1, Total: 3}

	c := s.Clone()
	*c.Questions[0].Correct = false
	c.Questions[1].Answer.Explanation = "changed"
	c.Score.Correct = 99

	assert.True(t, *s.Questions[0].Correct)
	assert.Empty(t, s.Questions[1].Answer.Explanation)
	assert.Equal(t, 1, s.Score.Correct)
}

func TestCollection_UpsertOrdering(t *testing.T) {
	a := New(SubjectMath1, 1, 2, 10, "a", time.Now())
	b := New(SubjectMath1, 1, 2, 10, "b", time.Now())
	c := New(SubjectMath1, 1, 2, 10, "c", time.Now())

	coll := NewCollection()
	coll = coll.Upsert(a)
	coll = coll.Upsert(b)
	coll = coll.Upsert(c)

	require.Len(t, coll.Sessions, 3)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, ids(coll))

	// Updating an existing session keeps its position.
	a2 := a.Clone()
	a2.Name = "a updated"
	coll = coll.Upsert(a2)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, ids(coll))
	assert.Equal(t, "a updated", coll.Sessions[2].Name)
}

func TestCollection_Remove(t *testing.T) {
	a := New(SubjectMath1, 1, 2, 10, "a", time.Now())
	b := New(SubjectMath1, 1, 2, 10, "b", time.Now())
	coll := NewCollection().Upsert(a).Upsert(b)

	coll = coll.Remove(a.ID)
	assert.Equal(t, []string{b.ID}, ids(coll))

	coll = coll.Remove("no-such-id")
	assert.Equal(t, []string{b.ID}, ids(coll))
}

func TestCollection_Valid(t *testing.T) {
	valid := NewCollection().Upsert(New(SubjectMath1, 1, 2, 10, "", time.Now()))
	assert.True(t, valid.Valid())

	assert.False(t, Collection{}.Valid(), "nil sessions list")

	// An empty id passes the decode gate, so the write gate tolerates
	// it too; otherwise a loaded collection could not be written back.
	noID := New(SubjectMath1, 1, 2, 10, "", time.Now())
	noID.ID = ""
	assert.True(t, NewCollection().Upsert(noID).Valid())

	nilQuestions := New(SubjectMath1, 1, 2, 10, "", time.Now())
	nilQuestions.Questions = nil
	assert.False(t, NewCollection().Upsert(nilQuestions).Valid())
}

func TestCollection_Normalize(t *testing.T) {
	s := New(SubjectMath1, 1, 2, 10, "", time.Now())
	s.Subject = "chemistry"
	s.Questions[0].Tag = ""
	s.Questions[0].Seconds = -5
	s.Questions[1].Answer.Pinned = true // nothing to surface

	c := NewCollection().Upsert(s)
	c.Normalize()

	assert.Equal(t, DefaultSubject(), s.Subject)
	assert.Equal(t, TagNone, s.Questions[0].Tag)
	assert.Zero(t, s.Questions[0].Seconds)
	assert.False(t, s.Questions[1].Answer.Pinned)
}

func ids(c Collection) []string {
	out := make([]string, len(c.Sessions))
	for i, s := range c.Sessions {
		out[i] = s.ID
	}
	return out
}
