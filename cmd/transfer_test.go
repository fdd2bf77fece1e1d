package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/takeru/prepdeck/internal/session"
)

func TestMissingSessions(t *testing.T) {
	a := session.New(session.SubjectMath1, 1, 2, 10, "a", time.Now())
	b := session.New(session.SubjectMath1, 1, 2, 10, "b", time.Now())

	persisted := session.NewCollection().Upsert(a)
	want := []*session.Session{a, b}

	assert.Equal(t, 1, missingSessions(persisted, want))
	assert.Equal(t, 0, missingSessions(persisted.Upsert(b), want))
	assert.Equal(t, 2, missingSessions(session.NewCollection(), want))
	assert.Equal(t, 0, missingSessions(session.NewCollection(), nil))
}
