package drill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takeru/prepdeck/internal/session"
)

const testShot = "data:image/png;base64,AAAA"

func boolPtr(v bool) *bool { return &v }

// wrongSession builds a finished session with one wrong, screenshot-
// bearing answer at the given question number.
func wrongSession(subject session.Subject, num int, endedAt time.Time) *session.Session {
	s := session.New(subject, num, num, 10, "", endedAt.Add(-30*time.Minute))
	s.Questions[0].Correct = boolPtr(false)
	s.Questions[0].Answer.Screenshot = testShot
	s.Questions[0].Seconds = 60
	s.EndedAt = session.Millis(endedAt)
	return s
}

func TestBuildPool_FiltersCandidates(t *testing.T) {
	now := time.Now()
	s := session.New(session.SubjectMath1, 1, 5, 30, "", now)
	s.Questions[0].Correct = boolPtr(false) // wrong but no screenshot
	s.Questions[1].Correct = boolPtr(false) // drillable
	s.Questions[1].Answer.Screenshot = testShot
	s.Questions[2].Correct = boolPtr(true) // correct
	s.Questions[2].Answer.Screenshot = testShot
	// Questions[3] unmarked with screenshot, Questions[4] untouched.
	s.Questions[3].Answer.Screenshot = testShot

	pool := BuildPool(session.NewCollection().Upsert(s), session.SubjectMath1)

	require.Len(t, pool, 1)
	assert.Equal(t, 2, pool[0].Number)
	assert.Equal(t, "math1|2", pool[0].Key)
	assert.Equal(t, testShot, pool[0].Screenshot)
}

func TestBuildPool_SubjectFilter(t *testing.T) {
	now := time.Now()
	c := session.NewCollection().
		Upsert(wrongSession(session.SubjectMath1, 7, now)).
		Upsert(wrongSession(session.SubjectPhysics, 7, now))

	pool := BuildPool(c, session.SubjectPhysics)
	require.Len(t, pool, 1)
	assert.Equal(t, session.SubjectPhysics, pool[0].Subject)
}

func TestBuildPool_LastWrongWins(t *testing.T) {
	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now()

	olderSession := wrongSession(session.SubjectMath1, 3, older)
	olderSession.Questions[0].Answer.Explanation = "older miss"
	newerSession := wrongSession(session.SubjectMath1, 3, newer)
	newerSession.Questions[0].Answer.Explanation = "newer miss"

	// Insertion order must not matter, only the wrong timestamp.
	c := session.NewCollection().Upsert(newerSession).Upsert(olderSession)

	pool := BuildPool(c, session.SubjectMath1)
	require.Len(t, pool, 1)
	assert.Equal(t, "newer miss", pool[0].Explanation)
	assert.Equal(t, session.Millis(newer), pool[0].WrongAt)
}

func TestBuildPool_UnfinishedSessionUsesStartTime(t *testing.T) {
	s := session.New(session.SubjectMath1, 1, 1, 10, "", time.Now())
	s.Questions[0].Correct = boolPtr(false)
	s.Questions[0].Answer.Screenshot = testShot

	pool := BuildPool(session.NewCollection().Upsert(s), session.SubjectMath1)
	require.Len(t, pool, 1)
	assert.Equal(t, s.StartedAt, pool[0].WrongAt)
}

func TestBuildPool_OrderedByNumber(t *testing.T) {
	now := time.Now()
	c := session.NewCollection().
		Upsert(wrongSession(session.SubjectMath1, 9, now)).
		Upsert(wrongSession(session.SubjectMath1, 2, now)).
		Upsert(wrongSession(session.SubjectMath1, 5, now))

	pool := BuildPool(c, session.SubjectMath1)
	require.Len(t, pool, 3)
	assert.Equal(t, []int{2, 5, 9}, []int{pool[0].Number, pool[1].Number, pool[2].Number})
}
