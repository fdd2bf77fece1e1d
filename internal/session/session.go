// Package session defines the practice-session data model and its
// persisted JSON codec.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Version is the current schema version written into persisted sessions.
const Version = 1

// Answer is one question's response record plus review metadata.
// Empty strings mean "unset" for the letter and free-text fields;
// Screenshot holds a data URI when present.
type Answer struct {
	Choice        string
	Other         string
	CorrectChoice string
	Explanation   string
	Pinned        bool
	Screenshot    string
}

// EnforcePin clears the pin when there is nothing left to surface.
// Pinning is never set automatically; it only ever turns itself off.
func (a *Answer) EnforcePin() {
	if a.Explanation == "" && a.Screenshot == "" {
		a.Pinned = false
	}
}

// Question holds all per-question state for one index of a session.
// Correct is tri-state: nil means not yet marked.
type Question struct {
	Seconds int
	Answer  Answer
	Correct *bool
	Guessed bool
	Tag     MistakeTag
}

// Score is the correct/total snapshot taken when a session is finished.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Session is one timed practice attempt over a numbered question range.
type Session struct {
	ID        string
	Name      string
	Subject   Subject
	StartNum  int
	EndNum    int
	StartedAt int64 // epoch ms
	EndedAt   int64 // epoch ms, 0 = not finished
	Minutes   int
	Questions []Question
	Score     *Score
	Notes     string
	Version   int
}

// New creates a session over the inclusive question range
// [startNum, endNum]. The caller validates the range and minutes.
func New(subject Subject, startNum, endNum, minutes int, name string, now time.Time) *Session {
	if name == "" {
		name = now.Format("2006-01-02 15:04")
	}
	n := endNum - startNum + 1
	questions := make([]Question, n)
	for i := range questions {
		questions[i].Tag = TagNone
	}
	return &Session{
		ID:        uuid.NewString(),
		Name:      name,
		Subject:   subject,
		StartNum:  startNum,
		EndNum:    endNum,
		StartedAt: Millis(now),
		Minutes:   minutes,
		Questions: questions,
		Version:   Version,
	}
}

// RangeSize returns the number of questions in the session's range.
func (s *Session) RangeSize() int {
	return s.EndNum - s.StartNum + 1
}

// Number returns the question number at index i.
func (s *Session) Number(i int) int {
	return s.StartNum + i
}

// IndexOf returns the index for question number num, or -1 when num is
// outside the session's range.
func (s *Session) IndexOf(num int) int {
	if num < s.StartNum || num > s.EndNum {
		return -1
	}
	return num - s.StartNum
}

// Finish records the completion timestamp (once) and snapshots the score.
func (s *Session) Finish(now time.Time) {
	if s.EndedAt == 0 {
		s.EndedAt = Millis(now)
	}
	score := s.ComputeScore()
	s.Score = &score
}

// ComputeScore counts explicitly-marked-correct questions over the range.
func (s *Session) ComputeScore() Score {
	score := Score{Total: len(s.Questions)}
	for i := range s.Questions {
		if c := s.Questions[i].Correct; c != nil && *c {
			score.Correct++
		}
	}
	return score
}

// WrongAt returns the timestamp that dates this session's mistakes:
// the completion time, falling back to the start time.
func (s *Session) WrongAt() int64 {
	if s.EndedAt != 0 {
		return s.EndedAt
	}
	return s.StartedAt
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	out := *s
	out.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		if q.Correct != nil {
			c := *q.Correct
			q.Correct = &c
		}
		out.Questions[i] = q
	}
	if s.Score != nil {
		sc := *s.Score
		out.Score = &sc
	}
	return &out
}

// Millis converts a time to epoch milliseconds.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis converts epoch milliseconds to a time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}
