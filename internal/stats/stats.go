// Package stats aggregates per-subject score and pacing figures from
// the session collection. It is a read-only consumer of the store.
package stats

import (
	"sort"

	"github.com/takeru/prepdeck/internal/session"
)

// Point is one finished session's accuracy, for trend display.
type Point struct {
	When     int64 // epoch ms, session end time
	Name     string
	Correct  int
	Total    int
	Accuracy float64 // 0..1, over marked questions
}

// SubjectStats summarizes one subject across all sessions.
type SubjectStats struct {
	Subject        session.Subject
	Sessions       int
	Finished       int
	Marked         int // questions with a correctness decision
	Correct        int
	Wrong          int
	Accuracy       float64 // 0..1, over marked questions
	AvgSecPerQ     float64 // over questions with recorded time
	TaggedMistakes map[session.MistakeTag]int
	Trend          []Point // finished sessions, oldest first

	timedQuestions int
	timedSeconds   int
}

// Compute builds per-subject summaries for every subject that has at
// least one session, in canonical subject order.
func Compute(c session.Collection) []SubjectStats {
	bySubject := make(map[session.Subject]*SubjectStats)

	for _, s := range c.Sessions {
		st := bySubject[s.Subject]
		if st == nil {
			st = &SubjectStats{
				Subject:        s.Subject,
				TaggedMistakes: make(map[session.MistakeTag]int),
			}
			bySubject[s.Subject] = st
		}
		st.Sessions++

		var marked, correct int
		for i := range s.Questions {
			q := &s.Questions[i]
			if q.Seconds > 0 {
				st.timedQuestions++
				st.timedSeconds += q.Seconds
			}
			if q.Correct == nil {
				continue
			}
			marked++
			if *q.Correct {
				correct++
			} else if q.Tag != session.TagNone {
				st.TaggedMistakes[q.Tag]++
			}
		}
		st.Marked += marked
		st.Correct += correct
		st.Wrong += marked - correct

		if s.EndedAt != 0 {
			st.Finished++
			p := Point{When: s.EndedAt, Name: s.Name, Correct: correct, Total: len(s.Questions)}
			if marked > 0 {
				p.Accuracy = float64(correct) / float64(marked)
			}
			st.Trend = append(st.Trend, p)
		}
	}

	out := make([]SubjectStats, 0, len(bySubject))
	for _, subject := range session.AllSubjects() {
		st := bySubject[subject]
		if st == nil {
			continue
		}
		if st.Marked > 0 {
			st.Accuracy = float64(st.Correct) / float64(st.Marked)
		}
		if st.timedQuestions > 0 {
			st.AvgSecPerQ = float64(st.timedSeconds) / float64(st.timedQuestions)
		}
		sort.Slice(st.Trend, func(i, j int) bool { return st.Trend[i].When < st.Trend[j].When })
		out = append(out, *st)
	}
	return out
}
