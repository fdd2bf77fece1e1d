package drill

import (
	"fmt"
	"sort"

	"github.com/takeru/prepdeck/internal/session"
)

// Item is a derived, read-only view of one previously-wrong question
// eligible for replay. Only explicitly-marked-wrong answers with a
// captured screenshot qualify: the drill view replays the screenshot,
// so a wrong answer without one has nothing to show.
type Item struct {
	Key           string
	Subject       session.Subject
	Number        int
	Screenshot    string
	Choice        string
	CorrectChoice string
	Explanation   string
	Tag           session.MistakeTag
	WrongAt       int64 // epoch ms, from the originating session
	AnswerSec     int   // historic time-to-answer
}

// ItemKey builds the stable identity for a drillable question.
func ItemKey(subject session.Subject, number int) string {
	return fmt.Sprintf("%s|%d", subject, number)
}

// BuildPool scans the whole collection and returns the drillable items
// for one subject, ordered by question number. When several sessions
// got the same question wrong, the most recently wrong one wins.
func BuildPool(c session.Collection, subject session.Subject) []Item {
	byKey := make(map[string]Item)
	for _, s := range c.Sessions {
		wrongAt := s.WrongAt()
		for i := range s.Questions {
			q := &s.Questions[i]
			if q.Correct == nil || *q.Correct {
				continue
			}
			if q.Answer.Screenshot == "" {
				continue
			}
			key := ItemKey(s.Subject, s.Number(i))
			if prev, ok := byKey[key]; ok && prev.WrongAt >= wrongAt {
				continue
			}
			byKey[key] = Item{
				Key:           key,
				Subject:       s.Subject,
				Number:        s.Number(i),
				Screenshot:    q.Answer.Screenshot,
				Choice:        q.Answer.Choice,
				CorrectChoice: q.Answer.CorrectChoice,
				Explanation:   q.Answer.Explanation,
				Tag:           q.Tag,
				WrongAt:       wrongAt,
				AnswerSec:     q.Seconds,
			}
		}
	}

	pool := make([]Item, 0, len(byKey))
	for _, it := range byKey {
		if it.Subject == subject {
			pool = append(pool, it)
		}
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].Number < pool[j].Number })
	return pool
}
