package session

import "encoding/json"

// The persisted JSON shape predates the per-question Question record:
// it carries five index-aligned parallel arrays per session. The codec
// keeps that shape on disk and reconciles it on decode, with the
// answers array as the authoritative length. Sibling arrays are padded
// with defaults or truncated, so a hand-edited record with mismatched
// lengths still loads safely.

type collectionWire struct {
	Sessions []json.RawMessage `json:"sessions"`
}

type sessionWire struct {
	ID             *string      `json:"id"`
	Name           string       `json:"name"`
	Subject        string       `json:"subject"`
	StartNum       int          `json:"startNum"`
	EndNum         int          `json:"endNum"`
	StartedAt      int64        `json:"startedAt"`
	EndedAt        int64        `json:"endedAt,omitempty"`
	Minutes        int          `json:"minutes"`
	PerQuestionSec *[]float64   `json:"perQuestionSec"`
	Answers        *[]answerWire `json:"answers"`
	CorrectFlags   []*bool      `json:"correctFlags"`
	GuessedFlags   []bool       `json:"guessedFlags"`
	MistakeTags    []string     `json:"mistakeTags"`
	Score          *Score       `json:"score,omitempty"`
	Notes          string       `json:"notes"`
	Version        int          `json:"version"`
}

type answerWire struct {
	Choice        string `json:"choice,omitempty"`
	Other         string `json:"other"`
	CorrectChoice string `json:"correctChoice,omitempty"`
	Explanation   string `json:"explanation"`
	Pinned        bool   `json:"pinned"`
	Screenshot    string `json:"screenshot,omitempty"`
}

// EncodeCollection serializes the collection into the persisted shape.
func EncodeCollection(c Collection) ([]byte, error) {
	wire := collectionWire{Sessions: make([]json.RawMessage, 0, len(c.Sessions))}
	for _, s := range c.Sessions {
		raw, err := json.Marshal(encodeSession(s))
		if err != nil {
			return nil, err
		}
		wire.Sessions = append(wire.Sessions, raw)
	}
	return json.Marshal(wire)
}

// DecodeCollection parses and sanitizes a persisted collection.
// ok is false only when the top-level shape is unusable (not an object
// with a list-typed sessions field). Elements failing the minimal
// per-session contract are silently dropped: partial recovery is
// preferred over total failure.
func DecodeCollection(data []byte) (Collection, bool) {
	var wire collectionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return Collection{}, false
	}
	if wire.Sessions == nil {
		return Collection{}, false
	}
	out := NewCollection()
	for _, raw := range wire.Sessions {
		if s, ok := decodeSession(raw); ok {
			out.Sessions = append(out.Sessions, s)
		}
	}
	return out, true
}

func encodeSession(s *Session) sessionWire {
	n := len(s.Questions)
	sec := make([]float64, n)
	answers := make([]answerWire, n)
	correct := make([]*bool, n)
	guessed := make([]bool, n)
	tags := make([]string, n)
	for i, q := range s.Questions {
		sec[i] = float64(q.Seconds)
		answers[i] = answerWire(q.Answer)
		correct[i] = q.Correct
		guessed[i] = q.Guessed
		tags[i] = string(q.Tag)
	}
	id := s.ID
	return sessionWire{
		ID:             &id,
		Name:           s.Name,
		Subject:        string(s.Subject),
		StartNum:       s.StartNum,
		EndNum:         s.EndNum,
		StartedAt:      s.StartedAt,
		EndedAt:        s.EndedAt,
		Minutes:        s.Minutes,
		PerQuestionSec: &sec,
		Answers:        &answers,
		CorrectFlags:   correct,
		GuessedFlags:   guessed,
		MistakeTags:    tags,
		Score:          s.Score,
		Notes:          s.Notes,
		Version:        s.Version,
	}
}

// decodeSession applies the minimal duck-typed contract (a string id
// plus list-typed answers and perQuestionSec), then normalizes the
// element, filling defaults for everything optional. This is what lets
// records written by older schema versions load under the current one.
func decodeSession(raw json.RawMessage) (*Session, bool) {
	var w sessionWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, false
	}
	if w.ID == nil || w.Answers == nil || w.PerQuestionSec == nil {
		return nil, false
	}

	subject, _ := ParseSubject(w.Subject)

	n := len(*w.Answers)
	questions := make([]Question, n)
	for i := range questions {
		q := &questions[i]
		q.Answer = Answer((*w.Answers)[i])
		q.Answer.EnforcePin()
		if i < len(*w.PerQuestionSec) && (*w.PerQuestionSec)[i] > 0 {
			q.Seconds = int((*w.PerQuestionSec)[i])
		}
		if i < len(w.CorrectFlags) {
			q.Correct = w.CorrectFlags[i]
		}
		if i < len(w.GuessedFlags) {
			q.Guessed = w.GuessedFlags[i]
		}
		q.Tag = TagNone
		if i < len(w.MistakeTags) {
			if t, ok := ParseMistakeTag(w.MistakeTags[i]); ok {
				q.Tag = t
			}
		}
	}

	return &Session{
		ID:        *w.ID,
		Name:      w.Name,
		Subject:   subject,
		StartNum:  w.StartNum,
		EndNum:    w.EndNum,
		StartedAt: w.StartedAt,
		EndedAt:   w.EndedAt,
		Minutes:   w.Minutes,
		Questions: questions,
		Score:     w.Score,
		Notes:     w.Notes,
		Version:   Version,
	}, true
}
