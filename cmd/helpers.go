package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/takeru/prepdeck/internal/session"
)

// resolveSession finds a session by exact id or unambiguous id prefix.
func resolveSession(c session.Collection, ref string) (*session.Session, error) {
	if s := c.Find(ref); s != nil {
		return s, nil
	}
	var matches []*session.Session
	for _, s := range c.Sessions {
		if strings.HasPrefix(s.ID, ref) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no session matches %q", ref)
	default:
		return nil, fmt.Errorf("session id %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// parseSubjectFlag validates a required --subject value.
func parseSubjectFlag(raw string) (session.Subject, error) {
	subject, ok := session.ParseSubject(raw)
	if !ok {
		var names []string
		for _, s := range session.AllSubjects() {
			names = append(names, string(s))
		}
		return subject, fmt.Errorf("unknown subject %q (one of: %s)", raw, strings.Join(names, ", "))
	}
	return subject, nil
}

// shortID returns the first eight characters of an id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatWhen(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return session.FromMillis(ms).Local().Format("2006-01-02 15:04")
}

func formatScore(s *session.Session) string {
	score := s.ComputeScore()
	if score.Total == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d", score.Correct, score.Total)
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Second).String()
}
