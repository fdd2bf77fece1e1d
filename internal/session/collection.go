package session

// Collection is the root persisted structure: all sessions ordered
// most-recently-created first.
type Collection struct {
	Sessions []*Session
}

// NewCollection returns an empty, valid collection.
func NewCollection() Collection {
	return Collection{Sessions: []*Session{}}
}

// Find returns the session with the given id, or nil.
func (c Collection) Find(id string) *Session {
	for _, s := range c.Sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Upsert replaces the session with matching id in place, or prepends it
// when absent. Updates never reorder the collection.
func (c Collection) Upsert(s *Session) Collection {
	for i, existing := range c.Sessions {
		if existing.ID == s.ID {
			out := c
			out.Sessions = append([]*Session{}, c.Sessions...)
			out.Sessions[i] = s
			return out
		}
	}
	out := c
	out.Sessions = append([]*Session{s}, c.Sessions...)
	return out
}

// Remove drops the session with matching id, if present.
func (c Collection) Remove(id string) Collection {
	out := c
	out.Sessions = make([]*Session, 0, len(c.Sessions))
	for _, s := range c.Sessions {
		if s.ID != id {
			out.Sessions = append(out.Sessions, s)
		}
	}
	return out
}

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	out := Collection{Sessions: make([]*Session, len(c.Sessions))}
	for i, s := range c.Sessions {
		out.Sessions[i] = s.Clone()
	}
	return out
}

// Valid reports whether the collection satisfies the minimal write
// contract: a sessions list whose elements each carry a question list.
// The contract matches the decode gate exactly, so anything Load
// accepts can also be written back (and removed). An empty id is
// tolerated for that reason. Invalid collections are rejected by the
// store rather than partially written.
func (c Collection) Valid() bool {
	if c.Sessions == nil {
		return false
	}
	for _, s := range c.Sessions {
		if s == nil || s.Questions == nil {
			return false
		}
	}
	return true
}

// Normalize applies the defaulting rules a persisted record would
// receive on load: unknown subjects fall back to the default, tags fall
// back to None, stale pins are cleared, and the schema version is set.
func (c Collection) Normalize() {
	for _, s := range c.Sessions {
		if s == nil {
			continue
		}
		if !s.Subject.Valid() {
			s.Subject = DefaultSubject()
		}
		s.Version = Version
		for i := range s.Questions {
			q := &s.Questions[i]
			if q.Tag == "" {
				q.Tag = TagNone
			}
			if q.Seconds < 0 {
				q.Seconds = 0
			}
			q.Answer.EnforcePin()
		}
	}
}
