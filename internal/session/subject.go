package session

// Subject identifies one of the fixed study subjects.
type Subject string

const (
	SubjectMath1   Subject = "math1"
	SubjectMath2   Subject = "math2"
	SubjectPhysics Subject = "physics"
)

// AllSubjects returns the subjects in canonical order.
func AllSubjects() []Subject {
	return []Subject{SubjectMath1, SubjectMath2, SubjectPhysics}
}

// DefaultSubject is the fallback applied when a persisted record carries
// a missing or unrecognized subject.
func DefaultSubject() Subject {
	return SubjectMath1
}

// ParseSubject returns the Subject for s, or DefaultSubject and false
// when s is not a known subject.
func ParseSubject(s string) (Subject, bool) {
	for _, sub := range AllSubjects() {
		if string(sub) == s {
			return sub, true
		}
	}
	return DefaultSubject(), false
}

// Valid reports whether s is one of the known subjects.
func (s Subject) Valid() bool {
	_, ok := ParseSubject(string(s))
	return ok
}

// DisplayName returns a human-readable label for the subject.
func (s Subject) DisplayName() string {
	switch s {
	case SubjectMath1:
		return "Math I"
	case SubjectMath2:
		return "Math II"
	case SubjectPhysics:
		return "Physics"
	default:
		return string(s)
	}
}
