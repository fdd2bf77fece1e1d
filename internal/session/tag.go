package session

// MistakeTag categorizes why a question was missed.
type MistakeTag string

const (
	TagNone     MistakeTag = "None"
	TagCareless MistakeTag = "Careless"
	TagConcept  MistakeTag = "Concept"
	TagRushed   MistakeTag = "Rushed"
	TagMisread  MistakeTag = "Misread"
	TagOther    MistakeTag = "Other"
)

// AllMistakeTags returns the tags in display order.
func AllMistakeTags() []MistakeTag {
	return []MistakeTag{TagNone, TagCareless, TagConcept, TagRushed, TagMisread, TagOther}
}

// ParseMistakeTag returns the tag for s, or TagNone and false when s is
// not a known tag.
func ParseMistakeTag(s string) (MistakeTag, bool) {
	for _, t := range AllMistakeTags() {
		if string(t) == s {
			return t, true
		}
	}
	return TagNone, false
}
