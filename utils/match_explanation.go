package utils

import (
	"regexp"
	"strings"
)

// MatchExplanation is the structured "who learns what from whom" view parsed
// from a persisted match description string.
type MatchExplanation struct {
	SubjectTopic string `json:"subjectTopic"`
	SubjectRole  string `json:"subjectRole"` // Interest or Expertise
	SubjectWhose string `json:"subjectWhose,omitempty"`
	ObjectTopic  string `json:"objectTopic"`
	ObjectRole   string `json:"objectRole"`
	ObjectWhose  string `json:"objectWhose,omitempty"`
	Generic      bool   `json:"generic,omitempty"` // true when the raw text couldn't be parsed
}

// GenericExplanationText is shown when a description string is missing or
// doesn't match any known format.
const GenericExplanationText = "You matched on shared interests"

// Two legacy description formats were persisted over time:
//
//	"Expertise: X (yours) matched Interest: Y (theirs)"
//	"X (yours) <> Y (theirs)"
var (
	roleFormatRe  = regexp.MustCompile(`^\s*(Interest|Expertise):\s*(.+?)\s*\((.+?)\)\s+matched\s+(Interest|Expertise):\s*(.+?)\s*\((.+?)\)\s*$`)
	arrowFormatRe = regexp.MustCompile(`^\s*(.+?)\s*\((.+?)\)\s*<>\s*(.+?)\s*\((.+?)\)\s*$`)
)

// ParseMatchDescription extracts a structured explanation from a persisted
// description string. Malformed or empty input degrades to a generic
// explanation rather than failing the render.
func ParseMatchDescription(raw string) MatchExplanation {
	if m := roleFormatRe.FindStringSubmatch(raw); m != nil {
		return MatchExplanation{
			SubjectRole:  m[1],
			SubjectTopic: m[2],
			SubjectWhose: m[3],
			ObjectRole:   m[4],
			ObjectTopic:  m[5],
			ObjectWhose:  m[6],
		}
	}

	if m := arrowFormatRe.FindStringSubmatch(raw); m != nil {
		// The arrow format predates explicit roles; the left side was always
		// written from the subject's interest perspective.
		return MatchExplanation{
			SubjectRole:  "Interest",
			SubjectTopic: m[1],
			SubjectWhose: m[2],
			ObjectRole:   "Expertise",
			ObjectTopic:  m[3],
			ObjectWhose:  m[4],
		}
	}

	return MatchExplanation{Generic: true}
}

// DisplayText renders the explanation as a single sentence for the client
func (e MatchExplanation) DisplayText() string {
	if e.Generic {
		return GenericExplanationText
	}
	var b strings.Builder
	b.WriteString(e.SubjectRole)
	b.WriteString(" in ")
	b.WriteString(e.SubjectTopic)
	if e.SubjectWhose != "" {
		b.WriteString(" (")
		b.WriteString(e.SubjectWhose)
		b.WriteString(")")
	}
	b.WriteString(" matched ")
	b.WriteString(strings.ToLower(e.ObjectRole))
	b.WriteString(" in ")
	b.WriteString(e.ObjectTopic)
	if e.ObjectWhose != "" {
		b.WriteString(" (")
		b.WriteString(e.ObjectWhose)
		b.WriteString(")")
	}
	return b.String()
}
