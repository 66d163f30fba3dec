package faqs

import "time"

// FAQ is one curated question/answer pair scoped to a property. Active pairs
// form the grounding context for guest Q&A.
type FAQ struct {
	ID         string
	PropertyID string
	Question   string
	Answer     string
	Active     bool
	CreatedAt  time.Time
}
