package messages

import (
	"encoding/json"
	"strings"
)

// topicParse is the tagged outcome of parsing the topic sub-call. Fallback
// marks that the completion text was not usable JSON; Raw keeps the original
// text for diagnosis.
type topicParse struct {
	Topic    string
	Subtopic *string
	Fallback bool
	Raw      string
}

// parseTopicJSON tolerantly parses the topic completion. The model sometimes
// wraps its JSON in a markdown fence, so fences are stripped before
// unmarshalling. Any failure degrades to the catch-all rather than erroring;
// callers still normalize Topic against the department vocabulary.
func parseTopicJSON(raw string) topicParse {
	text := stripCodeFence(strings.TrimSpace(raw))

	var parsed struct {
		Topic    string  `json:"topic"`
		Subtopic *string `json:"subtopic"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return topicParse{Topic: "", Subtopic: nil, Fallback: true, Raw: raw}
	}
	if parsed.Subtopic != nil && strings.TrimSpace(*parsed.Subtopic) == "" {
		parsed.Subtopic = nil
	}
	return topicParse{Topic: parsed.Topic, Subtopic: parsed.Subtopic, Raw: raw}
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
