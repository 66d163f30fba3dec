// Package departments holds the closed vocabulary of departments a guest
// message can be routed to.
package departments

import "strings"

// Other is the catch-all department for anything the classifier cannot place.
const Other = "other"

var vocabulary = []string{
	"housekeeping",
	"maintenance",
	"front_desk",
	"concierge",
	"room_service",
	"food_and_beverage",
	"spa",
	"transportation",
	"billing",
	"reservations",
	"amenities",
	"wifi",
	"security",
	"check_in",
	"check_out",
	Other,
}

var members = func() map[string]struct{} {
	set := make(map[string]struct{}, len(vocabulary))
	for _, d := range vocabulary {
		set[d] = struct{}{}
	}
	return set
}()

// Normalize coerces a raw topic label onto the fixed vocabulary. Anything
// outside the set, including empty input, becomes Other.
func Normalize(raw string) string {
	topic := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := members[topic]; ok {
		return topic
	}
	return Other
}

// All returns the vocabulary in a stable order.
func All() []string {
	return append([]string(nil), vocabulary...)
}
