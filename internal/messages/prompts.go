package messages

import "fmt"

// Sub-call budgets. Classification runs cold; translation and answering get
// room to write.
const (
	labelMaxTokens       = 50
	labelTemperature     = 0.1
	topicMaxTokens       = 100
	topicTemperature     = 0
	translateMaxTokens   = 500
	translateTemperature = 0.3
	answerMaxTokens      = 500
	answerTemperature    = 0.7
)

const sentimentSystem = `You analyze the sentiment of hotel guest messages. ` +
	`Respond with exactly one word: positive, negative, or neutral. ` +
	`Do not add punctuation or explanation.`

const urgencySystem = `You assess how urgent a hotel guest message is. ` +
	`Respond with exactly one word: URGENT, HIGH, MEDIUM, or LOW. ` +
	`Do not add punctuation or explanation.`

const topicSystem = `You classify hotel guest messages by department.
Respond with a JSON object containing "topic" and "subtopic" keys and nothing else.
"topic" must be one of: housekeeping, maintenance, front_desk, concierge, room_service, food_and_beverage, spa, transportation, billing, reservations, amenities, wifi, security, check_in, check_out, other.
"subtopic" is a short free-text refinement, or null.

Examples:
Message: "Could we get fresh towels for room 212?" -> {"topic": "housekeeping", "subtopic": "towels"}
Message: "The AC in our room rattles all night." -> {"topic": "maintenance", "subtopic": "air conditioning"}
Message: "Is anyone at the desk? We are locked out." -> {"topic": "front_desk", "subtopic": "lockout"}
Message: "Can you book us a table at a seafood place tonight?" -> {"topic": "concierge", "subtopic": "restaurant booking"}
Message: "We'd like two club sandwiches sent to room 410." -> {"topic": "room_service", "subtopic": "food order"}
Message: "What time does the breakfast buffet close?" -> {"topic": "food_and_beverage", "subtopic": "breakfast hours"}
Message: "Do you have couples massages available tomorrow?" -> {"topic": "spa", "subtopic": "massage booking"}
Message: "We need a taxi to the airport at 6am." -> {"topic": "transportation", "subtopic": "airport transfer"}
Message: "There is a minibar charge on my bill I don't recognize." -> {"topic": "billing", "subtopic": "disputed charge"}
Message: "Can we extend our stay by two nights?" -> {"topic": "reservations", "subtopic": "extension"}
Message: "Where can I find the gym?" -> {"topic": "amenities", "subtopic": "gym"}
Message: "The wifi password isn't working on my laptop." -> {"topic": "wifi", "subtopic": "password"}
Message: "Someone keeps knocking on doors on our floor late at night." -> {"topic": "security", "subtopic": "disturbance"}
Message: "We land at 9am, can we check in early?" -> {"topic": "check_in", "subtopic": "early check-in"}
Message: "Could we get a late checkout on Sunday?" -> {"topic": "check_out", "subtopic": "late checkout"}
Message: "Thanks for a wonderful stay!" -> {"topic": "other", "subtopic": null}`

func translationSystem(targetName string) string {
	return fmt.Sprintf(`You are a professional translator for hotel guest communications. `+
		`Translate the guest message into %s. `+
		`Return only the translated text with no explanation.`, targetName)
}

func answerSystem(contextBlock string) string {
	return fmt.Sprintf(`You answer hotel guests' questions using only the reference information below. `+
		`If the answer is not in the reference information, say you do not have that information and suggest contacting the front desk. `+
		`Never invent details that are not in the reference information.

Reference information:
%s`, contextBlock)
}
