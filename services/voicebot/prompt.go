package voicebot

import (
	"fmt"
	"strings"
	"time"

	"savora/models"
)

// buildReservationPrompt embeds the command, every candidate restaurant
// annotated with today's hours, and the current date/time into the
// instruction prompt sent to the model.
func buildReservationPrompt(command string, restaurants []models.Restaurant, now time.Time) string {
	currentDay := strings.ToLower(now.Weekday().String())

	infos := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		hoursInfo := "Closed today"
		if today, ok := r.OperatingHours[currentDay]; ok && !today.IsClosed {
			hoursInfo = fmt.Sprintf("%s - %s", today.Open, today.Close)
		}
		infos = append(infos, fmt.Sprintf("%s (Open: %s)", r.Name, hoursInfo))
	}

	var b strings.Builder
	b.WriteString("You are an intelligent restaurant reservation assistant. Process the user's voice command and extract reservation details.\n\n")
	fmt.Fprintf(&b, "**USER COMMAND:** %q\n\n", command)
	fmt.Fprintf(&b, "**AVAILABLE RESTAURANTS WITH TODAY'S HOURS:** %s\n\n", strings.Join(infos, ", "))
	fmt.Fprintf(&b, "**CURRENT DATE/TIME:** %s (%s)\n\n", now.Format("2006-01-02 15:04"), titleCase(currentDay))
	b.WriteString(`**TASK:** Analyze the command and return a JSON response with the following structure:

{
    "intent": "reservation|greeting|question|help|other",
    "confidence": 0.0-1.0,
    "restaurant_match": {
        "found": true/false,
        "name": "exact restaurant name from the list",
        "confidence": 0.0-1.0,
        "alternatives": ["alternative1", "alternative2"]
    },
    "reservation_details": {
        "guests": number,
        "date": "YYYY-MM-DD",
        "time": "HH:MM or null if not specified",
        "special_requests": "any special requirements"
    },
    "time_validation": {
        "is_valid": true/false,
        "message": "explanation if time is invalid"
    },
    "response_message": "helpful response to the user",
    "action_required": "book_table|show_restaurants|ask_clarification|provide_info"
}

**GUIDELINES:**
1. Restaurant matching is flexible: match names case-insensitively and with partial matches, but only against the exact list provided.
2. Extract the number of guests from digits ("4 people", "party of 8") and words ("two people", "table for four").
3. Parse time expressions ("7 PM", "19:00", "evening" = 19:00) and validate against the restaurant's hours for the requested day.
4. Parse dates in relative ("today", "tomorrow", "next Friday") and numeric ("the 13th") forms; assume the current month/year when only a day number is given; output YYYY-MM-DD.
5. Defaults: guests = 2 if not specified, date = today if not specified. Time has NO default; if no time is mentioned, set action_required to "ask_clarification" and ask for a time.
6. To set action_required to "book_table", ALL of these must hold: a restaurant from the list was found, a time was explicitly mentioned, and the time is within operating hours. Otherwise use "ask_clarification".
7. When time_validation.is_valid is false, always set action_required to "ask_clarification" and mention the available hours. Never suggest a different restaurant; stay with the requested one and explain the timing constraint.
8. Be conversational and helpful in response_message.
9. Return ONLY valid JSON, no extra text.
`)
	return b.String()
}

// conversationPrompt builds the general-chat prompt.
func conversationPrompt(message string) string {
	return fmt.Sprintf(`You are a friendly restaurant reservation assistant. The user said: %q

Respond naturally and helpfully. Keep responses concise and focused on restaurant reservations.
If they're asking for help, explain how to make reservations using voice commands.

Response:`, message)
}
