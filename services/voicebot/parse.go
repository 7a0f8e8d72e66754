package voicebot

import (
	"encoding/json"
	"strings"
)

// ParseOutcome tags the result of parsing a raw model response. Downstream
// code only ever consumes validated fields from a ParseOK result.
type ParseOutcome int

const (
	ParseOK ParseOutcome = iota
	// ParseNoJSON means no parseable JSON object was found in the response.
	ParseNoJSON
	// ParseSchemaViolation means the JSON parsed but a required field was
	// missing or malformed; Field names the offender.
	ParseSchemaViolation
)

// modelReply mirrors the JSON structure the model is instructed to return.
// Guests is left untyped because models occasionally emit it as a word or
// quoted number; the resolver re-derives it in that case.
type modelReply struct {
	Intent          string  `json:"intent"`
	Confidence      float64 `json:"confidence"`
	RestaurantMatch struct {
		Found        bool     `json:"found"`
		Name         string   `json:"name"`
		Confidence   float64  `json:"confidence"`
		Alternatives []string `json:"alternatives"`
	} `json:"restaurant_match"`
	ReservationDetails struct {
		Guests          any    `json:"guests"`
		Date            string `json:"date"`
		Time            string `json:"time"`
		SpecialRequests string `json:"special_requests"`
	} `json:"reservation_details"`
	TimeValidation struct {
		IsValid bool   `json:"is_valid"`
		Message string `json:"message"`
	} `json:"time_validation"`
	ResponseMessage string `json:"response_message"`
	ActionRequired  string `json:"action_required"`
}

// ParseResult is the tagged outcome of parseModelResponse.
type ParseResult struct {
	Outcome ParseOutcome
	Field   string
	Reply   *modelReply
}

// parseModelResponse locates the JSON object in a raw model response (models
// sometimes wrap it in prose or code fences) and validates its shape.
func parseModelResponse(raw string) ParseResult {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return ParseResult{Outcome: ParseNoJSON}
	}

	var reply modelReply
	if err := json.Unmarshal([]byte(raw[start:end+1]), &reply); err != nil {
		return ParseResult{Outcome: ParseNoJSON}
	}

	if reply.Intent == "" {
		return ParseResult{Outcome: ParseSchemaViolation, Field: "intent"}
	}
	if reply.ActionRequired == "" {
		return ParseResult{Outcome: ParseSchemaViolation, Field: "action_required"}
	}
	if reply.Confidence < 0 || reply.Confidence > 1 {
		return ParseResult{Outcome: ParseSchemaViolation, Field: "confidence"}
	}

	return ParseResult{Outcome: ParseOK, Reply: &reply}
}

// guestsAsInt extracts an integer guest count from the loosely typed field.
func guestsAsInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n == float64(int(n)) && n > 0 {
			return int(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil && i > 0 {
			return int(i), true
		}
	}
	return 0, false
}
