package voicebot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"savora/models"
	"savora/utils"

	"go.uber.org/zap"
)

// Stop-words ignored when checking whether a model-suggested restaurant name
// has any textual basis in the original command.
var matchStopWords = map[string]struct{}{
	"restaurant": {}, "hotel": {}, "the": {}, "cafe": {}, "food": {}, "diner": {},
}

const defaultModelTimeout = 15 * time.Second

// Resolver turns a raw command plus a candidate restaurant list into a
// structured reservation intent. The model collaborator is injected; a nil
// model disables AI processing entirely and every request takes the
// deterministic fallback path. Resolvers are stateless across requests and
// safe for concurrent use.
type Resolver struct {
	Model   ModelClient
	Timeout time.Duration

	now func() time.Time
}

func NewResolver(model ModelClient) *Resolver {
	return &Resolver{
		Model:   model,
		Timeout: defaultModelTimeout,
		now:     time.Now,
	}
}

// Enabled reports whether AI processing is available.
func (rs *Resolver) Enabled() bool {
	return rs != nil && rs.Model != nil
}

func (rs *Resolver) clock() time.Time {
	if rs.now != nil {
		return rs.now()
	}
	return time.Now()
}

// Resolve processes a voice command. It never returns an error: collaborator
// failures route to the deterministic fallback and every path yields a
// well-formed intent.
func (rs *Resolver) Resolve(ctx context.Context, command string, restaurants []models.Restaurant, userCtx map[string]string) *models.ReservationIntent {
	logger := utils.GetLogger()

	if !rs.Enabled() {
		return rs.finalize(command, restaurants, rs.fallback(command, restaurants))
	}

	prompt := buildReservationPrompt(command, restaurants, rs.clock())

	callCtx, cancel := context.WithTimeout(ctx, rs.Timeout)
	defer cancel()
	raw, err := rs.Model.GenerateContent(callCtx, prompt)
	if err != nil {
		logger.Warn("model call failed, using deterministic fallback", zap.Error(err))
		return rs.finalize(command, restaurants, rs.fallback(command, restaurants))
	}

	parsed := parseModelResponse(raw)
	if parsed.Outcome != ParseOK {
		logger.Warn("unusable model response",
			zap.Int("outcome", int(parsed.Outcome)),
			zap.String("field", parsed.Field))
		return troubleUnderstandingIntent()
	}

	intent := rs.crossValidate(parsed.Reply, command, restaurants)
	return rs.finalize(command, restaurants, intent)
}

// troubleUnderstandingIntent is the fixed reply for unusable model output.
func troubleUnderstandingIntent() *models.ReservationIntent {
	return &models.ReservationIntent{
		Intent:          models.IntentReservation,
		Confidence:      0.5,
		RestaurantMatch: models.RestaurantMatch{Found: false},
		ReservationDetails: models.ReservationDetails{
			Guests: 2,
		},
		ResponseMessage: "I had trouble understanding your request. Please try again.",
		ActionRequired:  models.ActionAskClarify,
	}
}

// fallback handles commands deterministically when the model is unavailable:
// keyword intent classification plus a loose substring restaurant scan.
func (rs *Resolver) fallback(command string, restaurants []models.Restaurant) *models.ReservationIntent {
	commandLower := strings.ToLower(command)

	intent := models.IntentOther
	switch {
	case containsAny(commandLower, "book", "reserve", "table", "reservation"):
		intent = models.IntentReservation
	case containsAny(commandLower, "hello", "hi", "hey"):
		intent = models.IntentGreeting
	}

	match := models.RestaurantMatch{Found: false}
	for i := range restaurants {
		r := &restaurants[i]
		nameLower := strings.ToLower(r.Name)
		if strings.Contains(commandLower, nameLower) || anyWordIn(nameLower, commandLower) {
			match = models.RestaurantMatch{
				Found:        true,
				Name:         r.Name,
				Confidence:   0.7,
				RestaurantID: r.ID,
				Restaurant:   r,
			}
			break
		}
	}

	action := models.ActionProvideInfo
	if intent == models.IntentReservation && match.Found {
		action = models.ActionBookTable
	}

	return &models.ReservationIntent{
		Intent:          intent,
		Confidence:      0.6,
		RestaurantMatch: match,
		ResponseMessage: "I understood your request. Let me help you with that.",
		ActionRequired:  action,
	}
}

// crossValidate converts the model reply into an intent, re-validating the
// claimed restaurant against the candidate list and guarding against
// hallucinated matches that have no basis in the spoken command.
func (rs *Resolver) crossValidate(reply *modelReply, command string, restaurants []models.Restaurant) *models.ReservationIntent {
	intent := &models.ReservationIntent{
		Intent:     reply.Intent,
		Confidence: reply.Confidence,
		RestaurantMatch: models.RestaurantMatch{
			Found:        reply.RestaurantMatch.Found,
			Name:         reply.RestaurantMatch.Name,
			Confidence:   reply.RestaurantMatch.Confidence,
			Alternatives: reply.RestaurantMatch.Alternatives,
		},
		ReservationDetails: models.ReservationDetails{
			Date:            reply.ReservationDetails.Date,
			Time:            reply.ReservationDetails.Time,
			SpecialRequests: reply.ReservationDetails.SpecialRequests,
		},
		TimeValidation: models.TimeValidation{
			IsValid: reply.TimeValidation.IsValid,
			Message: reply.TimeValidation.Message,
		},
		ResponseMessage: reply.ResponseMessage,
		ActionRequired:  reply.ActionRequired,
	}
	if g, ok := guestsAsInt(reply.ReservationDetails.Guests); ok {
		intent.ReservationDetails.Guests = g
	}

	if !intent.RestaurantMatch.Found {
		// The model found nothing; for reservation intents try the
		// manual command matcher before giving up.
		if intent.Intent == models.IntentReservation {
			if manual := SearchRestaurantInCommand(command, restaurants); manual.Found {
				intent.RestaurantMatch = manual
				intent.ResponseMessage = fmt.Sprintf("Great! I found %s. Let me help you make a reservation.", manual.Name)
				intent.ActionRequired = models.ActionBookTable
			}
		}
		return intent
	}

	suggestedName := intent.RestaurantMatch.Name

	// Exact (case-insensitive) name match first, then the fuzzy matcher.
	var resolved *models.Restaurant
	for i := range restaurants {
		if strings.EqualFold(restaurants[i].Name, suggestedName) {
			resolved = &restaurants[i]
			break
		}
	}
	if resolved != nil {
		intent.RestaurantMatch.Name = resolved.Name
		intent.RestaurantMatch.RestaurantID = resolved.ID
		intent.RestaurantMatch.Restaurant = resolved
	} else {
		intent.RestaurantMatch = MatchRestaurant(suggestedName, restaurants)
	}

	// Hallucination guard: at least one significant token of the suggested
	// name must literally appear in the normalized command.
	originalNorm := Normalize(command)
	var sigWords []string
	for _, w := range tokens(Normalize(suggestedName), 2) {
		if _, stop := matchStopWords[w]; !stop {
			sigWords = append(sigWords, w)
		}
	}
	grounded := len(sigWords) == 0
	for _, w := range sigWords {
		if strings.Contains(originalNorm, w) {
			grounded = true
			break
		}
	}
	if !grounded {
		aiConf := intent.RestaurantMatch.Confidence
		manual := SearchRestaurantInCommand(command, restaurants)
		threshold := ManualOverrideFloor
		if aiConf > threshold {
			threshold = aiConf
		}
		if manual.Found && manual.Confidence >= threshold {
			// Prefer the match derived from the user's spoken command.
			intent.RestaurantMatch = manual
			intent.ResponseMessage = fmt.Sprintf("I found %s from your command. Proceeding with details.", manual.Name)
			if intent.ActionRequired == "" {
				intent.ActionRequired = models.ActionBookTable
			}
		} else {
			if aiConf > 0.5 {
				intent.RestaurantMatch.Confidence = 0.5
			}
			intent.ActionRequired = models.ActionAskClarify
			intent.ResponseMessage = fmt.Sprintf("I found %s, but I'm not sure that's what you said. Could you confirm the restaurant name?", suggestedName)
		}
	}

	return intent
}

// finalize normalizes reservation details and enforces the booking gate:
// book_table requires a found restaurant, an explicit time, and a passing
// operating-hours validation. A validation failure never switches
// restaurants; it asks for a different time.
func (rs *Resolver) finalize(command string, restaurants []models.Restaurant, intent *models.ReservationIntent) *models.ReservationIntent {
	details := &intent.ReservationDetails

	if _, err := time.Parse(dateLayout, details.Date); err != nil {
		details.Date = rs.clock().Format(dateLayout)
	}
	if details.Time != "" {
		if _, err := time.Parse("15:04", details.Time); err != nil {
			details.Time = "19:00"
		}
	}
	if details.Guests <= 0 {
		if extracted, ok := ExtractGuestCount(command); ok {
			details.Guests = extracted
		} else {
			details.Guests = 2
		}
	}

	if intent.ActionRequired != models.ActionBookTable {
		return intent
	}

	match := &intent.RestaurantMatch
	if !match.Found {
		intent.ActionRequired = models.ActionAskClarify
		return intent
	}
	if details.Time == "" {
		intent.ActionRequired = models.ActionAskClarify
		intent.ResponseMessage = fmt.Sprintf("I found %s for %d people on %s. What time would you like to book?",
			match.Name, details.Guests, details.Date)
		return intent
	}

	restaurant := match.Restaurant
	if restaurant == nil {
		restaurant = findByID(restaurants, match.RestaurantID)
	}
	if restaurant == nil || len(restaurant.OperatingHours) == 0 {
		return intent
	}

	ok, reason := validateReservationTimeAt(restaurant, details.Date, details.Time, rs.clock())
	if !ok {
		intent.ActionRequired = models.ActionAskClarify
		intent.TimeValidation = models.TimeValidation{IsValid: false, Message: reason}
		intent.ResponseMessage = fmt.Sprintf(
			"I'm sorry, but bookings are not available at %s on %s. %s Please choose a different time within the restaurant's operating hours.",
			details.Time, details.Date, reason)
		return intent
	}

	intent.TimeValidation = models.TimeValidation{IsValid: true}
	return intent
}

// ConversationReply generates a general chat response, with a canned reply
// when the model is unavailable or fails.
func (rs *Resolver) ConversationReply(ctx context.Context, message string) string {
	const canned = "I'm here to help you make restaurant reservations. Try saying 'book a table at [restaurant name]'."
	if !rs.Enabled() {
		return canned
	}

	callCtx, cancel := context.WithTimeout(ctx, rs.Timeout)
	defer cancel()
	reply, err := rs.Model.GenerateContent(callCtx, conversationPrompt(message))
	if err != nil {
		utils.GetLogger().Warn("conversation reply failed", zap.Error(err))
		return "I'm here to help you with restaurant reservations. How can I assist you today?"
	}
	return strings.TrimSpace(reply)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func anyWordIn(name, command string) bool {
	for _, w := range strings.Fields(name) {
		if strings.Contains(command, w) {
			return true
		}
	}
	return false
}

func findByID(restaurants []models.Restaurant, id string) *models.Restaurant {
	if id == "" {
		return nil
	}
	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i]
		}
	}
	return nil
}
