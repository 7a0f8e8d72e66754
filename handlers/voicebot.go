package handlers

import (
	"net/http"
	"strings"

	"savora/models"
	"savora/services/reservation"
	"savora/services/restaurant"
	"savora/services/voicebot"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VoicebotHandler exposes the natural-language reservation endpoints.
type VoicebotHandler struct {
	Resolver           *voicebot.Resolver
	RestaurantService  restaurant.RestaurantService
	ReservationService reservation.ReservationService
	ReservationAuth    *ReservationHandler
}

// VoiceCommandHandler handles POST /api/voicebot/process. It resolves a raw
// spoken or typed command into a structured reservation intent.
func (h *VoicebotHandler) VoiceCommandHandler(c *gin.Context) {
	var req models.VoiceCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Command) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "command is required"})
		return
	}

	restaurants, err := h.RestaurantService.ActiveForMatching()
	if err != nil {
		getLogger(c).Error("Failed to load restaurants for matching", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process command"})
		return
	}

	candidates, preMatch := voicebot.NarrowCandidates(req.Command, restaurants)
	if mentioned := voicebot.MentionedRestaurantName(req.Command); mentioned != "" && !preMatch.Found {
		getLogger(c).Warn("Command names an unknown restaurant", zap.String("mentioned", mentioned))
		c.JSON(http.StatusOK, gin.H{"intent": voicebot.MissingRestaurantIntent(mentioned)})
		return
	}

	intent := h.Resolver.Resolve(c.Request.Context(), req.Command, candidates, req.Context)

	resp := gin.H{"intent": intent}
	// Suggest concrete times when we know the restaurant but not the time.
	if intent.RestaurantMatch.Found && intent.ReservationDetails.Time == "" {
		if r := intent.RestaurantMatch.Restaurant; r != nil {
			slots := voicebot.AvailableTimeSlots(r, intent.ReservationDetails.Date)
			if len(slots) > 0 {
				resp["available_slots"] = slots
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}

// VoiceChatHandler handles POST /api/voicebot/chat for general conversation.
func (h *VoicebotHandler) VoiceChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply := h.Resolver.ConversationReply(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// VoiceBookingHandler handles POST /api/voicebot/book. It turns a resolved
// intent into a confirmed reservation for the authenticated user.
func (h *VoicebotHandler) VoiceBookingHandler(c *gin.Context) {
	usr, ok := h.ReservationAuth.currentUser(c)
	if !ok {
		return
	}

	var req models.VoiceBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booked, err := h.ReservationService.Create(usr, reservation.CreateRequest{
		RestaurantID:    req.RestaurantID,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		BookingMethod:   models.BookingMethodVoice,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, booked)
}

// VoicebotStatusHandler handles GET /api/voicebot/status.
func (h *VoicebotHandler) VoicebotStatusHandler(c *gin.Context) {
	restaurants, err := h.RestaurantService.ActiveForMatching()
	if err != nil {
		getLogger(c).Error("Failed to load restaurants", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "status unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ai_enabled":         h.Resolver.Enabled(),
		"restaurants_loaded": len(restaurants),
	})
}
