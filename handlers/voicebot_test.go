package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"savora/models"
	"savora/services/restaurant"
	"savora/services/voicebot"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRestaurantService struct {
	restaurant.RestaurantService
	restaurants []models.Restaurant
}

func (s *stubRestaurantService) ActiveForMatching() ([]models.Restaurant, error) {
	return s.restaurants, nil
}

func newVoicebotRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &VoicebotHandler{
		Resolver: voicebot.NewResolver(nil),
		RestaurantService: &stubRestaurantService{restaurants: []models.Restaurant{
			{ID: "1", Name: "The Golden Spoon", IsActive: true},
			{ID: "2", Name: "Pizza World", IsActive: true},
		}},
	}
	r := gin.New()
	r.POST("/api/voicebot/process", h.VoiceCommandHandler)
	r.GET("/api/voicebot/status", h.VoicebotStatusHandler)
	return r
}

func postProcess(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, models.ReservationIntent) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/voicebot/process", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp struct {
		Intent models.ReservationIntent `json:"intent"`
	}
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp.Intent
}

func TestVoiceCommandHandlerRequiresCommand(t *testing.T) {
	router := newVoicebotRouter()
	w, _ := postProcess(t, router, `{"command": "  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoiceCommandHandlerFallbackMatch(t *testing.T) {
	router := newVoicebotRouter()
	w, intent := postProcess(t, router, `{"command": "book a table at pizza world for 4"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, intent.RestaurantMatch.Found)
	assert.Equal(t, "Pizza World", intent.RestaurantMatch.Name)
	assert.Equal(t, 4, intent.ReservationDetails.Guests)
}

func TestVoiceCommandHandlerUnknownRestaurant(t *testing.T) {
	router := newVoicebotRouter()
	w, intent := postProcess(t, router, `{"command": "book a table at grand palace tonight"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, intent.RestaurantMatch.Found)
	assert.Equal(t, models.ActionAskClarify, intent.ActionRequired)
	assert.Contains(t, intent.ResponseMessage, "grand palace")
}

func TestVoicebotStatusHandler(t *testing.T) {
	router := newVoicebotRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/voicebot/status", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, false, status["ai_enabled"])
	assert.Equal(t, float64(2), status["restaurants_loaded"])
}
