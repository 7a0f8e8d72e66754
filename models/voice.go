package models

// VoiceCommandRequest is the payload coming from the frontend into
// /api/voicebot/process.
type VoiceCommandRequest struct {
	Command string            `json:"command"`
	Context map[string]string `json:"context,omitempty"`
}

// ChatRequest is the payload for the general conversation endpoint.
type ChatRequest struct {
	Message string            `json:"message"`
	Context map[string]string `json:"context,omitempty"`
}

// VoiceBookingRequest books a table from resolved intent details.
type VoiceBookingRequest struct {
	RestaurantID    string `json:"restaurant_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests,omitempty"`
}
