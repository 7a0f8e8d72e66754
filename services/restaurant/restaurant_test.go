package restaurant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Mumbai CST to Gateway of India, roughly 2.4km apart.
	dist := haversineKm(18.9398, 72.8355, 18.9220, 72.8347)
	assert.InDelta(t, 2.0, dist, 0.5)

	// Same point.
	assert.InDelta(t, 0, haversineKm(18.9398, 72.8355, 18.9398, 72.8355), 0.001)

	// Delhi to Mumbai, roughly 1150km.
	dist = haversineKm(28.6139, 77.2090, 19.0760, 72.8777)
	assert.InDelta(t, 1150, dist, 50)
}
