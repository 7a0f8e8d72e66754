package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c
}

func TestGetClientIPFromRemoteAddr(t *testing.T) {
	c := testContext(t)
	c.Request.RemoteAddr = "10.0.0.7:4321"
	assert.Equal(t, "10.0.0.7", getClientIP(c))
}

func TestGetClientIPFromRealIPHeader(t *testing.T) {
	c := testContext(t)
	c.Request.RemoteAddr = "10.0.0.7:4321"
	c.Request.Header.Set("X-Real-IP", " 203.0.113.9 ")
	assert.Equal(t, "203.0.113.9", getClientIP(c))
}

func TestGetClientIPPrefersFirstForwardedEntry(t *testing.T) {
	c := testContext(t)
	c.Request.RemoteAddr = "10.0.0.7:4321"
	c.Request.Header.Set("X-Real-IP", "203.0.113.9")
	c.Request.Header.Set("X-Forwarded-For", "198.51.100.2, 10.0.0.1, 10.0.0.2")
	assert.Equal(t, "198.51.100.2", getClientIP(c))
}
