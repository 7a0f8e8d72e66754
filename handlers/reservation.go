package handlers

import (
	"net/http"

	"savora/middleware"
	"savora/models"
	"savora/services/reservation"
	"savora/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler exposes booking endpoints. All routes sit behind the
// auth middleware.
type ReservationHandler struct {
	ReservationService reservation.ReservationService
	UserService        user.UserService
}

// currentUser loads the authenticated user or writes the error response.
func (h *ReservationHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return nil, false
	}
	usr, err := h.UserService.GetByID(userID)
	if err != nil || usr == nil {
		getLogger(c).Error("Authenticated user not found", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
		return nil, false
	}
	return usr, true
}

// CreateReservationHandler handles POST /api/reservations.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	usr, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req reservation.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booked, err := h.ReservationService.Create(usr, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, booked)
}

// ListReservationsHandler handles GET /api/reservations.
func (h *ReservationHandler) ListReservationsHandler(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	reservations, err := h.ReservationService.ListForUser(userID)
	if err != nil {
		getLogger(c).Error("Failed to list reservations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations, "count": len(reservations)})
}

// GetReservationHandler handles GET /api/reservations/:id.
func (h *ReservationHandler) GetReservationHandler(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	booked, err := h.ReservationService.Get(c.Param("id"), userID)
	if err != nil {
		getLogger(c).Error("Failed to fetch reservation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reservation"})
		return
	}
	if booked == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	c.JSON(http.StatusOK, booked)
}

// CancelReservationHandler handles DELETE /api/reservations/:id.
func (h *ReservationHandler) CancelReservationHandler(c *gin.Context) {
	usr, ok := h.currentUser(c)
	if !ok {
		return
	}

	cancelled, err := h.ReservationService.Cancel(c.Param("id"), usr)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cancelled)
}
