package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"varahicare/models"
	"varahicare/services/bookingstore"
)

// BookingHandler exposes the public booking submission endpoint.
type BookingHandler struct {
	Store  bookingstore.BookingStore
	Logger *zap.Logger
}

func NewBookingHandler(store bookingstore.BookingStore, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Store: store, Logger: logger}
}

// CreateBooking handles POST /api/bookings. Validation is required-field
// presence only; the selection may be empty (general inspection).
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking := h.Store.Append(c.Request.Context(), input)
	h.Logger.Info("booking created",
		zap.String("id", booking.ID),
		zap.String("customer", booking.CustomerName),
		zap.Strings("services", booking.SelectedServices))

	c.JSON(http.StatusCreated, gin.H{
		"booking": booking,
		"message": "Booking Successful! We've received your request for " + booking.CustomerName + ".",
	})
}
