package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"varahicare/models"
	"varahicare/services/bookingstore"
)

// AdminHandler exposes the booking triage commands: list with a status
// filter, one-step advance, cancel, and confirmed delete.
type AdminHandler struct {
	Store  bookingstore.BookingStore
	Logger *zap.Logger
}

func NewAdminHandler(store bookingstore.BookingStore, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Store: store, Logger: logger}
}

// ListBookings handles GET /api/admin/bookings?status=. The filter
// accepts All (default) or any defined status; store order is preserved.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	filter := c.DefaultQuery("status", bookingstore.FilterAll)
	if filter != bookingstore.FilterAll && !models.IsValidStatus(models.BookingStatus(filter)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter", "details": filter})
		return
	}

	bookings := h.Store.List(filter)
	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// AdvanceBooking handles PUT /api/admin/bookings/:id/advance.
func (h *AdminHandler) AdvanceBooking(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.Store.Advance(c.Request.Context(), id)
	switch err {
	case nil:
		h.Logger.Info("booking advanced", zap.String("id", id), zap.String("status", string(booking.Status)))
		c.JSON(http.StatusOK, gin.H{"booking": booking})
	case bookingstore.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case bookingstore.ErrTerminalStatus:
		c.JSON(http.StatusConflict, gin.H{"error": "booking is already " + string(booking.Status)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to advance booking", "details": err.Error()})
	}
}

// CancelBooking handles PUT /api/admin/bookings/:id/cancel.
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.Store.Cancel(c.Request.Context(), id)
	switch err {
	case nil:
		h.Logger.Info("booking cancelled", zap.String("id", id))
		c.JSON(http.StatusOK, gin.H{"booking": booking})
	case bookingstore.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case bookingstore.ErrNotCancellable:
		c.JSON(http.StatusConflict, gin.H{"error": "booking is already " + string(booking.Status)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking", "details": err.Error()})
	}
}

// DeleteBooking handles DELETE /api/admin/bookings/:id?confirm=true.
// Deletion is destructive with no undo, so the confirm parameter stands
// in for the dashboard's confirmation prompt.
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusPreconditionRequired, gin.H{
			"error": "deletion requires confirmation; repeat the request with confirm=true",
		})
		return
	}

	id := c.Param("id")
	if !h.Store.Delete(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	h.Logger.Info("booking deleted", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
