package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle carries every route handler the router needs, assembled
// once in main.
type HandlerBundle struct {
	// Public site endpoints.
	GetServicesHandler    gin.HandlerFunc
	GetWorkshopHandler    gin.HandlerFunc
	AnalyzeProblemHandler gin.HandlerFunc
	CreateBookingHandler  gin.HandlerFunc

	// Admin endpoints.
	ListBookingsHandler   gin.HandlerFunc
	AdvanceBookingHandler gin.HandlerFunc
	CancelBookingHandler  gin.HandlerFunc
	DeleteBookingHandler  gin.HandlerFunc

	// Health endpoint metadata.
	StorageBackend string
}
