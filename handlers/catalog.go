package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"varahicare/catalog"
	"varahicare/utils"
)

// GetServicesHandler handles GET /api/services.
func GetServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services":   catalog.All(),
		"categories": catalog.ByCategory(),
	})
}

// GetWorkshopHandler handles GET /api/workshop. The tel: and wa.me links
// are constructed server-side so clients render them as-is.
func GetWorkshopHandler(c *gin.Context) {
	info := catalog.Workshop
	c.JSON(http.StatusOK, gin.H{
		"workshop":     info,
		"telLink":      utils.TelLink(info.Phone),
		"whatsappLink": utils.WhatsAppLink(info.WhatsApp),
	})
}
