package models

// ServiceCategory groups catalog services for display.
type ServiceCategory string

const (
	CategoryMaintenance ServiceCategory = "Maintenance"
	CategoryRepair      ServiceCategory = "Repair"
	CategoryElectrical  ServiceCategory = "Electrical"
	CategoryWheels      ServiceCategory = "Wheels & Tyres"
	CategoryCleaning    ServiceCategory = "Cleaning & Detailing"
)

// Service is a single workshop offering. The catalog is fixed for the
// lifetime of the process; identity is the ID.
type Service struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      ServiceCategory `json:"category"`
	Icon          string          `json:"icon"`
	PriceEstimate string          `json:"priceEstimate,omitempty"`
}

// WorkshopInfo holds the contact and location metadata shown on the site.
type WorkshopInfo struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	WhatsApp        string `json:"whatsapp"`
	Address         string `json:"address"`
	MapsURL         string `json:"mapsUrl"`
	GoogleMapsEmbed string `json:"googleMapsEmbed"`
}
