// Package catalog holds the fixed list of workshop services and the
// workshop contact metadata. Both are immutable for the process lifetime.
package catalog

import "varahicare/models"

// Workshop is the contact/location metadata for the site.
var Workshop = models.WorkshopInfo{
	Name:            "Annai Varahi Car Care",
	Phone:           "+91 98655 62421",
	Email:           "annaivarakic@gmail.com",
	WhatsApp:        "919865562421",
	Address:         "Mariamman Kovil Bye Pass Road, Thanjavur, Tamil Nadu",
	MapsURL:         "https://goo.gl/maps/example",
	GoogleMapsEmbed: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3920.623456789!2d79.1378!3d10.787!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x0%3A0x0!2zMTDCsDQ3JzEyLjYiTiA3OcKwMDgnMTYuMSJF!5e0!3m2!1sen!2sin!4v1620000000000!5m2!1sen!2sin",
}

// GeneralServiceID is the fallback service suggested when nothing more
// specific applies.
const GeneralServiceID = "general"

var services = []models.Service{
	{
		ID:          "general",
		Name:        "General Service",
		Description: "Comprehensive 50-point inspection, fluid top-ups, and basic tuning.",
		Category:    models.CategoryMaintenance,
		Icon:        "fa-car",
	},
	{
		ID:          "oil",
		Name:        "Express Oil Change",
		Description: "High-quality synthetic oil and filter replacement for engine longevity.",
		Category:    models.CategoryMaintenance,
		Icon:        "fa-oil-can",
	},
	{
		ID:          "brake",
		Name:        "Brake Specialist",
		Description: "Disc resurfacing, pad replacement, and brake fluid flushing.",
		Category:    models.CategoryRepair,
		Icon:        "fa-circle-stop",
	},
	{
		ID:          "engine",
		Name:        "Engine Diagnostic",
		Description: "Scanning and repairing engine faults, sensors, and mechanical issues.",
		Category:    models.CategoryRepair,
		Icon:        "fa-engine-warning",
	},
	{
		ID:          "ac",
		Name:        "AC Multi-Point",
		Description: "Gas recharging, cabin filter cleaning, and cooling efficiency check.",
		Category:    models.CategoryElectrical,
		Icon:        "fa-snowflake",
	},
	{
		ID:          "alignment",
		Name:        "Wheel Care",
		Description: "Computerized 3D wheel alignment and balancing for smooth driving.",
		Category:    models.CategoryWheels,
		Icon:        "fa-gauge-high",
	},
	{
		ID:          "battery",
		Name:        "Battery & Electrical",
		Description: "Battery health check, alternator testing, and wiring repairs.",
		Category:    models.CategoryElectrical,
		Icon:        "fa-car-battery",
	},
	{
		ID:          "detailing",
		Name:        "Deep Detailing",
		Description: "Interior vacuuming, exterior polishing, and engine bay cleaning.",
		Category:    models.CategoryCleaning,
		Icon:        "fa-sparkles",
	},
}

// All returns the full catalog in display order.
func All() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}

// ByID looks a service up by its id.
func ByID(id string) (models.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

// Has reports whether a service id exists in the catalog.
func Has(id string) bool {
	_, ok := ByID(id)
	return ok
}

// Names returns the service display names in catalog order, used to
// enumerate the offering inside the diagnostic prompt.
func Names() []string {
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	return names
}

// ByCategory groups the catalog by category, preserving catalog order
// inside each group.
func ByCategory() map[models.ServiceCategory][]models.Service {
	grouped := make(map[models.ServiceCategory][]models.Service)
	for _, s := range services {
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	return grouped
}

// FilterKnown drops ids that are not in the catalog, preserving the
// order of the rest.
func FilterKnown(ids []string) []string {
	var known []string
	for _, id := range ids {
		if Has(id) {
			known = append(known, id)
		}
	}
	return known
}
