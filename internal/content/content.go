// Package content serves the static marketing catalog: the service
// offerings and the leadership team shown on the public site.  The
// data is hard-coded; it changes with releases, not at runtime.
package content

import "github.com/cargonova/logistics-api/internal/model"

// Services returns the service offerings in display order.
func Services() []model.ServiceOffering {
	return []model.ServiceOffering{
		{
			ID:          "1",
			Title:       "Express Shipping",
			Description: "Fast and reliable express shipping services for time-sensitive deliveries worldwide.",
			Icon:        "Zap",
			Features: []string{
				"Same-day delivery available",
				"Real-time tracking",
				"24/7 customer support",
				"International coverage",
			},
		},
		{
			ID:          "2",
			Title:       "Warehousing Solutions",
			Description: "Secure and efficient warehousing facilities with climate control and advanced security.",
			Icon:        "Warehouse",
			Features: []string{
				"Climate-controlled storage",
				"Inventory management",
				"Security monitoring",
				"Flexible storage plans",
			},
		},
		{
			ID:          "3",
			Title:       "Freight Forwarding",
			Description: "Comprehensive freight forwarding services for air, sea, and land transportation.",
			Icon:        "Ship",
			Features: []string{
				"Multi-modal transport",
				"Customs clearance",
				"Documentation handling",
				"Cargo insurance",
			},
		},
		{
			ID:          "4",
			Title:       "Last-Mile Delivery",
			Description: "Efficient last-mile delivery solutions ensuring packages reach customers quickly.",
			Icon:        "Truck",
			Features: []string{
				"Route optimization",
				"Flexible delivery windows",
				"Proof of delivery",
				"Returns management",
			},
		},
		{
			ID:          "5",
			Title:       "Supply Chain Management",
			Description: "End-to-end supply chain management solutions to optimize your logistics operations.",
			Icon:        "Network",
			Features: []string{
				"Demand forecasting",
				"Inventory optimization",
				"Vendor management",
				"Analytics & reporting",
			},
		},
		{
			ID:          "6",
			Title:       "E-commerce Fulfillment",
			Description: "Complete e-commerce fulfillment services from order processing to delivery.",
			Icon:        "ShoppingCart",
			Features: []string{
				"Order processing",
				"Pick & pack services",
				"Returns handling",
				"Integration with platforms",
			},
		},
	}
}

// Team returns the leadership team in display order.
func Team() []model.TeamMember {
	return []model.TeamMember{
		{
			ID:    "1",
			Name:  "Sarah Johnson",
			Role:  "CEO & Founder",
			Bio:   "With over 20 years in logistics, Sarah leads CargoNova with vision and innovation.",
			Image: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop",
		},
		{
			ID:    "2",
			Name:  "Michael Chen",
			Role:  "Chief Operations Officer",
			Bio:   "Michael ensures seamless operations across all our logistics networks worldwide.",
			Image: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop",
		},
		{
			ID:    "3",
			Name:  "Emily Rodriguez",
			Role:  "Head of Technology",
			Bio:   "Emily drives our digital transformation and technology innovation initiatives.",
			Image: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop",
		},
		{
			ID:    "4",
			Name:  "David Park",
			Role:  "VP of Customer Success",
			Bio:   "David ensures our customers receive exceptional service and support at every touchpoint.",
			Image: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop",
		},
		{
			ID:    "5",
			Name:  "Lisa Thompson",
			Role:  "Director of Sustainability",
			Bio:   "Lisa leads our environmental initiatives and sustainable logistics practices.",
			Image: "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=400&h=400&fit=crop",
		},
		{
			ID:    "6",
			Name:  "James Wilson",
			Role:  "Head of Warehousing",
			Bio:   "James manages our global network of warehouses and distribution centers.",
			Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
		},
	}
}
