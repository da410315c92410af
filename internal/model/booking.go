package model

// Service types selectable on the first step of the booking wizard.
// Each carries a price multiplier applied to the base shipping cost
// and an advertised transit-time label shown to the customer.
const (
	ServiceExpress  = "express"  // air freight, 1-2 business days, multiplier 2.5
	ServiceStandard = "standard" // road freight, 3-5 business days, multiplier 1.5
	ServiceEconomy  = "economy"  // sea freight, 7-14 business days, multiplier 1.0
)

// Shipment types describe what is being shipped.  They classify the
// booking for operations but do not affect the quoted price.
const (
	ShipmentDocument = "document"
	ShipmentPackage  = "package"
	ShipmentPallet   = "pallet"
)

// BookingStatusPending is the initial status assigned to every
// confirmed booking until a courier picks the shipment up.
const BookingStatusPending = "Pending Pickup"

// Contact holds the sender or receiver details collected on step 4 of
// the wizard.  All fields are free text; the front end provides input
// type hints but no format is enforced here.
type Contact struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// BookingForm is the flat accumulator of everything a customer enters
// across the five wizard steps.  It is owned by a single wizard
// session and mutated in place as fields are submitted.  Numeric
// inputs are kept as strings and parsed leniently when the quote is
// computed, so an empty or malformed value never blocks the wizard.
// Only service type, weight, declared value and the insurance flag
// affect pricing; dimensions and shipment type are recorded for the
// carrier but not priced.
type BookingForm struct {
	ServiceType         string  `json:"service_type"`
	ShipmentType        string  `json:"shipment_type"`
	OriginCountry       string  `json:"origin_country"`
	OriginCity          string  `json:"origin_city"`
	OriginZip           string  `json:"origin_zip"`
	DestCountry         string  `json:"dest_country"`
	DestCity            string  `json:"dest_city"`
	DestZip             string  `json:"dest_zip"`
	Weight              string  `json:"weight"`
	WeightUnit          string  `json:"weight_unit"`
	Length              string  `json:"length"`
	Width               string  `json:"width"`
	Height              string  `json:"height"`
	DimensionUnit       string  `json:"dimension_unit"`
	PackageDescription  string  `json:"package_description"`
	PackageValue        string  `json:"package_value"`
	RequiresInsurance   bool    `json:"requires_insurance"`
	Sender              Contact `json:"sender"`
	Receiver            Contact `json:"receiver"`
	PickupDate          string  `json:"pickup_date"`
	SpecialInstructions string  `json:"special_instructions"`
}

// BookingRecord is the immutable snapshot written out when a wizard
// session is confirmed.  It carries the full form, the quote that was
// current at confirmation time, the booking number and the
// confirmation timestamp.  Records are never updated or deleted by
// this service.
type BookingRecord struct {
	BookingNumber string      `json:"booking_number"`
	Form          BookingForm `json:"form"`
	Quote         float64     `json:"quote"`
	BookingDate   string      `json:"booking_date"` // RFC 3339 confirmation timestamp
	Status        string      `json:"status"`
}
