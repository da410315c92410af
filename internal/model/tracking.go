package model

// Tracking statuses a shipment can report.  The order of
// TrackingStatuses matters: synthetic records pick a status by
// indexing into it with the first character of the tracking number,
// so reordering would change which status a given number resolves to.
const (
	StatusPending        = "Pending"
	StatusInTransit      = "In Transit"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
	StatusException      = "Exception"
)

// TrackingStatuses lists every status in its fixed canonical order.
var TrackingStatuses = []string{
	StatusPending,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusException,
}

// TrackingEvent is one scan point in a shipment's history.  Date and
// Time are display strings (M/D/YYYY and a 12-hour clock) rather than
// timestamps; once a record is stored they never change.
type TrackingEvent struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// TrackingRecord is the full state returned for a tracking lookup.
// History is ordered oldest first.  Records are written once on first
// lookup of a number and served verbatim forever after, so the same
// number always shows the same story.
type TrackingRecord struct {
	TrackingNumber    string          `json:"tracking_number"`
	Status            string          `json:"status"`
	CurrentLocation   string          `json:"current_location"`
	EstimatedDelivery string          `json:"estimated_delivery"`
	History           []TrackingEvent `json:"history"`
}
