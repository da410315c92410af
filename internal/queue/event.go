// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a shipment booking is confirmed.
// It contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingNumber string  `json:"booking_number"`
	ServiceType   string  `json:"service_type"`
	ShipmentType  string  `json:"shipment_type"`
	OriginCity    string  `json:"origin_city"`
	DestCity      string  `json:"dest_city"`
	Quote         float64 `json:"quote"`
	PickupDate    string  `json:"pickup_date"`
	Status        string  `json:"status"`
	ConfirmedAt   string  `json:"confirmed_at"`
}
