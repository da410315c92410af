package tracking

import "github.com/cargonova/logistics-api/internal/model"

// Demo shipments reachable under well-known tracking numbers.  Each
// tells a complete multi-leg international story with a named sender
// or recipient, so sales demos and support walkthroughs always have a
// rich history to show.  Fixture lookups still write through to the
// store on first access, after which the stored copy is served like
// any other record.
//
// fixtureRecord builds a fresh record per call so callers can never
// mutate the canonical script.
func fixtureRecord(number string) (*model.TrackingRecord, bool) {
	switch number {
	case "XL2025BRAZIL":
		return &model.TrackingRecord{
			TrackingNumber:    number,
			Status:            model.StatusInTransit,
			CurrentLocation:   "Distribution Center - Miami, FL",
			EstimatedDelivery: "11/26/2025",
			History: []model.TrackingEvent{
				{
					Date:        "11/25/2025",
					Time:        "10:30 AM",
					Location:    "Sender Facility - Sanaa, Yemen",
					Status:      "Package received",
					Description: "Package received from sender Garth Davis",
				},
				{
					Date:        "11/25/2025",
					Time:        "2:15 PM",
					Location:    "Export Facility - Sanaa, Yemen",
					Status:      model.StatusInTransit,
					Description: "Package cleared customs and prepared for international shipment",
				},
				{
					Date:        "11/25/2025",
					Time:        "8:45 AM",
					Location:    "International Hub - Dubai, UAE",
					Status:      model.StatusInTransit,
					Description: "Package arrived at international hub for transshipment",
				},
				{
					Date:        "11/26/2025",
					Time:        "10:20 AM",
					Location:    "Distribution Center - Miami, FL",
					Status:      model.StatusInTransit,
					Description: "Package arrived at US distribution center",
				},
			},
		}, true
	case "XL2025TOKYO":
		return &model.TrackingRecord{
			TrackingNumber:    number,
			Status:            model.StatusOutForDelivery,
			EstimatedDelivery: "12/3/2025",
			CurrentLocation:   "Local Courier Facility - Portland, OR",
			History: []model.TrackingEvent{
				{
					Date:        "12/1/2025",
					Time:        "9:10 AM",
					Location:    "Sender Facility - Kyoto, Japan",
					Status:      "Package received",
					Description: "Package received from sender Akiko Tanaka",
				},
				{
					Date:        "12/1/2025",
					Time:        "6:40 PM",
					Location:    "International Hub - Tokyo, Japan",
					Status:      model.StatusInTransit,
					Description: "Package departed on trans-Pacific flight",
				},
				{
					Date:        "12/2/2025",
					Time:        "7:05 AM",
					Location:    "Gateway Facility - Anchorage, AK",
					Status:      model.StatusInTransit,
					Description: "Package cleared US customs inspection",
				},
				{
					Date:        "12/3/2025",
					Time:        "8:20 AM",
					Location:    "Local Courier Facility - Portland, OR",
					Status:      model.StatusOutForDelivery,
					Description: "Package out for delivery to recipient Daniel Reyes",
				},
			},
		}, true
	}
	return nil, false
}
