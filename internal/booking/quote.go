package booking

import (
	"math"
	"strconv"
	"strings"

	"github.com/cargonova/logistics-api/internal/model"
)

// Pricing constants.  All amounts are USD.
const (
	baseRate      = 50.0     // flat cost applied to every shipment
	perKgRate     = 2.5      // cost per effective kilogram
	lbsToKg       = 0.453592 // conversion factor for weights entered in pounds
	insuranceRate = 0.02     // 2% of the declared value when insurance is requested
)

// serviceMultiplier maps a service type to its price multiplier.  An
// empty or unrecognized service type prices as standard, matching the
// permissive wizard which never forces a selection.
func serviceMultiplier(serviceType string) float64 {
	switch serviceType {
	case model.ServiceExpress:
		return 2.5
	case model.ServiceEconomy:
		return 1.0
	default:
		return 1.5
	}
}

// ComputeQuote prices the shipment described by the form:
//
//	(baseRate + effectiveWeightKg * perKgRate) * serviceMultiplier + insuranceFee
//
// rounded to whole cents.  Weight is converted to kilograms first when
// entered in pounds.  Dimensions are recorded but not priced.  Blank or
// malformed numeric inputs count as zero, so a quote can always be
// produced.  The result is deterministic for a fixed form.
func ComputeQuote(f *model.BookingForm) float64 {
	weight := parseDecimal(f.Weight)
	if f.WeightUnit == "lbs" {
		weight *= lbsToKg
	}
	total := (baseRate + weight*perKgRate) * serviceMultiplier(f.ServiceType)
	if f.RequiresInsurance {
		total += parseDecimal(f.PackageValue) * insuranceRate
	}
	return math.Round(total*100) / 100
}

// parseDecimal reads a lenient decimal from free-text input, treating
// anything unparsable as zero.
func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
