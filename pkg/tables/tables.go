// Package tables holds the static reference data used by the sizing
// calculators: cable ampacities per installation method, derating factors,
// standard circuit-breaker ratings and conduit trade sizes.
//
// All tables are ordered ascending and treated as immutable; the selection
// algorithms rely on "first entry meeting a threshold" semantics.
package tables

// DefaultMethod is the installation-method column used when a caller supplies
// an unknown method code. See CapacityFor.
const DefaultMethod = "B1"

// CableSpec describes one standard conductor cross-section.
type CableSpec struct {
	// Section is the nominal cross-section in mm².
	Section float64
	// Capacity maps installation-method code to ampacity in A
	// (copper, PVC, 30 °C ambient, single circuit).
	Capacity map[string]float64
	// Resistance is the linear resistance in Ω/km for copper.
	Resistance float64
}

// Cables is the standard cross-section series, ordered ascending by section.
var Cables = []CableSpec{
	{Section: 1.5, Capacity: map[string]float64{"A1": 14.5, "A2": 14, "B1": 17.5, "B2": 16.5, "C": 19.5, "D": 22}, Resistance: 12.1},
	{Section: 2.5, Capacity: map[string]float64{"A1": 19.5, "A2": 18.5, "B1": 24, "B2": 23, "C": 27, "D": 29}, Resistance: 7.41},
	{Section: 4, Capacity: map[string]float64{"A1": 26, "A2": 25, "B1": 32, "B2": 30, "C": 36, "D": 38}, Resistance: 4.61},
	{Section: 6, Capacity: map[string]float64{"A1": 34, "A2": 32, "B1": 41, "B2": 38, "C": 46, "D": 47}, Resistance: 3.08},
	{Section: 10, Capacity: map[string]float64{"A1": 46, "A2": 43, "B1": 57, "B2": 52, "C": 63, "D": 63}, Resistance: 1.83},
	{Section: 16, Capacity: map[string]float64{"A1": 61, "A2": 57, "B1": 76, "B2": 69, "C": 85, "D": 81}, Resistance: 1.15},
	{Section: 25, Capacity: map[string]float64{"A1": 80, "A2": 75, "B1": 101, "B2": 90, "C": 112, "D": 104}, Resistance: 0.727},
	{Section: 35, Capacity: map[string]float64{"A1": 99, "A2": 92, "B1": 125, "B2": 111, "C": 138, "D": 125}, Resistance: 0.524},
	{Section: 50, Capacity: map[string]float64{"A1": 119, "A2": 110, "B1": 151, "B2": 133, "C": 168, "D": 148}, Resistance: 0.387},
	{Section: 70, Capacity: map[string]float64{"A1": 151, "A2": 139, "B1": 192, "B2": 168, "C": 213, "D": 183}, Resistance: 0.268},
	{Section: 95, Capacity: map[string]float64{"A1": 182, "A2": 167, "B1": 232, "B2": 201, "C": 258, "D": 216}, Resistance: 0.193},
	{Section: 120, Capacity: map[string]float64{"A1": 210, "A2": 192, "B1": 269, "B2": 232, "C": 299, "D": 246}, Resistance: 0.153},
	{Section: 150, Capacity: map[string]float64{"A1": 240, "A2": 219, "B1": 309, "B2": 258, "C": 344, "D": 278}, Resistance: 0.124},
	{Section: 185, Capacity: map[string]float64{"A1": 273, "A2": 248, "B1": 353, "B2": 294, "C": 392, "D": 312}, Resistance: 0.0991},
	{Section: 240, Capacity: map[string]float64{"A1": 321, "A2": 291, "B1": 415, "B2": 344, "C": 461, "D": 361}, Resistance: 0.0754},
}

// CapacityFor returns the nominal ampacity of a cable for the given
// installation method. Unknown method codes fall back to DefaultMethod.
func CapacityFor(spec CableSpec, method string) float64 {
	if capacity, ok := spec.Capacity[method]; ok {
		return capacity
	}
	return spec.Capacity[DefaultMethod]
}

// ResistanceBySection returns the linear resistance in Ω/km for a standard
// section, or 1.0 when the section is not in the table.
func ResistanceBySection(section float64) float64 {
	for _, spec := range Cables {
		if spec.Section == section {
			return spec.Resistance
		}
	}
	return 1.0
}

// temperatureFactors derates ampacity for ambient temperatures above the
// 30 °C reference (PVC insulation reference column).
var temperatureFactors = map[int]float64{
	30: 1.0,
	35: 0.94,
	40: 0.87,
	45: 0.79,
	50: 0.71,
	55: 0.61,
	60: 0.50,
}

// TemperatureFactor returns the ambient-temperature derating factor.
// Temperatures missing from the table are not derated.
func TemperatureFactor(ambientC int) float64 {
	if factor, ok := temperatureFactors[ambientC]; ok {
		return factor
	}
	return 1.0
}

// groupingFactors derates ampacity for circuits grouped in the same conduit
// or duct.
var groupingFactors = map[int]float64{
	1: 1.0,
	2: 0.80,
	3: 0.70,
	4: 0.65,
	5: 0.60,
	6: 0.57,
	7: 0.54,
	8: 0.52,
}

// GroupingFactor returns the grouped-circuits derating factor. Counts missing
// from the table are not derated.
func GroupingFactor(circuits int) float64 {
	if factor, ok := groupingFactors[circuits]; ok {
		return factor
	}
	return 1.0
}

// BreakerRatings is the standard nominal-current series in A, ordered
// ascending. It is both the legal-value set and the "round up to next
// standard value" lookup base.
var BreakerRatings = []int{6, 10, 13, 16, 20, 25, 32, 40, 50, 63, 80, 100, 125}

// NextBreakerRating returns the smallest standard rating ≥ min. When min
// exceeds the largest standard rating the largest is returned with ok=false.
func NextBreakerRating(min float64) (rating int, ok bool) {
	for _, r := range BreakerRatings {
		if float64(r) >= min {
			return r, true
		}
	}
	return BreakerRatings[len(BreakerRatings)-1], false
}

// conduitSize maps a total conductor cross-section to a trade size.
type conduitSize struct {
	maxArea float64 // mm² of conductor the conduit accepts
	label   string
}

var conduitSizes = []conduitSize{
	{maxArea: 15, label: "20 mm"},
	{maxArea: 35, label: "25 mm"},
	{maxArea: 70, label: "32 mm"},
	{maxArea: 150, label: "40 mm"},
}

// ConduitSize returns the trade size for the summed conductor cross-section
// in mm². Totals above the largest threshold map to the largest size.
func ConduitSize(totalArea float64) string {
	for _, c := range conduitSizes {
		if totalArea <= c.maxArea {
			return c.label
		}
	}
	return "50 mm"
}
