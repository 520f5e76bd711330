// Package motor sizes the protection chain of a three-phase induction motor:
// nominal and starting current, breaker rating, thermal-relay setting and
// contactor frame.
package motor

import (
	"math"

	"github.com/eletrocalc/eletrocalc/pkg/tables"
)

// Watts per metric horsepower (CV)
const wattsPerCV = 735.5

const (
	breakerMargin = 1.25 // breaker sized above nominal current
	relayMargin   = 1.10 // thermal relay set above nominal current
)

// StartingMethod represents how the motor is brought up to speed
type StartingMethod int

const (
	DirectOnLine StartingMethod = iota
	StarDelta
	SoftStarter
)

// Starting-current multipliers over nominal current
var startingMultipliers = map[StartingMethod]float64{
	DirectOnLine: 7.0,
	StarDelta:    2.3,
	SoftStarter:  3.0,
}

// Input holds the motor nameplate and starting parameters
type Input struct {
	PowerCV     float64        `json:"power_cv"`    // mechanical power in CV
	Voltage     float64        `json:"voltage"`     // V, line-to-line
	Efficiency  float64        `json:"efficiency"`  // percent, 0..100
	PowerFactor float64        `json:"power_factor"`
	Starting    StartingMethod `json:"starting"`
}

// Result contains the sized protection chain
type Result struct {
	NominalCurrent  float64 `json:"nominal_current"`  // A
	StartingCurrent float64 `json:"starting_current"` // A
	BreakerRating   int     `json:"breaker_rating"`   // A
	ThermalRelay    float64 `json:"thermal_relay"`    // A
	Contactor       string  `json:"contactor"`
}

// Size computes the motor protection sizing. Pure function: identical input
// yields identical output.
func Size(input Input) Result {
	electricalPower := input.PowerCV * wattsPerCV
	nominal := electricalPower / (math.Sqrt(3) * input.Voltage * (input.Efficiency / 100) * input.PowerFactor)

	breaker, _ := tables.NextBreakerRating(breakerMargin * nominal)

	return Result{
		NominalCurrent:  nominal,
		StartingCurrent: nominal * startingMultipliers[input.Starting],
		BreakerRating:   breaker,
		ThermalRelay:    relayMargin * nominal,
		Contactor:       contactorFor(nominal),
	}
}

// contactorFor partitions the nominal current into standard contactor frames
func contactorFor(nominal float64) string {
	switch {
	case nominal < 9:
		return "CWM9"
	case nominal < 12:
		return "CWM12"
	case nominal < 18:
		return "CWM18"
	default:
		return "CWM25"
	}
}

func (s StartingMethod) String() string {
	switch s {
	case DirectOnLine:
		return "direct-on-line"
	case StarDelta:
		return "star-delta"
	case SoftStarter:
		return "soft-starter"
	default:
		return "Unknown"
	}
}

// MarshalText renders the starting method as its name in JSON output
func (s StartingMethod) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
