// Package qdc sizes a distribution panel (QDC): aggregate current, main
// breaker, residual device, surge arrester, busbar and three-phase load
// balancing.
package qdc

import (
	"sort"

	"github.com/eletrocalc/eletrocalc/pkg/tables"
)

// Config holds the panel sizing assumptions
type Config struct {
	// DiversityFactor scales the aggregate current before selecting the
	// main breaker, on the assumption that not all circuits peak together
	DiversityFactor float64
	// SurgeArresterClass is the nominal discharge class fitted to the panel
	SurgeArresterClass string
	// BusbarFactor scales the main breaker rating to the busbar rating
	BusbarFactor float64
}

// DefaultConfig returns the standard panel assumptions
func DefaultConfig() Config {
	return Config{
		DiversityFactor:    0.8,
		SurgeArresterClass: "20 kA",
		BusbarFactor:       1.25,
	}
}

// Circuit is one branch circuit feeding the panel
type Circuit struct {
	Description string  `json:"description"`
	Current     float64 `json:"current"` // A
}

// Input holds the branch circuits of the panel
type Input struct {
	Circuits []Circuit `json:"circuits"`
}

// PhaseLoad is the set of circuits assigned to one phase
type PhaseLoad struct {
	Circuits []Circuit `json:"circuits"`
	Total    float64   `json:"total"` // A
}

// Result contains the sized panel
type Result struct {
	TotalCurrent   float64      `json:"total_current"`   // A, sum of all circuits
	MainBreaker    int          `json:"main_breaker"`    // A
	ResidualDevice int          `json:"residual_device"` // A, mirrors the main breaker
	SurgeArrester  string       `json:"surge_arrester"`
	BusbarRating   float64      `json:"busbar_rating"` // A
	Phases         [3]PhaseLoad `json:"phases"`
}

// Calculator implements the panel sizing logic
type Calculator struct {
	config Config
}

// NewCalculator creates a panel calculator with the default assumptions
func NewCalculator() *Calculator {
	return NewCalculatorWithConfig(DefaultConfig())
}

// NewCalculatorWithConfig creates a panel calculator with custom assumptions
func NewCalculatorWithConfig(config Config) *Calculator {
	return &Calculator{config: config}
}

// Size aggregates the branch circuits and sizes the panel hardware. The
// caller's circuit slice is never mutated; balancing sorts a private copy.
func (c *Calculator) Size(input Input) Result {
	var total float64
	for _, circuit := range input.Circuits {
		total += circuit.Current
	}

	mainBreaker, _ := tables.NextBreakerRating(c.config.DiversityFactor * total)

	return Result{
		TotalCurrent:   total,
		MainBreaker:    mainBreaker,
		ResidualDevice: mainBreaker,
		SurgeArrester:  c.config.SurgeArresterClass,
		BusbarRating:   c.config.BusbarFactor * float64(mainBreaker),
		Phases:         balancePhases(input.Circuits),
	}
}

// balancePhases distributes circuits across the three phases round-robin in
// descending current order. Greedy largest-first keeps the imbalance small
// without trying to be optimal.
func balancePhases(circuits []Circuit) [3]PhaseLoad {
	sorted := make([]Circuit, len(circuits))
	copy(sorted, circuits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Current > sorted[j].Current
	})

	var phases [3]PhaseLoad
	for i, circuit := range sorted {
		phase := &phases[i%3]
		phase.Circuits = append(phase.Circuits, circuit)
		phase.Total += circuit.Current
	}
	return phases
}
