// Package sizing implements the conductor sizing engine: design-current
// derivation, multi-factor derating, iterative cable selection against
// ampacity and voltage-drop constraints, neutral/earth/conduit sizing,
// conformity determination and bill-of-materials synthesis.
package sizing

import (
	"fmt"
	"math"

	"github.com/eletrocalc/eletrocalc/pkg/tables"
)

// Derating applied on top of the temperature and grouping table factors.
const (
	eprInsulationFactor = 1.25 // EPR runs hotter than the PVC reference column
	aluminumFactor      = 0.78 // aluminum's lower effective ampacity
	aluminumResistivity = 1.6  // resistance multiplier relative to copper
)

// Voltage-drop limits by load category, in percent.
const (
	feederDropLimit  = 7.0
	defaultDropLimit = 4.0
)

// Engine implements the conductor sizing logic. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	config Config
}

// NewEngine creates a sizing engine with the default configuration
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultConfig())
}

// NewEngineWithConfig creates a sizing engine with custom pricing constants
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{config: config}
}

// Size selects conductor sections, verifies the proposed protection and
// builds the bill of materials for one circuit. It never fails: rule
// violations surface as conformity flags, diagnostic notes and the
// Infeasible outcome, not as errors.
func (e *Engine) Size(input CalcInput) CalcResult {
	ib := designCurrent(input)
	factor := deratingFactor(input)

	// Step 1: smallest section whose corrected ampacity covers the proposed
	// breaker rating. An exhausted table degrades to the largest section.
	index, found := selectByAmpacity(input, factor)
	outcome := Sized
	if !found {
		outcome = Infeasible
	}

	// Step 2: upgrade the section until the voltage drop is acceptable or
	// the table runs out. Larger sections have lower resistance, so the
	// drop is non-increasing along this loop.
	limit := dropLimit(input.Load)
	drop, pct := voltageDrop(input, ib, tables.Cables[index])
	for pct > limit && index < len(tables.Cables)-1 {
		index++
		drop, pct = voltageDrop(input, ib, tables.Cables[index])
	}
	if pct > limit {
		outcome = Infeasible
	}

	cable := tables.Cables[index]
	correctedAmpacity := tables.CapacityFor(cable, input.Method) * factor

	neutral := neutralSection(input.System, cable.Section)
	earth := earthSection(cable.Section)
	conduit := tables.ConduitSize(conductorArea(input.System, cable.Section, neutral, earth))

	shortCircuit := EstimateFaultCurrent(input.Voltage, input.Length, cable.Section)

	sizingConform := pct <= limit && float64(input.BreakerRating) <= correctedAmpacity
	icnConform := input.BreakerIcn*1000 >= shortCircuit

	result := CalcResult{
		DesignCurrent:     ib,
		PhaseSection:      cable.Section,
		NeutralSection:    neutral,
		EarthSection:      earth,
		ConduitSize:       conduit,
		BreakerRating:     input.BreakerRating,
		BreakerCurve:      input.BreakerCurve,
		BreakerIcn:        input.BreakerIcn,
		VoltageDrop:       drop,
		VoltageDropPct:    pct,
		ShortCircuit:      shortCircuit,
		CorrectedAmpacity: correctedAmpacity,
		SizingConform:     sizingConform,
		IcnConform:        icnConform,
		Conform:           sizingConform && icnConform,
		Outcome:           outcome,
		Notes:             diagnostics(input, ib, pct, limit, correctedAmpacity, shortCircuit),
	}

	result.BOM, result.BOMTotal = e.buildBOM(input, result)
	return result
}

// designCurrent computes Ib from power, voltage and power factor
func designCurrent(input CalcInput) float64 {
	if input.System == ThreePhase {
		return input.Power / (math.Sqrt(3) * input.Voltage * input.PowerFactor)
	}
	return input.Power / (input.Voltage * input.PowerFactor)
}

// deratingFactor combines the temperature, grouping, insulation and material
// corrections into a single ampacity multiplier
func deratingFactor(input CalcInput) float64 {
	factor := tables.TemperatureFactor(input.AmbientTemp) * tables.GroupingFactor(input.Grouping)
	if input.Insulation == EPR {
		factor *= eprInsulationFactor
	}
	if input.Material == Aluminum {
		factor *= aluminumFactor
	}
	return factor
}

// selectByAmpacity returns the index of the smallest cable whose corrected
// ampacity is at least the proposed breaker rating. When no cable qualifies
// it returns the largest available section and found=false.
func selectByAmpacity(input CalcInput, factor float64) (index int, found bool) {
	for i, spec := range tables.Cables {
		if tables.CapacityFor(spec, input.Method)*factor >= float64(input.BreakerRating) {
			return i, true
		}
	}
	return len(tables.Cables) - 1, false
}

// voltageDrop computes the drop in V and percent for a candidate cable
func voltageDrop(input CalcInput, ib float64, cable tables.CableSpec) (drop, pct float64) {
	resistance := cable.Resistance
	if input.Material == Aluminum {
		resistance *= aluminumResistivity
	}
	if input.System == ThreePhase {
		drop = math.Sqrt(3) * input.Length * ib * resistance / 1000
	} else {
		drop = 2 * input.Length * ib * resistance / 1000
	}
	return drop, drop / input.Voltage * 100
}

func dropLimit(load LoadType) float64 {
	if load == Feeder {
		return feederDropLimit
	}
	return defaultDropLimit
}

// neutralSection mirrors the phase section, except on three-phase circuits
// above 25 mm² where a reduced neutral is allowed, never below 16 mm²
func neutralSection(system SystemType, phase float64) float64 {
	if system == ThreePhase && phase > 25 {
		return math.Max(phase/2, 16)
	}
	return phase
}

// earthSection follows the protective-conductor rule: equal to phase up to
// 16 mm², fixed 16 mm² up to 35 mm², half the phase above that
func earthSection(phase float64) float64 {
	switch {
	case phase <= 16:
		return phase
	case phase <= 35:
		return 16
	default:
		return phase / 2
	}
}

// conductorCount is the number of phase conductors in the circuit
func conductorCount(system SystemType) int {
	switch system {
	case ThreePhase:
		return 3
	case TwoPhase:
		return 2
	default:
		return 1
	}
}

// conductorArea sums the cross-sections of every conductor in the conduit
func conductorArea(system SystemType, phase, neutral, earth float64) float64 {
	return phase*float64(conductorCount(system)) + neutral + earth
}

// diagnostics assembles the ordered note list for the sizing result
func diagnostics(input CalcInput, ib, pct, limit, correctedAmpacity, shortCircuit float64) []Note {
	var notes []Note

	if pct > limit {
		notes = append(notes, Note{
			Severity: Warning,
			Code:     NoteVoltageDropExceeded,
			Text:     fmt.Sprintf("voltage drop %.2f%% exceeds the %.0f%% limit for %s loads", pct, limit, input.Load),
		})
	}
	if float64(input.BreakerRating) > correctedAmpacity {
		notes = append(notes, Note{
			Severity: Warning,
			Code:     NoteBreakerAboveAmpacity,
			Text:     fmt.Sprintf("breaker rating %d A exceeds the corrected cable ampacity %.1f A", input.BreakerRating, correctedAmpacity),
		})
	}
	if float64(input.BreakerRating) < ib {
		notes = append(notes, Note{
			Severity: Warning,
			Code:     NoteBreakerBelowLoad,
			Text:     fmt.Sprintf("breaker rating %d A is below the design current %.2f A and will trip under normal load", input.BreakerRating, ib),
		})
	}
	if input.BreakerIcn*1000 < shortCircuit {
		notes = append(notes, Note{
			Severity: Danger,
			Code:     NoteBreakingCapacityShort,
			Text:     fmt.Sprintf("interrupting capacity %.1f kA is below the estimated fault current %.0f A", input.BreakerIcn, shortCircuit),
		})
	}
	if text, mismatch := curveAdvisory(input.Load, input.BreakerCurve); mismatch {
		notes = append(notes, Note{Severity: Advisory, Code: NoteTripCurveMismatch, Text: text})
	}
	if ib > 100 {
		notes = append(notes, Note{
			Severity: Advisory,
			Code:     NoteParallelConductors,
			Text:     fmt.Sprintf("design current %.1f A is above 100 A, consider parallel conductors per phase", ib),
		})
	}

	return notes
}

// curveAdvisory flags trip-curve choices that fit the load category poorly
func curveAdvisory(load LoadType, curve TripCurve) (string, bool) {
	switch {
	case load == Motor && curve == CurveB:
		return "curve B trips on motor inrush, use curve C or D for motor loads", true
	case load == Lighting && curve == CurveD:
		return "curve D is insensitive for lighting circuits, use curve B or C", true
	case load == Socket && curve == CurveB:
		return "curve B may nuisance-trip on socket circuits, curve C is the usual choice", true
	default:
		return "", false
	}
}
