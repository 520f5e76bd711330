package sizing

import (
	"github.com/shopspring/decimal"
)

// SystemType represents the phase configuration of the supply
type SystemType int

const (
	SinglePhase SystemType = iota
	TwoPhase
	ThreePhase
)

// LoadType represents the category of load served by the circuit; it governs
// the acceptable voltage-drop limit and the trip-curve advisories
type LoadType int

const (
	Lighting LoadType = iota
	Socket
	Motor
	Feeder
)

// Material represents the conductor material
type Material int

const (
	Copper Material = iota
	Aluminum
)

// Insulation represents the cable insulation class
type Insulation int

const (
	PVC Insulation = iota
	EPR
)

// TripCurve is the breaker time-current characteristic class
type TripCurve string

const (
	CurveB TripCurve = "B"
	CurveC TripCurve = "C"
	CurveD TripCurve = "D"
)

// Severity classifies a diagnostic note
type Severity int

const (
	Advisory Severity = iota
	Warning
	Danger
)

// Diagnostic note codes
const (
	NoteVoltageDropExceeded   = "voltage-drop-exceeded"
	NoteBreakerAboveAmpacity  = "breaker-above-ampacity"
	NoteBreakerBelowLoad      = "breaker-below-design-current"
	NoteBreakingCapacityShort = "breaking-capacity-shortfall"
	NoteTripCurveMismatch     = "trip-curve-mismatch"
	NoteParallelConductors    = "parallel-conductors-advised"
)

// Note is a single tagged diagnostic emitted during sizing
type Note struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Text     string   `json:"text"`
}

// Outcome distinguishes a regular sizing from a best-effort result where the
// cable table was exhausted before all constraints were met
type Outcome int

const (
	Sized Outcome = iota
	Infeasible
)

// CalcInput holds all parameters for one conductor sizing run
type CalcInput struct {
	System        SystemType `json:"system"`
	Voltage       float64    `json:"voltage"`      // V
	Power         float64    `json:"power"`        // W
	PowerFactor   float64    `json:"power_factor"` // 0..1
	Load          LoadType   `json:"load"`
	Length        float64    `json:"length"` // m, one-way
	Method        string     `json:"method"` // installation method code, e.g. "B1"
	AmbientTemp   int        `json:"ambient_temp"` // °C
	Grouping      int        `json:"grouping"`     // circuits sharing the conduit
	Material      Material   `json:"material"`
	Insulation    Insulation `json:"insulation"`
	BreakerCurve  TripCurve  `json:"breaker_curve"`
	BreakerIcn    float64    `json:"breaker_icn"`    // interrupting capacity, kA
	BreakerRating int        `json:"breaker_rating"` // proposed nominal rating, A
}

// BOMItem is one line of the synthesized bill of materials
type BOMItem struct {
	Description string          `json:"description"`
	Quantity    string          `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// CalcResult contains the complete output of one conductor sizing run.
// Every field derives solely from the input and the static tables.
type CalcResult struct {
	DesignCurrent     float64         `json:"design_current"`      // Ib, A
	PhaseSection      float64         `json:"phase_section"`       // mm²
	NeutralSection    float64         `json:"neutral_section"`     // mm²
	EarthSection      float64         `json:"earth_section"`       // mm²
	ConduitSize       string          `json:"conduit_size"`
	BreakerRating     int             `json:"breaker_rating"` // A, echoed from input
	BreakerCurve      TripCurve       `json:"breaker_curve"`
	BreakerIcn        float64         `json:"breaker_icn"` // kA
	VoltageDrop       float64         `json:"voltage_drop"`     // V
	VoltageDropPct    float64         `json:"voltage_drop_pct"` // %
	ShortCircuit      float64         `json:"short_circuit"`    // estimated fault current, A
	CorrectedAmpacity float64         `json:"corrected_ampacity"` // Iz of the selected cable, A
	SizingConform     bool            `json:"sizing_conform"` // voltage drop and ampacity
	IcnConform        bool            `json:"icn_conform"`    // interrupting capacity
	Conform           bool            `json:"conform"`        // both of the above
	Outcome           Outcome         `json:"outcome"`
	Notes             []Note          `json:"notes"`
	BOM               []BOMItem       `json:"bom"`
	BOMTotal          decimal.Decimal `json:"bom_total"`
}

// String methods for enums
func (s SystemType) String() string {
	switch s {
	case SinglePhase:
		return "single-phase"
	case TwoPhase:
		return "two-phase"
	case ThreePhase:
		return "three-phase"
	default:
		return "Unknown"
	}
}

func (l LoadType) String() string {
	switch l {
	case Lighting:
		return "lighting"
	case Socket:
		return "socket"
	case Motor:
		return "motor"
	case Feeder:
		return "feeder"
	default:
		return "Unknown"
	}
}

func (m Material) String() string {
	switch m {
	case Copper:
		return "copper"
	case Aluminum:
		return "aluminum"
	default:
		return "Unknown"
	}
}

func (i Insulation) String() string {
	switch i {
	case PVC:
		return "PVC"
	case EPR:
		return "EPR"
	default:
		return "Unknown"
	}
}

func (s Severity) String() string {
	switch s {
	case Advisory:
		return "advisory"
	case Warning:
		return "warning"
	case Danger:
		return "danger"
	default:
		return "Unknown"
	}
}

func (o Outcome) String() string {
	switch o {
	case Sized:
		return "sized"
	case Infeasible:
		return "infeasible"
	default:
		return "Unknown"
	}
}

// MarshalText renders enums as their names in JSON output
func (s SystemType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (l LoadType) MarshalText() ([]byte, error)   { return []byte(l.String()), nil }
func (m Material) MarshalText() ([]byte, error)   { return []byte(m.String()), nil }
func (i Insulation) MarshalText() ([]byte, error) { return []byte(i.String()), nil }
func (s Severity) MarshalText() ([]byte, error)   { return []byte(s.String()), nil }
func (o Outcome) MarshalText() ([]byte, error)    { return []byte(o.String()), nil }
