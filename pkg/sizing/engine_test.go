package sizing

import (
	"math"
	"reflect"
	"testing"
)

// lightingCircuit is the reference single-phase lighting scenario used
// throughout the engine tests
func lightingCircuit() CalcInput {
	return CalcInput{
		System:        SinglePhase,
		Voltage:       127,
		Power:         1200,
		PowerFactor:   1.0,
		Load:          Lighting,
		Length:        20,
		Method:        "B1",
		AmbientTemp:   30,
		Grouping:      1,
		Material:      Copper,
		Insulation:    PVC,
		BreakerCurve:  CurveC,
		BreakerIcn:    3.0,
		BreakerRating: 16,
	}
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestEngine_Size_LightingCircuit(t *testing.T) {
	engine := NewEngine()
	result := engine.Size(lightingCircuit())

	if !almostEqual(result.DesignCurrent, 9.45, 0.01) {
		t.Errorf("DesignCurrent = %.3f, want ≈9.45", result.DesignCurrent)
	}
	if result.PhaseSection != 1.5 {
		t.Errorf("PhaseSection = %v, want 1.5", result.PhaseSection)
	}
	if result.NeutralSection != 1.5 {
		t.Errorf("NeutralSection = %v, want 1.5", result.NeutralSection)
	}
	if result.EarthSection != 1.5 {
		t.Errorf("EarthSection = %v, want 1.5", result.EarthSection)
	}
	if !almostEqual(result.CorrectedAmpacity, 17.5, 0.001) {
		t.Errorf("CorrectedAmpacity = %v, want 17.5", result.CorrectedAmpacity)
	}
	if !almostEqual(result.VoltageDrop, 4.57, 0.01) {
		t.Errorf("VoltageDrop = %.3f, want ≈4.57", result.VoltageDrop)
	}
	if !almostEqual(result.VoltageDropPct, 3.60, 0.01) {
		t.Errorf("VoltageDropPct = %.3f, want ≈3.60", result.VoltageDropPct)
	}
	if result.ConduitSize != "20 mm" {
		t.Errorf("ConduitSize = %s, want 20 mm", result.ConduitSize)
	}
	if result.Outcome != Sized {
		t.Errorf("Outcome = %s, want sized", result.Outcome)
	}
	if !result.Conform {
		t.Errorf("Conform = false, want true (sizing %v, icn %v)", result.SizingConform, result.IcnConform)
	}
	if len(result.Notes) != 0 {
		t.Errorf("Notes = %v, want none for a conforming circuit", result.Notes)
	}
}

func TestEngine_Size_Deterministic(t *testing.T) {
	engine := NewEngine()
	input := lightingCircuit()

	first := engine.Size(input)
	second := engine.Size(input)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated calls with identical input produced different results")
	}
}

func TestEngine_Size_DropGrowsWithLength(t *testing.T) {
	engine := NewEngine()

	// Lengths chosen to stay within the drop limit on the same section, so
	// no upgrade resets the drop along the way
	previous := 0.0
	for _, length := range []float64{5, 10, 15, 20} {
		input := lightingCircuit()
		input.Length = length
		result := engine.Size(input)

		if result.VoltageDrop < previous {
			t.Errorf("length %v: drop %.3f below previous %.3f", length, result.VoltageDrop, previous)
		}
		previous = result.VoltageDrop
	}
}

func TestEngine_Size_SelectionCoversBreakerRating(t *testing.T) {
	engine := NewEngine()

	for _, rating := range []int{6, 10, 16, 25, 40, 63, 100, 125} {
		input := lightingCircuit()
		input.BreakerRating = rating
		result := engine.Size(input)

		if result.CorrectedAmpacity < float64(rating) {
			t.Errorf("rating %d A: corrected ampacity %.1f below rating", rating, result.CorrectedAmpacity)
		}
	}
}

func TestEngine_Size_ConformIsAndOfFlags(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name  string
		input CalcInput
	}{
		{name: "conforming", input: lightingCircuit()},
		{name: "undersized_breaker_icn", input: func() CalcInput {
			in := lightingCircuit()
			in.BreakerIcn = 0.3 // below the ≈525 A estimated fault current
			return in
		}()},
		{name: "oversized_breaker", input: func() CalcInput {
			in := lightingCircuit()
			in.BreakerRating = 500
			return in
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Size(tt.input)
			if result.Conform != (result.SizingConform && result.IcnConform) {
				t.Errorf("Conform = %v, flags are (%v, %v)", result.Conform, result.SizingConform, result.IcnConform)
			}
		})
	}
}

func TestEngine_Size_AmpacityTableExhausted(t *testing.T) {
	engine := NewEngine()
	input := lightingCircuit()
	input.BreakerRating = 500 // above the largest corrected ampacity in the table

	result := engine.Size(input)

	if result.Outcome != Infeasible {
		t.Errorf("Outcome = %s, want infeasible", result.Outcome)
	}
	if result.PhaseSection != 240 {
		t.Errorf("PhaseSection = %v, want largest section 240", result.PhaseSection)
	}
	if result.SizingConform {
		t.Error("SizingConform = true for an exhausted table")
	}
	assertNote(t, result.Notes, NoteBreakerAboveAmpacity)
}

func TestEngine_Size_DropTableExhausted(t *testing.T) {
	engine := NewEngine()
	input := lightingCircuit()
	input.Power = 5000
	input.BreakerRating = 40
	input.Length = 1000 // even 240 mm² stays above the 4% limit

	result := engine.Size(input)

	if result.Outcome != Infeasible {
		t.Errorf("Outcome = %s, want infeasible", result.Outcome)
	}
	if result.PhaseSection != 240 {
		t.Errorf("PhaseSection = %v, want largest section 240", result.PhaseSection)
	}
	if result.VoltageDropPct <= 4.0 {
		t.Errorf("VoltageDropPct = %.2f, expected above the limit", result.VoltageDropPct)
	}
	assertNote(t, result.Notes, NoteVoltageDropExceeded)
}

func TestEngine_Size_DropUpgradesSection(t *testing.T) {
	engine := NewEngine()
	input := lightingCircuit()
	input.Length = 40 // 1.5 mm² would drop ≈7.2%, above the 4% lighting limit

	result := engine.Size(input)

	if result.PhaseSection <= 1.5 {
		t.Errorf("PhaseSection = %v, want upgrade above 1.5", result.PhaseSection)
	}
	if result.VoltageDropPct > 4.0 {
		t.Errorf("VoltageDropPct = %.2f, want within the 4%% limit after upgrade", result.VoltageDropPct)
	}
	if result.Outcome != Sized {
		t.Errorf("Outcome = %s, want sized", result.Outcome)
	}
}

func TestEngine_Size_FeederDropLimit(t *testing.T) {
	engine := NewEngine()

	// 5.7% drop on 1.5 mm²: above the general 4% limit, within the feeder 7%
	input := lightingCircuit()
	input.Length = 32

	asLighting := engine.Size(input)
	input.Load = Feeder
	asFeeder := engine.Size(input)

	if asLighting.PhaseSection <= 1.5 {
		t.Errorf("lighting PhaseSection = %v, want upgrade", asLighting.PhaseSection)
	}
	if asFeeder.PhaseSection != 1.5 {
		t.Errorf("feeder PhaseSection = %v, want 1.5 under the 7%% limit", asFeeder.PhaseSection)
	}
}

func TestEngine_Size_Derating(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name        string
		adjust      func(*CalcInput)
		wantSection float64
	}{
		{
			name:        "reference",
			adjust:      func(in *CalcInput) {},
			wantSection: 1.5,
		},
		{
			name: "aluminum_derates",
			adjust: func(in *CalcInput) {
				in.Material = Aluminum // 17.5 × 0.78 = 13.65 A no longer covers 16 A
			},
			wantSection: 2.5,
		},
		{
			name: "epr_uprates",
			adjust: func(in *CalcInput) {
				in.Insulation = EPR
			},
			wantSection: 1.5,
		},
		{
			name: "hot_and_grouped",
			adjust: func(in *CalcInput) {
				in.AmbientTemp = 40
				in.Grouping = 3 // 0.87 × 0.70 pushes 1.5 and 2.5 mm² below 16 A
			},
			wantSection: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := lightingCircuit()
			tt.adjust(&input)
			result := engine.Size(input)
			if result.PhaseSection != tt.wantSection {
				t.Errorf("PhaseSection = %v, want %v", result.PhaseSection, tt.wantSection)
			}
		})
	}
}

func TestEngine_Size_AluminumResistance(t *testing.T) {
	engine := NewEngine()

	copper := lightingCircuit()
	copper.BreakerRating = 10 // keep both materials on 1.5 mm²
	aluminum := copper
	aluminum.Material = Aluminum

	copperResult := engine.Size(copper)
	aluminumResult := engine.Size(aluminum)

	if copperResult.PhaseSection != aluminumResult.PhaseSection {
		t.Fatalf("sections differ: %v vs %v", copperResult.PhaseSection, aluminumResult.PhaseSection)
	}
	want := copperResult.VoltageDrop * 1.6
	if !almostEqual(aluminumResult.VoltageDrop, want, 0.001) {
		t.Errorf("aluminum drop = %.3f, want %.3f (1.6 × copper)", aluminumResult.VoltageDrop, want)
	}
}

func TestEngine_Size_NeutralAndEarth(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name        string
		system      SystemType
		rating      int
		wantPhase   float64
		wantNeutral float64
		wantEarth   float64
	}{
		{name: "small_single_phase", system: SinglePhase, rating: 16, wantPhase: 1.5, wantNeutral: 1.5, wantEarth: 1.5},
		{name: "earth_capped_at_16", system: SinglePhase, rating: 100, wantPhase: 25, wantNeutral: 25, wantEarth: 16},
		{name: "three_phase_reduced_neutral", system: ThreePhase, rating: 125, wantPhase: 35, wantNeutral: 17.5, wantEarth: 16},
		{name: "earth_halved_above_35", system: ThreePhase, rating: 150, wantPhase: 50, wantNeutral: 25, wantEarth: 25},
		{name: "single_phase_keeps_full_neutral", system: SinglePhase, rating: 125, wantPhase: 35, wantNeutral: 35, wantEarth: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := lightingCircuit()
			input.System = tt.system
			input.Voltage = 380
			input.BreakerRating = tt.rating
			input.BreakerIcn = 50
			result := engine.Size(input)

			if result.PhaseSection != tt.wantPhase {
				t.Errorf("PhaseSection = %v, want %v", result.PhaseSection, tt.wantPhase)
			}
			if result.NeutralSection != tt.wantNeutral {
				t.Errorf("NeutralSection = %v, want %v", result.NeutralSection, tt.wantNeutral)
			}
			if result.EarthSection != tt.wantEarth {
				t.Errorf("EarthSection = %v, want %v", result.EarthSection, tt.wantEarth)
			}
		})
	}
}

func TestEngine_Size_CurveAdvisories(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name     string
		load     LoadType
		curve    TripCurve
		wantNote bool
	}{
		{name: "motor_on_curve_b", load: Motor, curve: CurveB, wantNote: true},
		{name: "motor_on_curve_c", load: Motor, curve: CurveC, wantNote: false},
		{name: "motor_on_curve_d", load: Motor, curve: CurveD, wantNote: false},
		{name: "lighting_on_curve_d", load: Lighting, curve: CurveD, wantNote: true},
		{name: "socket_on_curve_b", load: Socket, curve: CurveB, wantNote: true},
		{name: "socket_on_curve_c", load: Socket, curve: CurveC, wantNote: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := lightingCircuit()
			input.Load = tt.load
			input.BreakerCurve = tt.curve
			result := engine.Size(input)

			found := hasNote(result.Notes, NoteTripCurveMismatch)
			if found != tt.wantNote {
				t.Errorf("curve-mismatch note present = %v, want %v", found, tt.wantNote)
			}
		})
	}
}

func TestEngine_Size_NuisanceTripNote(t *testing.T) {
	engine := NewEngine()
	input := lightingCircuit()
	input.BreakerRating = 6 // below the ≈9.45 A design current

	result := engine.Size(input)
	assertNote(t, result.Notes, NoteBreakerBelowLoad)
}

func TestEngine_Size_ParallelConductorNote(t *testing.T) {
	engine := NewEngine()
	input := lightingCircuit()
	input.Power = 15000 // Ib ≈ 118 A on 127 V
	input.BreakerRating = 125
	input.BreakerIcn = 50

	result := engine.Size(input)
	assertNote(t, result.Notes, NoteParallelConductors)
}

func TestEngine_Size_UnknownMethodUsesB1(t *testing.T) {
	engine := NewEngine()

	reference := engine.Size(lightingCircuit())
	input := lightingCircuit()
	input.Method = "X9"
	masked := engine.Size(input)

	if masked.PhaseSection != reference.PhaseSection || masked.CorrectedAmpacity != reference.CorrectedAmpacity {
		t.Errorf("unknown method sized (%v mm², %.1f A), want the B1 result (%v mm², %.1f A)",
			masked.PhaseSection, masked.CorrectedAmpacity, reference.PhaseSection, reference.CorrectedAmpacity)
	}
}

func hasNote(notes []Note, code string) bool {
	for _, note := range notes {
		if note.Code == code {
			return true
		}
	}
	return false
}

func assertNote(t *testing.T, notes []Note, code string) {
	t.Helper()
	if !hasNote(notes, code) {
		t.Errorf("expected note %s, got %v", code, notes)
	}
}
