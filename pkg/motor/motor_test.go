package motor

import (
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestSize_DirectStart(t *testing.T) {
	result := Size(Input{
		PowerCV:     5,
		Voltage:     380,
		Efficiency:  85,
		PowerFactor: 0.8,
		Starting:    DirectOnLine,
	})

	if !almostEqual(result.NominalCurrent, 8.22, 0.01) {
		t.Errorf("NominalCurrent = %.3f, want ≈8.22", result.NominalCurrent)
	}
	if !almostEqual(result.StartingCurrent, 57.5, 0.1) {
		t.Errorf("StartingCurrent = %.2f, want ≈57.5", result.StartingCurrent)
	}
	if result.BreakerRating != 13 {
		t.Errorf("BreakerRating = %d, want 13 (smallest standard ≥ 1.25 × nominal)", result.BreakerRating)
	}
	if !almostEqual(result.ThermalRelay, 9.04, 0.01) {
		t.Errorf("ThermalRelay = %.3f, want ≈9.04", result.ThermalRelay)
	}
	if result.Contactor != "CWM9" {
		t.Errorf("Contactor = %s, want CWM9 for nominal below 9 A", result.Contactor)
	}
}

func TestSize_StartingMultipliers(t *testing.T) {
	base := Input{
		PowerCV:     5,
		Voltage:     380,
		Efficiency:  85,
		PowerFactor: 0.8,
	}

	tests := []struct {
		name       string
		starting   StartingMethod
		multiplier float64
	}{
		{name: "direct_on_line", starting: DirectOnLine, multiplier: 7.0},
		{name: "star_delta", starting: StarDelta, multiplier: 2.3},
		{name: "soft_starter", starting: SoftStarter, multiplier: 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base
			input.Starting = tt.starting
			result := Size(input)

			want := result.NominalCurrent * tt.multiplier
			if !almostEqual(result.StartingCurrent, want, 0.001) {
				t.Errorf("StartingCurrent = %.3f, want %.3f", result.StartingCurrent, want)
			}
		})
	}
}

func TestSize_ContactorBands(t *testing.T) {
	tests := []struct {
		name    string
		powerCV float64
		want    string
	}{
		{name: "below_9A", powerCV: 5, want: "CWM9"},       // ≈8.2 A
		{name: "below_12A", powerCV: 6, want: "CWM12"},     // ≈9.9 A
		{name: "below_18A", powerCV: 8, want: "CWM18"},     // ≈13.1 A
		{name: "largest_band", powerCV: 12, want: "CWM25"}, // ≈19.7 A
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Size(Input{
				PowerCV:     tt.powerCV,
				Voltage:     380,
				Efficiency:  85,
				PowerFactor: 0.8,
				Starting:    DirectOnLine,
			})
			if result.Contactor != tt.want {
				t.Errorf("Contactor = %s (nominal %.2f A), want %s", result.Contactor, result.NominalCurrent, tt.want)
			}
		})
	}
}

func TestSize_Deterministic(t *testing.T) {
	input := Input{PowerCV: 7.5, Voltage: 220, Efficiency: 88, PowerFactor: 0.85, Starting: StarDelta}

	if Size(input) != Size(input) {
		t.Error("repeated calls with identical input produced different results")
	}
}
