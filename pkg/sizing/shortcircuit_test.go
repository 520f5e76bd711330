package sizing

import (
	"testing"
)

func TestEstimateFaultCurrent(t *testing.T) {
	tests := []struct {
		name    string
		voltage float64
		length  float64
		section float64
		want    float64
	}{
		// 127 V over 20 m of 1.5 mm² (12.1 Ω/km)
		{name: "standard_section", voltage: 127, length: 20, section: 1.5, want: 524.79},
		// nonstandard section falls back to 1 Ω/km
		{name: "default_resistance", voltage: 220, length: 100, section: 3, want: 2200},
		// shorter runs fault harder
		{name: "short_run", voltage: 127, length: 5, section: 1.5, want: 2099.17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateFaultCurrent(tt.voltage, tt.length, tt.section)
			if !almostEqual(got, tt.want, 0.01) {
				t.Errorf("EstimateFaultCurrent(%v, %v, %v) = %.2f, want %.2f", tt.voltage, tt.length, tt.section, got, tt.want)
			}
		})
	}
}

func TestEstimateFaultCurrent_ZeroLength(t *testing.T) {
	if got := EstimateFaultCurrent(127, 0, 1.5); got != 0 {
		t.Errorf("EstimateFaultCurrent with zero length = %v, want 0", got)
	}
}
