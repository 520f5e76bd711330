package sizing

import (
	"github.com/eletrocalc/eletrocalc/pkg/tables"
)

// EstimateFaultCurrent returns the prospective short-circuit current in A at
// the far end of a circuit, from the supply voltage, one-way length in m and
// conductor section in mm².
//
// This is a single-impedance model: the only impedance considered is the
// conductor's own resistance, looked up by section (1 Ω/km when the section
// is not a standard one). It deliberately ignores source impedance and
// reactance, so it overestimates the fault current, which is the safe side
// for checking breaker interrupting capacity.
func EstimateFaultCurrent(voltage, length, section float64) float64 {
	resistance := tables.ResistanceBySection(section) * length / 1000
	if resistance <= 0 {
		return 0
	}
	return voltage / resistance
}
