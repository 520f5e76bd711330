package main

import (
	"fmt"

	"github.com/eletrocalc/eletrocalc/pkg/motor"
	"github.com/eletrocalc/eletrocalc/pkg/qdc"
	"github.com/eletrocalc/eletrocalc/pkg/sizing"
)

func main() {
	// Size a 1200 W lighting circuit on a 127 V single-phase supply
	engine := sizing.NewEngine()
	circuit := sizing.CalcInput{
		System:        sizing.SinglePhase,
		Voltage:       127,
		Power:         1200,
		PowerFactor:   1.0,
		Load:          sizing.Lighting,
		Length:        20,
		Method:        "B1",
		AmbientTemp:   30,
		Grouping:      1,
		Material:      sizing.Copper,
		Insulation:    sizing.PVC,
		BreakerCurve:  sizing.CurveC,
		BreakerIcn:    3.0,
		BreakerRating: 16,
	}

	result := engine.Size(circuit)

	fmt.Println("⚡ Sizing a lighting circuit...")
	fmt.Printf("  Design Current:  %.2f A\n", result.DesignCurrent)
	fmt.Printf("  Phase Section:   %.1f mm² (Iz %.1f A)\n", result.PhaseSection, result.CorrectedAmpacity)
	fmt.Printf("  Voltage Drop:    %.2f V (%.2f%%)\n", result.VoltageDrop, result.VoltageDropPct)
	fmt.Printf("  Conduit:         %s\n", result.ConduitSize)
	fmt.Printf("  Conform:         %v\n", result.Conform)
	for _, note := range result.Notes {
		fmt.Printf("  Note [%s]: %s\n", note.Severity, note.Text)
	}
	fmt.Println()

	fmt.Println("📋 Bill of materials:")
	for _, item := range result.BOM {
		fmt.Printf("  %-40s %10s  %8s\n", item.Description, item.Quantity, item.Price.StringFixed(2))
	}
	fmt.Printf("  %-40s %10s  %8s\n", "TOTAL", "", result.BOMTotal.StringFixed(2))
	fmt.Println()

	// Size the protection chain of a 5 CV motor with direct-on-line start
	motorResult := motor.Size(motor.Input{
		PowerCV:     5,
		Voltage:     380,
		Efficiency:  85,
		PowerFactor: 0.8,
		Starting:    motor.DirectOnLine,
	})

	fmt.Println("⚡ Sizing a 5 CV motor (direct start)...")
	fmt.Printf("  Nominal Current:  %.2f A\n", motorResult.NominalCurrent)
	fmt.Printf("  Starting Current: %.2f A\n", motorResult.StartingCurrent)
	fmt.Printf("  Breaker:          %d A\n", motorResult.BreakerRating)
	fmt.Printf("  Thermal Relay:    %.2f A\n", motorResult.ThermalRelay)
	fmt.Printf("  Contactor:        %s\n", motorResult.Contactor)
	fmt.Println()

	// Size a small panel and balance its phases
	panel := qdc.NewCalculator()
	panelResult := panel.Size(qdc.Input{
		Circuits: []qdc.Circuit{
			{Description: "Air conditioning", Current: 32},
			{Description: "Sockets, kitchen", Current: 20},
			{Description: "Lighting, ground floor", Current: 15},
		},
	})

	fmt.Println("⚡ Sizing a distribution panel...")
	fmt.Printf("  Total Current: %.1f A\n", panelResult.TotalCurrent)
	fmt.Printf("  Main Breaker:  %d A\n", panelResult.MainBreaker)
	fmt.Printf("  Busbar:        %.1f A\n", panelResult.BusbarRating)
	for i, phase := range panelResult.Phases {
		fmt.Printf("  Phase %c:       %.1f A\n", 'A'+i, phase.Total)
	}
}
