package main

import (
	"encoding/json"
	"fmt"

	"github.com/eletrocalc/eletrocalc/pkg/motor"
	"github.com/eletrocalc/eletrocalc/pkg/qdc"
	"github.com/eletrocalc/eletrocalc/pkg/sizing"
	"github.com/eletrocalc/eletrocalc/pkg/solar"
	"github.com/eletrocalc/eletrocalc/pkg/spda"
)

const separator = "────────────────────────────────────────────────────────────────\n"

// writeOutput renders a result as text or indented JSON on stdout
func writeOutput[T any](format string, result T, renderText func(T) string) error {
	switch format {
	case "text":
		fmt.Print(renderText(result))
		return nil
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Printf("%s\n", data)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderConductorText(result sizing.CalcResult) string {
	var output string

	output += "⚡ CONDUCTOR SIZING\n"
	output += separator
	output += fmt.Sprintf("  Design Current:     %8.2f A\n", result.DesignCurrent)
	output += fmt.Sprintf("  Phase Section:      %8.1f mm²\n", result.PhaseSection)
	output += fmt.Sprintf("  Neutral Section:    %8.1f mm²\n", result.NeutralSection)
	output += fmt.Sprintf("  Earth Section:      %8.1f mm²\n", result.EarthSection)
	output += fmt.Sprintf("  Conduit:            %8s\n", result.ConduitSize)
	output += fmt.Sprintf("  Corrected Ampacity: %8.1f A\n", result.CorrectedAmpacity)
	output += fmt.Sprintf("  Breaker:            %5d A  curve %s  %.1f kA\n",
		result.BreakerRating, result.BreakerCurve, result.BreakerIcn)
	output += fmt.Sprintf("  Voltage Drop:       %8.2f V (%.2f%%)\n", result.VoltageDrop, result.VoltageDropPct)
	output += fmt.Sprintf("  Fault Current:      %8.0f A\n", result.ShortCircuit)
	output += fmt.Sprintf("  Outcome:            %8s\n", result.Outcome)
	output += fmt.Sprintf("  Conform:            %8v (sizing %v, breaking capacity %v)\n",
		result.Conform, result.SizingConform, result.IcnConform)
	output += "\n"

	if len(result.Notes) > 0 {
		output += "🚨 DIAGNOSTICS\n"
		output += separator
		for _, note := range result.Notes {
			output += fmt.Sprintf("  [%s] %s\n", note.Severity, note.Text)
		}
		output += "\n"
	}

	output += "📋 BILL OF MATERIALS\n"
	output += separator
	for _, item := range result.BOM {
		output += fmt.Sprintf("  %-42s %10s  %8s\n", item.Description, item.Quantity, item.Price.StringFixed(2))
	}
	output += fmt.Sprintf("  %-42s %10s  %8s\n", "TOTAL", "", result.BOMTotal.StringFixed(2))

	return output
}

func renderMotorText(result motor.Result) string {
	var output string

	output += "⚡ MOTOR PROTECTION SIZING\n"
	output += separator
	output += fmt.Sprintf("  Nominal Current:  %8.2f A\n", result.NominalCurrent)
	output += fmt.Sprintf("  Starting Current: %8.2f A\n", result.StartingCurrent)
	output += fmt.Sprintf("  Breaker:          %5d A\n", result.BreakerRating)
	output += fmt.Sprintf("  Thermal Relay:    %8.2f A\n", result.ThermalRelay)
	output += fmt.Sprintf("  Contactor:        %8s\n", result.Contactor)

	return output
}

func renderQDCText(result qdc.Result) string {
	var output string

	output += "⚡ PANEL (QDC) SIZING\n"
	output += separator
	output += fmt.Sprintf("  Total Current:   %8.2f A\n", result.TotalCurrent)
	output += fmt.Sprintf("  Main Breaker:    %5d A\n", result.MainBreaker)
	output += fmt.Sprintf("  Residual Device: %5d A\n", result.ResidualDevice)
	output += fmt.Sprintf("  Surge Arrester:  %8s\n", result.SurgeArrester)
	output += fmt.Sprintf("  Busbar:          %8.1f A\n", result.BusbarRating)
	output += "\n"

	output += "📋 PHASE BALANCE\n"
	output += separator
	for i, phase := range result.Phases {
		output += fmt.Sprintf("  Phase %c: %8.2f A\n", 'A'+i, phase.Total)
		for _, circuit := range phase.Circuits {
			output += fmt.Sprintf("    %-30s %8.2f A\n", circuit.Description, circuit.Current)
		}
	}

	return output
}

func renderSPDAText(result spda.Result) string {
	var output string

	output += "⚡ LIGHTNING PROTECTION (SPDA) SIZING\n"
	output += separator
	output += fmt.Sprintf("  Protection Radius:      %8.1f m\n", result.ProtectionRadius)
	output += fmt.Sprintf("  Down-Conductor Spacing: %8.1f m\n", result.DownConductorSpacing)
	output += fmt.Sprintf("  Grounding Mesh:         %8s\n", result.MeshSize)
	output += fmt.Sprintf("  Ground Ring Depth:      %8.1f m\n", result.GroundRingDepth)

	return output
}

func renderSolarText(result solar.Result) string {
	var output string

	output += "⚡ PHOTOVOLTAIC SIZING\n"
	output += separator
	output += fmt.Sprintf("  Daily Consumption:  %8.2f kWh\n", result.DailyConsumption)
	output += fmt.Sprintf("  System Power:       %8.2f kW\n", result.SystemPower)
	output += fmt.Sprintf("  Panels:             %5d\n", result.PanelCount)
	output += fmt.Sprintf("  Monthly Generation: %8.1f kWh\n", result.MonthlyGeneration)
	output += fmt.Sprintf("  Estimated Area:     %8.1f m²\n", result.Area)

	return output
}
