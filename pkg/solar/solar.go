// Package solar sizes a grid-tied photovoltaic system from the monthly
// consumption and the local irradiation: panel count, system power, monthly
// generation estimate and roof area.
package solar

import (
	"math"
)

// Config holds the system assumptions
type Config struct {
	// SystemEfficiency covers inverter, wiring and soiling losses
	SystemEfficiency float64
	// PanelArea is the footprint of one panel in m²
	PanelArea float64
}

// DefaultConfig returns the standard system assumptions
func DefaultConfig() Config {
	return Config{
		SystemEfficiency: 0.8,
		PanelArea:        2.0,
	}
}

// Input holds the consumption and site parameters
type Input struct {
	MonthlyConsumption float64 `json:"monthly_consumption"` // kWh/month
	Irradiation        float64 `json:"irradiation"`         // kWh/m²·day
	PanelPower         float64 `json:"panel_power"`         // W per panel
}

// Result contains the sized system
type Result struct {
	DailyConsumption  float64 `json:"daily_consumption"`  // kWh/day
	SystemPower       float64 `json:"system_power"`       // kW
	PanelCount        int     `json:"panel_count"`
	MonthlyGeneration float64 `json:"monthly_generation"` // kWh/month
	Area              float64 `json:"area"`               // m²
}

// Calculator implements the photovoltaic sizing
type Calculator struct {
	config Config
}

// NewCalculator creates a calculator with the default assumptions
func NewCalculator() *Calculator {
	return NewCalculatorWithConfig(DefaultConfig())
}

// NewCalculatorWithConfig creates a calculator with custom assumptions
func NewCalculatorWithConfig(config Config) *Calculator {
	return &Calculator{config: config}
}

// Size computes the system power, panel count and generation estimate
func (c *Calculator) Size(input Input) Result {
	daily := input.MonthlyConsumption / 30
	systemPower := daily / input.Irradiation / c.config.SystemEfficiency
	panelCount := int(math.Ceil(systemPower * 1000 / input.PanelPower))

	return Result{
		DailyConsumption:  daily,
		SystemPower:       systemPower,
		PanelCount:        panelCount,
		MonthlyGeneration: systemPower * input.Irradiation * 30 * c.config.SystemEfficiency,
		Area:              float64(panelCount) * c.config.PanelArea,
	}
}
