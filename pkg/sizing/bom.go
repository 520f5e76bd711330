package sizing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// buildBOM synthesizes the five-line bill of materials for a sized circuit:
// phase cable, neutral cable, earth cable, breaker and conduit. Cable prices
// scale with section and run length, the breaker is a flat unit price and
// conduit scales with length. The returned total is the exact sum of the
// line prices.
func (e *Engine) buildBOM(input CalcInput, result CalcResult) ([]BOMItem, decimal.Decimal) {
	phases := conductorCount(input.System)
	phaseLength := input.Length * float64(phases)

	items := []BOMItem{
		{
			Description: fmt.Sprintf("Phase cable %s %.1f mm²", input.Material, result.PhaseSection),
			Quantity:    fmt.Sprintf("%.0f m", phaseLength),
			Price:       cablePrice(e.config, phaseLength, result.PhaseSection),
		},
		{
			Description: fmt.Sprintf("Neutral cable %s %.1f mm²", input.Material, result.NeutralSection),
			Quantity:    fmt.Sprintf("%.0f m", input.Length),
			Price:       cablePrice(e.config, input.Length, result.NeutralSection),
		},
		{
			Description: fmt.Sprintf("Earth cable %s %.1f mm²", input.Material, result.EarthSection),
			Quantity:    fmt.Sprintf("%.0f m", input.Length),
			Price:       cablePrice(e.config, input.Length, result.EarthSection),
		},
		{
			Description: fmt.Sprintf("Circuit breaker %d A curve %s %.1f kA", input.BreakerRating, input.BreakerCurve, input.BreakerIcn),
			Quantity:    "1 un",
			Price:       e.config.BreakerUnitPrice,
		},
		{
			Description: fmt.Sprintf("Conduit %s", result.ConduitSize),
			Quantity:    fmt.Sprintf("%.0f m", input.Length),
			Price:       decimal.NewFromFloat(input.Length).Mul(e.config.ConduitPricePerMeter).Round(2),
		},
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return items, total
}

func cablePrice(config Config, length, section float64) decimal.Decimal {
	return decimal.NewFromFloat(length).
		Mul(decimal.NewFromFloat(section)).
		Mul(config.CablePricePerMM2Meter).
		Round(2)
}
