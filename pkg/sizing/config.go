package sizing

import (
	"github.com/shopspring/decimal"
)

// Config holds the pricing constants used for bill-of-materials estimation.
// Prices are decimal so downstream budget totals add up exactly.
type Config struct {
	// CablePricePerMM2Meter prices cable per mm² of section per meter of run
	CablePricePerMM2Meter decimal.Decimal
	// BreakerUnitPrice is a flat price per breaker regardless of rating
	BreakerUnitPrice decimal.Decimal
	// ConduitPricePerMeter prices conduit per meter of run
	ConduitPricePerMeter decimal.Decimal
}

// DefaultConfig returns the built-in price list
func DefaultConfig() Config {
	return Config{
		CablePricePerMM2Meter: decimal.NewFromFloat(0.85),
		BreakerUnitPrice:      decimal.NewFromFloat(42.00),
		ConduitPricePerMeter:  decimal.NewFromFloat(6.50),
	}
}
