// Package spda sizes a lightning-protection system (SPDA): protection
// radius, down-conductor spacing, grounding mesh size and ring depth, by
// protection risk level.
package spda

// Protection cone slope in the simplified model: radius = height × 1.5
const protectionSlope = 1.5

// Per-risk-level geometry, indexed by level 1..4
var (
	downConductorSpacing = [4]float64{10, 10, 15, 20} // m
	meshSizes            = [4]string{"5 × 5 m", "10 × 10 m", "15 × 15 m", "20 × 20 m"}
)

// Config holds the installation assumptions
type Config struct {
	// GroundRingDepth is trench depth for the grounding ring, in m
	GroundRingDepth float64
}

// DefaultConfig returns the standard installation assumptions
func DefaultConfig() Config {
	return Config{GroundRingDepth: 0.5}
}

// Input holds the structure parameters
type Input struct {
	RiskLevel int     `json:"risk_level"` // 1 (highest exposure) to 4
	Height    float64 `json:"height"`     // m
}

// Result contains the sized protection system
type Result struct {
	ProtectionRadius     float64 `json:"protection_radius"`      // m at ground level
	DownConductorSpacing float64 `json:"down_conductor_spacing"` // m
	MeshSize             string  `json:"mesh_size"`
	GroundRingDepth      float64 `json:"ground_ring_depth"` // m
}

// Calculator implements the lightning-protection sizing
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

// Size looks up the protection geometry for the risk level. Levels outside
// 1..4 are clamped to the nearest valid level.
func (c *Calculator) Size(input Input) Result {
	level := input.RiskLevel
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}

	return Result{
		ProtectionRadius:     input.Height * protectionSlope,
		DownConductorSpacing: downConductorSpacing[level-1],
		MeshSize:             meshSizes[level-1],
		GroundRingDepth:      c.config.GroundRingDepth,
	}
}
