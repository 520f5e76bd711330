// Package config loads the optional engineering-constants file and maps it
// onto the per-calculator configuration structs. Every key has a default
// equal to the built-in constant, so a missing file is not an error.
package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/eletrocalc/eletrocalc/pkg/qdc"
	"github.com/eletrocalc/eletrocalc/pkg/sizing"
	"github.com/eletrocalc/eletrocalc/pkg/solar"
	"github.com/eletrocalc/eletrocalc/pkg/spda"
)

// Config mirrors the constants file layout
type Config struct {
	Prices PricesConfig `mapstructure:"prices"`
	Panel  PanelConfig  `mapstructure:"panel"`
	Solar  SolarConfig  `mapstructure:"solar"`
	SPDA   SPDAConfig   `mapstructure:"spda"`
}

// PricesConfig holds the bill-of-materials price list
type PricesConfig struct {
	CablePerMM2Meter float64 `mapstructure:"cable_per_mm2_meter"`
	BreakerUnit      float64 `mapstructure:"breaker_unit"`
	ConduitPerMeter  float64 `mapstructure:"conduit_per_meter"`
}

// PanelConfig holds the QDC sizing assumptions
type PanelConfig struct {
	DiversityFactor    float64 `mapstructure:"diversity_factor"`
	SurgeArresterClass string  `mapstructure:"surge_arrester_class"`
	BusbarFactor       float64 `mapstructure:"busbar_factor"`
}

// SolarConfig holds the photovoltaic sizing assumptions
type SolarConfig struct {
	SystemEfficiency float64 `mapstructure:"system_efficiency"`
	PanelArea        float64 `mapstructure:"panel_area"`
}

// SPDAConfig holds the lightning-protection assumptions
type SPDAConfig struct {
	GroundRingDepth float64 `mapstructure:"ground_ring_depth"`
}

// Load reads the constants file from the given path (or the working
// directory when path is empty) and returns the merged configuration.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("eletrocalc")
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
	}

	v.SetDefault("prices.cable_per_mm2_meter", 0.85)
	v.SetDefault("prices.breaker_unit", 42.00)
	v.SetDefault("prices.conduit_per_meter", 6.50)
	v.SetDefault("panel.diversity_factor", 0.8)
	v.SetDefault("panel.surge_arrester_class", "20 kA")
	v.SetDefault("panel.busbar_factor", 1.25)
	v.SetDefault("solar.system_efficiency", 0.8)
	v.SetDefault("solar.panel_area", 2.0)
	v.SetDefault("spda.ground_ring_depth", 0.5)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading constants file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling constants file: %w", err)
	}

	return &config, nil
}

// Sizing converts the price list to the conductor engine configuration
func (c *Config) Sizing() sizing.Config {
	return sizing.Config{
		CablePricePerMM2Meter: decimal.NewFromFloat(c.Prices.CablePerMM2Meter),
		BreakerUnitPrice:      decimal.NewFromFloat(c.Prices.BreakerUnit),
		ConduitPricePerMeter:  decimal.NewFromFloat(c.Prices.ConduitPerMeter),
	}
}

// QDC converts the panel assumptions to the QDC calculator configuration
func (c *Config) QDC() qdc.Config {
	return qdc.Config{
		DiversityFactor:    c.Panel.DiversityFactor,
		SurgeArresterClass: c.Panel.SurgeArresterClass,
		BusbarFactor:       c.Panel.BusbarFactor,
	}
}

// SolarCalc converts the photovoltaic assumptions to the solar calculator
// configuration
func (c *Config) SolarCalc() solar.Config {
	return solar.Config{
		SystemEfficiency: c.Solar.SystemEfficiency,
		PanelArea:        c.Solar.PanelArea,
	}
}

// SPDACalc converts the lightning-protection assumptions to the SPDA
// calculator configuration
func (c *Config) SPDACalc() spda.Config {
	return spda.Config{GroundRingDepth: c.SPDA.GroundRingDepth}
}
