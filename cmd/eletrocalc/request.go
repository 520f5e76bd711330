package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/eletrocalc/eletrocalc/pkg/motor"
	"github.com/eletrocalc/eletrocalc/pkg/sizing"
)

// The request types decode client-facing JSON, where enums are spelled out
// as strings, and map it onto the typed calculator inputs. Validation of
// enum values happens here, at the boundary; the calculators themselves
// accept whatever they are given.

// readRequest loads and decodes a JSON input file into req
func readRequest(path string, req interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := json.Unmarshal(data, req); err != nil {
		return fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	return nil
}

// conductorRequest is the JSON shape of a conductor sizing input
type conductorRequest struct {
	System        string  `json:"system"`
	Voltage       float64 `json:"voltage"`
	Power         float64 `json:"power"`
	PowerFactor   float64 `json:"power_factor"`
	Load          string  `json:"load"`
	Length        float64 `json:"length"`
	Method        string  `json:"method"`
	AmbientTemp   int     `json:"ambient_temp"`
	Grouping      int     `json:"grouping"`
	Material      string  `json:"material"`
	Insulation    string  `json:"insulation"`
	BreakerCurve  string  `json:"breaker_curve"`
	BreakerIcn    float64 `json:"breaker_icn"`
	BreakerRating int     `json:"breaker_rating"`
}

func (r conductorRequest) toInput() (sizing.CalcInput, error) {
	system, err := parseSystem(r.System)
	if err != nil {
		return sizing.CalcInput{}, err
	}
	load, err := parseLoad(r.Load)
	if err != nil {
		return sizing.CalcInput{}, err
	}
	material, err := parseMaterial(r.Material)
	if err != nil {
		return sizing.CalcInput{}, err
	}
	insulation, err := parseInsulation(r.Insulation)
	if err != nil {
		return sizing.CalcInput{}, err
	}
	curve, err := parseCurve(r.BreakerCurve)
	if err != nil {
		return sizing.CalcInput{}, err
	}

	return sizing.CalcInput{
		System:        system,
		Voltage:       r.Voltage,
		Power:         r.Power,
		PowerFactor:   r.PowerFactor,
		Load:          load,
		Length:        r.Length,
		Method:        r.Method,
		AmbientTemp:   r.AmbientTemp,
		Grouping:      r.Grouping,
		Material:      material,
		Insulation:    insulation,
		BreakerCurve:  curve,
		BreakerIcn:    r.BreakerIcn,
		BreakerRating: r.BreakerRating,
	}, nil
}

// motorRequest is the JSON shape of a motor sizing input
type motorRequest struct {
	PowerCV     float64 `json:"power_cv"`
	Voltage     float64 `json:"voltage"`
	Efficiency  float64 `json:"efficiency"`
	PowerFactor float64 `json:"power_factor"`
	Starting    string  `json:"starting"`
}

func (r motorRequest) toInput() (motor.Input, error) {
	starting, err := parseStarting(r.Starting)
	if err != nil {
		return motor.Input{}, err
	}
	return motor.Input{
		PowerCV:     r.PowerCV,
		Voltage:     r.Voltage,
		Efficiency:  r.Efficiency,
		PowerFactor: r.PowerFactor,
		Starting:    starting,
	}, nil
}

func parseSystem(s string) (sizing.SystemType, error) {
	switch s {
	case "single-phase", "single":
		return sizing.SinglePhase, nil
	case "two-phase", "two":
		return sizing.TwoPhase, nil
	case "three-phase", "three":
		return sizing.ThreePhase, nil
	default:
		return 0, fmt.Errorf("unknown system type %q (want single-phase, two-phase or three-phase)", s)
	}
}

func parseLoad(s string) (sizing.LoadType, error) {
	switch s {
	case "lighting":
		return sizing.Lighting, nil
	case "socket":
		return sizing.Socket, nil
	case "motor":
		return sizing.Motor, nil
	case "feeder":
		return sizing.Feeder, nil
	default:
		return 0, fmt.Errorf("unknown load type %q (want lighting, socket, motor or feeder)", s)
	}
}

func parseMaterial(s string) (sizing.Material, error) {
	switch s {
	case "copper", "":
		return sizing.Copper, nil
	case "aluminum":
		return sizing.Aluminum, nil
	default:
		return 0, fmt.Errorf("unknown conductor material %q (want copper or aluminum)", s)
	}
}

func parseInsulation(s string) (sizing.Insulation, error) {
	switch s {
	case "PVC", "":
		return sizing.PVC, nil
	case "EPR":
		return sizing.EPR, nil
	default:
		return 0, fmt.Errorf("unknown insulation class %q (want PVC or EPR)", s)
	}
}

func parseCurve(s string) (sizing.TripCurve, error) {
	switch sizing.TripCurve(s) {
	case sizing.CurveB, sizing.CurveC, sizing.CurveD:
		return sizing.TripCurve(s), nil
	default:
		return "", fmt.Errorf("unknown trip curve %q (want B, C or D)", s)
	}
}

func parseStarting(s string) (motor.StartingMethod, error) {
	switch s {
	case "direct", "direct-on-line":
		return motor.DirectOnLine, nil
	case "star-delta":
		return motor.StarDelta, nil
	case "soft-starter":
		return motor.SoftStarter, nil
	default:
		return 0, fmt.Errorf("unknown starting method %q (want direct, star-delta or soft-starter)", s)
	}
}
