package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eletrocalc/eletrocalc/pkg/motor"
	"github.com/eletrocalc/eletrocalc/pkg/qdc"
	"github.com/eletrocalc/eletrocalc/pkg/sizing"
	"github.com/eletrocalc/eletrocalc/pkg/solar"
	"github.com/eletrocalc/eletrocalc/pkg/spda"
)

func newConductorCommand(opts *commandOptions) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "conductor",
		Short: "Size branch-circuit conductors and protection",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req conductorRequest
			if err := readRequest(inputFile, &req); err != nil {
				return err
			}
			input, err := req.toInput()
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			engine := sizing.NewEngineWithConfig(cfg.Sizing())
			result := engine.Size(input)
			logger.Debugf("sized circuit: Ib=%.2f A, outcome=%s", result.DesignCurrent, result.Outcome)

			return writeOutput(opts.format, result, renderConductorText)
		},
	}

	cmd.Flags().StringVar(&inputFile, "input", "", "Path to circuit JSON file")
	cmd.MarkFlagRequired("input")
	return cmd
}

func newMotorCommand(opts *commandOptions) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "motor",
		Short: "Size motor protection: breaker, thermal relay and contactor",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req motorRequest
			if err := readRequest(inputFile, &req); err != nil {
				return err
			}
			input, err := req.toInput()
			if err != nil {
				return err
			}

			result := motor.Size(input)
			return writeOutput(opts.format, result, renderMotorText)
		},
	}

	cmd.Flags().StringVar(&inputFile, "input", "", "Path to motor JSON file")
	cmd.MarkFlagRequired("input")
	return cmd
}

func newQDCCommand(opts *commandOptions) *cobra.Command {
	var inputFile string
	var csvFile string

	cmd := &cobra.Command{
		Use:   "qdc",
		Short: "Size a distribution panel and balance its phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			var input qdc.Input
			switch {
			case csvFile != "":
				circuits, err := loadCircuitsCSV(csvFile)
				if err != nil {
					return err
				}
				input.Circuits = circuits
			case inputFile != "":
				if err := readRequest(inputFile, &input); err != nil {
					return err
				}
			default:
				return fmt.Errorf("either --input or --csv is required")
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			result := qdc.NewCalculatorWithConfig(cfg.QDC()).Size(input)
			return writeOutput(opts.format, result, renderQDCText)
		},
	}

	cmd.Flags().StringVar(&inputFile, "input", "", "Path to panel JSON file")
	cmd.Flags().StringVar(&csvFile, "csv", "", "Path to circuit-list CSV file (description,current)")
	return cmd
}

func newSPDACommand(opts *commandOptions) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "spda",
		Short: "Size a lightning-protection system",
		RunE: func(cmd *cobra.Command, args []string) error {
			var input spda.Input
			if err := readRequest(inputFile, &input); err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			result := spda.NewCalculatorWithConfig(cfg.SPDACalc()).Size(input)
			return writeOutput(opts.format, result, renderSPDAText)
		},
	}

	cmd.Flags().StringVar(&inputFile, "input", "", "Path to structure JSON file")
	cmd.MarkFlagRequired("input")
	return cmd
}

func newSolarCommand(opts *commandOptions) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "solar",
		Short: "Size a photovoltaic system",
		RunE: func(cmd *cobra.Command, args []string) error {
			var input solar.Input
			if err := readRequest(inputFile, &input); err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			result := solar.NewCalculatorWithConfig(cfg.SolarCalc()).Size(input)
			return writeOutput(opts.format, result, renderSolarText)
		},
	}

	cmd.Flags().StringVar(&inputFile, "input", "", "Path to consumption JSON file")
	cmd.MarkFlagRequired("input")
	return cmd
}

// loadCircuitsCSV reads a circuit list with a description,current header row
func loadCircuitsCSV(path string) ([]qdc.Circuit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open circuit CSV: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse circuit CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("circuit CSV %s has no data rows", path)
	}

	var circuits []qdc.Circuit
	for i, record := range records[1:] {
		if len(record) < 2 {
			return nil, fmt.Errorf("circuit CSV row %d: want description,current", i+2)
		}
		current, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("circuit CSV row %d: bad current %q: %w", i+2, record[1], err)
		}
		circuits = append(circuits, qdc.Circuit{Description: record[0], Current: current})
	}
	return circuits, nil
}
