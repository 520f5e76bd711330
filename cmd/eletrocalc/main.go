package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eletrocalc/eletrocalc/pkg/config"
)

var logger = logrus.New()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

// commandOptions carries the persistent flags shared by every subcommand
type commandOptions struct {
	constantsPath string
	format        string
	verbose       bool
}

func (o *commandOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.constantsPath)
}

func newRootCommand() *cobra.Command {
	opts := &commandOptions{}

	root := &cobra.Command{
		Use:   "eletrocalc",
		Short: "Electrical installation sizing calculators",
		Long: `Sizing calculators for electrical installations: branch-circuit
conductors and protection, motor starters, distribution panels (QDC),
lightning protection (SPDA) and photovoltaic systems.

Inputs are JSON files; results are printed as text or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetLevel(logrus.WarnLevel)
			if opts.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.constantsPath, "constants", "", "Path to engineering constants file (YAML)")
	root.PersistentFlags().StringVar(&opts.format, "format", "text", "Output format: text, json")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose output")

	root.AddCommand(
		newConductorCommand(opts),
		newMotorCommand(opts),
		newQDCCommand(opts),
		newSPDACommand(opts),
		newSolarCommand(opts),
	)

	return root
}
