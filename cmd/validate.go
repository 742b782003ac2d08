package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/palletline/palletline/sim"
)

// validateConfigCmd loads and validates a config bundle without running the
// simulation, surfacing a *sim.ConfigurationError as a non-zero exit code.
var validateConfigCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Validate a YAML simulation config without running it",
	Run: func(cmd *cobra.Command, args []string) {
		if configPath == "" {
			logrus.Fatalf("validate-config requires --config")
		}
		bundle, err := sim.LoadBundle(configPath)
		if err != nil {
			logrus.Fatalf("loading config: %v", err)
		}
		if err := bundle.Validate(); err != nil {
			logrus.Fatalf("invalid config: %v", err)
		}
		cfg := bundle.ToConfig()
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("invalid config: %v", err)
		}
		logrus.Infof("config %s is valid", configPath)
	},
}
