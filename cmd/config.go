package cmd

import (
	"github.com/sirupsen/logrus"

	sim "github.com/palletline/palletline/sim"
)

// loadConfig resolves --config into a sim.Config, falling back to
// sim.DefaultConfig when no file is given. Fatal on any load or validation
// error.
func loadConfig() sim.Config {
	if configPath == "" {
		return sim.DefaultConfig()
	}
	bundle, err := sim.LoadBundle(configPath)
	if err != nil {
		logrus.Fatalf("loading config: %v", err)
	}
	if err := bundle.Validate(); err != nil {
		logrus.Fatalf("invalid config: %v", err)
	}
	return bundle.ToConfig()
}

func parseLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %s", logLevel)
	}
	return level
}
