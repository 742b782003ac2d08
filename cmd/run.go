package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/palletline/palletline/sim"
)

var runMinutes int64

// runCmd executes the simulation for a fixed horizon and prints the
// end-of-run wait-time report.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation and print a wait-time summary",
	Run: func(cmd *cobra.Command, args []string) {
		logrus.SetLevel(parseLogLevel())

		cfg := loadConfig()
		engine, err := sim.NewEngine(cfg)
		if err != nil {
			logrus.Fatalf("building engine: %v", err)
		}

		logrus.Infof("stepping %d minutes: x=%d maturation=%d window=%d allocation=%s consumption=%s",
			runMinutes, cfg.XMinutes, cfg.MaturationMinutes, cfg.WindowMinutes, cfg.AllocationStrategy, cfg.ConsumptionStrategy)

		snap := engine.Step(runMinutes)

		report := sim.ComputeWaitReport(engine.ConsumptionLog())
		logrus.Infof("t=%d window_active=%v active_source=%v", snap.Now, snap.Window.Active, snap.Window.ActiveSource)
		logrus.Infof("consumed=%d mean_wait=%.1fmin p50=%.1f p95=%.1f p99=%.1f",
			report.Count, report.MeanMinutes, report.P50Minutes, report.P95Minutes, report.P99Minutes)
	},
}

func init() {
	runCmd.Flags().Int64Var(&runMinutes, "minutes", 10080, "simulated minutes to run (default one week)")
}
