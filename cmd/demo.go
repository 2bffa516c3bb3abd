package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/sarchlab/lifeline/session"
	"github.com/spf13/cobra"
)

var (
	demoMonitor       bool
	demoMonitorPort   int
	demoOpenDashboard bool
	demoJournal       bool
	demoOutput        string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the five reference ownership-transfer scenarios",
	Long: `Demo runs the five reference ownership-transfer scenarios: ` +
		`construction, copy construction, copy assignment, move ` +
		`construction, and move assignment. Every lifecycle transition is ` +
		`printed to standard output and, unless disabled, recorded in a ` +
		`journal database.`,
	Run: func(_ *cobra.Command, _ []string) {
		runDemo()
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().BoolVar(&demoMonitor, "monitor", false,
		"serve the monitoring API while the demo runs")
	demoCmd.Flags().IntVar(&demoMonitorPort, "monitor-port", 0,
		"port for the monitoring server, random if not set")
	demoCmd.Flags().BoolVar(&demoOpenDashboard, "open-dashboard", false,
		"open the monitoring server in a browser")
	demoCmd.Flags().BoolVar(&demoJournal, "journal", true,
		"record the transitions in a journal database")
	demoCmd.Flags().StringVar(&demoOutput, "output", "",
		"journal database file name, without the .sqlite3 suffix")
}

func runDemo() {
	loadEnvDefaults()

	b := session.MakeBuilder()

	if demoMonitor {
		if demoMonitorPort > 0 {
			b = b.WithMonitorPort(demoMonitorPort)
		}
	} else {
		b = b.WithoutMonitoring()
	}

	if demoJournal {
		if demoOutput != "" {
			b = b.WithOutputFileName(demoOutput)
		}
	} else {
		b = b.WithoutJournal()
	}

	s := b.Build()

	if demoMonitor && demoOpenDashboard {
		url := fmt.Sprintf("http://localhost:%d", s.Monitor().Port())
		err := browser.OpenURL(url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open browser: %s\n", err)
		}
	}

	runScenarios(s)

	s.Terminate()

	if demoMonitor {
		fmt.Fprintln(os.Stderr,
			"Demo complete. Press Ctrl-C to stop the monitor.")
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		<-interrupt
	}
}

// runScenarios exercises the full ownership-transfer contract and destroys
// every value before returning, in reverse creation order.
func runScenarios(s *session.Session) {
	// Scenario 1: plain construction.
	instanceA := s.NewValue(15)

	// Scenario 2: copy construction, A to B.
	instanceB := s.CopyOf(instanceA)

	// Scenario 3: copy assignment onto an already-constructed value.
	instanceC := s.NewDefaultValue()
	instanceC.CopyFrom(instanceA)

	// Scenario 4: move construction, A to D. A becomes moved-from.
	s.MoveOf(instanceA)

	// Scenario 5: move assignment onto an already-constructed value.
	instanceE := s.NewDefaultValue()
	instanceE.MoveFrom(instanceB)

	values := s.Values()
	for i := len(values) - 1; i >= 0; i-- {
		values[i].Destroy()
	}
}

func loadEnvDefaults() {
	// A missing .env file is fine; flags and defaults still apply.
	_ = godotenv.Load()

	if demoMonitorPort == 0 {
		portString := os.Getenv("LIFELINE_MONITOR_PORT")
		if portString != "" {
			port, err := strconv.Atoi(portString)
			if err != nil {
				panic(err)
			}
			demoMonitorPort = port
		}
	}

	if demoOutput == "" {
		demoOutput = os.Getenv("LIFELINE_OUTPUT")
	}
}
