package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hicpstats/inflation-report/config"
	"github.com/hicpstats/inflation-report/eurostat"
	"github.com/hicpstats/inflation-report/logging"
	"github.com/hicpstats/inflation-report/pipeline"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	configFile string
	outputDir  string
	horizon    int
	logLevel   string
	offline    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "inflation-report",
		Short: "Generates the Austrian inflation report from Eurostat HICP data",
		Long: `Fetches HICP inflation series from Eurostat, compares Austria against
Germany and the euro area, forecasts the coming months, and writes
text, HTML, JSON, and chart artifacts.`,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (YAML)")

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the full report generation pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("loading config, %w", err)
			}
			if outputDir != "" {
				cfg.Output.Dir = outputDir
			}
			if horizon > 0 {
				cfg.Forecast.Horizon = horizon
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}

			log := logging.New(cfg.Logging)

			var fetcher pipeline.Fetcher = eurostat.NewClient(cfg.Data.BaseURL, cfg.Data.RequestTimeout)
			if offline {
				log.Info().Msg("offline mode, using bundled sample data")
				fetcher = offlineFetcher{}
			}

			p, err := pipeline.New(cfg, fetcher, log)
			if err != nil {
				return err
			}
			return p.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "Forecast horizon in months (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (overrides config)")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip Eurostat and use bundled sample data")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("inflation-report %s (%s)\n", version, commit)
		},
	}
}
