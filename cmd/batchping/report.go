package main

import (
	"github.com/spf13/cobra"

	"batchping/internal/config"
	"batchping/internal/database"
	"batchping/internal/report"
)

var (
	reportHours int
	reportOut   string
	reportDB    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate charts and a text summary from stored probe results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("db") {
			cfg.DatabasePath = reportDB
		}
		if cmd.Flags().Changed("out") {
			cfg.ReportDir = reportOut
		}

		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		gen := report.NewGenerator(db.DB)
		return gen.GenerateReport(cfg.ReportDir, reportHours)
	},
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportDB, "db", "batchping.db", "Database path")
	f.StringVar(&reportOut, "out", "reports", "Output directory")
	f.IntVar(&reportHours, "hours", 24, "Report period in hours")

	rootCmd.AddCommand(reportCmd)
}
