package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"batchping/internal/config"
	"batchping/internal/database"
	"batchping/internal/fping"
	"batchping/internal/monitor"
	"batchping/internal/web"
)

var (
	monitorTargets  string
	monitorInterval time.Duration
	monitorDB       string
	monitorPort     int
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Continuously probe targets, persist results and serve a JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		// Flags override the config file when set
		if cmd.Flags().Changed("targets") {
			cfg.Targets = strings.Split(monitorTargets, ",")
		}
		if cmd.Flags().Changed("interval") {
			cfg.Interval = config.Duration(monitorInterval)
		}
		if cmd.Flags().Changed("db") {
			cfg.DatabasePath = monitorDB
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = monitorPort
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.InitSchema(); err != nil {
			return err
		}

		mon := monitor.New(cfg, db, fping.New())
		webServer := web.New(db, cfg.Port)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		if err := mon.Start(); err != nil {
			return err
		}

		go func() {
			if err := webServer.Start(); err != nil {
				log.Fatalf("Failed to start web server: %v", err)
			}
		}()

		log.Printf("Web interface available at http://localhost:%d", cfg.Port)

		<-sigChan
		log.Println("Shutting down...")
		mon.Stop()
		mon.Wait()
		return nil
	},
}

func init() {
	f := monitorCmd.Flags()
	f.StringVar(&monitorTargets, "targets", "", "Comma-separated probe targets")
	f.DurationVar(&monitorInterval, "interval", 30*time.Second, "Time between probe batches")
	f.StringVar(&monitorDB, "db", "batchping.db", "Database path")
	f.IntVar(&monitorPort, "port", 8080, "Web server port")

	rootCmd.AddCommand(monitorCmd)
}
