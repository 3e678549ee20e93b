package main

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "batchping",
	Short: "Batch ICMP probing via fping with aggregated per-target statistics",
	Long: `batchping orchestrates the external fping utility: it builds an
invocation covering a whole target list, spawns it, and parses the textual
output into per-target round-trip-time statistics (sent/received counts,
loss fraction, min/avg/max/stddev and the raw sample sequence).`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
}
