package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"batchping/internal/config"
	"batchping/internal/fping"
)

var (
	probeOpts config.Options
	probeJSON bool
)

var probeCmd = &cobra.Command{
	Use:   "probe <target>...",
	Short: "Run one probe batch and print per-target statistics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prober := fping.New()
		results, err := prober.Probe(context.Background(), args, probeOpts)
		if err != nil {
			return err
		}

		if probeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}

		targets := make([]string, 0, len(results))
		for t := range results {
			targets = append(targets, t)
		}
		sort.Strings(targets)

		for _, t := range targets {
			r := results[t]
			fmt.Printf("%s: sent=%d received=%d loss=%.2f%%\n", r.Target, r.Sent, r.Received, r.Loss*100)
			if r.Sent > 0 {
				fmt.Printf("  min/avg/max/stddev = %v/%v/%v/%v ms\n", r.Min, r.Avg, r.Max, r.StdDev)
				fmt.Printf("  times = %v\n", r.Times)
			}
		}
		return nil
	},
}

func init() {
	f := probeCmd.Flags()
	f.IntVar(&probeOpts.Bytes, "bytes", config.DefaultBytes, "Payload size in bytes (min 40)")
	f.Float64Var(&probeOpts.Backoff, "backoff", config.DefaultBackoff, "Exponential backoff multiplier")
	f.IntVar(&probeOpts.Count, "count", config.DefaultCount, "Probes per target (min 1)")
	f.IntVar(&probeOpts.Interval, "interval", config.DefaultInterval, "Milliseconds between sends")
	f.IntVar(&probeOpts.Period, "period", config.DefaultPeriod, "Milliseconds between rounds to one target")
	f.IntVar(&probeOpts.Retry, "retry", config.DefaultRetry, "Retry attempts per probe")
	f.BoolVar(&probeOpts.NoRandom, "no-random", false, "Disable payload randomization")
	f.IntVar(&probeOpts.Timeout, "timeout", config.DefaultTimeout, "Per-probe timeout in milliseconds, also the loss sentinel")
	f.IntVar(&probeOpts.Digits, "digits", config.DefaultDigits, "Decimal places for latency values")
	f.IntVar(&probeOpts.LossDigits, "loss-digits", config.DefaultLossDigits, "Decimal places for the loss fraction (min 2)")
	f.BoolVar(&probeJSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(probeCmd)
}
