package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jcmilanez/substrate/mem"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBenchCmd())
}

func newBenchCmd() *cobra.Command {
	var sizesFlag string
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure copy and fill throughput on the scalar and wide tiers",
		Long: `The bench command times mem.Copy and mem.Fill at a range of region
sizes, once with the wide 16-byte path disabled and once with it enabled
(when the host supports it), and reports throughput per tier.

Example:
  memctl bench
  memctl bench --sizes 4096,65536 --duration 500ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := parseSizes(sizesFlag)
			if err != nil {
				return err
			}
			return runBench(sizes, duration)
		},
	}
	cmd.Flags().StringVar(&sizesFlag, "sizes", "512,4096,65536,1048576",
		"Comma-separated region sizes in bytes")
	cmd.Flags().DurationVar(&duration, "duration", 250*time.Millisecond,
		"Minimum measurement time per case")
	return cmd
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad size %q", part)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func runBench(sizes []int, minTime time.Duration) error {
	tiers := []struct {
		name string
		eng  *mem.Engine
	}{
		{"scalar", mem.NewEngine(mem.Features{WideVector: false})},
		{"wide", mem.NewEngine(mem.Features{WideVector: true})},
	}
	if !mem.DefaultFeatures().WideVector {
		printInfo("note: host has no wide capability; wide tier runs scalar code\n")
	}

	printInfo("%-8s %-10s %-12s %12s\n", "op", "tier", "size", "MB/s")
	for _, size := range sizes {
		src := make([]byte, size)
		dst := make([]byte, size)
		for i := range src {
			src[i] = byte(i)
		}
		for _, tier := range tiers {
			logger.Debug("bench case", "op", "copy", "tier", tier.name, "size", size)
			rate := measure(minTime, size, func() { tier.eng.Copy(dst, src, size) })
			printInfo("%-8s %-10s %-12d %12.1f\n", "copy", tier.name, size, rate)

			rate = measure(minTime, size, func() { tier.eng.Fill(dst, 0, size) })
			printInfo("%-8s %-10s %-12d %12.1f\n", "fill", tier.name, size, rate)
		}
	}
	return nil
}

// measure runs fn until minTime has elapsed and returns MB/s.
func measure(minTime time.Duration, bytesPerOp int, fn func()) float64 {
	var ops int
	start := time.Now()
	for time.Since(start) < minTime {
		for i := 0; i < 64; i++ {
			fn()
		}
		ops += 64
	}
	elapsed := time.Since(start).Seconds()
	return float64(ops) * float64(bytesPerOp) / (1024 * 1024) / elapsed
}
