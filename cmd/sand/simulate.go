package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"sandfall/internal/render"
	"sandfall/internal/sims/sand"
	"sandfall/internal/telemetry"
)

var (
	flagTicks     int
	flagTelemetry string
	flagEvery     int
	flagASCII     bool
	flagPNG       string
	flagPNGScale  int
	flagUntilRest bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless",
	Long: `Run a number of ticks without a window, optionally writing per-tick
statistics as CSV and the final grid as text or PNG.

Examples:
  sand simulate --ticks 1000 --ascii
  sand simulate --ticks 5000 --telemetry out.csv --every 50
  sand simulate --sim sand-slide --until-rest --png final.png`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&flagTicks, "ticks", 500, "Number of ticks to run")
	f.StringVar(&flagTelemetry, "telemetry", "", "Write per-tick stats to this CSV file")
	f.IntVar(&flagEvery, "every", 10, "Telemetry sampling interval in ticks")
	f.BoolVar(&flagASCII, "ascii", false, "Print the final grid as text")
	f.StringVar(&flagPNG, "png", "", "Write the final grid to this PNG file")
	f.IntVar(&flagPNGScale, "png-scale", 4, "Pixels per cell in the PNG")
	f.BoolVar(&flagUntilRest, "until-rest", false, "Stop early once no sand cell can fall straight down")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("ticks %d must not be negative", flagTicks)
	}
	if flagEvery <= 0 {
		flagEvery = 1
	}
	world, err := newWorld()
	if err != nil {
		return err
	}

	var out *telemetry.Writer
	if flagTelemetry != "" {
		file, err := os.Create(flagTelemetry)
		if err != nil {
			return fmt.Errorf("creating telemetry file: %w", err)
		}
		defer file.Close()
		out = telemetry.NewWriter(file)
	}

	stats, err := runTicks(world, flagTicks, flagEvery, flagUntilRest, out)
	if err != nil {
		return err
	}
	logger.Info("simulation finished",
		"sim", world.Name(),
		"ticks", world.Tick(),
		"sand", stats.Sand,
		"settled", stats.Settled,
		"column_mean", fmt.Sprintf("%.2f", stats.MeanColumnHeight),
	)
	if out != nil {
		logger.Info("telemetry written", "path", flagTelemetry, "rows", out.Rows())
	}

	if flagASCII {
		fmt.Fprint(cmd.OutOrStdout(), render.ASCII(world.Grid()))
	}
	if flagPNG != "" {
		if err := writePNG(world, flagPNG, flagPNGScale); err != nil {
			return err
		}
		logger.Info("image written", "path", flagPNG)
	}
	return nil
}

// runTicks advances world up to ticks times, recording telemetry every
// every ticks and at the last tick, and returns the final sample.
func runTicks(world *sand.World, ticks, every int, untilRest bool, out *telemetry.Writer) (telemetry.TickStats, error) {
	record := func(s telemetry.TickStats) error {
		if out == nil {
			return nil
		}
		return out.Write(s)
	}

	stats := telemetry.Sample(world.Tick(), world.Grid())
	if err := record(stats); err != nil {
		return stats, err
	}
	for i := 0; i < ticks; i++ {
		world.Step()
		sampled := world.Tick()%every == 0
		if !sampled && !untilRest && i != ticks-1 {
			continue
		}
		stats = telemetry.Sample(world.Tick(), world.Grid())
		if untilRest && stats.AtRest() {
			logger.Debug("sand at rest", "tick", world.Tick())
			return stats, record(stats)
		}
		if sampled || i == ticks-1 {
			if err := record(stats); err != nil {
				return stats, err
			}
		}
	}
	return stats, nil
}

func writePNG(world *sand.World, path string, scale int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image: %w", err)
	}
	if err := png.Encode(file, render.Image(world.Grid(), scale)); err != nil {
		file.Close()
		return fmt.Errorf("encoding image: %w", err)
	}
	return file.Close()
}
