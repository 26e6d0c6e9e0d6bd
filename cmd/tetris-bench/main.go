package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plus3/tetra/config"
)

func main() {
	envFile := flag.String("env", ".env", "Path to an optional .env file.")
	duration := flag.Duration("duration", 10*time.Second, "The total wall time the bench should run for.")
	frames := flag.Int64("frames", 0, "Stop after this many frames (0 means no limit).")
	chance := flag.Float64("chance", 0.25, "Probability that the bot acts on a frame.")
	realtime := flag.Bool("realtime", false, "Pace frames on a wall-clock ticker instead of running them back to back.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := defaultOptions()
	opts.Chance = *chance
	opts.MaxFrames = *frames
	opts.GCMetrics = *gcPauseMetrics
	opts.Realtime = *realtime

	log.Printf("Running bench for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report, err := run(ctx, cfg, opts)
	if err != nil {
		log.Fatalf("Bench failed: %v", err)
	}
	log.Println("Bench finished.")

	fmt.Println("\n\n--- Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
