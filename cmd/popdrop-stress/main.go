// Command popdrop-stress plays many seeded sessions with random input as
// fast as possible and reports timing and gameplay totals.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/fatih/color"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessions := flag.Int("sessions", 8, "The number of sessions to play concurrently.")
	fps := flag.Int("fps", 60, "Simulated ticks per second of game time.")
	seedBase := flag.Uint64("seed-base", 1, "Seed of the first session; session i uses seed-base+i.")
	actEvery := flag.Int("act-every", 6, "Average frames between bot inputs.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *sessions < 1 || *fps < 1 {
		log.Fatal("sessions and fps must be positive")
	}

	log.Println("Starting popdrop stress test...")

	seeds := make([]uint64, *sessions)
	for i := range seeds {
		seeds[i] = *seedBase + uint64(i)
	}

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		FPS:            *fps,
		SeedBase:       *seedBase,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d sessions for %s...\n", *sessions, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	results, err := runner{fps: *fps, actEvery: *actEvery}.runAll(ctx, seeds)
	if err != nil {
		log.Fatalf("Stress run failed: %v", err)
	}
	report.TotalTime = time.Since(startTime)

	for _, res := range results {
		report.Add(res)
	}
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println(color.HiBlackString("\n\n--- Stress Test Report ---"))
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println(color.HiBlackString("--- End of Report ---"))

	log.Println("Stress test complete.")
}
