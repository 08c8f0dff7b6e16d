package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/refactornator/procedural-maze-generator/generator"
	"github.com/refactornator/procedural-maze-generator/maze"
	"github.com/refactornator/procedural-maze-generator/output"
	"github.com/refactornator/procedural-maze-generator/solver"
)

var (
	benchIterations int
	benchSeed       int64
	benchSave       bool
	benchOutputDir  string
)

func init() {
	benchmarkCmd := &cobra.Command{
		Use:   "benchmark WIDTH HEIGHT",
		Short: "Benchmark generation and solving algorithms",
		Long: `Time every generation algorithm and every solving algorithm on a maze
of the given size, and print a comparison table.

Examples:
  mazegen benchmark 50 50
  mazegen benchmark 100 100 --iterations 20 --seed 42
  mazegen benchmark 50 50 --save`,
		Args: cobra.ExactArgs(2),
		RunE: runBenchmark,
	}

	benchmarkCmd.Flags().IntVarP(&benchIterations, "iterations", "i", 10, "number of runs per algorithm")
	benchmarkCmd.Flags().Int64VarP(&benchSeed, "seed", "s", 0, "random seed for reproducible results")
	benchmarkCmd.Flags().BoolVar(&benchSave, "save", false, "save the report under the benchmarks directory")
	benchmarkCmd.Flags().StringVarP(&benchOutputDir, "directory", "d", "", "output directory for --save (default: from configuration)")

	rootCmd.AddCommand(benchmarkCmd)
}

// benchStats carries the timing summary for one algorithm.
type benchStats struct {
	name          string
	avg, min, max time.Duration
}

func (s benchStats) row() string {
	return fmt.Sprintf("%-15s | Avg: %.4fs | Min: %.4fs | Max: %.4fs",
		s.name, s.avg.Seconds(), s.min.Seconds(), s.max.Seconds())
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	width, height, err := parseDimensions(args)
	if err != nil {
		return err
	}
	if benchIterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", benchIterations)
	}
	seeded := cmd.Flags().Changed("seed")

	var report strings.Builder
	emit := func(line string) {
		fmt.Println(line)
		report.WriteString(line)
		report.WriteByte('\n')
	}

	emit(fmt.Sprintf("Benchmarking algorithms on %dx%d maze", width, height))
	emit(fmt.Sprintf("Iterations: %d", benchIterations))
	emit(strings.Repeat("-", 50))

	genStats, err := benchmarkGenerators(width, height, seeded, emit)
	if err != nil {
		return err
	}
	emit(strings.Repeat("-", 50))
	fastest := fastestOf(genStats)
	emit(fmt.Sprintf("Fastest algorithm: %s (%.4fs average)", fastest.name, fastest.avg.Seconds()))

	emit("")
	emit(fmt.Sprintf("Benchmarking solvers on %dx%d maze", width, height))
	emit(fmt.Sprintf("Iterations: %d", benchIterations))
	emit(strings.Repeat("-", 50))

	solveStats, err := benchmarkSolvers(width, height, seeded, emit)
	if err != nil {
		return err
	}
	emit(strings.Repeat("-", 50))
	fastest = fastestOf(solveStats)
	emit(fmt.Sprintf("Fastest solver: %s (%.4fs average)", fastest.name, fastest.avg.Seconds()))

	if !benchSave {
		return nil
	}
	mgr, err := newOutputManager(benchOutputDir)
	if err != nil {
		return err
	}
	path, err := mgr.TimestampedPath("benchmark", "txt", output.KindBenchmarks)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(report.String()), 0o644); err != nil {
		return fmt.Errorf("save benchmark report: %w", err)
	}
	fmt.Printf("Benchmark report saved to %s\n", path)
	return nil
}

// benchmarkGenerators times every registered generator. A fresh grid is built
// outside the timed section; when seeded, each iteration derives its own seed
// so runs stay distinct but reproducible.
func benchmarkGenerators(width, height int, seeded bool, emit func(string)) ([]benchStats, error) {
	stats := make([]benchStats, 0, len(generator.Names()))
	for _, name := range generator.Names() {
		times := make([]time.Duration, 0, benchIterations)
		for i := 0; i < benchIterations; i++ {
			g, err := maze.New(width, height)
			if err != nil {
				return nil, err
			}
			gen, err := generator.New(name, iterationSeed(seeded, i)...)
			if err != nil {
				return nil, err
			}

			started := time.Now()
			if err := gen.Generate(g); err != nil {
				return nil, err
			}
			times = append(times, time.Since(started))
		}
		s := summarize(name, times)
		stats = append(stats, s)
		emit(s.row())
	}
	return stats, nil
}

// benchmarkSolvers generates one maze per solver run set and times Solve
// alone. Every solver attacks the same carved layout when a seed is given.
func benchmarkSolvers(width, height int, seeded bool, emit func(string)) ([]benchStats, error) {
	g, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}
	g.SetStart(0, 0)
	g.SetEnd(width-1, height-1)
	gen, err := generator.New(generator.AlgorithmDFS, iterationSeed(seeded, 0)...)
	if err != nil {
		return nil, err
	}
	if err := gen.Generate(g); err != nil {
		return nil, err
	}

	stats := make([]benchStats, 0, len(solver.Names()))
	for _, name := range solver.Names() {
		s, err := solver.New(name)
		if err != nil {
			return nil, err
		}
		times := make([]time.Duration, 0, benchIterations)
		for i := 0; i < benchIterations; i++ {
			started := time.Now()
			if _, err := s.Solve(g); err != nil {
				return nil, err
			}
			times = append(times, time.Since(started))
		}
		st := summarize(name, times)
		stats = append(stats, st)
		emit(st.row())
	}
	return stats, nil
}

// iterationSeed derives the per-iteration generator options from the --seed
// flag. Unseeded benchmarks let every Generate pick its own stream.
func iterationSeed(seeded bool, i int) []generator.Option {
	if !seeded {
		return nil
	}
	return []generator.Option{generator.WithSeed(benchSeed + int64(i))}
}

func summarize(name string, times []time.Duration) benchStats {
	if len(times) == 0 {
		log.Warnf("no timings recorded for %s", name)
		return benchStats{name: name}
	}
	min, max := times[0], times[0]
	var total time.Duration
	for _, t := range times {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
		total += t
	}
	return benchStats{name: name, avg: total / time.Duration(len(times)), min: min, max: max}
}

func fastestOf(stats []benchStats) benchStats {
	fastest := stats[0]
	for _, s := range stats[1:] {
		if s.avg < fastest.avg {
			fastest = s
		}
	}
	return fastest
}
