package main

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/refactornator/procedural-maze-generator/config"
)

var (
	cfgPath string
	verbose bool

	// cfg is the effective configuration: defaults, then file, then MAZE_*
	// environment overrides. Explicit flags still win; see pickString.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mazegen",
	Short: "Generate and solve mazes using various algorithms",
	Long: `Generate and solve rectangular mazes, then print or export them.

Examples:
  mazegen generate 20 20 --algorithm dfs --format png --output maze.png
  mazegen generate 30 30 --algorithm kruskal --seed 42
  mazegen solve 20 20 --solve-algorithm astar --show-visited --format svg
  mazegen benchmark 50 50 --iterations 20
  mazegen output init`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: probe standard locations)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setup wires logging and resolves the configuration before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	var err error
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		log.Debugf("loaded configuration from %s", cfgPath)
	} else {
		var found string
		cfg, found, err = config.LoadDefault()
		if err != nil {
			return err
		}
		if found != "" {
			log.Debugf("loaded configuration from %s", found)
		}
	}

	cfg.ApplyEnv()
	return cfg.Validate()
}

// Execute runs the root command; cobra prints the failing error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseDimensions reads the WIDTH HEIGHT positional arguments.
func parseDimensions(args []string) (width, height int, err error) {
	width, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q", args[0])
	}
	height, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q", args[1])
	}
	return width, height, nil
}

// pickString resolves a setting from three layers: an explicitly set flag
// wins, then a config value that differs from the built-in default, then the
// flag default.
func pickString(changed bool, flag, fromCfg, builtin string) string {
	if changed {
		return flag
	}
	if fromCfg != builtin {
		return fromCfg
	}
	return flag
}

// pickInt is pickString for integer settings.
func pickInt(changed bool, flag, fromCfg, builtin int) int {
	if changed {
		return flag
	}
	if fromCfg != builtin {
		return fromCfg
	}
	return flag
}
