// Package config - environment overrides: .env file plus MAZE_* variables.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ApplyEnv loads a .env file when one is present and then applies MAZE_*
// process environment overrides onto c. Variables that are unset or fail to
// parse leave the current value untouched.
//
//	MAZE_GENERATION_ALGORITHM  MAZE_WIDTH        MAZE_HEIGHT
//	MAZE_SEED                  MAZE_SOLVING_ALGORITHM
//	MAZE_SHOW_VISITED          MAZE_CELL_SIZE    MAZE_WALL_WIDTH
//	MAZE_FORMAT                MAZE_OUTPUT_DIR   MAZE_JPEG_QUALITY
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	envString("MAZE_GENERATION_ALGORITHM", &c.Generation.Algorithm)
	envInt("MAZE_WIDTH", &c.Generation.Width)
	envInt("MAZE_HEIGHT", &c.Generation.Height)
	envInt64("MAZE_SEED", &c.Generation.Seed)
	envString("MAZE_SOLVING_ALGORITHM", &c.Solving.Algorithm)
	envBool("MAZE_SHOW_VISITED", &c.Solving.ShowVisited)
	envInt("MAZE_CELL_SIZE", &c.Visualization.CellSize)
	envInt("MAZE_WALL_WIDTH", &c.Visualization.WallWidth)
	envString("MAZE_FORMAT", &c.Export.Format)
	envString("MAZE_OUTPUT_DIR", &c.Export.OutputDir)
	envInt("MAZE_JPEG_QUALITY", &c.Export.JPEGQuality)
}

// FromEnv builds the effective settings without a config file: defaults plus
// environment overrides.
func FromEnv() Config {
	cfg := Default()
	cfg.ApplyEnv()
	return cfg
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envInt64(key string, dst *int64) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func envBool(key string, dst *bool) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
