package config_test

import (
	"fmt"

	"github.com/refactornator/procedural-maze-generator/config"
)

// ExampleDefault shows the built-in settings tree.
func ExampleDefault() {
	cfg := config.Default()

	fmt.Println(cfg.Generation.Algorithm, cfg.Generation.Width, cfg.Generation.Height)
	fmt.Println(cfg.Solving.Algorithm)
	fmt.Println(cfg.Export.Format, cfg.Export.OutputDir)
	fmt.Println(cfg.Validate() == nil)

	// Output:
	// dfs 20 20
	// astar
	// png output
	// true
}
