// starwalk is a terminal game: steer a walker across a bounded walkway
// while a companion follows your path and both collect stars.
//
// Usage:
//
//	starwalk play            - Start a session
//
// Global flags:
//
//	--fps <rate>     - Frame rate (default: from config, 60)
//	--seed <value>   - RNG seed for reproducible star placement
//	--config <path>  - Path to a custom tuning YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starwalk",
	Short: "Starwalk - a walkway stroll for your terminal",
	Long: `Starwalk is a terminal game where you steer a walker across a
bounded walkway. A companion follows the path you walked a moment ago,
and you both collect stars scattered across the walkway. Resizing the
terminal starts a fresh session.

Controls:
  Arrow keys / WASD - walk
  Q / Ctrl+C        - quit

Examples:
  starwalk play
  starwalk play --seed 42
  starwalk play --config ./my-tuning.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")

	rootCmd.AddCommand(playCmd)
}
