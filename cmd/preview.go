package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/abhisek/angler/internal/game"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate a round and print it (no database, no TUI)",
	Long: `Generate one round and dump the two functions and the angle to stdout.

This is a stateless developer tool, useful for inspecting what the generator
and solver produce under particular mode flags or a fixed seed.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int64("seed", 0, "Random seed (0 = time-based)")
	previewCmd.Flags().Bool("unitary", false, "Normalize both functions to unit norm")
	previewCmd.Flags().Bool("acute", false, "Force the angle into [0°, 90°]")
	previewCmd.Flags().Bool("easy", false, "Use the fixed interval [-1, 1]")
	previewCmd.Flags().Int("rounds", 1, "Number of rounds to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	flags := game.Flags{}
	flags.Unitary, _ = cmd.Flags().GetBool("unitary")
	flags.AcuteOnly, _ = cmd.Flags().GetBool("acute")
	flags.EasyInterval, _ = cmd.Flags().GetBool("easy")
	rounds, _ := cmd.Flags().GetInt("rounds")

	engine := game.NewEngine(rand.New(rand.NewSource(seed)))

	for i := 0; i < rounds; i++ {
		out, err := engine.StartRound(engine.NewInterval(flags), flags)
		if err != nil {
			return fmt.Errorf("generate round: %w", err)
		}
		fmt.Printf("interval %s\n", out.Interval)
		fmt.Printf("  f(x) = %s\n", out.F1)
		fmt.Printf("  g(x) = %s\n", out.F2)
		fmt.Printf("  angle = %.2f°\n", out.Angle)
		if i < rounds-1 {
			fmt.Println()
		}
	}
	return nil
}
