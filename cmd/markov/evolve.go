package main

import (
	"fmt"
	"os"

	"github.com/okanara/markov/pkg/chain"
	"github.com/spf13/cobra"
)

// evolveCmd represents the evolve command
var evolveCmd = &cobra.Command{
	Use:   "evolve",
	Short: "Evolve the exact state distribution forward",
	Long: `Starts from a point mass on the start state and multiplies it through
the transition matrix step by step, printing the distribution after each step.
Unlike 'simulate' this is deterministic: it tracks probabilities, not a path.`,
	Run: func(cmd *cobra.Command, args []string) {
		start, _ := cmd.Flags().GetString("start")
		steps, _ := cmd.Flags().GetInt("steps")
		finalOnly, _ := cmd.Flags().GetBool("final")

		engine, err := loadEngine(cmd, args)
		if err != nil {
			fmt.Printf("Error initializing markov: %v\n", err)
			os.Exit(1)
		}

		var initial chain.Distribution
		if start != "" {
			initial = chain.Point(chain.State(start))
		}

		dists, err := engine.Propagate(initial, steps)
		if err != nil {
			fmt.Printf("Evolution failed: %v\n", err)
			os.Exit(1)
		}

		states := engine.Model().States()
		fmt.Printf("%-6s", "step")
		for _, s := range states {
			fmt.Printf(" %12s", s)
		}
		fmt.Println()

		for i, d := range dists {
			if finalOnly && i != len(dists)-1 {
				continue
			}
			fmt.Printf("%-6d", i)
			for _, s := range states {
				fmt.Printf(" %12.6f", d[s])
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(evolveCmd)

	evolveCmd.Flags().StringP("start", "s", "", "State the distribution starts on (defaults to the chain's start)")
	evolveCmd.Flags().IntP("steps", "n", 10, "Number of steps to evolve")
	evolveCmd.Flags().Bool("final", false, "Only print the final distribution")
}
