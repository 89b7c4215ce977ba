package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/okanara/markov"
	"github.com/okanara/markov/internal/adapters/file"
	"github.com/okanara/markov/internal/presentation/graph"
	"github.com/okanara/markov/pkg/chain"
	"github.com/spf13/cobra"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Draw one random walk through the chain",
	Long: `Samples a single trajectory of the given length, printing the visited
states and per-state visit counts. With --record the run is saved under the
store directory so it can be replayed with 'markov runs'.`,
	Run: func(cmd *cobra.Command, args []string) {
		start, _ := cmd.Flags().GetString("start")
		steps, _ := cmd.Flags().GetInt("steps")
		seed, _ := cmd.Flags().GetInt64("seed")
		record, _ := cmd.Flags().GetBool("record")
		storeDir, _ := cmd.Flags().GetString("store-dir")
		withGraph, _ := cmd.Flags().GetBool("graph")

		var opts []markov.Option
		if record {
			opts = append(opts, markov.WithStore(file.New(storeDir)))
		}

		engine, err := loadEngine(cmd, args, opts...)
		if err != nil {
			fmt.Printf("Error initializing markov: %v\n", err)
			os.Exit(1)
		}

		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}

		path, run, err := engine.Simulate(cmd.Context(), chain.State(start), steps, seed)
		if err != nil {
			fmt.Printf("Simulation failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("seed: %d\n", seed)
		fmt.Printf("path: %s -> %s\n", run.Start, joinStates(path))
		fmt.Println("counts:")
		for _, s := range engine.Model().States() {
			count := run.Counts[s]
			fmt.Printf("  %-12s %6d  (%.4f)\n", s, count, run.Frequency(s))
		}
		if record {
			fmt.Printf("recorded as %s\n", run.ID)
		}

		if withGraph {
			fmt.Println()
			fmt.Print(graph.GenerateMermaid(engine.Model(), engine.Start(), &graph.Overlay{
				Visited: path,
				Current: run.Final,
			}))
		}
	},
}

func joinStates(path chain.Trajectory) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = string(s)
	}
	return strings.Join(parts, " -> ")
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringP("start", "s", "", "State to start from (defaults to the chain's start)")
	simulateCmd.Flags().IntP("steps", "n", 10, "Number of transitions to take")
	simulateCmd.Flags().Int64("seed", 0, "RNG seed for reproducible runs (defaults to the clock)")
	simulateCmd.Flags().Bool("record", false, "Save the run to the store directory")
	simulateCmd.Flags().String("store-dir", "", "Directory for recorded runs (default \".markov/runs\")")
	simulateCmd.Flags().Bool("graph", false, "Also print a Mermaid diagram with the visited states highlighted")
}
