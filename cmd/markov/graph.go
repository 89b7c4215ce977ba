package main

import (
	"fmt"
	"os"

	"github.com/okanara/markov/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the chain as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph LR) of the chain: states as nodes,
positive-probability transitions as labelled edges.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd, args)
		if err != nil {
			fmt.Printf("Error initializing markov: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(engine.Model(), engine.Start(), nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
