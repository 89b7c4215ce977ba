package main

import (
	"fmt"
	"os"

	"github.com/okanara/markov"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "markov",
	Short: "Markov is a toolkit for finite-state Markov chains",
	Long: `Markov loads a chain definition from a YAML file and lets you sample
trajectories, evolve exact distributions, compute stationary behavior and
export diagrams, from the terminal or over HTTP/MCP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("chain", "c", "chain.yaml", "Path to the chain definition file")
}

// loadEngine initializes the engine from the --chain flag, letting a bare
// positional argument stand in for the flag the way most commands are typed.
func loadEngine(cmd *cobra.Command, args []string, opts ...markov.Option) (*markov.Engine, error) {
	path, _ := cmd.Flags().GetString("chain")
	if !cmd.Flags().Changed("chain") && len(args) > 0 {
		path = args[0]
	}
	return markov.New(path, opts...)
}
