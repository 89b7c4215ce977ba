package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// stationaryCmd represents the stationary command
var stationaryCmd = &cobra.Command{
	Use:   "stationary",
	Short: "Compute the chain's long-run distribution",
	Long: `Computes the stationary distribution by power iteration and prints it
together with reversibility and ergodicity diagnostics.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd, args)
		if err != nil {
			fmt.Printf("Error initializing markov: %v\n", err)
			os.Exit(1)
		}

		pi, err := engine.Stationary()
		if err != nil {
			fmt.Printf("Stationary computation failed: %v\n", err)
			os.Exit(1)
		}

		m := engine.Model()
		for _, s := range m.States() {
			fmt.Printf("  %-12s %.6f\n", s, pi[s])
		}
		fmt.Printf("ergodic: %v\n", m.IsErgodic())
		fmt.Printf("detailed balance: %v\n", m.DetailedBalance(pi, 1e-9))
	},
}

func init() {
	rootCmd.AddCommand(stationaryCmd)
}
