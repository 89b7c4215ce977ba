package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the chain for consistency",
	Long: `Loads the chain (which already enforces row sums) and crawls it from
the start state, reporting unreachable states, absorbing states and
ergodicity issues.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd, args)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}

		report := engine.Validate()
		for _, w := range report.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
		if err := report.Err(); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Chain is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
