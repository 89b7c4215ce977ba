package main

import (
	"fmt"
	"os"

	"github.com/okanara/markov/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print an analysis report of the chain",
	Long: `Renders a markdown report with the transition matrix, ergodicity,
stationary distribution and validation findings. On a terminal the report is
styled; when piped it comes out as raw markdown.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd, args)
		if err != nil {
			fmt.Printf("Error initializing markov: %v\n", err)
			os.Exit(1)
		}

		md := engine.Describe()
		if !tui.IsInteractive() {
			fmt.Print(md)
			return
		}

		tui.PrintBanner()
		out, err := tui.NewRenderer()(md)
		if err != nil {
			fmt.Print(md)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
