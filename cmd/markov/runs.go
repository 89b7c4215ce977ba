package main

import (
	"fmt"
	"os"

	"github.com/okanara/markov/internal/adapters/file"
	"github.com/spf13/cobra"
)

// runsCmd represents the runs command
var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "List or inspect recorded simulation runs",
	Long: `Without arguments, lists the IDs of runs recorded under the store
directory. With an ID, prints that run's trajectory summary.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		storeDir, _ := cmd.Flags().GetString("store-dir")
		store := file.New(storeDir)
		ctx := cmd.Context()

		if len(args) == 0 {
			ids, err := store.List(ctx)
			if err != nil {
				fmt.Printf("Error listing runs: %v\n", err)
				os.Exit(1)
			}
			if len(ids) == 0 {
				fmt.Println("No recorded runs. Use 'markov simulate --record' to create one.")
				return
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return
		}

		run, err := store.Load(ctx, args[0])
		if err != nil {
			fmt.Printf("Error loading run: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("run:     %s\n", run.ID)
		fmt.Printf("chain:   %s\n", run.Chain)
		fmt.Printf("start:   %s\n", run.Start)
		fmt.Printf("steps:   %d\n", run.Steps)
		fmt.Printf("seed:    %d\n", run.Seed)
		fmt.Printf("final:   %s\n", run.Final)
		fmt.Printf("created: %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Println("counts:")
		for state, count := range run.Counts {
			fmt.Printf("  %-12s %6d  (%.4f)\n", state, count, run.Frequency(state))
		}
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().String("store-dir", "", "Directory with recorded runs (default \".markov/runs\")")
}
