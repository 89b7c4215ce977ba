package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/okanara/markov"
	"github.com/okanara/markov/internal/adapters/mcp"
	"github.com/okanara/markov/internal/logging"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the markov engine as an MCP server on stdio, letting agent
hosts sample trajectories and analyze the chain as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.New(slog.LevelDebug)
		slog.SetDefault(logger)

		engine, err := loadEngine(cmd, args, markov.WithLogger(logger))
		if err != nil {
			log.Fatalf("Error initializing markov: %v", err)
		}

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		slog.Info("starting MCP server (stdio)")
		if err := mcp.NewServer(engine).ServeStdio(); err != nil {
			slog.Error("MCP server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
