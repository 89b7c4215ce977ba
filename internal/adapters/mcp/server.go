// Package mcp exposes the engine as a Model Context Protocol server so
// agent hosts can sample and analyze chains over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/okanara/markov"
	"github.com/okanara/markov/pkg/chain"
)

// SimulateResult is the structured output of the simulate tool.
type SimulateResult struct {
	RunID      string              `json:"run_id" jsonschema_description:"ID of the recorded run"`
	Seed       int64               `json:"seed" jsonschema_description:"RNG seed the trajectory was drawn with"`
	Trajectory chain.Trajectory    `json:"trajectory" jsonschema_description:"Visited states, one per step"`
	Counts     map[chain.State]int `json:"counts" jsonschema_description:"Visit count per state"`
}

// PropagateResult is the structured output of the propagate tool.
type PropagateResult struct {
	Distributions []chain.Distribution `json:"distributions" jsonschema_description:"Distribution after each step, index 0 is the initial one"`
}

// StationaryResult is the structured output of the stationary tool.
type StationaryResult struct {
	Distribution    chain.Distribution `json:"distribution" jsonschema_description:"Long-run state distribution"`
	DetailedBalance bool               `json:"detailed_balance" jsonschema_description:"Whether the chain is reversible under this distribution"`
	Ergodic         bool               `json:"ergodic" jsonschema_description:"Whether the chain is irreducible and aperiodic"`
}

// Server wraps the markov Engine and exposes it as an MCP server.
type Server struct {
	engine    *markov.Engine
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server around the engine.
func NewServer(engine *markov.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("markov-mcp", markov.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: simulate
	simulateTool := mcp.NewTool("simulate",
		mcp.WithDescription("Draw one random sample path through the chain. Omit start to begin at the chain's default state; omit seed for a time-based one."),
		mcp.WithString("start", mcp.Description("State to start from (optional)")),
		mcp.WithNumber("steps", mcp.Required(), mcp.Description("Number of transitions to take")),
		mcp.WithNumber("seed", mcp.Description("RNG seed for reproducible runs (optional)")),
		mcp.WithOutputSchema[SimulateResult](),
	)
	s.mcpServer.AddTool(simulateTool, mcp.NewStructuredToolHandler(s.handleSimulate))

	// TOOL: propagate
	propagateTool := mcp.NewTool("propagate",
		mcp.WithDescription("Evolve the exact state distribution forward step by step, starting from a point mass on a state."),
		mcp.WithString("start", mcp.Description("State the distribution is concentrated on initially (optional)")),
		mcp.WithNumber("steps", mcp.Required(), mcp.Description("Number of steps to evolve")),
		mcp.WithOutputSchema[PropagateResult](),
	)
	s.mcpServer.AddTool(propagateTool, mcp.NewStructuredToolHandler(s.handlePropagate))

	// TOOL: stationary
	stationaryTool := mcp.NewTool("stationary",
		mcp.WithDescription("Compute the chain's stationary distribution and reversibility diagnostics."),
		mcp.WithOutputSchema[StationaryResult](),
	)
	s.mcpServer.AddTool(stationaryTool, mcp.NewStructuredToolHandler(s.handleStationary))

	// TOOL: describe
	s.mcpServer.AddTool(mcp.NewTool("describe",
		mcp.WithDescription("Get a markdown analysis report of the chain: transition matrix, ergodicity, stationary distribution and findings."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(s.engine.Describe()), nil
	})
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SimulateResult, error) {
	start, _ := args["start"].(string)

	stepsArg, ok := args["steps"].(float64)
	if !ok {
		return SimulateResult{}, fmt.Errorf("steps is required")
	}
	steps := int(stepsArg)

	seed := time.Now().UnixNano()
	if seedArg, ok := args["seed"].(float64); ok {
		seed = int64(seedArg)
	}

	path, run, err := s.engine.Simulate(ctx, chain.State(start), steps, seed)
	if err != nil {
		return SimulateResult{}, fmt.Errorf("simulate failed: %w", err)
	}

	return SimulateResult{
		RunID:      run.ID,
		Seed:       seed,
		Trajectory: path,
		Counts:     run.Counts,
	}, nil
}

func (s *Server) handlePropagate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PropagateResult, error) {
	stepsArg, ok := args["steps"].(float64)
	if !ok {
		return PropagateResult{}, fmt.Errorf("steps is required")
	}

	var initial chain.Distribution
	if start, ok := args["start"].(string); ok && start != "" {
		initial = chain.Point(chain.State(start))
	}

	dists, err := s.engine.Propagate(initial, int(stepsArg))
	if err != nil {
		return PropagateResult{}, fmt.Errorf("propagate failed: %w", err)
	}
	return PropagateResult{Distributions: dists}, nil
}

func (s *Server) handleStationary(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StationaryResult, error) {
	pi, err := s.engine.Stationary()
	if err != nil {
		return StationaryResult{}, fmt.Errorf("stationary failed: %w", err)
	}
	m := s.engine.Model()
	return StationaryResult{
		Distribution:    pi,
		DetailedBalance: m.DetailedBalance(pi, 1e-9),
		Ergodic:         m.IsErgodic(),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: markov://chain
	s.mcpServer.AddResource(mcp.NewResource("markov://chain", "Chain Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		m := s.engine.Model()
		jsonBytes, err := json.Marshal(map[string]interface{}{
			"name":   s.engine.Name(),
			"start":  s.engine.Start(),
			"states": m.States(),
			"rows":   m.Rows(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to encode chain: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "markov://chain",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
