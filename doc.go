/*
Package markov is a toolkit for defining, validating, simulating and
analysing discrete-time finite-state Markov chains.

The numeric core lives in pkg/chain: an immutable transition Model with two
fundamental operations. Simulate draws one random sample path using an
injectable seeded randomness source; Propagate evolves a whole probability
distribution forward, producing the exact marginals step by step. Analysis
helpers compute the stationary distribution, test the detailed-balance
condition, and classify a chain as ergodic.

The root package wraps that core in an Engine that loads chain definitions
from YAML files, records simulation runs to a pluggable store (memory, file
or Redis), and feeds observability hooks.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/okanara/markov"
	)

	func main() {
		eng, err := markov.New("examples/coin-toss/chain.yaml")
		if err != nil {
			log.Fatal(err)
		}

		// One sampled trajectory, reproducible via the seed.
		path, run, err := eng.Simulate(context.Background(), "", 10, 42)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(path, run.Counts)

		// The exact distribution after each step.
		dists, err := eng.Propagate(nil, 10)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(dists[len(dists)-1])

		// Where the chain settles in the long run.
		pi, err := eng.Stationary()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(pi)
	}

The cmd/markov CLI exposes the same operations (simulate, evolve,
stationary, validate, graph, describe) plus an HTTP API with Prometheus
metrics (serve) and an MCP server (mcp).
*/
package markov
