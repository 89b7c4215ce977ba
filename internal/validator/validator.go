// Package validator runs chain-level diagnostics that go beyond the row
// checks done at model construction.
package validator

import (
	"fmt"
	"strings"

	"github.com/okanara/markov/pkg/chain"
)

// Report is the outcome of a validation pass. Problems fail validation;
// warnings describe structure worth knowing about (absorbing states,
// periodicity) that is not necessarily a mistake.
type Report struct {
	Problems []string
	Warnings []string
}

// Err folds the problems into a single error, or nil when the chain passed.
func (r *Report) Err() error {
	if len(r.Problems) == 0 {
		return nil
	}
	return fmt.Errorf("found %d problems:\n- %s", len(r.Problems), strings.Join(r.Problems, "\n- "))
}

// ValidateChain crawls the chain from the start state and reports states
// that can never be reached, plus structural warnings.
func ValidateChain(m *chain.Model, start chain.State) *Report {
	report := &Report{}

	if !m.Contains(start) {
		report.Problems = append(report.Problems, fmt.Sprintf("start state %q not found", start))
		return report
	}

	// Reachability crawl along positive-probability edges.
	visited := map[chain.State]bool{start: true}
	queue := []chain.State{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		row, _ := m.Row(current)
		for target, p := range row {
			if p > 0 && !visited[target] {
				visited[target] = true
				queue = append(queue, target)
			}
		}
	}

	for _, s := range m.States() {
		if !visited[s] {
			report.Problems = append(report.Problems, fmt.Sprintf("state %q is unreachable from %q", s, start))
		}
		if m.Prob(s, s) == 1 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("state %q is absorbing: the chain never leaves it", s))
		}
	}

	if len(report.Problems) == 0 && !m.IsErgodic() {
		report.Warnings = append(report.Warnings,
			"chain is not ergodic: the stationary distribution may not be unique or reachable from every start")
	}

	return report
}
