// Package report builds the markdown analysis shown by "markov describe".
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okanara/markov/internal/validator"
	"github.com/okanara/markov/pkg/chain"
)

// Input is everything the report needs about a chain.
type Input struct {
	Name        string
	Description string
	Start       chain.State
	Model       *chain.Model
}

// Markdown renders the full analysis: transition matrix, ergodicity,
// stationary distribution, detailed balance, and validator warnings.
func Markdown(in Input) string {
	var sb strings.Builder
	m := in.Model
	states := m.States()

	fmt.Fprintf(&sb, "# %s\n\n", in.Name)
	if in.Description != "" {
		sb.WriteString(strings.TrimSpace(in.Description))
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "%d states, starting at `%s`.\n\n", len(states), in.Start)

	sb.WriteString("## Transition matrix\n\n")
	sb.WriteString("| from \\ to |")
	for _, s := range states {
		fmt.Fprintf(&sb, " %s |", s)
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", len(states)))
	sb.WriteString("\n")
	for _, src := range states {
		fmt.Fprintf(&sb, "| **%s** |", src)
		for _, target := range states {
			fmt.Fprintf(&sb, " %s |", formatProb(m.Prob(src, target)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n## Analysis\n\n")

	if m.IsErgodic() {
		sb.WriteString("- Ergodic: **yes**: a unique stationary distribution exists and is reached from any start.\n")
	} else {
		sb.WriteString("- Ergodic: **no**: long-run behavior depends on the starting state.\n")
	}

	pi, err := m.Stationary()
	if err != nil {
		fmt.Fprintf(&sb, "- Stationary distribution: %v\n", err)
	} else {
		parts := make([]string, 0, len(states))
		for _, s := range states {
			parts = append(parts, fmt.Sprintf("`%s` %s", s, formatProb(pi[s])))
		}
		fmt.Fprintf(&sb, "- Stationary distribution: %s\n", strings.Join(parts, ", "))

		if m.DetailedBalance(pi, 1e-9) {
			sb.WriteString("- Detailed balance: **holds**: the chain is reversible at stationarity.\n")
		} else {
			sb.WriteString("- Detailed balance: does not hold (flow between some states runs one way round).\n")
		}
	}

	vr := validator.ValidateChain(m, in.Start)
	if len(vr.Problems) > 0 || len(vr.Warnings) > 0 {
		sb.WriteString("\n## Findings\n\n")
		for _, p := range vr.Problems {
			fmt.Fprintf(&sb, "- ❌ %s\n", p)
		}
		for _, w := range vr.Warnings {
			fmt.Fprintf(&sb, "- ⚠️ %s\n", w)
		}
	}

	return sb.String()
}

func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'g', 6, 64)
}
