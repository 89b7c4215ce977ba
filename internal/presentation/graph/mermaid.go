// Package graph renders chain structure as Mermaid diagrams.
package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okanara/markov/pkg/chain"
)

// Overlay contains dynamic state to visualize on top of the static chain:
// typically the states visited by a simulation and the state it ended in.
type Overlay struct {
	Visited []chain.State
	Current chain.State
}

// GenerateMermaid produces Mermaid flowchart syntax for the chain with
// semantic styling:
//   - start state: ((circle))
//   - absorbing state (self-probability 1): [[subroutine]]
//   - everything else: [rectangle]
//
// Every positive-probability transition becomes an edge labelled with its
// probability; self-loops are drawn dotted. Overlay styles (visited/current)
// are appended when an overlay is provided.
func GenerateMermaid(m *chain.Model, start chain.State, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range m.States() {
		safeID := sanitizeMermaidID(s)

		opener, closer := "[", "]"
		switch {
		case s == start:
			opener, closer = "((", "))"
		case m.Prob(s, s) == 1:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, s, closer))

		row, _ := m.Row(s)
		for _, target := range m.States() {
			p := row[target]
			if p <= 0 {
				continue
			}
			arrow := fmt.Sprintf("-- \"%s\" -->", formatProb(p))
			if target == s {
				arrow = fmt.Sprintf("-. \"%s\" .->", formatProb(p))
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, sanitizeMermaidID(target)))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for contrast on both light and dark themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, s := range overlay.Visited {
			safeID := sanitizeMermaidID(s)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}
		if overlay.Current != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.Current)))
		}
	}

	return sb.String()
}

func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'g', 4, 64)
}

func sanitizeMermaidID(s chain.State) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return r.Replace(string(s))
}
