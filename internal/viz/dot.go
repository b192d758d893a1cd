// Package viz renders belief graph snapshots for external tools.
package viz

import (
	"fmt"
	"strings"

	"github.com/doxalab/doxa/internal/domain"
)

// statusColors maps belief statuses to DOT fill colors.
var statusColors = map[domain.Status]string{
	domain.StatusActive:        "palegreen",
	domain.StatusOutdated:      "gold",
	domain.StatusArchived:      "gray80",
	domain.StatusShadowHistory: "gray92",
}

// edgeStyles maps edge relations to DOT line styles.
var edgeStyles = map[domain.Relation]string{
	domain.RelationSupports:    "solid",
	domain.RelationContradicts: "dashed",
}

// edgeColors maps edge relations to DOT colors.
var edgeColors = map[domain.Relation]string{
	domain.RelationSupports:    "black",
	domain.RelationContradicts: "red",
}

// RenderDOT produces a Graphviz DOT representation of a snapshot: one box
// per belief colored by status, solid edges for support, red dashed edges
// for contradictions.
func RenderDOT(snap *domain.Snapshot) string {
	var b strings.Builder
	b.WriteString("digraph beliefs {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=filled, fontname=\"Helvetica\"];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	for _, n := range snap.Beliefs {
		color := statusColors[n.Status]
		if color == "" {
			color = "lightgray"
		}

		label := fmt.Sprintf("%s\n%s.%s = %s\nconf %.3f [%s]",
			n.ID, n.Entity, n.Predicate, truncate(n.Value.String(), 40), n.Confidence, n.Status)
		b.WriteString(fmt.Sprintf("  %q [label=%q, fillcolor=%q, tooltip=\"source=%s\"];\n",
			n.ID, label, color, n.Source))
	}
	b.WriteString("\n")

	for _, e := range snap.Edges {
		style := edgeStyles[e.Relation]
		if style == "" {
			style = "solid"
		}
		color := edgeColors[e.Relation]
		if color == "" {
			color = "black"
		}

		b.WriteString(fmt.Sprintf("  %q -> %q [label=%q, style=%s, color=%s];\n",
			e.Source, e.Target, e.Relation, style, color))
	}

	b.WriteString("}\n")
	return b.String()
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
