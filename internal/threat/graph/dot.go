package graph

import (
	"fmt"
	"strings"
)

// ToDOT renders the graph as graphviz text for tooling that prefers DOT
// over the cytoscape JSON.
func ToDOT(g *Graph, title string) string {
	var b strings.Builder
	b.WriteString("digraph G {\n  rankdir=LR;\n  node [shape=box, style=rounded];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label="%s"; fontname="Helvetica";`, escape(title)))
		b.WriteString("\n")
	}

	for _, n := range g.Nodes {
		style := `style="rounded,filled",fillcolor="#eef6ff"`
		switch n.Data.Kind {
		case KindCategory:
			style = `style="filled",fillcolor="#fde2e2"`
		case KindAsset:
			style = `shape=cylinder,style="filled",fillcolor="#fff3cd"`
		}
		b.WriteString(fmt.Sprintf(`  "%s" [label="%s", %s];`+"\n",
			escape(n.Data.ID), escape(n.Data.Label), style))
	}

	for _, e := range g.Edges {
		b.WriteString(fmt.Sprintf(`  "%s" -> "%s";`+"\n",
			escape(e.Data.Source), escape(e.Data.Target)))
	}

	b.WriteString("}\n")
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
