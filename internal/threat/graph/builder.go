package graph

import (
	"fmt"
	"sort"

	"github.com/agente-stride/agent-api-backend/internal/threat/domain"
)

// maxAssetsPerThreat caps how many affected assets get linked per threat so
// one verbose finding cannot drown the drawing.
const maxAssetsPerThreat = 5

// Build derives the visualization graph from a threat list. Emission order
// is fixed so the output is reproducible: category nodes sorted first, then
// threat and asset nodes interleaved in discovery order. Mitigations are
// not represented.
func Build(threats []domain.Threat) *Graph {
	g := &Graph{Nodes: []Node{}, Edges: []Edge{}}

	seen := map[string]bool{}
	addNode := func(n Node) {
		if seen[n.Data.ID] {
			return
		}
		seen[n.Data.ID] = true
		g.Nodes = append(g.Nodes, n)
	}

	catSet := map[string]bool{}
	for _, t := range threats {
		catSet[t.Category] = true
	}
	cats := make([]string, 0, len(catSet))
	for c := range catSet {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	for _, c := range cats {
		addNode(Node{Data: NodeData{ID: "cat::" + c, Label: c, Kind: KindCategory}})
	}

	for i, t := range threats {
		nid := fmt.Sprintf("threat::%d", i+1)
		addNode(Node{Data: NodeData{ID: nid, Label: t.Title, Kind: KindThreat, Category: t.Category}})
		g.Edges = append(g.Edges, Edge{Data: EdgeData{
			ID:     fmt.Sprintf("e::%s->%s", nid, t.Category),
			Source: nid,
			Target: "cat::" + t.Category,
		}})

		assets := t.AffectedAssets
		if len(assets) > maxAssetsPerThreat {
			assets = assets[:maxAssetsPerThreat]
		}
		for _, asset := range assets {
			aid := "asset::" + asset
			addNode(Node{Data: NodeData{ID: aid, Label: asset, Kind: KindAsset}})
			g.Edges = append(g.Edges, Edge{Data: EdgeData{
				ID:     fmt.Sprintf("e::%s->%s", aid, nid),
				Source: aid,
				Target: nid,
			}})
		}
	}

	return g
}
