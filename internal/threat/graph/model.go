package graph

// Node kinds, as the frontend styles them.
const (
	KindCategory = "categoria"
	KindThreat   = "ameaca"
	KindAsset    = "ativo"
)

// NodeData carries the visible attributes of a graph node. Category is set
// only on threat nodes.
type NodeData struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Category string `json:"categoria,omitempty"`
}

// Node and Edge wrap their data the way cytoscape expects elements:
// {"data": {...}}.
type Node struct {
	Data NodeData `json:"data"`
}

type EdgeData struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type Edge struct {
	Data EdgeData `json:"data"`
}

// Graph is the visualization shape derived from a threat list. Rebuilt from
// scratch on every request, never stored.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
