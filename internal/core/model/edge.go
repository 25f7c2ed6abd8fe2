package model

// EdgeKind names the causal relation an edge asserts.
// The enumeration is owned by the graph collaborator; these are the kinds
// the reference graph implementations know about.
type EdgeKind string

const (
	EdgeSupports    EdgeKind = "supports"
	EdgeCauses      EdgeKind = "causes"
	EdgeContradicts EdgeKind = "contradicts"
)

// CausalEdge is a directed relation between two thought nodes.
// The engine never creates edges; it only asks whether a hypothetical
// direct edge between two nodes would be meaningful.
type CausalEdge struct {
	SourceID string   `json:"source_id"`
	TargetID string   `json:"target_id"`
	Kind     EdgeKind `json:"kind"`
}
