package model

// NodeKind tags the role a thought plays in a chain of reasoning.
// The set is open-ended; downstream graph owners may introduce their own kinds.
type NodeKind string

const (
	KindPremise     NodeKind = "premise"
	KindClaim       NodeKind = "claim"
	KindHypothesis  NodeKind = "hypothesis"
	KindObservation NodeKind = "observation"
)

// ThoughtNode is a single step of reasoning in the graph.
// The engine treats nodes as immutable: it reads them, never writes them.
type ThoughtNode struct {
	ID       string                 `json:"id"`
	Kind     NodeKind               `json:"kind"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Tags returns the "tags" metadata entry as a string slice.
// Tolerates both []string (built in-process) and []interface{} (decoded from JSON).
func (n ThoughtNode) Tags() []string {
	raw, ok := n.Metadata["tags"]
	if !ok {
		return nil
	}

	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	}
	return nil
}
