// Package candidates picks promising node pairs for a tunnel scan. Nodes
// that land in different clusters of the causal graph are far apart by
// construction, so cross-cluster pairs are where high-compression shortcuts
// hide.
package candidates

import (
	"sort"

	"github.com/agenthands/insight/internal/core/model"
	"github.com/agenthands/insight/internal/core/tunnel"
)

// Picker clusters the graph with label propagation. Edge direction is
// ignored: cluster membership is about connectivity, not causality.
type Picker struct {
	MaxIterations int
}

func NewPicker() *Picker {
	return &Picker{MaxIterations: 20}
}

// Clusters groups nodes by propagating labels until they stabilize.
// Singletons stay as their own cluster: an isolated node paired against a
// big cluster is exactly the kind of candidate a scan wants. Output order
// is deterministic (clusters by smallest member id, members by id).
func (p *Picker) Clusters(nodes []model.ThoughtNode, edges []model.CausalEdge) [][]model.ThoughtNode {
	if len(nodes) == 0 {
		return nil
	}

	nodeByID := make(map[string]model.ThoughtNode, len(nodes))
	adj := make(map[string]map[string]int, len(nodes))
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		nodeByID[n.ID] = n
		adj[n.ID] = make(map[string]int)
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)

	for _, e := range edges {
		if _, ok := nodeByID[e.SourceID]; !ok {
			continue
		}
		if _, ok := nodeByID[e.TargetID]; !ok {
			continue
		}
		adj[e.SourceID][e.TargetID]++
		adj[e.TargetID][e.SourceID]++
	}

	// Every node starts as its own label.
	labels := make(map[string]string, len(nodes))
	for _, id := range ids {
		labels[id] = id
	}

	for iter := 0; iter < p.MaxIterations; iter++ {
		changed := 0

		for _, id := range ids {
			neighbors := adj[id]
			if len(neighbors) == 0 {
				continue
			}

			counts := make(map[string]int)
			best := 0
			for neighbor, weight := range neighbors {
				label := labels[neighbor]
				counts[label] += weight
				if counts[label] > best {
					best = counts[label]
				}
			}

			// Tie-break on the largest label so runs are reproducible.
			winner := ""
			for label, count := range counts {
				if count == best && label > winner {
					winner = label
				}
			}

			if labels[id] != winner {
				labels[id] = winner
				changed++
			}
		}

		if changed == 0 {
			break
		}
	}

	grouped := make(map[string][]model.ThoughtNode)
	for _, id := range ids {
		label := labels[id]
		grouped[label] = append(grouped[label], nodeByID[id])
	}

	clusters := make([][]model.ThoughtNode, 0, len(grouped))
	for _, cluster := range grouped {
		clusters = append(clusters, cluster)
	}
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i][0].ID < clusters[j][0].ID
	})
	return clusters
}

// CrossClusterPairs returns candidate pairs spanning different clusters.
// limit <= 0 means no cap.
func CrossClusterPairs(clusters [][]model.ThoughtNode, limit int) []tunnel.Pair {
	var pairs []tunnel.Pair
	for i := 0; i < len(clusters); i++ {
		for j := i + 1; j < len(clusters); j++ {
			for _, a := range clusters[i] {
				for _, b := range clusters[j] {
					if limit > 0 && len(pairs) >= limit {
						return pairs
					}
					pairs = append(pairs, tunnel.Pair{SourceID: a.ID, TargetID: b.ID})
				}
			}
		}
	}
	return pairs
}
