package graph

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/agenthands/insight/internal/core/model"
	"github.com/agenthands/insight/internal/driver"
)

// CypherGraph is a Store backed by Memgraph through the bolt driver.
// Tags are stored as a list property so Cypher can reach them; the rest of
// the metadata map travels as a JSON string.
type CypherGraph struct {
	Driver driver.GraphDriver
}

func NewCypherGraph(d driver.GraphDriver) *CypherGraph {
	return &CypherGraph{Driver: d}
}

func (g *CypherGraph) AddNode(ctx context.Context, node model.ThoughtNode) error {
	if node.ID == "" {
		return fmt.Errorf("node id must not be empty")
	}

	metadata := "{}"
	if len(node.Metadata) > 0 {
		data, err := json.Marshal(node.Metadata)
		if err != nil {
			return fmt.Errorf("failed to serialize node metadata: %w", err)
		}
		metadata = string(data)
	}

	params := map[string]interface{}{
		"id":       node.ID,
		"kind":     string(node.Kind),
		"content":  node.Content,
		"tags":     node.Tags(),
		"metadata": metadata,
	}

	_, err := g.Driver.ExecuteQuery(ctx, driver.SaveThoughtQuery, params)
	return err
}

func (g *CypherGraph) AddEdge(ctx context.Context, edge model.CausalEdge) error {
	params := map[string]interface{}{
		"source_id": edge.SourceID,
		"target_id": edge.TargetID,
		"kind":      string(edge.Kind),
	}

	result, err := g.Driver.ExecuteQuery(ctx, driver.SaveCausalEdgeQuery, params)
	if err != nil {
		return err
	}
	// MERGE yields no rows when either MATCH found nothing.
	if len(result.Records) == 0 {
		return fmt.Errorf("%w: %s or %s", ErrNodeNotFound, edge.SourceID, edge.TargetID)
	}
	return nil
}

func (g *CypherGraph) GetNode(ctx context.Context, id string) (model.ThoughtNode, error) {
	result, err := g.Driver.ExecuteQuery(ctx, driver.GetThoughtQuery, map[string]interface{}{"id": id})
	if err != nil {
		return model.ThoughtNode{}, err
	}
	if len(result.Records) == 0 {
		return model.ThoughtNode{}, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return thoughtFromRecord(result.Records[0]), nil
}

func (g *CypherGraph) Neighbors(ctx context.Context, id string, dir Direction) ([]string, error) {
	exists, err := g.nodeExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	query := driver.OutgoingNeighborsQuery
	if dir == Both {
		query = driver.AllNeighborsQuery
	}

	result, err := g.Driver.ExecuteQuery(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}

	neighbors := make([]string, 0, len(result.Records))
	for _, rec := range result.Records {
		if v, ok := rec.Get("id"); ok {
			if s, ok := v.(string); ok {
				neighbors = append(neighbors, s)
			}
		}
	}
	return neighbors, nil
}

func (g *CypherGraph) HasEdge(ctx context.Context, fromID, toID string) (bool, error) {
	params := map[string]interface{}{
		"source_id": fromID,
		"target_id": toID,
	}
	result, err := g.Driver.ExecuteQuery(ctx, driver.HasCausalEdgeQuery, params)
	if err != nil {
		return false, err
	}
	return recordCount(result, "edges") > 0, nil
}

func (g *CypherGraph) Nodes(ctx context.Context) ([]model.ThoughtNode, error) {
	result, err := g.Driver.ExecuteQuery(ctx, driver.AllThoughtsQuery, nil)
	if err != nil {
		return nil, err
	}

	nodes := make([]model.ThoughtNode, 0, len(result.Records))
	for _, rec := range result.Records {
		nodes = append(nodes, thoughtFromRecord(rec))
	}
	return nodes, nil
}

func (g *CypherGraph) Edges(ctx context.Context) ([]model.CausalEdge, error) {
	result, err := g.Driver.ExecuteQuery(ctx, driver.AllCausalEdgesQuery, nil)
	if err != nil {
		return nil, err
	}

	edges := make([]model.CausalEdge, 0, len(result.Records))
	for _, rec := range result.Records {
		var edge model.CausalEdge
		if v, ok := rec.Get("source_id"); ok {
			edge.SourceID, _ = v.(string)
		}
		if v, ok := rec.Get("target_id"); ok {
			edge.TargetID, _ = v.(string)
		}
		if v, ok := rec.Get("kind"); ok {
			if s, ok := v.(string); ok {
				edge.Kind = model.EdgeKind(s)
			}
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

func (g *CypherGraph) nodeExists(ctx context.Context, id string) (bool, error) {
	result, err := g.Driver.ExecuteQuery(ctx, driver.ThoughtExistsQuery, map[string]interface{}{"id": id})
	if err != nil {
		return false, err
	}
	return recordCount(result, "nodes") > 0, nil
}

func recordCount(result neo4j.EagerResult, key string) int64 {
	if len(result.Records) == 0 {
		return 0
	}
	v, ok := result.Records[0].Get(key)
	if !ok {
		return 0
	}
	count, _ := v.(int64)
	return count
}

func thoughtFromRecord(rec *neo4j.Record) model.ThoughtNode {
	var node model.ThoughtNode

	if v, ok := rec.Get("id"); ok {
		node.ID, _ = v.(string)
	}
	if v, ok := rec.Get("kind"); ok {
		if s, ok := v.(string); ok {
			node.Kind = model.NodeKind(s)
		}
	}
	if v, ok := rec.Get("content"); ok {
		node.Content, _ = v.(string)
	}

	metadata := make(map[string]interface{})
	if v, ok := rec.Get("metadata"); ok {
		if s, ok := v.(string); ok && s != "" && s != "{}" {
			// Best effort: a node written by another client may carry junk here.
			_ = json.Unmarshal([]byte(s), &metadata)
		}
	}
	if v, ok := rec.Get("tags"); ok {
		if list, ok := v.([]interface{}); ok && len(list) > 0 {
			metadata["tags"] = list
		}
	}
	if len(metadata) > 0 {
		node.Metadata = metadata
	}
	return node
}
