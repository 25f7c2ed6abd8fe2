package driver

const (
	SaveThoughtQuery = `
		MERGE (n:Thought {id: $id})
		SET n.kind = $kind,
			n.content = $content,
			n.tags = $tags,
			n.metadata = $metadata
		RETURN n.id AS id
	`

	SaveCausalEdgeQuery = `
		MATCH (source:Thought {id: $source_id})
		MATCH (target:Thought {id: $target_id})
		MERGE (source)-[e:CAUSAL]->(target)
		SET e.kind = $kind
		RETURN e.kind AS kind
	`

	GetThoughtQuery = `
		MATCH (n:Thought {id: $id})
		RETURN n.id AS id, n.kind AS kind, n.content AS content, n.tags AS tags, n.metadata AS metadata
	`

	ThoughtExistsQuery = `
		MATCH (n:Thought {id: $id})
		RETURN count(n) AS nodes
	`

	OutgoingNeighborsQuery = `
		MATCH (:Thought {id: $id})-[:CAUSAL]->(m:Thought)
		RETURN DISTINCT m.id AS id
		ORDER BY m.id
	`

	AllNeighborsQuery = `
		MATCH (:Thought {id: $id})-[:CAUSAL]-(m:Thought)
		RETURN DISTINCT m.id AS id
		ORDER BY m.id
	`

	HasCausalEdgeQuery = `
		MATCH (:Thought {id: $source_id})-[e:CAUSAL]->(:Thought {id: $target_id})
		RETURN count(e) AS edges
	`

	AllThoughtsQuery = `
		MATCH (n:Thought)
		RETURN n.id AS id, n.kind AS kind, n.content AS content, n.tags AS tags, n.metadata AS metadata
		ORDER BY n.id
	`

	AllCausalEdgesQuery = `
		MATCH (a:Thought)-[e:CAUSAL]->(b:Thought)
		RETURN a.id AS source_id, b.id AS target_id, e.kind AS kind
	`
)
