package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agenthands/insight/internal/config"
	"github.com/agenthands/insight/internal/core/candidates"
	"github.com/agenthands/insight/internal/core/distance"
	"github.com/agenthands/insight/internal/core/graph"
	"github.com/agenthands/insight/internal/core/humor"
	"github.com/agenthands/insight/internal/core/model"
	"github.com/agenthands/insight/internal/core/narrate"
	"github.com/agenthands/insight/internal/core/resonance"
	"github.com/agenthands/insight/internal/core/tunnel"
	"github.com/agenthands/insight/internal/driver"
	"github.com/agenthands/insight/internal/llm"
)

type Server struct {
	Graph    graph.Store
	Engine   *tunnel.Engine
	Scorer   *humor.Scorer
	Picker   *candidates.Picker
	Narrator *narrate.Narrator // nil when no LLM is configured
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}

	// Env vars win over the file.
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		cfg.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		cfg.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		cfg.Memgraph.Password = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("RESONANCE_ORACLE"); v != "" {
		cfg.Resonance.Oracle = v
	}

	return NewServerWithConfig(cfg)
}

func NewServerWithConfig(cfg *config.Config) *Server {
	var store graph.Store
	if cfg.Memgraph.URI != "" {
		d, err := driver.NewMemgraphDriver(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			log.Fatalf("Failed to connect to Memgraph: %v", err)
		}
		if err := d.BuildIndices(context.Background()); err != nil {
			log.Printf("Failed to build indices: %v", err)
		}
		store = graph.NewCypherGraph(d)
	} else {
		log.Println("No Memgraph URI configured, using in-memory graph")
		store = graph.NewMemoryGraph()
	}

	var llmClient llm.LLMClient
	var embedder llm.EmbedderClient
	if cfg.LLM.Provider != "" {
		var err error
		llmClient, embedder, err = llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to initialize LLM client: %v", err)
		}
	}

	var oracle resonance.Oracle
	switch cfg.Resonance.Oracle {
	case "", "always":
		oracle = resonance.AlwaysResonant{}
	case "tags":
		oracle = &resonance.TagOverlapOracle{MinShared: cfg.Resonance.MinSharedTags}
	case "embedding":
		if embedder == nil {
			log.Fatalf("Resonance oracle 'embedding' requires an LLM provider with embedding support")
		}
		oracle = &resonance.EmbeddingOracle{Embedder: embedder, Threshold: cfg.Resonance.SimilarityThreshold}
	case "llm":
		if llmClient == nil {
			log.Fatalf("Resonance oracle 'llm' requires an LLM provider")
		}
		oracle = &resonance.LLMOracle{LLM: llmClient, Prompt: cfg.Prompts.Resonance}
	default:
		log.Fatalf("Unknown resonance oracle: %s", cfg.Resonance.Oracle)
	}

	provider := distance.NewBFSProvider()
	if cfg.Engine.DistanceMode == "bidirectional" {
		provider.Direction = graph.Both
	}

	engine := tunnel.NewEngine(store, provider, oracle)
	engine.Thresholds = tunnel.Thresholds{
		Major:         cfg.Engine.MajorThreshold,
		Epiphany:      cfg.Engine.EpiphanyThreshold,
		ParadigmShift: cfg.Engine.ParadigmShiftThreshold,
	}
	engine.FailFast = cfg.Engine.FailFast

	var narrator *narrate.Narrator
	if llmClient != nil {
		narrator = &narrate.Narrator{LLM: llmClient, Prompt: cfg.Prompts.Narration}
	}

	return &Server{
		Graph:    store,
		Engine:   engine,
		Scorer:   humor.NewScorer(),
		Picker:   candidates.NewPicker(),
		Narrator: narrator,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Health)
	r.POST("/nodes", s.AddNode)
	r.POST("/edges", s.AddEdge)
	r.POST("/evaluate", s.Evaluate)
	r.POST("/scan", s.Scan)
	r.POST("/humor", s.Humor)
	r.POST("/narrate", s.Narrate)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type AddNodeRequest struct {
	ID       string                 `json:"id"`
	Kind     model.NodeKind         `json:"kind"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}

func (s *Server) AddNode(c *gin.Context) {
	var req AddNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	node := model.ThoughtNode{
		ID:       req.ID,
		Kind:     req.Kind,
		Content:  req.Content,
		Metadata: req.Metadata,
	}

	if err := s.Graph.AddNode(c.Request.Context(), node); err != nil {
		if errors.Is(err, graph.ErrDuplicateNode) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to add node: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add node"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"node": node})
}

type AddEdgeRequest struct {
	SourceID string         `json:"source_id"`
	TargetID string         `json:"target_id"`
	Kind     model.EdgeKind `json:"kind"`
}

func (s *Server) AddEdge(c *gin.Context) {
	var req AddEdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	edge := model.CausalEdge{SourceID: req.SourceID, TargetID: req.TargetID, Kind: req.Kind}
	if err := s.Graph.AddEdge(c.Request.Context(), edge); err != nil {
		if errors.Is(err, graph.ErrNodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to add edge: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add edge"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"edge": edge})
}

type EvaluateRequest struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

func (s *Server) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := s.Engine.Evaluate(c.Request.Context(), req.SourceID, req.TargetID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	// A null result is the well-defined "no insight" outcome, not an error.
	c.JSON(http.StatusOK, gin.H{"result": result})
}

type ScanRequest struct {
	// NodeIDs is the candidate set; empty means "pick candidates for me"
	// via cross-cluster pairing over the whole graph.
	NodeIDs  []string `json:"node_ids"`
	Limit    int      `json:"limit"`
	FailFast bool     `json:"fail_fast"`
}

func (s *Server) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()

	engine := s.Engine
	if req.FailFast && !engine.FailFast {
		scoped := *engine
		scoped.FailFast = true
		engine = &scoped
	}

	seq := engine.Scan(ctx, req.NodeIDs)
	if len(req.NodeIDs) == 0 {
		nodes, err := s.Graph.Nodes(ctx)
		if err != nil {
			log.Printf("Failed to list nodes: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list nodes"})
			return
		}
		edges, err := s.Graph.Edges(ctx)
		if err != nil {
			log.Printf("Failed to list edges: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list edges"})
			return
		}
		clusters := s.Picker.Clusters(nodes, edges)
		seq = engine.EvaluatePairs(ctx, candidates.CrossClusterPairs(clusters, req.Limit))
	}

	results := []model.TunnelResult{}
	failures := []string{}
	for result, err := range seq {
		if err != nil {
			failures = append(failures, err.Error())
			continue
		}
		results = append(results, *result)
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "failures": failures})
}

type HumorRequest struct {
	Setup     model.ThoughtNode `json:"setup"`
	Punchline model.ThoughtNode `json:"punchline"`
}

func (s *Server) Humor(c *gin.Context) {
	var req HumorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := s.Scorer.Score(req.Setup, req.Punchline)
	c.JSON(http.StatusOK, gin.H{
		"result": result,
		"landed": s.Scorer.Landed(result),
	})
}

func (s *Server) Narrate(c *gin.Context) {
	if s.Narrator == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "No LLM provider configured"})
		return
	}

	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()
	result, err := s.Engine.Evaluate(ctx, req.SourceID, req.TargetID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"result": nil})
		return
	}

	source, err := s.Graph.GetNode(ctx, req.SourceID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	target, err := s.Graph.GetNode(ctx, req.TargetID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	narration, err := s.Narrator.Narrate(ctx, source, target, *result)
	if err != nil {
		log.Printf("Failed to narrate tunnel: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to narrate tunnel"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "narration": narration})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, tunnel.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, graph.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, tunnel.ErrOracleFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
