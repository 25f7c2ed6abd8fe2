// Demo: builds a small reasoning graph in memory and shows both uses of the
// compression machinery — insight detection over graph distance, and humor
// scoring over simulated semantic distance.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/agenthands/insight/internal/core/distance"
	"github.com/agenthands/insight/internal/core/graph"
	"github.com/agenthands/insight/internal/core/humor"
	"github.com/agenthands/insight/internal/core/model"
	"github.com/agenthands/insight/internal/core/resonance"
	"github.com/agenthands/insight/internal/core/tunnel"
)

func main() {
	ctx := context.Background()

	demonstrateInsight(ctx)
	fmt.Println()
	demonstrateHumor()
}

// A chain n1 -> n2 -> ... -> n10: ten slow steps of research, and one
// hypothetical direct link from the first premise to the final claim.
func demonstrateInsight(ctx context.Context) {
	g := graph.NewMemoryGraph()

	contents := map[string]string{
		"n1":  "Light creates interference patterns.",
		"n10": "Light ejects electrons as particles.",
	}

	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("n%d", i)
		kind := model.KindPremise
		if i == 10 {
			kind = model.KindClaim
		}
		node := model.ThoughtNode{ID: id, Kind: kind, Content: contents[id]}
		if node.Content == "" {
			node.Content = fmt.Sprintf("Intermediate result %d.", i)
		}
		if err := g.AddNode(ctx, node); err != nil {
			log.Fatal(err)
		}
	}
	for i := 1; i < 10; i++ {
		edge := model.CausalEdge{
			SourceID: fmt.Sprintf("n%d", i),
			TargetID: fmt.Sprintf("n%d", i+1),
			Kind:     model.EdgeSupports,
		}
		if err := g.AddEdge(ctx, edge); err != nil {
			log.Fatal(err)
		}
	}

	engine := tunnel.NewEngine(g, distance.NewBFSProvider(), resonance.AlwaysResonant{})

	result, err := engine.Evaluate(ctx, "n1", "n10")
	if err != nil {
		log.Fatal(err)
	}
	if result == nil {
		fmt.Println("No insight found")
		return
	}

	fmt.Println("INSIGHT DETECTED")
	fmt.Printf("Connection:        %q <---> %q\n", contents["n1"], contents["n10"])
	fmt.Printf("Surface distance:  %g steps\n", result.SurfaceDistance.Steps)
	fmt.Printf("Tunnel distance:   %g step\n", result.TunnelDistance)
	fmt.Printf("Compression ratio: %gx\n", float64(result.CompressionRatio))
	fmt.Printf("Classification:    %s\n", result.Magnitude)
}

func demonstrateHumor() {
	setup := model.ThoughtNode{
		ID:      "setup",
		Kind:    model.KindPremise,
		Content: "I asked the librarian for books on paranoia.",
		Metadata: map[string]interface{}{
			"tags": []string{"library", "books", "information"},
		},
	}
	punchline := model.ThoughtNode{
		ID:      "punchline",
		Kind:    model.KindClaim,
		Content: "She whispered, 'They're right behind you.'",
		Metadata: map[string]interface{}{
			"tags": []string{"conspiracy", "fear", "whisper"},
		},
	}

	scorer := humor.NewScorer()
	result := scorer.Score(setup, punchline)

	fmt.Printf("JOKE ANALYSIS: %q -> %q\n", setup.Content, punchline.Content)
	fmt.Printf("Surface distance:  %g\n", result.SurfaceDistance.Steps)
	fmt.Printf("Tunnel distance:   %g\n", result.TunnelDistance)
	fmt.Printf("Compression ratio: %gx (%s)\n", float64(result.CompressionRatio), result.Magnitude)

	if scorer.Landed(result) {
		fmt.Println("RESULT: Valid compression tunnel. Humor achieved.")
	} else {
		fmt.Println("RESULT: Just a statement. No compression.")
	}
}
