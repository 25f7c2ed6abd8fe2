// Smoke test client: exercises the HTTP surface of a locally running server.
// Run the server (in-memory graph mode is fine), then run this.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const baseURL = "http://localhost:8080"

func main() {
	// Give a just-launched server a moment.
	time.Sleep(2 * time.Second)

	fmt.Println("Starting smoke test...")

	// 1. Build a chain n1 -> ... -> n6
	fmt.Println("1. Creating nodes...")
	for i := 1; i <= 6; i++ {
		ok := sendRequest("POST", "/nodes", map[string]interface{}{
			"id":      fmt.Sprintf("n%d", i),
			"kind":    "premise",
			"content": fmt.Sprintf("Step %d of the argument.", i),
		})
		if !ok {
			fail("create node")
		}
	}

	fmt.Println("2. Creating edges...")
	for i := 1; i < 6; i++ {
		ok := sendRequest("POST", "/edges", map[string]interface{}{
			"source_id": fmt.Sprintf("n%d", i),
			"target_id": fmt.Sprintf("n%d", i+1),
			"kind":      "supports",
		})
		if !ok {
			fail("create edge")
		}
	}

	// 2. Evaluate the long jump: distance 5, should classify as Major/Epiphany
	fmt.Println("3. Evaluating n1 -> n6...")
	if !sendRequest("POST", "/evaluate", map[string]interface{}{
		"source_id": "n1",
		"target_id": "n6",
	}) {
		fail("evaluate")
	}

	// 3. Adjacent pair: should come back with a null result
	fmt.Println("4. Evaluating adjacent pair n1 -> n2...")
	if !sendRequest("POST", "/evaluate", map[string]interface{}{
		"source_id": "n1",
		"target_id": "n2",
	}) {
		fail("evaluate adjacent")
	}

	// 4. Batch scan over the whole chain
	fmt.Println("5. Scanning candidate set...")
	if !sendRequest("POST", "/scan", map[string]interface{}{
		"node_ids": []string{"n1", "n2", "n3", "n4", "n5", "n6"},
	}) {
		fail("scan")
	}

	// 5. Humor scoring with disjoint tag sets
	fmt.Println("6. Scoring a joke...")
	if !sendRequest("POST", "/humor", map[string]interface{}{
		"setup": map[string]interface{}{
			"id":      "setup",
			"kind":    "premise",
			"content": "I asked the librarian for books on paranoia.",
			"metadata": map[string]interface{}{
				"tags": []string{"library", "books"},
			},
		},
		"punchline": map[string]interface{}{
			"id":      "punchline",
			"kind":    "claim",
			"content": "She whispered, 'They're right behind you.'",
			"metadata": map[string]interface{}{
				"tags": []string{"conspiracy", "whisper"},
			},
		},
	}) {
		fail("humor")
	}

	fmt.Println("Smoke test passed.")
}

func fail(step string) {
	fmt.Printf("FAILED: %s\n", step)
	os.Exit(1)
}

func sendRequest(method, path string, payload interface{}) bool {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("  marshal error: %v\n", err)
		return false
	}

	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(body))
	if err != nil {
		fmt.Printf("  request error: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("  http error: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("  %s %s -> %d: %s\n", method, path, resp.StatusCode, string(respBody))

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
