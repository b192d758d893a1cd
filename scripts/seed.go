// Seed script for loading demo beliefs into a running Doxa server.
// Run with: go run ./scripts/seed.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

var baseURL = "http://localhost:8080"

func main() {
	if url := os.Getenv("DOXA_URL"); url != "" {
		baseURL = url
	}

	beliefs := []struct {
		id         string
		entity     string
		predicate  string
		value      any
		confidence float64
		source     string
	}{
		{"belief_hq_berlin", "acme_corp", "hq_city", "Berlin", 0.72, "news_2019"},
		{"belief_ceo_tran", "acme_corp", "ceo", "Mai Tran", 0.88, "press_release"},
		{"belief_employees_340", "acme_corp", "employees", 340, 0.66, "press_release"},
		{"belief_remote_first", "acme_corp", "remote_first", true, 0.8, "careers_page"},
		// Contradicts the 2019 headquarters belief; the engine resolves it.
		{"belief_hq_lisbon", "acme_corp", "hq_city", "Lisbon", 0.91, "filing_2024"},
		{"belief_api_healthy", "acme_api", "status", "healthy", 0.97, "probe"},
	}

	for _, b := range beliefs {
		post("/v1/beliefs", map[string]any{
			"id": b.id, "entity": b.entity, "predicate": b.predicate,
			"value": b.value, "confidence": b.confidence, "source": b.source,
		})
		fmt.Printf("Seeded belief [%s]: %s.%s = %v\n", b.id, b.entity, b.predicate, b.value)
	}

	// The press release grounds the headcount estimate.
	post("/v1/edges", map[string]string{"source": "belief_ceo_tran", "target": "belief_employees_340"})
	fmt.Println("Linked belief_ceo_tran -> belief_employees_340")

	fmt.Println("\n=== Seed Complete ===")
	fmt.Println("\nTo query the graph, use:")
	fmt.Printf("curl '%s/v1/query?entity=acme_corp&predicate=hq_city'\n", baseURL)
	fmt.Printf("curl '%s/v1/reliability?entity=acme_corp&predicate=hq_city'\n", baseURL)
	fmt.Printf("curl '%s/v1/graph/dot'\n", baseURL)
}

func post(path string, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("Failed to marshal request: %v", err)
	}

	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		log.Fatalf("Failed to reach server: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(resp.Body)
		log.Fatalf("API error (%d): %s", resp.StatusCode, string(msg))
	}
}
