package factcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/verilens/verilens/src/webclient"
)

const (
	serperURL       = "https://google.serper.dev/search"
	searchTimeout   = 20 * time.Second
	searchResultCap = 10
	sourceWebSearch = "web_search"
)

// SerperClient gathers evidence through the Serper web-search API.
type SerperClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewSerperClient(apiKey string) *SerperClient {
	return &SerperClient{
		apiKey:     apiKey,
		baseURL:    serperURL,
		httpClient: webclient.NewDefault(searchTimeout),
	}
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
	GL    string `json:"gl"`
	HL    string `json:"hl"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// Gather searches for fact-check evidence about the claim. Provider errors
// degrade to an empty result set; the pipeline continues without evidence.
func (s *SerperClient) Gather(ctx context.Context, claim string) []Evidence {
	if s.apiKey == "" {
		return nil
	}

	// Fixed locale keeps results deterministic across deployments.
	payload, _ := json.Marshal(serperRequest{
		Query: "fact check " + claim,
		Num:   searchResultCap,
		GL:    "us",
		HL:    "en",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("evidence search: build request: %v", err)
		return nil
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("evidence search: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("evidence search: read body: %v", err)
		return nil
	}

	var results serperResponse
	if err := json.Unmarshal(body, &results); err != nil {
		log.Printf("evidence search: parse response: %v", err)
		return nil
	}

	var evidence []Evidence
	seen := make(map[string]bool)
	for _, r := range results.Organic {
		if r.Link == "" || seen[r.Link] {
			continue
		}
		seen[r.Link] = true
		evidence = append(evidence, Evidence{
			Title:   strings.TrimSpace(r.Title),
			Link:    r.Link,
			Snippet: strings.TrimSpace(r.Snippet),
			Source:  sourceWebSearch,
		})
	}
	return evidence
}
