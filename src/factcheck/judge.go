package factcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/verilens/verilens/src/webclient"
)

// ErrJudgeUnavailable signals that the primary judge model is not
// configured or could not be reached. The orchestrator converts it into
// the neutral default outcome.
var ErrJudgeUnavailable = errors.New("judge model unavailable")

const (
	geminiBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel     = "gemini-2.0-flash"
	judgeMaxTokens  = 1024
	maxPromptItems  = 5
	noExplanation   = "No explanation provided"
	judgeHTTPWindow = 120 * time.Second
)

// GeminiJudge scores claims with Google's generateContent API.
type GeminiJudge struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewGeminiJudge(apiKey string) *GeminiJudge {
	return &GeminiJudge{
		apiKey:     apiKey,
		baseURL:    geminiBaseURL,
		model:      geminiModel,
		httpClient: webclient.NewDefault(judgeHTTPWindow),
	}
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r *generateContentResponse) firstText() string {
	for _, cand := range r.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

// Judge asks the model for a scored verdict on the claim given the
// evidence. Transport and model errors surface as ErrJudgeUnavailable;
// malformed response content degrades field by field instead of failing.
func (g *GeminiJudge) Judge(ctx context.Context, claim string, evidence []Evidence) (Judgment, error) {
	if g.apiKey == "" {
		return Judgment{}, fmt.Errorf("%w: API key not configured", ErrJudgeUnavailable)
	}

	text, err := g.generate(ctx, buildJudgePrompt(claim, evidence))
	if err != nil {
		return Judgment{}, fmt.Errorf("%w: %v", ErrJudgeUnavailable, err)
	}

	return parseJudgeResponse(text), nil
}

func buildJudgePrompt(claim string, evidence []Evidence) string {
	items := evidence
	if len(items) > maxPromptItems {
		items = items[:maxPromptItems]
	}

	var block strings.Builder
	for i, e := range items {
		title := e.Title
		if title == "" {
			title = "Unknown"
		}
		fmt.Fprintf(&block, "Source %d: %s\n%s\n", i+1, title, e.Snippet)
	}

	return fmt.Sprintf(`Analyze this claim and determine if it is true or false based on the evidence provided.

Claim: %q

Evidence:
%s
Please analyze the claim carefully and provide:
1. A score from 0-100 (where 0 is completely false and 100 is completely true)
2. A detailed explanation of your reasoning
3. A clear verdict (true/false/partial)

Format your response exactly like this:
SCORE: [number 0-100]
VERDICT: [true/false/partial]
EXPLANATION: [your detailed analysis]`, claim, block.String())
}

func (g *GeminiJudge) generate(ctx context.Context, prompt string) (string, error) {
	safety := []map[string]string{
		{"category": "HARM_CATEGORY_HARASSMENT", "threshold": "BLOCK_MEDIUM_AND_ABOVE"},
		{"category": "HARM_CATEGORY_HATE_SPEECH", "threshold": "BLOCK_MEDIUM_AND_ABOVE"},
		{"category": "HARM_CATEGORY_SEXUALLY_EXPLICIT", "threshold": "BLOCK_MEDIUM_AND_ABOVE"},
		{"category": "HARM_CATEGORY_DANGEROUS_CONTENT", "threshold": "BLOCK_MEDIUM_AND_ABOVE"},
	}

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": []map[string]string{{"text": prompt}},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     0.3,
			"topP":            0.8,
			"topK":            40,
			"maxOutputTokens": judgeMaxTokens,
		},
		"safetySettings": safety,
	}

	bodyBytes, _ := json.Marshal(payload)
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	_, body, err := webclient.DoWithRetry(ctx, 3, 2*time.Second, func() (int, []byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
		if err != nil {
			return 0, nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := g.httpClient.Do(req)
		if err != nil {
			return 0, nil, err
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return resp.StatusCode, b, fmt.Errorf("status %d", resp.StatusCode)
		}
		return resp.StatusCode, b, nil
	})
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	var result generateContentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	text := result.firstText()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}

// parseJudgeResponse reads the labeled SCORE/VERDICT/EXPLANATION lines the
// prompt requests. Every field has a fallback: an unparsable score stays
// 50, an unrecognized verdict stays neutral, and a missing explanation is
// reconstructed from the response tail.
func parseJudgeResponse(text string) Judgment {
	lines := strings.Split(text, "\n")

	out := Judgment{
		Score:   50.0,
		Verdict: VerdictNeutral,
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "SCORE:"):
			raw := strings.TrimSpace(strings.TrimPrefix(line, "SCORE:"))
			if score, err := strconv.ParseFloat(raw, 64); err == nil {
				out.Score = clampScore(score)
			} else {
				out.Score = 50.0
			}
		case strings.HasPrefix(line, "VERDICT:"):
			v := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "VERDICT:")))
			switch Verdict(v) {
			case VerdictTrue, VerdictFalse, VerdictPartial:
				out.Verdict = Verdict(v)
			}
		case strings.HasPrefix(line, "EXPLANATION:"):
			out.Explanation = strings.TrimSpace(strings.TrimPrefix(line, "EXPLANATION:"))
		}
	}

	if out.Explanation == "" && len(lines) > 2 {
		out.Explanation = strings.TrimSpace(strings.Join(lines[2:], "\n"))
	}
	if out.Explanation == "" {
		out.Explanation = noExplanation
	}
	return out
}
