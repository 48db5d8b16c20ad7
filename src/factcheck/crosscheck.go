package factcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	crossCheckModel     = openai.GPT3Dot5Turbo
	crossCheckMaxTokens = 150
	crossCheckSystem    = "You are a fact-checking scoring system. Score claims based on their explanations."
	crossCheckNotSet    = "OpenAI API key not set"
)

// OpenAICrossChecker asks an independent chat model to score the primary
// judge's explanation against the claim.
type OpenAICrossChecker struct {
	client *openai.Client
}

// NewOpenAICrossChecker returns a configuration-gated cross checker: with
// an empty key every CrossCheck call is a no-op with a nil score.
func NewOpenAICrossChecker(apiKey string) *OpenAICrossChecker {
	if apiKey == "" {
		return &OpenAICrossChecker{}
	}
	return &OpenAICrossChecker{client: openai.NewClient(apiKey)}
}

// NewOpenAICrossCheckerWithConfig is used by tests to point the client at
// a fake endpoint.
func NewOpenAICrossCheckerWithConfig(cfg openai.ClientConfig) *OpenAICrossChecker {
	return &OpenAICrossChecker{client: openai.NewClientWithConfig(cfg)}
}

type crossCheckReply struct {
	Score       *float64 `json:"score"`
	Explanation string   `json:"explanation"`
}

func (o *OpenAICrossChecker) CrossCheck(ctx context.Context, claim, primaryExplanation string) CrossCheck {
	if o.client == nil {
		return CrossCheck{Explanation: crossCheckNotSet}
	}

	prompt := fmt.Sprintf(`Analyze this claim and explanation to determine if the claim is true or false.

Claim: %q

Explanation from analysis: %q

Based on how well the explanation proves or disproves the claim, give a score:
0 = Completely false
100 = Completely true

Respond in this exact JSON format:
{
    "score": [number 0-100],
    "explanation": [brief explanation of why you gave this score]
}`, claim, primaryExplanation)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: crossCheckModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: crossCheckSystem},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
		MaxTokens:   crossCheckMaxTokens,
	})
	if err != nil {
		log.Printf("cross check: %v", err)
		return CrossCheck{Explanation: fmt.Sprintf("Error calling GPT API: %v", err)}
	}
	if len(resp.Choices) == 0 {
		return CrossCheck{Explanation: "Error parsing GPT response: no choices returned"}
	}

	return parseCrossCheckReply(resp.Choices[0].Message.Content)
}

// parseCrossCheckReply extracts the {score, explanation} record. Models
// sometimes wrap the JSON in prose, so a failed parse retries on the
// substring between the first and last brace before giving up.
func parseCrossCheckReply(content string) CrossCheck {
	var reply crossCheckReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		start := strings.Index(content, "{")
		end := strings.LastIndex(content, "}")
		if start < 0 || end <= start {
			return CrossCheck{Explanation: fmt.Sprintf("Error parsing GPT response: %v", err)}
		}
		if err := json.Unmarshal([]byte(content[start:end+1]), &reply); err != nil {
			return CrossCheck{Explanation: fmt.Sprintf("Error parsing GPT response: %v", err)}
		}
	}

	if reply.Score == nil {
		return CrossCheck{Explanation: "Error parsing GPT response: missing score field"}
	}

	score := math.Trunc(clampScore(*reply.Score))
	return CrossCheck{Score: &score, Explanation: reply.Explanation}
}
