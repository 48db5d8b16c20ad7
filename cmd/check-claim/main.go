package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/verilens/verilens/src/factcheck"
)

var (
	claimFlag   = flag.String("claim", "", "Claim text to verify")
	contextFlag = flag.String("context", "", "Optional context for the claim")
	timeoutFlag = flag.Duration("timeout", 90*time.Second, "Overall verification timeout")
	jsonFlag    = flag.Bool("json", false, "Print the raw result as JSON")
)

// noopCache disables caching for one-shot runs.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string) (*factcheck.Result, bool) { return nil, false }
func (noopCache) Set(ctx context.Context, key string, res *factcheck.Result, ttlSeconds int) error {
	return nil
}

func main() {
	log.SetFlags(0)
	flag.Parse()

	if *claimFlag == "" {
		log.Fatal("usage: check-claim -claim \"...\" [-context \"...\"]")
	}

	checker := factcheck.NewChecker(
		factcheck.NewSerperClient(os.Getenv("SERPER_API_KEY")),
		factcheck.NewGeminiJudge(os.Getenv("GOOGLE_API_KEY")),
		factcheck.NewOpenAICrossChecker(os.Getenv("OPENAI_API_KEY")),
		noopCache{},
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	result := checker.Verify(ctx, *claimFlag, *contextFlag)

	if *jsonFlag {
		out, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(out))
		return
	}

	fmt.Printf("Claim:       %s\n", result.Text)
	fmt.Printf("Verdict:     %s (score %.1f)\n", result.Verdict, result.Score)
	fmt.Printf("Explanation: %s\n", result.Explanation)
	if result.SecondaryScore != nil {
		fmt.Printf("Cross-check: %.0f (%s)\n", *result.SecondaryScore, result.SecondaryDetail)
	} else if result.SecondaryDetail != "" {
		fmt.Printf("Cross-check: unavailable (%s)\n", result.SecondaryDetail)
	}
	for i, src := range result.Sources {
		fmt.Printf("Source %d:    %s\n", i+1, src)
	}
}
