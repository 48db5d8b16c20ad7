package webtext

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"

	"github.com/verilens/verilens/src/webclient"
)

const fetchTimeout = 30 * time.Second

var (
	multiSpaceRe   = regexp.MustCompile(`[ \t]+`)
	multiNewlineRe = regexp.MustCompile(`\n+`)
)

// Article is the readable text of a web page plus light metadata.
type Article struct {
	Text        string
	Title       string
	Description string
	SiteName    string
	URL         string
}

// Extractor fetches pages and reduces them to readable text.
type Extractor struct {
	httpClient *http.Client
	sanitizer  *bluemonday.Policy
}

func NewExtractor() *Extractor {
	return &Extractor{
		httpClient: webclient.NewDefault(fetchTimeout),
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// Extract downloads the page and returns its main article text with
// boilerplate (navigation, scripts, styling) stripped.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (Article, error) {
	parsed, err := url.ParseRequestURI(pageURL)
	if err != nil {
		return Article{}, fmt.Errorf("invalid url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Article{}, err
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return Article{}, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Article{}, fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return Article{}, fmt.Errorf("parse page: %w", err)
	}

	text := article.TextContent
	if strings.TrimSpace(text) == "" {
		text = e.sanitizer.Sanitize(article.Content)
	}

	return Article{
		Text:        collapseWhitespace(text),
		Title:       article.Title,
		Description: article.Excerpt,
		SiteName:    article.SiteName,
		URL:         pageURL,
	}, nil
}

func collapseWhitespace(text string) string {
	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = multiNewlineRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// Truncate cuts text at max bytes, backing up to the last sentence
// boundary when one exists.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	if idx := strings.LastIndex(cut, "."); idx > 0 {
		return cut[:idx+1]
	}
	return cut
}
