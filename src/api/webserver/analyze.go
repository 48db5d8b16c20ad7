package webserver

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/verilens/verilens/src/api/data"
	"github.com/verilens/verilens/src/factcheck"
	"github.com/verilens/verilens/src/nlp"
	"github.com/verilens/verilens/src/webtext"
)

// Long pages are cut before claim extraction; the pipeline works per
// sentence anyway.
const maxAnalyzedText = 10000

type Analysis struct {
	checker   *factcheck.Checker
	db        *gorm.DB
	extractor *webtext.Extractor
	sanitizer *bluemonday.Policy
}

func NewAnalysis(checker *factcheck.Checker, db *gorm.DB) Analysis {
	return Analysis{
		checker:   checker,
		db:        db,
		extractor: webtext.NewExtractor(),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Analyze extracts claims from free text, verifies each through the
// pipeline and attaches a sentiment reading of the whole input.
func (a Analysis) Analyze(c *gin.Context) {
	var req struct {
		Text    string `json:"text" binding:"required"`
		Context string `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	started := time.Now()
	results := a.verifyAll(c, nlp.ExtractClaims(req.Text), req.Context)

	c.JSON(http.StatusOK, gin.H{
		"request_id":      uuid.NewString(),
		"claims":          results,
		"sentiment":       nlp.AnalyzeSentiment(req.Text),
		"processing_time": time.Since(started).Seconds(),
	})
}

// AnalyzeURL fetches a page, reduces it to readable text and runs the
// same claim analysis as Analyze.
func (a Analysis) AnalyzeURL(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	article, err := a.extractor.Extract(c, req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"err": "could not extract text from url"})
		return
	}

	text := webtext.Truncate(a.sanitizer.Sanitize(article.Text), maxAnalyzedText)

	started := time.Now()
	results := a.verifyAll(c, nlp.ExtractClaims(text), "")

	c.JSON(http.StatusOK, gin.H{
		"request_id":      uuid.NewString(),
		"url":             req.URL,
		"title":           article.Title,
		"site_name":       article.SiteName,
		"claims":          results,
		"sentiment":       nlp.AnalyzeSentiment(text),
		"processing_time": time.Since(started).Seconds(),
	})
}

// VerifyClaim runs a single claim through the pipeline and persists the
// outcome. Persistence failure is logged, not surfaced: the verification
// itself succeeded.
func (a Analysis) VerifyClaim(c *gin.Context) {
	var req struct {
		Claim   string `json:"claim" binding:"required"`
		Context string `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No claim provided"})
		return
	}

	result := a.checker.Verify(c, req.Claim, req.Context)

	if id, err := data.SaveFactCheck(a.db, result); err != nil {
		log.Printf("save fact check: %v", err)
	} else {
		log.Printf("fact check saved with id %d", id)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

func (a Analysis) verifyAll(c *gin.Context, claims []string, claimContext string) []*factcheck.Result {
	results := make([]*factcheck.Result, 0, len(claims))
	for _, claim := range claims {
		results = append(results, a.checker.Verify(c, claim, claimContext))
	}
	return results
}
