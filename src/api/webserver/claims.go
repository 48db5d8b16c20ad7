package webserver

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verilens/verilens/src/api/data"
)

type Claims struct {
	db *gorm.DB
}

func NewClaims(db *gorm.DB) Claims {
	return Claims{db: db}
}

// List returns persisted fact checks, newest first, in the shape the
// claims browser expects.
func (h Claims) List(c *gin.Context) {
	checks, err := data.ListFactChecks(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(checks))
	for _, check := range checks {
		var sources []string
		if check.Sources != "" {
			_ = json.Unmarshal([]byte(check.Sources), &sources)
		}

		explanation := check.Explanation
		if explanation == "" {
			explanation = "No explanation available."
		}

		out = append(out, gin.H{
			"id":          check.ID,
			"text":        check.Claim,
			"verdict":     check.Verdict,
			"explanation": explanation,
			"score":       check.Score,
			"timestamp":   check.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			"sources":     sources,
		})
	}

	c.JSON(http.StatusOK, gin.H{"claims": out})
}

// Similar returns stored claims that share keywords with the query.
func (h Claims) Similar(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	checks, err := data.SimilarClaims(h.db, req.Text, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	results := make([]gin.H, 0, len(checks))
	for _, check := range checks {
		results = append(results, gin.H{
			"id":      check.ID,
			"text":    check.Claim,
			"score":   check.Score,
			"verdict": check.Verdict,
		})
	}

	c.JSON(http.StatusOK, gin.H{"query": req.Text, "results": results})
}
