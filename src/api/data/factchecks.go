package data

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"

	"github.com/verilens/verilens/src/api/types"
	"github.com/verilens/verilens/src/factcheck"
)

// SaveFactCheck stores a verification result and its evidence as durable
// records. The pipeline does not depend on the generated identifier; it is
// returned for logging and response payloads only.
func SaveFactCheck(db *gorm.DB, res *factcheck.Result) (uint64, error) {
	sources, _ := json.Marshal(res.Sources)

	record := types.FactCheck{
		Claim:       res.Text,
		Score:       res.Score,
		Verdict:     string(res.Verdict),
		Explanation: res.Explanation,
		Sources:     string(sources),
	}
	for _, e := range res.Evidence {
		record.Evidence = append(record.Evidence, types.ClaimEvidence{
			Title:   e.Title,
			Snippet: e.Snippet,
			Link:    e.Link,
		})
	}

	if err := db.Create(&record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

// ListFactChecks returns persisted checks newest first.
func ListFactChecks(db *gorm.DB) ([]types.FactCheck, error) {
	var checks []types.FactCheck
	err := db.Preload("Evidence").Order("created_at desc").Find(&checks).Error
	return checks, err
}

// SimilarClaims finds stored claims sharing keywords with the query. Words
// shorter than four characters are too common to discriminate and are
// skipped.
func SimilarClaims(db *gorm.DB, query string, limit int) ([]types.FactCheck, error) {
	var keywords []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if len(w) >= 4 {
			keywords = append(keywords, w)
		}
	}
	if len(keywords) == 0 {
		return nil, nil
	}

	q := db.Model(&types.FactCheck{})
	for i, kw := range keywords {
		cond := "LOWER(claim) LIKE ?"
		if i == 0 {
			q = q.Where(cond, "%"+kw+"%")
		} else {
			q = q.Or(cond, "%"+kw+"%")
		}
	}

	var checks []types.FactCheck
	err := q.Order("created_at desc").Limit(limit).Find(&checks).Error
	return checks, err
}
