package types

import "time"

// Registered API users
type User struct {
	ID           uint64 `gorm:"primaryKey"`
	FirstName    string `gorm:"size:64;not null"`
	LastName     string `gorm:"size:64;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	Phone        string `gorm:"size:32"`
	PasswordHash string `gorm:"size:128;not null"`
	CreatedAt    time.Time
}

// Persisted verification results
type FactCheck struct {
	ID          uint64  `gorm:"primaryKey"`
	Claim       string  `gorm:"type:text;not null"`
	Score       float64 `gorm:"not null"`
	Verdict     string  `gorm:"size:20;not null"`
	Explanation string  `gorm:"type:text"`
	Sources     string  `gorm:"type:text"` // JSON array of links
	CreatedAt   time.Time
	Evidence    []ClaimEvidence `gorm:"foreignKey:FactCheckID;constraint:OnDelete:CASCADE"`
}

// Evidence rows attached to a fact check
type ClaimEvidence struct {
	ID          uint64 `gorm:"primaryKey"`
	FactCheckID uint64 `gorm:"index;not null"`
	Title       string `gorm:"size:255"`
	Snippet     string `gorm:"type:text"`
	Link        string `gorm:"size:512"`
}
