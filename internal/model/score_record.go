package model

import (
	"time"

	"gorm.io/gorm"
)

// ScoreRecord is one row of a session's score snapshot: either the overall
// row (ClusterID nil) or a per-cluster row. The whole set for a session is
// replaced atomically on every recompute; rows are never patched in place.
type ScoreRecord struct {
	ScoreID          uint           `json:"score_id" gorm:"primarykey"`
	SessionID        string         `json:"session_id" gorm:"type:uuid;not null;index"`
	ClusterID        *string        `json:"cluster_id,omitempty" gorm:"type:uuid;index"`
	TotalQuestions   int            `json:"total_questions" gorm:"not null"`
	CorrectAnswers   int            `json:"correct_answers" gorm:"not null"`
	IncorrectAnswers int            `json:"incorrect_answers" gorm:"not null"`
	Unanswered       int            `json:"unanswered" gorm:"not null"`
	ScorePercentage  int            `json:"score_percentage" gorm:"not null"` // correct/total*100, truncated
	ClusterScore     int            `json:"cluster_score" gorm:"not null"`    // raw correct count, used for pathway ranking
	ComputedAt       time.Time      `json:"computed_at" gorm:"autoCreateTime"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
