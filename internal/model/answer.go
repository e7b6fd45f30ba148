package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer holds one graded answer per (session, question) pair. The unique
// index backs the upsert in AnswerRepository: a resubmission overwrites the
// existing row instead of accumulating a second one.
//
// IsCorrect is tri-state: true/false once graded, nil when no selection was
// made or no correct-answer entry exists ("ungraded").
type Answer struct {
	AnswerID       uint           `json:"answer_id" gorm:"primarykey"`
	SessionID      string         `json:"session_id" gorm:"type:uuid;not null;uniqueIndex:idx_session_question"`
	QuestionID     string         `json:"question_id" gorm:"type:uuid;not null;uniqueIndex:idx_session_question"`
	SelectedAnswer string         `json:"selected_answer" gorm:"type:text"` // canonical encoding, empty when unanswered
	ResponseTimeMs *int           `json:"response_time_ms,omitempty"`
	IsCorrect      *bool          `json:"is_correct,omitempty"`
	AnsweredAt     time.Time      `json:"answered_at" gorm:"autoCreateTime"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
