package model

import (
	"time"

	"gorm.io/gorm"
)

// Session status values. A session only ever advances
// IN_PROGRESS -> SUBMITTED or COMPLETED; it never regresses. SUBMITTED and
// COMPLETED are both terminal for answer acceptance.
const (
	SessionInProgress = "IN_PROGRESS"
	SessionSubmitted  = "SUBMITTED"
	SessionCompleted  = "COMPLETED"
)

type TestSession struct {
	SessionID   string         `json:"session_id" gorm:"type:uuid;primaryKey"`
	UserID      string         `json:"user_id" gorm:"size:100;not null;index"`
	TestID      *string        `json:"test_id,omitempty" gorm:"type:uuid;index"`
	Name        string         `json:"name,omitempty" gorm:"size:100"`
	Status      string         `json:"status" gorm:"size:20;not null;default:'IN_PROGRESS'"`
	StartedAt   time.Time      `json:"started_at" gorm:"autoCreateTime"`
	SubmittedAt *time.Time     `json:"submitted_at,omitempty"`
	Answers     []Answer       `json:"answers,omitempty" gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// AcceptsAnswers reports whether the session is still open for answer
// submission.
func (s *TestSession) AcceptsAnswers() bool {
	return s.Status == SessionInProgress
}
