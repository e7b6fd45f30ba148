package dto

import "time"

// SessionCreateDTO starts a new answering session for a user.
type SessionCreateDTO struct {
	UserID string  `json:"userId" binding:"required"`
	TestID *string `json:"testId"`
	Name   string  `json:"name"`
}

// PairDTO is one left->right assignment within a group or matching answer.
type PairDTO struct {
	LeftID  string `json:"leftId" binding:"required"`
	RightID string `json:"rightId" binding:"required"`
}

// AnswerPayloadDTO carries a user's selection for one question. Which field
// is consulted depends on the question type: SelectedOptionID for text,
// SelectedItems for rank and multi-select, SelectedPairs for group and
// matching. An entirely empty payload records the question as unanswered.
type AnswerPayloadDTO struct {
	QuestionID       string    `json:"questionId" binding:"required"`
	SelectedOptionID string    `json:"selectedOptionId"`
	SelectedItems    []string  `json:"selectedItems"`
	SelectedPairs    []PairDTO `json:"selectedPairs" binding:"omitempty,dive"`
	ResponseTimeMs   *int      `json:"responseTimeMs"`
}

// AnswerSubmitDTO is the request body for submitting a single answer.
type AnswerSubmitDTO struct {
	AnswerPayloadDTO
}

// BulkSubmitDTO submits an entire test in one shot, without a prior session.
type BulkSubmitDTO struct {
	UserID    string             `json:"userId" binding:"required"`
	TestID    *string            `json:"testId"`
	Name      string             `json:"name"`
	Responses []AnswerPayloadDTO `json:"responses" binding:"required,min=1,dive"`
}

// SessionDTO is returned when a session is created.
type SessionDTO struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	TestID    *string   `json:"testId,omitempty"`
	TestType  string    `json:"testType,omitempty"`
	Name      string    `json:"name,omitempty"`
	Status    string    `json:"status"`
	StartedAt time.Time `json:"startedAt"`
}

// AnswerResultDTO reports the grading outcome of a single submission.
// IsCorrect is nil when the answer is ungraded (no selection, or no
// correct-answer entry for the question).
type AnswerResultDTO struct {
	Status     string `json:"status"`
	SessionID  string `json:"sessionId"`
	QuestionID string `json:"questionId"`
	IsCorrect  *bool  `json:"isCorrect"`
}

// AnswerDTO is one stored answer as shown in session details.
type AnswerDTO struct {
	AnswerID       uint      `json:"answerId"`
	QuestionID     string    `json:"questionId"`
	SelectedAnswer string    `json:"selectedAnswer,omitempty"`
	IsCorrect      *bool     `json:"isCorrect"`
	AnsweredAt     time.Time `json:"answeredAt"`
}

// BulkSubmitResultDTO is the response to a bulk submission.
type BulkSubmitResultDTO struct {
	Status    string           `json:"status"`
	SessionID string           `json:"sessionId"`
	Message   string           `json:"message,omitempty"`
	Score     *ScoreSummaryDTO `json:"score,omitempty"`
}

// CompleteResultDTO is the response to completing a session.
type CompleteResultDTO struct {
	Status           string           `json:"status"`
	SessionID        string           `json:"sessionId"`
	AnswersSubmitted int              `json:"answersSubmitted"`
	CompletedAt      time.Time        `json:"completedAt"`
	Score            *ScoreSummaryDTO `json:"score,omitempty"`
}

// SessionDetailDTO is the full view of a session with answers and scores.
type SessionDetailDTO struct {
	SessionID   string           `json:"sessionId"`
	UserID      string           `json:"userId"`
	TestID      *string          `json:"testId,omitempty"`
	Name        string           `json:"name,omitempty"`
	Status      string           `json:"status"`
	StartedAt   time.Time        `json:"startedAt"`
	SubmittedAt *time.Time       `json:"submittedAt,omitempty"`
	Answers     []AnswerDTO      `json:"answers"`
	Score       *ScoreSummaryDTO `json:"score,omitempty"`
}

// SessionSummaryDTO is one row of a user's session history.
type SessionSummaryDTO struct {
	SessionID    string     `json:"sessionId"`
	UserID       string     `json:"userId"`
	TestID       *string    `json:"testId,omitempty"`
	Name         string     `json:"name,omitempty"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"startedAt"`
	SubmittedAt  *time.Time `json:"submittedAt,omitempty"`
	OverallScore int        `json:"overallScore"`
}
