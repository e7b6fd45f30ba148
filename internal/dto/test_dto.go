package dto

import "time"

// OptionDTO is one selectable option of a question.
type OptionDTO struct {
	OptionID       string  `json:"optionId"`
	OptionText     string  `json:"optionText"`
	OptionImageURL *string `json:"optionImageUrl,omitempty"`
	DisplayOrder   int     `json:"displayOrder"`
}

// QuestionDTO is used for displaying question details to users.
type QuestionDTO struct {
	QuestionID        string      `json:"questionId"`
	ClusterID         *string     `json:"clusterId,omitempty"`
	QuestionText      string      `json:"questionText"`
	Description       string      `json:"description,omitempty"`
	OptionInstruction string      `json:"optionInstruction,omitempty"`
	Type              string      `json:"type"`
	DisplayOrder      int         `json:"displayOrder"`
	ImageURL          *string     `json:"imageUrl,omitempty"`
	Options           []OptionDTO `json:"options,omitempty"`
}

// TestDetailDTO is used for displaying a full test with its ordered questions.
type TestDetailDTO struct {
	TestID    string        `json:"testId"`
	TestName  string        `json:"testName"`
	TestType  string        `json:"testType,omitempty"`
	Version   int           `json:"version"`
	Questions []QuestionDTO `json:"questions,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// TestSummaryDTO is used for listing tests available to users.
type TestSummaryDTO struct {
	TestID        string    `json:"testId"`
	TestName      string    `json:"testName"`
	TestType      string    `json:"testType,omitempty"`
	Version       int       `json:"version"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}
