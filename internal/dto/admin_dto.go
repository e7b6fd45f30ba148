package dto

// OptionCreateDTO is used within QuestionCreateDTO for admin test creation.
type OptionCreateDTO struct {
	OptionID       string  `json:"optionId" binding:"required,uuid"`
	OptionText     string  `json:"optionText" binding:"required"`
	OptionImageURL *string `json:"optionImageUrl"`
	DisplayOrder   int     `json:"displayOrder"`
}

// QuestionCreateDTO is used within TestCreateDTO for admin test creation.
type QuestionCreateDTO struct {
	QuestionID        string            `json:"questionId" binding:"required,uuid"`
	ClusterID         *string           `json:"clusterId"`
	QuestionText      string            `json:"questionText" binding:"required"`
	Description       string            `json:"description"`
	OptionInstruction string            `json:"optionInstruction"`
	Type              string            `json:"type" binding:"required,oneof=text rank multi-select group matching"`
	DisplayOrder      int               `json:"displayOrder" binding:"required,min=1"`
	ImageURL          *string           `json:"imageUrl"`
	Options           []OptionCreateDTO `json:"options" binding:"omitempty,dive"`
}

// TestCreateDTO is for admin to create a new test with all its questions.
type TestCreateDTO struct {
	TestName  string              `json:"testName" binding:"required"`
	TestType  string              `json:"testType" binding:"omitempty,oneof=general missions"`
	Version   int                 `json:"version"`
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}
