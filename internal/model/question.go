package model

import (
	"time"

	"gorm.io/gorm"
)

// Question type tags. Each tag selects a canonical answer encoding and a
// correctness comparison rule (see service.EncodeSelection / evaluateAnswer).
const (
	QuestionTypeText        = "text"         // single option choice
	QuestionTypeRank        = "rank"         // ordered arrangement of options
	QuestionTypeMultiSelect = "multi-select" // unordered subset of options
	QuestionTypeGroup       = "group"        // groupId->optionId mapping
	QuestionTypeMatching    = "matching"     // leftId->rightId matching
)

type Question struct {
	QuestionID        string         `json:"question_id" gorm:"type:uuid;primaryKey"`
	TestID            *string        `json:"test_id,omitempty" gorm:"type:uuid;index"`
	ClusterID         *string        `json:"cluster_id,omitempty" gorm:"type:uuid;index"`
	Cluster           *Cluster       `json:"cluster,omitempty" gorm:"foreignKey:ClusterID"`
	QuestionText      string         `json:"question_text" gorm:"size:250;not null"`
	Description       string         `json:"description,omitempty" gorm:"type:text"`
	OptionInstruction string         `json:"option_instruction,omitempty" gorm:"type:text"`
	Type              string         `json:"type" gorm:"not null"`
	DisplayOrder      int            `json:"display_order"`
	ImageURL          *string        `json:"image_url,omitempty"`
	Options           []ListOption   `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
