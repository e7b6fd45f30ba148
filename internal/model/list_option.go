package model

import (
	"time"

	"gorm.io/gorm"
)

type ListOption struct {
	OptionID       string         `json:"option_id" gorm:"type:uuid;primaryKey"`
	QuestionID     string         `json:"question_id" gorm:"type:uuid;not null;index"`
	OptionText     string         `json:"option_text" gorm:"size:250"`
	OptionImageURL *string        `json:"option_image_url,omitempty"`
	DisplayOrder   int            `json:"display_order"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
