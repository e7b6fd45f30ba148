package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	TestID    string         `json:"test_id" gorm:"type:uuid;primaryKey"`
	TestName  string         `json:"test_name" gorm:"size:50;not null;uniqueIndex"`
	TestType  string         `json:"test_type,omitempty" gorm:"size:50"` // "general", "missions"
	Version   int            `json:"version"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
