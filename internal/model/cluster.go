package model

import (
	"time"

	"gorm.io/gorm"
)

// Cluster is a named grouping of questions used for aggregated sub-scores
// and pathway ranking.
type Cluster struct {
	ClusterID   string         `json:"cluster_id" gorm:"type:uuid;primaryKey"`
	ClusterName string         `json:"cluster_name" gorm:"size:50;not null"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:ClusterID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
