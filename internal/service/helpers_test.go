package service

import (
	"testing"

	"github.com/lshigami/Compass/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Cluster{},
		&model.Test{},
		&model.Question{},
		&model.ListOption{},
		&model.TestSession{},
		&model.Answer{},
		&model.ScoreRecord{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func seedCluster(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()
	if err := db.Create(&model.Cluster{ClusterID: id, ClusterName: name}).Error; err != nil {
		t.Fatalf("failed to seed cluster %s: %v", id, err)
	}
}

func seedQuestion(t *testing.T, db *gorm.DB, id string, clusterID *string, questionType string) {
	t.Helper()
	q := model.Question{
		QuestionID:   id,
		ClusterID:    clusterID,
		QuestionText: "question " + id,
		Type:         questionType,
		DisplayOrder: 1,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("failed to seed question %s: %v", id, err)
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
