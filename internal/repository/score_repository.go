package repository

import (
	"github.com/lshigami/Compass/internal/model"
	"gorm.io/gorm"
)

type ScoreRepository interface {
	// ReplaceForSession swaps the session's entire score snapshot inside the
	// given transaction: all prior rows go, the new set lands, or neither.
	ReplaceForSession(tx *gorm.DB, sessionID string, records []model.ScoreRecord) error
	FindBySession(sessionID string) ([]model.ScoreRecord, error)
	FindOverall(sessionID string) (*model.ScoreRecord, error)
	// FindClusterScores returns the per-cluster rows (overall row excluded),
	// best score first; ties keep insertion order.
	FindClusterScores(sessionID string) ([]model.ScoreRecord, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) ReplaceForSession(tx *gorm.DB, sessionID string, records []model.ScoreRecord) error {
	if err := tx.Unscoped().Where("session_id = ?", sessionID).Delete(&model.ScoreRecord{}).Error; err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	return tx.Create(&records).Error
}

func (r *scoreRepository) FindBySession(sessionID string) ([]model.ScoreRecord, error) {
	var records []model.ScoreRecord
	err := r.db.Where("session_id = ?", sessionID).Order("score_id ASC").Find(&records).Error
	return records, err
}

func (r *scoreRepository) FindOverall(sessionID string) (*model.ScoreRecord, error) {
	var record model.ScoreRecord
	err := r.db.Where("session_id = ? AND cluster_id IS NULL", sessionID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *scoreRepository) FindClusterScores(sessionID string) ([]model.ScoreRecord, error) {
	var records []model.ScoreRecord
	err := r.db.
		Where("session_id = ? AND cluster_id IS NOT NULL", sessionID).
		Order("correct_answers DESC, score_id ASC").
		Find(&records).Error
	return records, err
}
