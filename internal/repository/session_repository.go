package repository

import (
	"github.com/lshigami/Compass/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.TestSession) error
	Update(session *model.TestSession) error
	FindByID(id string) (*model.TestSession, error)
	FindAllByUser(userID string) ([]model.TestSession, error)
	Delete(id string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.TestSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) Update(session *model.TestSession) error {
	return r.db.Save(session).Error
}

func (r *sessionRepository) FindByID(id string) (*model.TestSession, error) {
	var session model.TestSession
	if err := r.db.First(&session, "session_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindAllByUser(userID string) ([]model.TestSession, error) {
	var sessions []model.TestSession
	err := r.db.Where("user_id = ?", userID).Order("started_at DESC").Find(&sessions).Error
	return sessions, err
}

// Delete removes a session together with its answers and score rows.
func (r *sessionRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", id).Delete(&model.ScoreRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TestSession{}, "session_id = ?", id).Error
	})
}
