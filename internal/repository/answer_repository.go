package repository

import (
	"github.com/lshigami/Compass/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository interface {
	Upsert(answer *model.Answer) error
	FindBySession(sessionID string) ([]model.Answer, error)
	CountBySession(sessionID string) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// Upsert inserts the answer or, when a row already exists for the same
// (session_id, question_id), overwrites its selection, correctness and
// timestamp. The unique index resolves concurrent submissions to
// last-write-wins with exactly one surviving row.
func (r *answerRepository) Upsert(answer *model.Answer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"selected_answer", "response_time_ms", "is_correct", "answered_at", "updated_at",
		}),
	}).Create(answer).Error
}

func (r *answerRepository) FindBySession(sessionID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("session_id = ?", sessionID).Order("answer_id ASC").Find(&answers).Error
	return answers, err
}

func (r *answerRepository) CountBySession(sessionID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).Where("session_id = ?", sessionID).Count(&count).Error
	return count, err
}
