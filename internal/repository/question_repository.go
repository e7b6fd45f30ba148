package repository

import (
	"github.com/lshigami/Compass/internal/idutil"
	"github.com/lshigami/Compass/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id string) (*model.Question, error)
	FindByIDs(ids []string) ([]model.Question, error)
	FindByTestID(testID string) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	// Question ids arrive in either hyphenated or compact form.
	if err := r.db.Where("question_id IN ?", idutil.Forms(id)).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ids []string) ([]model.Question, error) {
	lookup := make([]string, 0, len(ids)*2)
	for _, id := range ids {
		lookup = append(lookup, idutil.Forms(id)...)
	}
	var questions []model.Question
	if err := r.db.Where("question_id IN ?", lookup).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByTestID(testID string) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("test_id = ?", testID).Order("display_order ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
