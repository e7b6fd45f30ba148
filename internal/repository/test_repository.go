package repository

import (
	"github.com/lshigami/Compass/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id string) (*model.Test, error)
	FindByIDWithQuestions(id string) (*model.Test, error)
	FindAllWithQuestionCount(testType, nameFilter string) ([]TestWithCount, error)
}

type TestWithCount struct {
	model.Test
	QuestionCount int
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	// GORM creates associated questions and options when they are populated.
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id string) (*model.Test, error) {
	var test model.Test
	err := r.db.First(&test, "test_id = ?", id).Error
	return &test, err
}

func (r *testRepository) FindByIDWithQuestions(id string) (*model.Test, error) {
	var test model.Test
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.display_order ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("list_options.display_order ASC")
		}).
		First(&test, "test_id = ?", id).Error
	return &test, err
}

func (r *testRepository) FindAllWithQuestionCount(testType, nameFilter string) ([]TestWithCount, error) {
	var results []TestWithCount
	query := r.db.Model(&model.Test{}).
		Select("tests.*, (SELECT COUNT(*) FROM questions WHERE questions.test_id = tests.test_id AND questions.deleted_at IS NULL) as question_count").
		Where("tests.deleted_at IS NULL")
	if testType != "" {
		query = query.Where("tests.test_type = ?", testType)
	}
	if nameFilter != "" {
		query = query.Where("tests.test_name LIKE ?", "%"+nameFilter+"%")
	}
	err := query.Order("tests.created_at DESC").Scan(&results).Error
	return results, err
}
