package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Compass/internal/dto"
	"github.com/lshigami/Compass/internal/repository"
	"github.com/rs/zerolog/log"
)

// AssessmentService is the user-facing catalog of tests.
type AssessmentService interface {
	ListTests(testType, nameFilter string) ([]dto.TestSummaryDTO, error)
	GetTestDetails(testID string) (*dto.TestDetailDTO, error)
}

type assessmentService struct {
	testRepo repository.TestRepository
}

func NewAssessmentService(testRepo repository.TestRepository) AssessmentService {
	return &assessmentService{testRepo: testRepo}
}

func (s *assessmentService) ListTests(testType, nameFilter string) ([]dto.TestSummaryDTO, error) {
	tests, err := s.testRepo.FindAllWithQuestionCount(testType, nameFilter)
	if err != nil {
		log.Error().Err(err).Msg("ListTests: failed to load tests")
		return nil, fmt.Errorf("failed to load tests: %w", err)
	}

	summaries := make([]dto.TestSummaryDTO, len(tests))
	for i, test := range tests {
		summaries[i] = dto.TestSummaryDTO{
			TestID:        test.TestID,
			TestName:      test.TestName,
			TestType:      test.TestType,
			Version:       test.Version,
			QuestionCount: test.QuestionCount,
			CreatedAt:     test.CreatedAt,
		}
	}
	return summaries, nil
}

func (s *assessmentService) GetTestDetails(testID string) (*dto.TestDetailDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("GetTestDetails: failed to load test")
		return nil, fmt.Errorf("failed to load test %s: %w", testID, err)
	}

	var detail dto.TestDetailDTO
	if err := copier.Copy(&detail, test); err != nil {
		return nil, fmt.Errorf("failed to map test %s: %w", testID, err)
	}
	return &detail, nil
}
