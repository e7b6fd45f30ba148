package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/Compass/internal/dto"
	"github.com/lshigami/Compass/internal/model"
	"github.com/lshigami/Compass/internal/repository"
	"github.com/rs/zerolog/log"
)

// AdminTestService creates tests with their full question and option trees.
type AdminTestService interface {
	CreateTest(req dto.TestCreateDTO) (*dto.TestDetailDTO, error)
}

type adminTestService struct {
	testRepo repository.TestRepository
}

func NewAdminTestService(testRepo repository.TestRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo}
}

func (s *adminTestService) CreateTest(req dto.TestCreateDTO) (*dto.TestDetailDTO, error) {
	if err := validateDisplayOrders(req.Questions); err != nil {
		return nil, err
	}

	test := model.Test{
		TestID:   uuid.NewString(),
		TestName: req.TestName,
		TestType: req.TestType,
		Version:  req.Version,
	}
	for _, q := range req.Questions {
		question := model.Question{
			QuestionID:        q.QuestionID,
			ClusterID:         q.ClusterID,
			QuestionText:      q.QuestionText,
			Description:       q.Description,
			OptionInstruction: q.OptionInstruction,
			Type:              q.Type,
			DisplayOrder:      q.DisplayOrder,
			ImageURL:          q.ImageURL,
		}
		for _, o := range q.Options {
			question.Options = append(question.Options, model.ListOption{
				OptionID:       o.OptionID,
				QuestionID:     q.QuestionID,
				OptionText:     o.OptionText,
				OptionImageURL: o.OptionImageURL,
				DisplayOrder:   o.DisplayOrder,
			})
		}
		test.Questions = append(test.Questions, question)
	}

	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Str("testName", req.TestName).Msg("CreateTest: failed to create test")
		return nil, fmt.Errorf("failed to create test: %w", err)
	}

	log.Info().Str("testID", test.TestID).Str("testName", test.TestName).Int("questionCount", len(test.Questions)).Msg("Test created")
	created, err := s.testRepo.FindByIDWithQuestions(test.TestID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload created test %s: %w", test.TestID, err)
	}

	detail := dto.TestDetailDTO{
		TestID:    created.TestID,
		TestName:  created.TestName,
		TestType:  created.TestType,
		Version:   created.Version,
		CreatedAt: created.CreatedAt,
	}
	for _, q := range created.Questions {
		questionDTO := dto.QuestionDTO{
			QuestionID:        q.QuestionID,
			ClusterID:         q.ClusterID,
			QuestionText:      q.QuestionText,
			Description:       q.Description,
			OptionInstruction: q.OptionInstruction,
			Type:              q.Type,
			DisplayOrder:      q.DisplayOrder,
			ImageURL:          q.ImageURL,
		}
		for _, o := range q.Options {
			questionDTO.Options = append(questionDTO.Options, dto.OptionDTO{
				OptionID:       o.OptionID,
				OptionText:     o.OptionText,
				OptionImageURL: o.OptionImageURL,
				DisplayOrder:   o.DisplayOrder,
			})
		}
		detail.Questions = append(detail.Questions, questionDTO)
	}
	return &detail, nil
}

func validateDisplayOrders(questions []dto.QuestionCreateDTO) error {
	seen := make(map[int]bool, len(questions))
	for _, q := range questions {
		if seen[q.DisplayOrder] {
			return fmt.Errorf("duplicate question display order: %d", q.DisplayOrder)
		}
		seen[q.DisplayOrder] = true
	}
	return nil
}
