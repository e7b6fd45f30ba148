package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Compass/internal/dto"
	"github.com/lshigami/Compass/internal/idutil"
	"github.com/lshigami/Compass/internal/model"
	"github.com/lshigami/Compass/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SessionService owns the session lifecycle: creation, answer submission
// while IN_PROGRESS, the one-shot bulk path, completion, and retrieval.
type SessionService interface {
	CreateSession(req dto.SessionCreateDTO) (*dto.SessionDTO, error)
	SubmitAnswer(sessionID string, req dto.AnswerSubmitDTO) (*dto.AnswerResultDTO, error)
	BulkSubmit(req dto.BulkSubmitDTO) (*dto.BulkSubmitResultDTO, error)
	CompleteSession(sessionID string) (*dto.CompleteResultDTO, error)
	GetSession(sessionID string) (*dto.SessionDetailDTO, error)
	GetUserSessions(userID string) ([]dto.SessionSummaryDTO, error)
	DeleteSession(sessionID string) error
}

type sessionService struct {
	sessionRepo  repository.SessionRepository
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
	clusterRepo  repository.ClusterRepository
	scoreRepo    repository.ScoreRepository
	testRepo     repository.TestRepository
	answerKey    AnswerKeyStore
	scoring      ScoringService
	db           *gorm.DB // transaction boundaries for bulk submit and completion
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	clusterRepo repository.ClusterRepository,
	scoreRepo repository.ScoreRepository,
	testRepo repository.TestRepository,
	answerKey AnswerKeyStore,
	scoring ScoringService,
	db *gorm.DB,
) SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		clusterRepo:  clusterRepo,
		scoreRepo:    scoreRepo,
		testRepo:     testRepo,
		answerKey:    answerKey,
		scoring:      scoring,
		db:           db,
	}
}

func (s *sessionService) CreateSession(req dto.SessionCreateDTO) (*dto.SessionDTO, error) {
	// Best-effort test lookup, only for response metadata.
	testType := ""
	if req.TestID != nil {
		if test, err := s.testRepo.FindByID(*req.TestID); err == nil {
			testType = test.TestType
		} else {
			log.Warn().Str("testID", *req.TestID).Msg("CreateSession: test not found, continuing without test metadata")
		}
	}

	session := model.TestSession{
		SessionID: uuid.NewString(),
		UserID:    req.UserID,
		TestID:    req.TestID,
		Name:      req.Name,
		Status:    model.SessionInProgress,
	}
	if err := s.sessionRepo.Create(&session); err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("CreateSession: failed to create session")
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info().Str("sessionID", session.SessionID).Str("userID", req.UserID).Msg("Session created")
	return &dto.SessionDTO{
		SessionID: session.SessionID,
		UserID:    session.UserID,
		TestID:    session.TestID,
		TestType:  testType,
		Name:      session.Name,
		Status:    session.Status,
		StartedAt: session.StartedAt,
	}, nil
}

// SubmitAnswer grades one answer and upserts it. Resubmitting the same
// question overwrites the earlier row; this is how a user changes an answer
// before finishing. Aggregate scores are not touched here.
func (s *sessionService) SubmitAnswer(sessionID string, req dto.AnswerSubmitDTO) (*dto.AnswerResultDTO, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	if !session.AcceptsAnswers() {
		return nil, fmt.Errorf("%w: session %s has status %s", ErrSessionNotActive, sessionID, session.Status)
	}

	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, req.QuestionID)
		}
		return nil, fmt.Errorf("failed to load question %s: %w", req.QuestionID, err)
	}

	canonical, isCorrect, err := s.gradeAnswer(question, req.AnswerPayloadDTO)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Str("questionID", req.QuestionID).Msg("SubmitAnswer: failed to encode selection")
		return nil, err
	}

	answer := model.Answer{
		SessionID:      sessionID,
		QuestionID:     question.QuestionID,
		SelectedAnswer: canonical,
		ResponseTimeMs: req.ResponseTimeMs,
		IsCorrect:      isCorrect,
		AnsweredAt:     time.Now(),
	}
	if err := s.answerRepo.Upsert(&answer); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Str("questionID", req.QuestionID).Msg("SubmitAnswer: failed to upsert answer")
		return nil, fmt.Errorf("failed to store answer: %w", err)
	}

	log.Info().Str("sessionID", sessionID).Str("questionID", question.QuestionID).Interface("isCorrect", isCorrect).Msg("Answer submitted")
	return &dto.AnswerResultDTO{
		Status:     "success",
		SessionID:  sessionID,
		QuestionID: question.QuestionID,
		IsCorrect:  isCorrect,
	}, nil
}

// BulkSubmit creates a session directly in SUBMITTED status, grades and
// inserts every response, and computes scores — all in one transaction, so a
// failure leaves no session, answers or scores behind.
func (s *sessionService) BulkSubmit(req dto.BulkSubmitDTO) (*dto.BulkSubmitResultDTO, error) {
	sessionID := uuid.NewString()
	log.Info().Str("sessionID", sessionID).Str("userID", req.UserID).Int("responseCount", len(req.Responses)).Msg("Starting bulk submission")

	questionIDs := make([]string, len(req.Responses))
	for i, r := range req.Responses {
		questionIDs[i] = r.QuestionID
	}
	questions, err := s.questionRepo.FindByIDs(questionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions for bulk submission: %w", err)
	}
	questionMap := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		questionMap[idutil.Compact(q.QuestionID)] = q
	}

	now := time.Now()
	answers := make([]model.Answer, 0, len(req.Responses))
	// Duplicate question ids resolve last-write-wins, mirroring the
	// single-answer upsert; one row per question keeps the unique index happy.
	answerIndex := make(map[string]int, len(req.Responses))
	for _, response := range req.Responses {
		question, ok := questionMap[idutil.Compact(response.QuestionID)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, response.QuestionID)
		}
		canonical, isCorrect, err := s.gradeAnswer(&question, response)
		if err != nil {
			return nil, err
		}
		answer := model.Answer{
			SessionID:      sessionID,
			QuestionID:     question.QuestionID,
			SelectedAnswer: canonical,
			ResponseTimeMs: response.ResponseTimeMs,
			IsCorrect:      isCorrect,
			AnsweredAt:     now,
		}
		key := idutil.Compact(question.QuestionID)
		if i, seen := answerIndex[key]; seen {
			answers[i] = answer
			continue
		}
		answerIndex[key] = len(answers)
		answers = append(answers, answer)
	}

	var summary *dto.ScoreSummaryDTO
	err = s.db.Transaction(func(tx *gorm.DB) error {
		session := model.TestSession{
			SessionID:   sessionID,
			UserID:      req.UserID,
			TestID:      req.TestID,
			Name:        req.Name,
			Status:      model.SessionSubmitted,
			SubmittedAt: &now,
			Answers:     answers,
		}
		if err := tx.Create(&session).Error; err != nil {
			return fmt.Errorf("failed to create submitted session: %w", err)
		}
		summary, err = s.scoring.ComputeScores(tx, sessionID)
		return err
	})
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Str("userID", req.UserID).Msg("Bulk submission failed")
		return nil, err
	}

	log.Info().Str("sessionID", sessionID).Str("userID", req.UserID).Int("overallScore", summary.OverallScore).Msg("Bulk submission successful")
	return &dto.BulkSubmitResultDTO{
		Status:    "success",
		SessionID: sessionID,
		Message:   "Responses submitted and scored successfully",
		Score:     summary,
	}, nil
}

// CompleteSession marks the session COMPLETED, stamps the completion time
// and recomputes scores. Completing twice is not an error: the status stays
// COMPLETED and the snapshot is recomputed against the current answers.
func (s *sessionService) CompleteSession(sessionID string) (*dto.CompleteResultDTO, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	now := time.Now()
	var summary *dto.ScoreSummaryDTO
	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": model.SessionCompleted, "submitted_at": now}
		if err := tx.Model(&model.TestSession{}).Where("session_id = ?", sessionID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to mark session completed: %w", err)
		}
		summary, err = s.scoring.ComputeScores(tx, sessionID)
		return err
	})
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("CompleteSession: failed")
		return nil, err
	}

	answerCount, err := s.answerRepo.CountBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count answers for session %s: %w", sessionID, err)
	}

	log.Info().Str("sessionID", sessionID).Int64("answerCount", answerCount).Str("previousStatus", session.Status).Msg("Session completed")
	return &dto.CompleteResultDTO{
		Status:           "success",
		SessionID:        sessionID,
		AnswersSubmitted: int(answerCount),
		CompletedAt:      now,
		Score:            summary,
	}, nil
}

func (s *sessionService) GetSession(sessionID string) (*dto.SessionDetailDTO, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	answers, err := s.answerRepo.FindBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers for session %s: %w", sessionID, err)
	}
	answerDTOs := make([]dto.AnswerDTO, len(answers))
	for i, answer := range answers {
		copier.Copy(&answerDTOs[i], &answer)
	}

	score, err := s.loadScoreSummary(sessionID)
	if err != nil {
		return nil, err
	}

	return &dto.SessionDetailDTO{
		SessionID:   session.SessionID,
		UserID:      session.UserID,
		TestID:      session.TestID,
		Name:        session.Name,
		Status:      session.Status,
		StartedAt:   session.StartedAt,
		SubmittedAt: session.SubmittedAt,
		Answers:     answerDTOs,
		Score:       score,
	}, nil
}

func (s *sessionService) GetUserSessions(userID string) ([]dto.SessionSummaryDTO, error) {
	sessions, err := s.sessionRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetUserSessions: failed to load sessions")
		return nil, fmt.Errorf("failed to load sessions for user %s: %w", userID, err)
	}

	summaries := make([]dto.SessionSummaryDTO, 0, len(sessions))
	for _, session := range sessions {
		summary := dto.SessionSummaryDTO{
			SessionID:   session.SessionID,
			UserID:      session.UserID,
			TestID:      session.TestID,
			Name:        session.Name,
			Status:      session.Status,
			StartedAt:   session.StartedAt,
			SubmittedAt: session.SubmittedAt,
		}
		if overall, err := s.scoreRepo.FindOverall(session.SessionID); err == nil {
			summary.OverallScore = overall.ScorePercentage
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *sessionService) DeleteSession(sessionID string) error {
	if _, err := s.sessionRepo.FindByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	if err := s.sessionRepo.Delete(sessionID); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("DeleteSession: failed")
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	log.Info().Str("sessionID", sessionID).Msg("Session deleted")
	return nil
}

// gradeAnswer encodes the selection and grades it against the answer key.
// The returned correctness is nil (ungraded) when nothing was selected or no
// correct-answer entry exists for the question.
func (s *sessionService) gradeAnswer(question *model.Question, payload dto.AnswerPayloadDTO) (string, *bool, error) {
	selection, err := SelectionFromPayload(question.Type, payload)
	if err != nil {
		return "", nil, err
	}
	canonical, err := EncodeSelection(question.Type, selection)
	if err != nil {
		return "", nil, err
	}
	if canonical == "" {
		return "", nil, nil
	}
	correct, ok := s.answerKey.Lookup(question.QuestionID)
	if !ok {
		log.Warn().Str("questionID", question.QuestionID).Msg("No correct answer entry for question, leaving ungraded")
		return canonical, nil, nil
	}
	verdict := evaluateAnswer(question.Type, canonical, correct)
	return canonical, &verdict, nil
}

func (s *sessionService) loadScoreSummary(sessionID string) (*dto.ScoreSummaryDTO, error) {
	records, err := s.scoreRepo.FindBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load score records for session %s: %w", sessionID, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var clusterIDs []string
	for _, record := range records {
		if record.ClusterID != nil {
			clusterIDs = append(clusterIDs, *record.ClusterID)
		}
	}
	clusterNames := make(map[string]string)
	if len(clusterIDs) > 0 {
		clusters, err := s.clusterRepo.FindByIDs(clusterIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load clusters for session %s: %w", sessionID, err)
		}
		for _, cluster := range clusters {
			clusterNames[idutil.Compact(cluster.ClusterID)] = cluster.ClusterName
		}
	}

	summary := &dto.ScoreSummaryDTO{ClusterScores: []dto.ClusterScoreDTO{}}
	for _, record := range records {
		if record.ClusterID == nil {
			summary.OverallScore = record.ScorePercentage
			summary.TotalQuestions = record.TotalQuestions
			summary.CorrectAnswers = record.CorrectAnswers
			summary.IncorrectAnswers = record.IncorrectAnswers
			summary.Unanswered = record.Unanswered
			continue
		}
		summary.ClusterScores = append(summary.ClusterScores, dto.ClusterScoreDTO{
			ClusterID:        *record.ClusterID,
			ClusterName:      clusterNames[idutil.Compact(*record.ClusterID)],
			TotalQuestions:   record.TotalQuestions,
			CorrectAnswers:   record.CorrectAnswers,
			IncorrectAnswers: record.IncorrectAnswers,
			Unanswered:       record.Unanswered,
			ScorePercentage:  record.ScorePercentage,
		})
	}
	return summary, nil
}
