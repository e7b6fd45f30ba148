package service

import (
	"fmt"

	"github.com/lshigami/Compass/internal/dto"
	"github.com/lshigami/Compass/internal/idutil"
	"github.com/lshigami/Compass/internal/model"
	"github.com/lshigami/Compass/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ScoringService recomputes a session's score snapshot from scratch. Scores
// are never patched incrementally: every run tallies the full answer set and
// replaces all ScoreRecord rows, so the snapshot always matches the answers.
type ScoringService interface {
	// ComputeScores runs inside the caller's transaction so the
	// delete-then-insert replacement is atomic with whatever triggered it.
	ComputeScores(tx *gorm.DB, sessionID string) (*dto.ScoreSummaryDTO, error)
}

type scoringService struct {
	scoreRepo repository.ScoreRepository
}

func NewScoringService(scoreRepo repository.ScoreRepository) ScoringService {
	return &scoringService{scoreRepo: scoreRepo}
}

type scoreTally struct {
	total      int
	correct    int
	incorrect  int
	unanswered int
}

func (t *scoreTally) add(isCorrect *bool) {
	t.total++
	switch {
	case isCorrect == nil:
		t.unanswered++
	case *isCorrect:
		t.correct++
	default:
		t.incorrect++
	}
}

func (s *scoringService) ComputeScores(tx *gorm.DB, sessionID string) (*dto.ScoreSummaryDTO, error) {
	var answers []model.Answer
	if err := tx.Where("session_id = ?", sessionID).Order("answer_id ASC").Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("failed to load answers for session %s: %w", sessionID, err)
	}

	if len(answers) == 0 {
		log.Warn().Str("sessionID", sessionID).Msg("ComputeScores: no answers for session, nothing to score")
		return &dto.ScoreSummaryDTO{ClusterScores: []dto.ClusterScoreDTO{}}, nil
	}

	questionMap, err := loadQuestionMap(tx, answers)
	if err != nil {
		return nil, err
	}

	var overall scoreTally
	clusterTallies := make(map[string]*scoreTally)
	var clusterOrder []string // first-answered order, the tie-break for ranking

	for _, answer := range answers {
		overall.add(answer.IsCorrect)

		question, ok := questionMap[idutil.Compact(answer.QuestionID)]
		if !ok || question.ClusterID == nil {
			continue
		}
		clusterID := *question.ClusterID
		tally, seen := clusterTallies[clusterID]
		if !seen {
			tally = &scoreTally{}
			clusterTallies[clusterID] = tally
			clusterOrder = append(clusterOrder, clusterID)
		}
		tally.add(answer.IsCorrect)
	}

	clusterNames, err := loadClusterNames(tx, clusterOrder)
	if err != nil {
		return nil, err
	}

	records := make([]model.ScoreRecord, 0, len(clusterOrder)+1)
	clusterScores := make([]dto.ClusterScoreDTO, 0, len(clusterOrder))
	for _, clusterID := range clusterOrder {
		tally := clusterTallies[clusterID]
		id := clusterID
		records = append(records, model.ScoreRecord{
			SessionID:        sessionID,
			ClusterID:        &id,
			TotalQuestions:   tally.total,
			CorrectAnswers:   tally.correct,
			IncorrectAnswers: tally.incorrect,
			Unanswered:       tally.unanswered,
			ScorePercentage:  truncatedPercentage(tally.correct, tally.total),
			ClusterScore:     tally.correct,
		})
		clusterScores = append(clusterScores, dto.ClusterScoreDTO{
			ClusterID:        clusterID,
			ClusterName:      clusterNames[idutil.Compact(clusterID)],
			TotalQuestions:   tally.total,
			CorrectAnswers:   tally.correct,
			IncorrectAnswers: tally.incorrect,
			Unanswered:       tally.unanswered,
			ScorePercentage:  truncatedPercentage(tally.correct, tally.total),
		})
	}

	records = append(records, model.ScoreRecord{
		SessionID:        sessionID,
		ClusterID:        nil, // NULL marks the overall row
		TotalQuestions:   overall.total,
		CorrectAnswers:   overall.correct,
		IncorrectAnswers: overall.incorrect,
		Unanswered:       overall.unanswered,
		ScorePercentage:  truncatedPercentage(overall.correct, overall.total),
		ClusterScore:     overall.correct,
	})

	if err := s.scoreRepo.ReplaceForSession(tx, sessionID, records); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("ComputeScores: failed to replace score records")
		return nil, fmt.Errorf("failed to replace score records for session %s: %w", sessionID, err)
	}

	summary := &dto.ScoreSummaryDTO{
		OverallScore:     truncatedPercentage(overall.correct, overall.total),
		TotalQuestions:   overall.total,
		CorrectAnswers:   overall.correct,
		IncorrectAnswers: overall.incorrect,
		Unanswered:       overall.unanswered,
		ClusterScores:    clusterScores,
	}

	log.Info().
		Str("sessionID", sessionID).
		Int("total", overall.total).
		Int("correct", overall.correct).
		Int("overallScore", summary.OverallScore).
		Msg("Scores computed")

	return summary, nil
}

// truncatedPercentage keeps the historical rounding rule: the percentage is
// truncated toward zero, never rounded (1 of 3 correct scores 33).
func truncatedPercentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(correct) / float64(total) * 100)
}

// loadQuestionMap resolves the answered questions, keyed by compact question
// id so stored and submitted id forms meet on one key.
func loadQuestionMap(tx *gorm.DB, answers []model.Answer) (map[string]model.Question, error) {
	lookup := make([]string, 0, len(answers)*2)
	for _, a := range answers {
		lookup = append(lookup, idutil.Forms(a.QuestionID)...)
	}
	var questions []model.Question
	if err := tx.Where("question_id IN ?", lookup).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to load questions for scoring: %w", err)
	}
	questionMap := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		questionMap[idutil.Compact(q.QuestionID)] = q
	}
	return questionMap, nil
}

func loadClusterNames(tx *gorm.DB, clusterIDs []string) (map[string]string, error) {
	if len(clusterIDs) == 0 {
		return map[string]string{}, nil
	}
	lookup := make([]string, 0, len(clusterIDs)*2)
	for _, id := range clusterIDs {
		lookup = append(lookup, idutil.Forms(id)...)
	}
	var clusters []model.Cluster
	if err := tx.Where("cluster_id IN ?", lookup).Find(&clusters).Error; err != nil {
		return nil, fmt.Errorf("failed to load clusters for scoring: %w", err)
	}
	names := make(map[string]string, len(clusters))
	for _, c := range clusters {
		names[idutil.Compact(c.ClusterID)] = c.ClusterName
	}
	return names, nil
}
