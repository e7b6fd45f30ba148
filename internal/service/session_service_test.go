package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Compass/internal/dto"
	"github.com/lshigami/Compass/internal/model"
	"github.com/lshigami/Compass/internal/repository"
	"gorm.io/gorm"
)

func newSessionService(t *testing.T, db *gorm.DB, key AnswerKeyStore) SessionService {
	t.Helper()
	scoreRepo := repository.NewScoreRepository(db)
	return NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewClusterRepository(db),
		scoreRepo,
		repository.NewTestRepository(db),
		key,
		NewScoringService(scoreRepo),
		db,
	)
}

func TestCreateSession(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db, StaticAnswerKey{})

	session, err := svc.CreateSession(dto.SessionCreateDTO{UserID: "user-1", Name: "first try"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}
	if session.SessionID == "" {
		t.Error("CreateSession() returned empty session id")
	}
	if session.Status != model.SessionInProgress {
		t.Errorf("Status = %q, want %q", session.Status, model.SessionInProgress)
	}

	stored, err := repository.NewSessionRepository(db).FindByID(session.SessionID)
	if err != nil {
		t.Fatalf("created session not found: %v", err)
	}
	if stored.UserID != "user-1" || stored.Name != "first try" {
		t.Errorf("stored session = %+v, want user-1 / first try", stored)
	}
}

func TestSubmitAnswerGradesAndUpserts(t *testing.T) {
	db := newTestDB(t)
	seedQuestion(t, db, "q1", nil, model.QuestionTypeMultiSelect)
	svc := newSessionService(t, db, StaticAnswerKey{"q1": "a;b"})

	session, err := svc.CreateSession(dto.SessionCreateDTO{UserID: "user-1"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	// Order of submitted items must not matter for multi-select.
	result, err := svc.SubmitAnswer(session.SessionID, dto.AnswerSubmitDTO{AnswerPayloadDTO: dto.AnswerPayloadDTO{
		QuestionID:    "q1",
		SelectedItems: []string{"b", "a"},
	}})
	if err != nil {
		t.Fatalf("SubmitAnswer() unexpected error: %v", err)
	}
	if result.IsCorrect == nil || !*result.IsCorrect {
		t.Errorf("IsCorrect = %v, want true", result.IsCorrect)
	}

	// Resubmission overwrites instead of adding a second row.
	result, err = svc.SubmitAnswer(session.SessionID, dto.AnswerSubmitDTO{AnswerPayloadDTO: dto.AnswerPayloadDTO{
		QuestionID:    "q1",
		SelectedItems: []string{"a", "c"},
	}})
	if err != nil {
		t.Fatalf("SubmitAnswer() resubmission unexpected error: %v", err)
	}
	if result.IsCorrect == nil || *result.IsCorrect {
		t.Errorf("IsCorrect after resubmission = %v, want false", result.IsCorrect)
	}

	answers, err := repository.NewAnswerRepository(db).FindBySession(session.SessionID)
	if err != nil {
		t.Fatalf("FindBySession() unexpected error: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("answer count after resubmission = %d, want 1", len(answers))
	}
	if answers[0].SelectedAnswer != "a;c" {
		t.Errorf("SelectedAnswer = %q, want a;c (sorted canonical)", answers[0].SelectedAnswer)
	}
}

func TestSubmitAnswerEmptySelectionIsUngraded(t *testing.T) {
	db := newTestDB(t)
	seedQuestion(t, db, "q1", nil, model.QuestionTypeText)
	svc := newSessionService(t, db, StaticAnswerKey{"q1": "opt-a"})

	session, err := svc.CreateSession(dto.SessionCreateDTO{UserID: "user-1"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	result, err := svc.SubmitAnswer(session.SessionID, dto.AnswerSubmitDTO{AnswerPayloadDTO: dto.AnswerPayloadDTO{
		QuestionID: "q1",
	}})
	if err != nil {
		t.Fatalf("SubmitAnswer() unexpected error: %v", err)
	}
	if result.IsCorrect != nil {
		t.Errorf("IsCorrect = %v, want nil for empty selection", *result.IsCorrect)
	}
}

func TestSubmitAnswerNoKeyEntryIsUngraded(t *testing.T) {
	db := newTestDB(t)
	seedQuestion(t, db, "q1", nil, model.QuestionTypeText)
	svc := newSessionService(t, db, StaticAnswerKey{})

	session, err := svc.CreateSession(dto.SessionCreateDTO{UserID: "user-1"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	result, err := svc.SubmitAnswer(session.SessionID, dto.AnswerSubmitDTO{AnswerPayloadDTO: dto.AnswerPayloadDTO{
		QuestionID:       "q1",
		SelectedOptionID: "opt-a",
	}})
	if err != nil {
		t.Fatalf("SubmitAnswer() unexpected error: %v", err)
	}
	if result.IsCorrect != nil {
		t.Errorf("IsCorrect = %v, want nil when no answer key entry exists", *result.IsCorrect)
	}
}

func TestSubmitAnswerErrors(t *testing.T) {
	db := newTestDB(t)
	seedQuestion(t, db, "q1", nil, model.QuestionTypeText)
	svc := newSessionService(t, db, StaticAnswerKey{})

	t.Run("session not found", func(t *testing.T) {
		_, err := svc.SubmitAnswer("missing", dto.AnswerSubmitDTO{AnswerPayloadDTO: dto.AnswerPayloadDTO{QuestionID: "q1"}})
		if !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("error = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("question not found", func(t *testing.T) {
		session, err := svc.CreateSession(dto.SessionCreateDTO{UserID: "user-1"})
		if err != nil {
			t.Fatalf("CreateSession() unexpected error: %v", err)
		}
		_, err = svc.SubmitAnswer(session.SessionID, dto.AnswerSubmitDTO{AnswerPayloadDTO: dto.AnswerPayloadDTO{QuestionID: "missing"}})
		if !errors.Is(err, ErrQuestionNotFound) {
			t.Errorf("error = %v, want ErrQuestionNotFound", err)
		}
	})

	t.Run("submitted session rejects answers", func(t *testing.T) {
		session, err := svc.CreateSession(dto.SessionCreateDTO{UserID: "user-1"})
		if err != nil {
			t.Fatalf("CreateSession() unexpected error: %v", err)
		}
		if err := db.Model(&model.TestSession{}).
			Where("session_id = ?", session.SessionID).
			Update("status", model.SessionSubmitted).Error; err != nil {
			t.Fatalf("failed to mark session submitted: %v", err)
		}
		_, err = svc.SubmitAnswer(session.SessionID, dto.AnswerSubmitDTO{AnswerPayloadDTO: dto.AnswerPayloadDTO{QuestionID: "q1"}})
		if !errors.Is(err, ErrSessionNotActive) {
			t.Errorf("error = %v, want ErrSessionNotActive", err)
		}
	})

	t.Run("completed session rejects answers", func(t *testing.T) {
		session, err := svc.CreateSession(dto.SessionCreateDTO{UserID: "user-1"})
		if err != nil {
			t.Fatalf("CreateSession() unexpected error: %v", err)
		}
		if err := db.Model(&model.TestSession{}).
			Where("session_id = ?", session.SessionID).
			Update("status", model.SessionCompleted).Error; err != nil {
			t.Fatalf("failed to mark session completed: %v", err)
		}
		_, err = svc.SubmitAnswer(session.SessionID, dto.AnswerSubmitDTO{AnswerPayloadDTO: dto.AnswerPayloadDTO{QuestionID: "q1"}})
		if !errors.Is(err, ErrSessionNotActive) {
			t.Errorf("error = %v, want ErrSessionNotActive", err)
		}
	})
}

func TestBulkSubmitEndToEnd(t *testing.T) {
	db := newTestDB(t)
	clusterID := "00000000-0000-0000-0000-00000000000a"
	seedCluster(t, db, clusterID, "Builders")
	seedQuestion(t, db, "q1", strPtr(clusterID), model.QuestionTypeText)
	seedQuestion(t, db, "q2", strPtr(clusterID), model.QuestionTypeRank)
	seedQuestion(t, db, "q3", strPtr(clusterID), model.QuestionTypeText)
	svc := newSessionService(t, db, StaticAnswerKey{"q1": "opt-a", "q2": "a;b;c", "q3": "opt-x"})

	result, err := svc.BulkSubmit(dto.BulkSubmitDTO{
		UserID: "user-1",
		Responses: []dto.AnswerPayloadDTO{
			{QuestionID: "q1", SelectedOptionID: "opt-a"},           // correct
			{QuestionID: "q2", SelectedItems: []string{"b", "a", "c"}}, // wrong order, incorrect
			{QuestionID: "q3"},                                      // unanswered
		},
	})
	if err != nil {
		t.Fatalf("BulkSubmit() unexpected error: %v", err)
	}

	if result.Score == nil {
		t.Fatal("BulkSubmit() returned nil score")
	}
	score := result.Score
	if score.TotalQuestions != 3 || score.CorrectAnswers != 1 || score.IncorrectAnswers != 1 || score.Unanswered != 1 {
		t.Errorf("score partition = %+v, want total 3, correct 1, incorrect 1, unanswered 1", score)
	}
	if score.OverallScore != 33 {
		t.Errorf("OverallScore = %d, want 33", score.OverallScore)
	}

	session, err := repository.NewSessionRepository(db).FindByID(result.SessionID)
	if err != nil {
		t.Fatalf("bulk-submitted session not found: %v", err)
	}
	if session.Status != model.SessionSubmitted {
		t.Errorf("session status = %q, want %q", session.Status, model.SessionSubmitted)
	}
	if session.SubmittedAt == nil {
		t.Error("SubmittedAt not set on bulk submission")
	}
}

func TestBulkSubmitDuplicateQuestionLastWriteWins(t *testing.T) {
	db := newTestDB(t)
	seedQuestion(t, db, "q1", nil, model.QuestionTypeText)
	svc := newSessionService(t, db, StaticAnswerKey{"q1": "opt-a"})

	result, err := svc.BulkSubmit(dto.BulkSubmitDTO{
		UserID: "user-1",
		Responses: []dto.AnswerPayloadDTO{
			{QuestionID: "q1", SelectedOptionID: "opt-b"},
			{QuestionID: "q1", SelectedOptionID: "opt-a"},
		},
	})
	if err != nil {
		t.Fatalf("BulkSubmit() unexpected error: %v", err)
	}

	answers, err := repository.NewAnswerRepository(db).FindBySession(result.SessionID)
	if err != nil {
		t.Fatalf("FindBySession() unexpected error: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("answer count = %d, want 1 (last duplicate wins)", len(answers))
	}
	if answers[0].SelectedAnswer != "opt-a" {
		t.Errorf("SelectedAnswer = %q, want opt-a (the later submission)", answers[0].SelectedAnswer)
	}
	if result.Score == nil || result.Score.TotalQuestions != 1 || result.Score.CorrectAnswers != 1 {
		t.Errorf("score = %+v, want total 1, correct 1", result.Score)
	}
}

func TestBulkSubmitUnknownQuestionLeavesNothingBehind(t *testing.T) {
	db := newTestDB(t)
	seedQuestion(t, db, "q1", nil, model.QuestionTypeText)
	svc := newSessionService(t, db, StaticAnswerKey{})

	_, err := svc.BulkSubmit(dto.BulkSubmitDTO{
		UserID: "user-1",
		Responses: []dto.AnswerPayloadDTO{
			{QuestionID: "q1", SelectedOptionID: "opt-a"},
			{QuestionID: "missing", SelectedOptionID: "opt-b"},
		},
	})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("error = %v, want ErrQuestionNotFound", err)
	}

	var sessions, answers int64
	db.Model(&model.TestSession{}).Count(&sessions)
	db.Model(&model.Answer{}).Count(&answers)
	if sessions != 0 || answers != 0 {
		t.Errorf("failed bulk submit left %d sessions and %d answers behind", sessions, answers)
	}
}

func TestCompleteSession(t *testing.T) {
	db := newTestDB(t)
	seedQuestion(t, db, "q1", nil, model.QuestionTypeText)
	svc := newSessionService(t, db, StaticAnswerKey{"q1": "opt-a"})

	session, err := svc.CreateSession(dto.SessionCreateDTO{UserID: "user-1"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}
	if _, err := svc.SubmitAnswer(session.SessionID, dto.AnswerSubmitDTO{AnswerPayloadDTO: dto.AnswerPayloadDTO{
		QuestionID:       "q1",
		SelectedOptionID: "opt-a",
	}}); err != nil {
		t.Fatalf("SubmitAnswer() unexpected error: %v", err)
	}

	result, err := svc.CompleteSession(session.SessionID)
	if err != nil {
		t.Fatalf("CompleteSession() unexpected error: %v", err)
	}
	if result.AnswersSubmitted != 1 {
		t.Errorf("AnswersSubmitted = %d, want 1", result.AnswersSubmitted)
	}
	if result.Score == nil || result.Score.OverallScore != 100 {
		t.Errorf("Score = %+v, want overall 100", result.Score)
	}

	stored, err := repository.NewSessionRepository(db).FindByID(session.SessionID)
	if err != nil {
		t.Fatalf("completed session not found: %v", err)
	}
	if stored.Status != model.SessionCompleted {
		t.Errorf("status = %q, want %q", stored.Status, model.SessionCompleted)
	}

	// Completing again succeeds and recomputes rather than failing.
	again, err := svc.CompleteSession(session.SessionID)
	if err != nil {
		t.Fatalf("CompleteSession() second call unexpected error: %v", err)
	}
	if again.Score == nil || again.Score.OverallScore != 100 {
		t.Errorf("second completion score = %+v, want overall 100", again.Score)
	}

	var count int64
	if err := db.Model(&model.ScoreRecord{}).Where("session_id = ?", session.SessionID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count score records: %v", err)
	}
	if count != 1 {
		t.Errorf("score record count after double completion = %d, want 1 (overall only)", count)
	}
}

func TestCompleteSessionNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db, StaticAnswerKey{})

	if _, err := svc.CompleteSession("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestGetSessionWithAnswersAndScore(t *testing.T) {
	db := newTestDB(t)
	clusterID := "00000000-0000-0000-0000-00000000000a"
	seedCluster(t, db, clusterID, "Builders")
	seedQuestion(t, db, "q1", strPtr(clusterID), model.QuestionTypeText)
	svc := newSessionService(t, db, StaticAnswerKey{"q1": "opt-a"})

	result, err := svc.BulkSubmit(dto.BulkSubmitDTO{
		UserID:    "user-1",
		Responses: []dto.AnswerPayloadDTO{{QuestionID: "q1", SelectedOptionID: "opt-a"}},
	})
	if err != nil {
		t.Fatalf("BulkSubmit() unexpected error: %v", err)
	}

	detail, err := svc.GetSession(result.SessionID)
	if err != nil {
		t.Fatalf("GetSession() unexpected error: %v", err)
	}
	if len(detail.Answers) != 1 {
		t.Fatalf("answer count = %d, want 1", len(detail.Answers))
	}
	if detail.Answers[0].SelectedAnswer != "opt-a" {
		t.Errorf("SelectedAnswer = %q, want opt-a", detail.Answers[0].SelectedAnswer)
	}
	if detail.Score == nil {
		t.Fatal("GetSession() returned nil score for scored session")
	}
	if detail.Score.OverallScore != 100 {
		t.Errorf("OverallScore = %d, want 100", detail.Score.OverallScore)
	}
	if len(detail.Score.ClusterScores) != 1 || detail.Score.ClusterScores[0].ClusterName != "Builders" {
		t.Errorf("ClusterScores = %+v, want one entry named Builders", detail.Score.ClusterScores)
	}
}

func TestGetSessionWithoutScores(t *testing.T) {
	db := newTestDB(t)
	svc := newSessionService(t, db, StaticAnswerKey{})

	session, err := svc.CreateSession(dto.SessionCreateDTO{UserID: "user-1"})
	if err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	detail, err := svc.GetSession(session.SessionID)
	if err != nil {
		t.Fatalf("GetSession() unexpected error: %v", err)
	}
	if detail.Score != nil {
		t.Errorf("Score = %+v, want nil before any computation", detail.Score)
	}
}

func TestGetUserSessions(t *testing.T) {
	db := newTestDB(t)
	seedQuestion(t, db, "q1", nil, model.QuestionTypeText)
	svc := newSessionService(t, db, StaticAnswerKey{"q1": "opt-a"})

	if _, err := svc.CreateSession(dto.SessionCreateDTO{UserID: "user-1", Name: "open"}); err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}
	scored, err := svc.BulkSubmit(dto.BulkSubmitDTO{
		UserID:    "user-1",
		Responses: []dto.AnswerPayloadDTO{{QuestionID: "q1", SelectedOptionID: "opt-a"}},
	})
	if err != nil {
		t.Fatalf("BulkSubmit() unexpected error: %v", err)
	}
	if _, err := svc.CreateSession(dto.SessionCreateDTO{UserID: "user-2"}); err != nil {
		t.Fatalf("CreateSession() unexpected error: %v", err)
	}

	sessions, err := svc.GetUserSessions("user-1")
	if err != nil {
		t.Fatalf("GetUserSessions() unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("session count = %d, want 2", len(sessions))
	}
	for _, s := range sessions {
		if s.SessionID == scored.SessionID && s.OverallScore != 100 {
			t.Errorf("scored session OverallScore = %d, want 100", s.OverallScore)
		}
	}
}

func TestDeleteSession(t *testing.T) {
	db := newTestDB(t)
	seedQuestion(t, db, "q1", nil, model.QuestionTypeText)
	svc := newSessionService(t, db, StaticAnswerKey{"q1": "opt-a"})

	result, err := svc.BulkSubmit(dto.BulkSubmitDTO{
		UserID:    "user-1",
		Responses: []dto.AnswerPayloadDTO{{QuestionID: "q1", SelectedOptionID: "opt-a"}},
	})
	if err != nil {
		t.Fatalf("BulkSubmit() unexpected error: %v", err)
	}

	if err := svc.DeleteSession(result.SessionID); err != nil {
		t.Fatalf("DeleteSession() unexpected error: %v", err)
	}
	if _, err := svc.GetSession(result.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSession() after delete error = %v, want ErrSessionNotFound", err)
	}
	if err := svc.DeleteSession(result.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("DeleteSession() second call error = %v, want ErrSessionNotFound", err)
	}
}
