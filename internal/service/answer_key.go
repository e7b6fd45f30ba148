package service

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lshigami/Compass/config"
	"github.com/lshigami/Compass/internal/idutil"
	"github.com/rs/zerolog/log"
)

// AnswerKeyStore resolves the canonical correct answer for a question.
// Absence is not an error: a missing entry means the question is ungradeable
// and the caller records the answer as ungraded.
type AnswerKeyStore interface {
	Lookup(questionID string) (string, bool)
}

type fileAnswerKeyStore struct {
	answers map[string]string
}

// answerKeyEntry is one element of the array form of answers.json.
type answerKeyEntry struct {
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
}

// NewAnswerKeyStore loads the correct-answer key file once at startup.
// The file is either an array of {questionId, selectedOption} objects or a
// flat questionId->answer map; every entry is indexed under both the
// hyphenated and the compact form of its question id. A missing file is
// logged and yields an empty store, leaving every answer ungraded.
func NewAnswerKeyStore(cfg *config.Config) (AnswerKeyStore, error) {
	store := &fileAnswerKeyStore{answers: make(map[string]string)}

	raw, err := os.ReadFile(cfg.Data.AnswerKeyPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Data.AnswerKeyPath).Msg("Answer key file not readable; all answers will be ungraded")
		return store, nil
	}

	var entries []answerKeyEntry
	if err := json.Unmarshal(raw, &entries); err == nil {
		for _, e := range entries {
			store.add(e.QuestionID, e.SelectedOption)
		}
	} else {
		var flat map[string]string
		if err := json.Unmarshal(raw, &flat); err != nil {
			return nil, fmt.Errorf("failed to parse answer key file %s: %w", cfg.Data.AnswerKeyPath, err)
		}
		for qid, answer := range flat {
			store.add(qid, answer)
		}
	}

	log.Info().Int("entries", len(store.answers)).Str("path", cfg.Data.AnswerKeyPath).Msg("Correct answer key loaded")
	return store, nil
}

func (s *fileAnswerKeyStore) add(questionID, answer string) {
	if questionID == "" {
		return
	}
	for _, form := range idutil.Forms(questionID) {
		s.answers[form] = answer
	}
}

func (s *fileAnswerKeyStore) Lookup(questionID string) (string, bool) {
	for _, form := range idutil.Forms(questionID) {
		if answer, ok := s.answers[form]; ok {
			return answer, true
		}
	}
	return "", false
}

// StaticAnswerKey is an in-memory AnswerKeyStore for tests and seeding.
type StaticAnswerKey map[string]string

func (k StaticAnswerKey) Lookup(questionID string) (string, bool) {
	for _, form := range idutil.Forms(questionID) {
		if answer, ok := k[form]; ok {
			return answer, true
		}
	}
	return "", false
}
