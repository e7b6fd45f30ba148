package service

import "errors"

var (
	// ErrSessionNotFound is returned for operations on an unknown session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionNotActive rejects answer submission to a session that has
	// already been submitted or completed.
	ErrSessionNotActive = errors.New("session is not in progress")
	// ErrQuestionNotFound is returned when an answer references a question
	// the catalog does not know.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrUnsupportedQuestionType is returned when a selection cannot be
	// encoded because the question carries an unknown type tag.
	ErrUnsupportedQuestionType = errors.New("unsupported question type")
)
