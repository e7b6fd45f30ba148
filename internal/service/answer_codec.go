package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lshigami/Compass/internal/dto"
	"github.com/lshigami/Compass/internal/model"
)

// Canonical answer encoding. Every selection, whatever its shape, is stored
// and compared as a single canonical string:
//
//	text          "optionId"
//	rank          "a;b;c"            submission order preserved
//	multi-select  "a;b;c"            sorted before storage, compared as a set
//	group         "g1->o1;g2->o2"    compared as a set of pairs
//	matching      "l1->r1;l2->r2"    compared as a set of pairs
const (
	itemSeparator = ";"
	pairSeparator = "->"
)

// Selection is the typed form of a user's raw selection. Exactly one variant
// exists per question shape, so downstream code never inspects optional
// fields to figure out what was submitted.
type Selection interface {
	isSelection()
}

// SingleChoice is the selection for "text" questions.
type SingleChoice struct {
	OptionID string
}

// RankedList is the ordered arrangement for "rank" questions.
type RankedList struct {
	OptionIDs []string
}

// MultiSelect is the unordered subset for "multi-select" questions.
type MultiSelect struct {
	OptionIDs []string
}

// ItemPair is one left->right assignment.
type ItemPair struct {
	LeftID  string
	RightID string
}

// PairMapping is the selection for "group" and "matching" questions.
type PairMapping struct {
	Pairs []ItemPair
}

func (SingleChoice) isSelection() {}
func (RankedList) isSelection()   {}
func (MultiSelect) isSelection()  {}
func (PairMapping) isSelection()  {}

// SelectionFromPayload builds the typed selection for questionType out of a
// wire payload. A payload with no relevant field set yields a nil Selection,
// meaning the question was left unanswered.
func SelectionFromPayload(questionType string, payload dto.AnswerPayloadDTO) (Selection, error) {
	switch questionType {
	case model.QuestionTypeText:
		if payload.SelectedOptionID == "" {
			return nil, nil
		}
		return SingleChoice{OptionID: payload.SelectedOptionID}, nil
	case model.QuestionTypeRank:
		if len(payload.SelectedItems) == 0 {
			return nil, nil
		}
		return RankedList{OptionIDs: payload.SelectedItems}, nil
	case model.QuestionTypeMultiSelect:
		if len(payload.SelectedItems) == 0 {
			return nil, nil
		}
		return MultiSelect{OptionIDs: payload.SelectedItems}, nil
	case model.QuestionTypeGroup, model.QuestionTypeMatching:
		if len(payload.SelectedPairs) == 0 {
			return nil, nil
		}
		pairs := make([]ItemPair, len(payload.SelectedPairs))
		for i, p := range payload.SelectedPairs {
			pairs[i] = ItemPair{LeftID: p.LeftID, RightID: p.RightID}
		}
		return PairMapping{Pairs: pairs}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedQuestionType, questionType)
	}
}

// EncodeSelection turns a typed selection into its canonical string. A nil
// selection encodes to the empty string (unanswered, to be left ungraded).
func EncodeSelection(questionType string, sel Selection) (string, error) {
	if sel == nil {
		return "", nil
	}
	switch questionType {
	case model.QuestionTypeText:
		choice, ok := sel.(SingleChoice)
		if !ok {
			return "", fmt.Errorf("selection %T does not fit question type %q", sel, questionType)
		}
		return choice.OptionID, nil
	case model.QuestionTypeRank:
		ranked, ok := sel.(RankedList)
		if !ok {
			return "", fmt.Errorf("selection %T does not fit question type %q", sel, questionType)
		}
		return strings.Join(ranked.OptionIDs, itemSeparator), nil
	case model.QuestionTypeMultiSelect:
		multi, ok := sel.(MultiSelect)
		if !ok {
			return "", fmt.Errorf("selection %T does not fit question type %q", sel, questionType)
		}
		// Sorted so storage is canonical; comparison is set-based either way.
		ids := append([]string(nil), multi.OptionIDs...)
		sort.Strings(ids)
		return strings.Join(ids, itemSeparator), nil
	case model.QuestionTypeGroup, model.QuestionTypeMatching:
		mapping, ok := sel.(PairMapping)
		if !ok {
			return "", fmt.Errorf("selection %T does not fit question type %q", sel, questionType)
		}
		parts := make([]string, len(mapping.Pairs))
		for i, p := range mapping.Pairs {
			parts[i] = p.LeftID + pairSeparator + p.RightID
		}
		return strings.Join(parts, itemSeparator), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedQuestionType, questionType)
	}
}

// DecodeSelection is the inverse of EncodeSelection. The empty canonical
// string decodes to a nil Selection.
func DecodeSelection(questionType, canonical string) (Selection, error) {
	if canonical == "" {
		return nil, nil
	}
	switch questionType {
	case model.QuestionTypeText:
		return SingleChoice{OptionID: canonical}, nil
	case model.QuestionTypeRank:
		return RankedList{OptionIDs: strings.Split(canonical, itemSeparator)}, nil
	case model.QuestionTypeMultiSelect:
		return MultiSelect{OptionIDs: strings.Split(canonical, itemSeparator)}, nil
	case model.QuestionTypeGroup, model.QuestionTypeMatching:
		parts := strings.Split(canonical, itemSeparator)
		pairs := make([]ItemPair, 0, len(parts))
		for _, part := range parts {
			left, right, found := strings.Cut(part, pairSeparator)
			if !found {
				return nil, fmt.Errorf("malformed pair %q in canonical answer", part)
			}
			pairs = append(pairs, ItemPair{LeftID: left, RightID: right})
		}
		return PairMapping{Pairs: pairs}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedQuestionType, questionType)
	}
}
