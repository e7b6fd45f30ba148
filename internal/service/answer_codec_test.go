package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lshigami/Compass/internal/dto"
	"github.com/lshigami/Compass/internal/model"
)

func TestSelectionFromPayload(t *testing.T) {
	tests := []struct {
		name         string
		questionType string
		payload      dto.AnswerPayloadDTO
		want         Selection
		wantErr      error
	}{
		{
			name:         "text selection",
			questionType: model.QuestionTypeText,
			payload:      dto.AnswerPayloadDTO{SelectedOptionID: "opt-a"},
			want:         SingleChoice{OptionID: "opt-a"},
		},
		{
			name:         "text without selection is unanswered",
			questionType: model.QuestionTypeText,
			payload:      dto.AnswerPayloadDTO{},
			want:         nil,
		},
		{
			name:         "rank keeps submission order",
			questionType: model.QuestionTypeRank,
			payload:      dto.AnswerPayloadDTO{SelectedItems: []string{"c", "a", "b"}},
			want:         RankedList{OptionIDs: []string{"c", "a", "b"}},
		},
		{
			name:         "multi-select",
			questionType: model.QuestionTypeMultiSelect,
			payload:      dto.AnswerPayloadDTO{SelectedItems: []string{"b", "a"}},
			want:         MultiSelect{OptionIDs: []string{"b", "a"}},
		},
		{
			name:         "group pairs",
			questionType: model.QuestionTypeGroup,
			payload: dto.AnswerPayloadDTO{SelectedPairs: []dto.PairDTO{
				{LeftID: "g1", RightID: "o1"},
				{LeftID: "g2", RightID: "o2"},
			}},
			want: PairMapping{Pairs: []ItemPair{
				{LeftID: "g1", RightID: "o1"},
				{LeftID: "g2", RightID: "o2"},
			}},
		},
		{
			name:         "matching without pairs is unanswered",
			questionType: model.QuestionTypeMatching,
			payload:      dto.AnswerPayloadDTO{},
			want:         nil,
		},
		{
			name:         "unknown type",
			questionType: "essay",
			payload:      dto.AnswerPayloadDTO{SelectedOptionID: "x"},
			wantErr:      ErrUnsupportedQuestionType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectionFromPayload(tt.questionType, tt.payload)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SelectionFromPayload() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectionFromPayload() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SelectionFromPayload() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestEncodeSelection(t *testing.T) {
	tests := []struct {
		name         string
		questionType string
		sel          Selection
		want         string
		wantErr      bool
	}{
		{"nil selection encodes empty", model.QuestionTypeText, nil, "", false},
		{"text", model.QuestionTypeText, SingleChoice{OptionID: "opt-a"}, "opt-a", false},
		{"rank preserves order", model.QuestionTypeRank, RankedList{OptionIDs: []string{"c", "a", "b"}}, "c;a;b", false},
		{"multi-select sorts", model.QuestionTypeMultiSelect, MultiSelect{OptionIDs: []string{"c", "a", "b"}}, "a;b;c", false},
		{
			"group pairs",
			model.QuestionTypeGroup,
			PairMapping{Pairs: []ItemPair{{LeftID: "g1", RightID: "o1"}, {LeftID: "g2", RightID: "o2"}}},
			"g1->o1;g2->o2",
			false,
		},
		{
			"matching pairs",
			model.QuestionTypeMatching,
			PairMapping{Pairs: []ItemPair{{LeftID: "l1", RightID: "r1"}}},
			"l1->r1",
			false,
		},
		{"variant mismatch", model.QuestionTypeText, RankedList{OptionIDs: []string{"a"}}, "", true},
		{"unknown type", "essay", SingleChoice{OptionID: "x"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeSelection(tt.questionType, tt.sel)
			if tt.wantErr {
				if err == nil {
					t.Fatal("EncodeSelection() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("EncodeSelection() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("EncodeSelection() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeSelectionDoesNotMutateInput(t *testing.T) {
	sel := MultiSelect{OptionIDs: []string{"c", "a", "b"}}
	if _, err := EncodeSelection(model.QuestionTypeMultiSelect, sel); err != nil {
		t.Fatalf("EncodeSelection() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(sel.OptionIDs, []string{"c", "a", "b"}) {
		t.Errorf("EncodeSelection() mutated input slice: %v", sel.OptionIDs)
	}
}

func TestDecodeSelection(t *testing.T) {
	tests := []struct {
		name         string
		questionType string
		canonical    string
		want         Selection
		wantErr      bool
	}{
		{"empty decodes to nil", model.QuestionTypeRank, "", nil, false},
		{"text", model.QuestionTypeText, "opt-a", SingleChoice{OptionID: "opt-a"}, false},
		{"rank", model.QuestionTypeRank, "c;a;b", RankedList{OptionIDs: []string{"c", "a", "b"}}, false},
		{"multi-select", model.QuestionTypeMultiSelect, "a;b", MultiSelect{OptionIDs: []string{"a", "b"}}, false},
		{
			"matching",
			model.QuestionTypeMatching,
			"l1->r1;l2->r2",
			PairMapping{Pairs: []ItemPair{{LeftID: "l1", RightID: "r1"}, {LeftID: "l2", RightID: "r2"}}},
			false,
		},
		{"malformed pair", model.QuestionTypeGroup, "g1-o1", nil, true},
		{"unknown type", "essay", "x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSelection(tt.questionType, tt.canonical)
			if tt.wantErr {
				if err == nil {
					t.Fatal("DecodeSelection() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeSelection() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeSelection() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		questionType string
		sel          Selection
	}{
		{model.QuestionTypeText, SingleChoice{OptionID: "opt-a"}},
		{model.QuestionTypeRank, RankedList{OptionIDs: []string{"b", "c", "a"}}},
		{model.QuestionTypeMultiSelect, MultiSelect{OptionIDs: []string{"a", "b", "c"}}},
		{model.QuestionTypeGroup, PairMapping{Pairs: []ItemPair{{LeftID: "g1", RightID: "o1"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.questionType, func(t *testing.T) {
			canonical, err := EncodeSelection(tt.questionType, tt.sel)
			if err != nil {
				t.Fatalf("EncodeSelection() unexpected error: %v", err)
			}
			got, err := DecodeSelection(tt.questionType, canonical)
			if err != nil {
				t.Fatalf("DecodeSelection() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.sel) {
				t.Errorf("round trip = %#v, want %#v", got, tt.sel)
			}
		})
	}
}
