package service

import (
	"strings"

	"github.com/lshigami/Compass/internal/model"
)

// evaluateAnswer compares a submitted canonical answer against the correct
// one under the comparison rule of the question type:
//
//	text          exact string equality
//	rank          ordered sequence equality, differing order is incorrect
//	multi-select  set equality, order irrelevant
//	group         set-of-pairs equality, order irrelevant
//	matching      set-of-pairs equality, order irrelevant
//
// It returns false, never an error, when either side is empty or the type is
// unknown.
func evaluateAnswer(questionType, submitted, correct string) bool {
	if submitted == "" || correct == "" {
		return false
	}
	switch questionType {
	case model.QuestionTypeText, model.QuestionTypeRank:
		// Rank answers are stored in submission order, so ordered equality
		// falls out of plain string comparison.
		return submitted == correct
	case model.QuestionTypeMultiSelect:
		return equalItemSets(splitItems(submitted), splitItems(correct))
	case model.QuestionTypeGroup, model.QuestionTypeMatching:
		// Pairs are compared as whole "left->right" strings; splitting the
		// pair itself is not needed for set equality.
		return equalItemSets(splitItems(submitted), splitItems(correct))
	default:
		return false
	}
}

func splitItems(canonical string) []string {
	return strings.Split(canonical, itemSeparator)
}

func equalItemSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		seen[s]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}
