package form

import "github.com/hanco1/D2Cdashboard/model"

// IsVisible reports whether a question currently applies, given the raw
// answer map. A question with no conditional rule is always visible. If the
// referenced question has no value at all, the dependent question is hidden
// regardless of operator: absence never satisfies not_equal.
func IsVisible(q *Question, answers map[string]model.Value) bool {
	rule := q.ConditionalOn
	if rule == nil {
		return true
	}

	target, ok := answers[rule.QuestionID]
	if !ok {
		return false
	}

	var match bool
	if target.IsList() {
		match = contains(target.Items(), rule.Value)
	} else {
		match = target.Text() == rule.Value
	}

	if rule.Condition == ConditionEqual {
		return match
	}
	return !match
}

// IsAnswered reports whether a value counts as an answer for the question.
// The zero Value (an absent answer) is never answered.
func IsAnswered(q *Question, v model.Value) bool {
	if q.Type == model.TypeChoice && q.AllowMultiple {
		return v.IsList() && len(v.Items()) > 0
	}
	return !v.IsList() && trimmed(v.Text()) != ""
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
