package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/hanco1/D2Cdashboard/model"
)

// Fallbacks for derived fields when the source answer is absent or blank.
const (
	UnspecifiedRole  = "Unspecified role"
	NoFocusArea      = "No priority tool selected"
	DefaultHeadline  = "Initial assessment response"
	headlineMaxRunes = 160
)

// StringValue flattens a value for display and scoring: lists are joined
// with ", ", scalars pass through.
func StringValue(v model.Value) string {
	if v.IsList() {
		return strings.Join(v.Items(), ", ")
	}
	return v.Text()
}

func answerString(answers map[string]model.StoredAnswer, id string) string {
	return StringValue(answers[id].Value)
}

// PreferredName derives the respondent display name, falling back to
// "Anonymous" for blank or absent name answers.
func PreferredName(answers map[string]model.StoredAnswer) string {
	name := trimmed(answerString(answers, nameQuestionID))
	if name == "" {
		return AnonymousName
	}
	return name
}

// PreferredRole derives the respondent role, substituting the captured
// "Other" free text when that escape was used.
func PreferredRole(answers map[string]model.StoredAnswer) string {
	role, ok := answers[roleQuestionID]
	if !ok {
		return UnspecifiedRole
	}

	base := trimmed(StringValue(role.Value))
	if base == "" {
		return UnspecifiedRole
	}
	if base == OtherOption && role.OtherValue != "" {
		return role.OtherValue
	}
	return base
}

// DeriveHeadline produces the one-line summary shown on submission cards:
// the pain-point answer truncated to 160 characters, then the top requested
// tool, then a generic fallback.
func DeriveHeadline(answers map[string]model.StoredAnswer) string {
	painPoint := trimmed(answerString(answers, painPointQuestionID))
	if painPoint != "" {
		return truncateRunes(painPoint, headlineMaxRunes)
	}

	topTool := trimmed(answerString(answers, topToolQuestionID))
	if topTool != "" {
		return fmt.Sprintf("Top requested tool: %s", topTool)
	}

	return DefaultHeadline
}

// DeriveFocusArea derives the focus-area label from the top-priority-tool
// answer, with the same "Other" substitution rule as the role.
func DeriveFocusArea(answers map[string]model.StoredAnswer) string {
	tool, ok := answers[topToolQuestionID]
	if !ok {
		return NoFocusArea
	}

	value := trimmed(StringValue(tool.Value))
	if value == OtherOption && tool.OtherValue != "" {
		return tool.OtherValue
	}
	if value == "" {
		return NoFocusArea
	}
	return value
}

// DerivePriority computes the priority tier from an additive score: each of
// the two frequency answers contributes 0-3 points by substring match, and
// each of the two long free-text answers contributes 1 point past a length
// threshold, a crude proxy for pain severity.
func DerivePriority(answers map[string]model.StoredAnswer) model.Priority {
	score := 0

	repetitive := strings.ToLower(answerString(answers, repetitiveFreqID))
	switch {
	case strings.Contains(repetitive, "almost daily"):
		score += 3
	case strings.Contains(repetitive, "several times"):
		score += 2
	case strings.Contains(repetitive, "occasionally"):
		score += 1
	}

	searching := strings.ToLower(answerString(answers, searchFreqQuestionID))
	switch {
	case strings.Contains(searching, "daily"):
		score += 3
	case strings.Contains(searching, "several times"):
		score += 2
	case strings.Contains(searching, "occasionally"):
		score += 1
	}

	if len(answerString(answers, painPointQuestionID)) > 140 {
		score++
	}
	if len(answerString(answers, frictionQuestionID)) > 120 {
		score++
	}

	switch {
	case score >= 7:
		return model.PriorityCritical
	case score >= 5:
		return model.PriorityHigh
	case score >= 3:
		return model.PriorityMedium
	}
	return model.PriorityLow
}

// ResponsePackage freezes a validated answer map into the stored snapshot,
// together with the form title and version in force at submission time.
func (f *Form) ResponsePackage(answers map[string]model.StoredAnswer) model.StoredResponses {
	return model.StoredResponses{
		FormTitle:   f.Metadata.Title,
		FormVersion: f.Metadata.Version,
		SubmittedAt: time.Now().UTC(),
		Answers:     answers,
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
