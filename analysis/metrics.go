package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hanco1/D2Cdashboard/form"
	"github.com/hanco1/D2Cdashboard/model"
)

// Dashboard counters are driven by two designated questions: the automation
// wish list and the AI familiarity level.
const (
	automationQuestionID  = "q16"
	familiarityQuestionID = "q15"

	topLabelCount = 4
	weekWindow    = 7 * 24 * time.Hour
)

// BuildDashboardMetrics folds the full submission list into the dashboard
// counters. The trailing-week figure is relative to the moment of the call.
func BuildDashboardMetrics(submissions []model.Submission) model.DashboardMetrics {
	return buildAt(submissions, time.Now())
}

func buildAt(submissions []model.Submission, now time.Time) model.DashboardMetrics {
	automation := newTally()
	familiarity := newTally()

	weekStart := now.Add(-weekWindow)
	metrics := model.DashboardMetrics{
		TotalResponses: len(submissions),
	}

	for i := range submissions {
		sub := &submissions[i]

		if sub.Priority.IsHigh() {
			metrics.HighPriorityCount++
		}
		if sub.RespondentName == form.AnonymousName {
			metrics.AnonymousCount++
		}
		if !sub.CreatedAt.Before(weekStart) {
			metrics.ThisWeekCount++
		}

		for _, label := range answerLabels(sub, automationQuestionID) {
			automation.add(label)
		}
		if labels := answerLabels(sub, familiarityQuestionID); len(labels) > 0 {
			familiarity.add(labels[0])
		}
	}

	metrics.TopAutomationRequests = automation.top(topLabelCount)
	metrics.AIFamiliarity = familiarity.top(topLabelCount)
	return metrics
}

// answerLabels flattens one submission's answer to a question into countable
// labels: multi-select values individually, a single-select as one label,
// the "Other" escape rendered as "Other: {text}", blanks skipped.
func answerLabels(sub *model.Submission, questionID string) []string {
	answer, ok := sub.Responses.Answers[questionID]
	if !ok {
		return nil
	}

	if answer.Value.IsList() {
		var labels []string
		for _, item := range answer.Value.Items() {
			if item != "" {
				labels = append(labels, item)
			}
		}
		if answer.OtherValue != "" {
			labels = append(labels, fmt.Sprintf("Other: %s", answer.OtherValue))
		}
		return labels
	}

	value := answer.Value.Text()
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if value == form.OtherOption && answer.OtherValue != "" {
		return []string{fmt.Sprintf("Other: %s", answer.OtherValue)}
	}
	return []string{value}
}

// tally is a frequency counter that remembers first-seen order, so that ties
// in the top-N cut are broken deterministically.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(label string) {
	if _, seen := t.counts[label]; !seen {
		t.order = append(t.order, label)
	}
	t.counts[label]++
}

func (t *tally) top(n int) []model.LabelCount {
	ranked := make([]model.LabelCount, 0, len(t.order))
	for _, label := range t.order {
		ranked = append(ranked, model.LabelCount{Label: label, Count: t.counts[label]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
