package model

import "time"

type QuestionType string

const (
	TypeChoice QuestionType = "choice"
	TypeText   QuestionType = "text"
)

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// IsHigh reports whether a submission counts toward the high-priority
// dashboard figure.
func (p Priority) IsHigh() bool {
	return p == PriorityHigh || p == PriorityCritical
}

type Status string

const (
	StatusNew      Status = "New"
	StatusInReview Status = "In Review"
	StatusClosed   Status = "Closed"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusInReview, StatusClosed:
		return true
	}
	return false
}

// StoredAnswer is a denormalized snapshot of one answered question, captured
// at submission time so later edits to the form definition cannot alter
// historical records.
type StoredAnswer struct {
	QuestionID   string       `json:"question_id"`
	QuestionText string       `json:"question_text"`
	SectionID    string       `json:"section_id"`
	SectionTitle string       `json:"section_title"`
	QuestionType QuestionType `json:"question_type"`
	Required     bool         `json:"required"`
	Value        Value        `json:"value"`
	OtherValue   string       `json:"other_value,omitempty"`
}

type StoredResponses struct {
	FormTitle   string                  `json:"form_title"`
	FormVersion string                  `json:"form_version"`
	SubmittedAt time.Time               `json:"submitted_at"`
	Answers     map[string]StoredAnswer `json:"answers"`
}

type Submission struct {
	ID             string          `json:"id"`
	RespondentName string          `json:"respondentName"`
	RespondentRole string          `json:"respondentRole"`
	Headline       string          `json:"headline"`
	FocusArea      string          `json:"focusArea"`
	Priority       Priority        `json:"priority"`
	Status         Status          `json:"status"`
	Responses      StoredResponses `json:"responses"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DashboardMetrics is recomputed from the full submission list on each read;
// it is never persisted.
type DashboardMetrics struct {
	TotalResponses        int          `json:"totalResponses"`
	HighPriorityCount     int          `json:"highPriorityCount"`
	AnonymousCount        int          `json:"anonymousCount"`
	ThisWeekCount         int          `json:"thisWeekCount"`
	TopAutomationRequests []LabelCount `json:"topAutomationRequests"`
	AIFamiliarity         []LabelCount `json:"aiFamiliarity"`
}
