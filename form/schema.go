package form

import "github.com/hanco1/D2Cdashboard/model"

type Condition string

const (
	ConditionEqual    Condition = "equal"
	ConditionNotEqual Condition = "not_equal"
)

// ConditionalRule gates a question's visibility on another question's answer.
type ConditionalRule struct {
	QuestionID string    `json:"question_id"`
	Condition  Condition `json:"condition"`
	Value      string    `json:"value"`
}

type Question struct {
	ID            string             `json:"question_id"`
	Text          string             `json:"question_text"`
	Subtitle      string             `json:"subtitle,omitempty"`
	Type          model.QuestionType `json:"question_type"`
	Required      bool               `json:"required"`
	ConditionalOn *ConditionalRule   `json:"conditional_on,omitempty"`

	// choice questions only
	AllowMultiple  bool     `json:"allow_multiple,omitempty"`
	Options        []string `json:"options,omitempty"`
	HasOtherOption bool     `json:"has_other_option,omitempty"`

	// text questions only
	LongAnswer bool `json:"long_answer,omitempty"`
}

type Section struct {
	ID          string     `json:"section_id"`
	Title       string     `json:"section_title"`
	Description string     `json:"section_description"`
	Questions   []Question `json:"questions"`
}

type Metadata struct {
	Title       string `json:"form_title"`
	Description string `json:"form_description"`
	Version     string `json:"version"`
}

// Form is the full questionnaire definition. It is built once and treated as
// read-only afterwards.
type Form struct {
	Metadata Metadata  `json:"form_metadata"`
	Sections []Section `json:"sections"`

	index map[string]questionRef
}

type questionRef struct {
	section  *Section
	question *Question
}

func New(meta Metadata, sections []Section) *Form {
	f := &Form{
		Metadata: meta,
		Sections: sections,
		index:    make(map[string]questionRef),
	}
	for si := range f.Sections {
		section := &f.Sections[si]
		for qi := range section.Questions {
			f.index[section.Questions[qi].ID] = questionRef{section, &section.Questions[qi]}
		}
	}
	return f
}

// QuestionByID returns a question and its owning section, or nil, nil when
// the id is unknown.
func (f *Form) QuestionByID(id string) (*Question, *Section) {
	ref, ok := f.index[id]
	if !ok {
		return nil, nil
	}
	return ref.question, ref.section
}
