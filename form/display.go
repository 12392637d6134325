package form

import (
	"fmt"
	"strings"

	"github.com/hanco1/D2Cdashboard/model"
)

const noAnswer = "No answer"

// DisplayAnswer renders a stored answer as a single reviewer-facing string,
// expanding the "Other" escape into "Other: {text}".
func DisplayAnswer(answer *model.StoredAnswer) string {
	if answer == nil {
		return noAnswer
	}

	if answer.Value.IsList() {
		items := answer.Value.Items()
		if len(items) == 0 {
			return noAnswer
		}
		if answer.OtherValue != "" {
			items = append(append([]string{}, items...), fmt.Sprintf("Other: %s", answer.OtherValue))
		}
		return strings.Join(items, "; ")
	}

	base := trimmed(answer.Value.Text())
	if base == "" {
		return noAnswer
	}
	if base == OtherOption && answer.OtherValue != "" {
		return fmt.Sprintf("Other: %s", answer.OtherValue)
	}
	return base
}

type RenderedAnswer struct {
	QuestionID   string `json:"question_id"`
	QuestionText string `json:"question_text"`
	Answer       string `json:"answer"`
}

type RenderedSection struct {
	SectionID    string           `json:"section_id"`
	SectionTitle string           `json:"section_title"`
	Answers      []RenderedAnswer `json:"answers"`
}

// RenderAnswers lays a stored answer map back over the form definition in
// schema order, applying the same visibility rules the respondent saw.
// Questions hidden by an unsatisfied condition are omitted entirely.
func (f *Form) RenderAnswers(answers map[string]model.StoredAnswer) []RenderedSection {
	values := make(map[string]model.Value, len(answers))
	for id, answer := range answers {
		values[id] = answer.Value
	}

	rendered := make([]RenderedSection, 0, len(f.Sections))
	for si := range f.Sections {
		section := &f.Sections[si]
		out := RenderedSection{SectionID: section.ID, SectionTitle: section.Title}

		for qi := range section.Questions {
			q := &section.Questions[qi]
			if !IsVisible(q, values) {
				continue
			}

			var display string
			if answer, ok := answers[q.ID]; ok {
				display = DisplayAnswer(&answer)
			} else {
				display = DisplayAnswer(nil)
			}
			out.Answers = append(out.Answers, RenderedAnswer{
				QuestionID:   q.ID,
				QuestionText: q.Text,
				Answer:       display,
			})
		}

		rendered = append(rendered, out)
	}
	return rendered
}

// Progress counts answered and total required questions among those
// currently visible, for progress reporting. The same predicates back both
// this and validation, so what the respondent sees always matches what is
// enforced.
func (f *Form) Progress(answers map[string]model.Value) (answered, required int) {
	for si := range f.Sections {
		section := &f.Sections[si]
		for qi := range section.Questions {
			q := &section.Questions[qi]
			if !q.Required || !IsVisible(q, answers) {
				continue
			}
			required++
			if IsAnswered(q, answers[q.ID]) {
				answered++
			}
		}
	}
	return answered, required
}
