package form

import (
	"encoding/json"
	"fmt"

	"github.com/hanco1/D2Cdashboard/model"
)

// AnonymousName is substituted for the name question when the respondent
// leaves it blank or out of the payload entirely.
const AnonymousName = "Anonymous"

// ErrInvalidPayload is the single error reported when the payload shape does
// not decode to maps of strings or string lists.
const ErrInvalidPayload = "Payload format is invalid."

// Payload is the wire shape of a submission: raw answers keyed by question
// id, plus free text for questions answered with "Other".
type Payload struct {
	Answers   map[string]model.Value `json:"answers"`
	OtherText map[string]string      `json:"other_text"`
}

// Result is the outcome of validating a payload. On success Answers holds the
// full normalized answer map; on failure Errors holds every problem found,
// not just the first.
type Result struct {
	OK      bool
	Errors  []string
	Answers map[string]model.StoredAnswer
}

// ParsePayload decodes a raw JSON submission body. Any shape mismatch is
// collapsed into the single generic payload error. Leaving other_text out
// defaults it to empty; an explicit null does not.
func ParsePayload(data []byte) (Payload, bool) {
	var raw struct {
		Answers   map[string]model.Value `json:"answers"`
		OtherText json.RawMessage        `json:"other_text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Payload{}, false
	}
	if raw.Answers == nil {
		return Payload{}, false
	}

	p := Payload{Answers: raw.Answers, OtherText: map[string]string{}}
	if len(raw.OtherText) > 0 {
		var other map[string]string
		if err := json.Unmarshal(raw.OtherText, &other); err != nil || other == nil {
			return Payload{}, false
		}
		p.OtherText = other
	}
	return p, true
}

// ValidateRaw decodes and validates a JSON submission body in one step.
func (f *Form) ValidateRaw(data []byte) Result {
	p, ok := ParsePayload(data)
	if !ok {
		return Result{Errors: []string{ErrInvalidPayload}}
	}
	return f.Validate(p)
}

// Validate runs the whole payload through visibility, normalization and
// constraint checks, in schema order. Errors accumulate across questions so
// the caller can surface every problem at once.
func (f *Form) Validate(p Payload) Result {
	answers := make(map[string]model.StoredAnswer)
	var errs []string

	for si := range f.Sections {
		section := &f.Sections[si]
		for qi := range section.Questions {
			q := &section.Questions[qi]

			// A hidden question's value, even if supplied, is ignored and
			// never stored.
			if !IsVisible(q, p.Answers) {
				continue
			}

			raw, present := p.Answers[q.ID]
			if !present && q.ID == nameQuestionID && q.Type == model.TypeText {
				raw, present = model.String(AnonymousName), true
			}
			if !present {
				if q.Required {
					errs = append(errs, fmt.Sprintf("Required question is missing: %q (Section: %s).", q.Text, section.Title))
				}
				continue
			}

			value := Normalize(q, raw)
			if q.Type == model.TypeChoice {
				errs = f.validateChoice(q, section, value, p.OtherText, answers, errs)
			} else {
				errs = f.validateText(q, section, value, answers, errs)
			}
		}
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{OK: true, Answers: answers}
}

func (f *Form) validateChoice(q *Question, section *Section, value model.Value, otherText map[string]string, answers map[string]model.StoredAnswer, errs []string) []string {
	if q.AllowMultiple {
		if !value.IsList() {
			return append(errs, formatError(q, section))
		}
		for _, option := range value.Items() {
			if !contains(q.Options, option) {
				return append(errs, optionError(q, section))
			}
		}
	} else {
		if value.IsList() {
			return append(errs, formatError(q, section))
		}
		if value.Text() != "" && !contains(q.Options, value.Text()) {
			return append(errs, optionError(q, section))
		}
	}

	if q.HasOtherOption && includesOther(value) {
		other := trimmed(otherText[q.ID])
		if other == "" {
			return append(errs, fmt.Sprintf("Please specify the \"Other\" value for %q (Section: %s).", q.Text, section.Title))
		}

		// Required is re-checked once the other text is known, so "Other"
		// without a usable value cannot silently satisfy requiredness.
		if q.Required && !IsAnswered(q, value) {
			return append(errs, requiredError(q, section))
		}

		answers[q.ID] = storedAnswer(q, section, value, other)
		return errs
	}

	if q.Required && !IsAnswered(q, value) {
		return append(errs, requiredError(q, section))
	}
	if IsAnswered(q, value) {
		answers[q.ID] = storedAnswer(q, section, value, "")
	}
	return errs
}

func (f *Form) validateText(q *Question, section *Section, value model.Value, answers map[string]model.StoredAnswer, errs []string) []string {
	if value.IsList() {
		return append(errs, formatError(q, section))
	}

	if q.ID == nameQuestionID && trimmed(value.Text()) == "" {
		value = model.String(AnonymousName)
	}

	if q.Required && !IsAnswered(q, value) {
		return append(errs, requiredError(q, section))
	}
	if IsAnswered(q, value) {
		answers[q.ID] = storedAnswer(q, section, value, "")
	}
	return errs
}

func includesOther(v model.Value) bool {
	if v.IsList() {
		return contains(v.Items(), OtherOption)
	}
	return v.Text() == OtherOption
}

func storedAnswer(q *Question, section *Section, value model.Value, other string) model.StoredAnswer {
	return model.StoredAnswer{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		SectionID:    section.ID,
		SectionTitle: section.Title,
		QuestionType: q.Type,
		Required:     q.Required,
		Value:        value,
		OtherValue:   other,
	}
}

func formatError(q *Question, section *Section) string {
	return fmt.Sprintf("Invalid answer format for %q (Section: %s).", q.Text, section.Title)
}

func optionError(q *Question, section *Section) string {
	return fmt.Sprintf("Invalid option selected for %q (Section: %s).", q.Text, section.Title)
}

func requiredError(q *Question, section *Section) string {
	return fmt.Sprintf("This question is required: %q (Section: %s).", q.Text, section.Title)
}
