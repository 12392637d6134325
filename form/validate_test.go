package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanco1/D2Cdashboard/model"
)

func newTestForm() *Form {
	return New(Metadata{Title: "Test Assessment", Version: "0.1"}, []Section{
		{
			ID:    "s1",
			Title: "About You",
			Questions: []Question{
				{
					ID:             "q1",
					Text:           "What is your role?",
					Type:           model.TypeChoice,
					Required:       true,
					HasOtherOption: true,
					Options:        []string{"Estimator", "Project Manager (PM)", OtherOption},
				},
				{
					ID:   "q2",
					Text: "Your name",
					Type: model.TypeText,
				},
			},
		},
		{
			ID:    "s2",
			Title: "Pain Points",
			Questions: []Question{
				{
					ID:         "q7",
					Text:       "What is your biggest pain point?",
					Type:       model.TypeText,
					Required:   true,
					LongAnswer: true,
				},
				{
					ID:      "q5",
					Text:    "How often do you re-enter data?",
					Type:    model.TypeChoice,
					Options: []string{"Almost daily", "Several times per week", "Occasionally"},
				},
				{
					ID:             "q16",
					Text:           "What should we automate?",
					Type:           model.TypeChoice,
					AllowMultiple:  true,
					HasOtherOption: true,
					Options:        []string{"Extract PDFs", "Auto-fill forms", OtherOption},
				},
				{
					ID:       "q11",
					Text:     "Which estimating aid would help most?",
					Type:     model.TypeChoice,
					Required: true,
					Options:  []string{"Historical pricing", "Quote comparison"},
					ConditionalOn: &ConditionalRule{
						QuestionID: "q1",
						Condition:  ConditionEqual,
						Value:      "Project Manager (PM)",
					},
				},
			},
		},
	})
}

func TestValidate(t *testing.T) {
	f := newTestForm()

	t.Run("valid minimal payload", func(t *testing.T) {
		pain := strings.Repeat("x", 150)
		result := f.Validate(Payload{
			Answers: map[string]model.Value{
				"q1": model.String("Estimator"),
				"q7": model.String(pain),
			},
			OtherText: map[string]string{},
		})

		require.True(t, result.OK, "errors: %v", result.Errors)
		assert.Equal(t, pain, result.Answers["q7"].Value.Text())

		// absent name falls back to the anonymous affordance
		assert.Equal(t, AnonymousName, result.Answers["q2"].Value.Text())

		// derived fields over the validated map
		assert.Equal(t, pain, DeriveHeadline(result.Answers))
		assert.Equal(t, model.PriorityLow, DerivePriority(result.Answers))
	})

	t.Run("missing required question names it", func(t *testing.T) {
		result := f.Validate(Payload{
			Answers: map[string]model.Value{
				"q7": model.String("something"),
			},
		})

		require.False(t, result.OK)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "What is your role?")
		assert.Contains(t, result.Errors[0], "About You")
	})

	t.Run("errors accumulate across questions", func(t *testing.T) {
		result := f.Validate(Payload{Answers: map[string]model.Value{}})

		require.False(t, result.OK)
		assert.Len(t, result.Errors, 2) // q1 and q7 both missing
	})

	t.Run("hidden required question is skipped", func(t *testing.T) {
		// q11 requires q1 == "Project Manager (PM)"; with Estimator it is
		// hidden, so leaving it unanswered is fine.
		result := f.Validate(Payload{
			Answers: map[string]model.Value{
				"q1": model.String("Estimator"),
				"q7": model.String("pain"),
			},
		})
		require.True(t, result.OK, "errors: %v", result.Errors)
		_, stored := result.Answers["q11"]
		assert.False(t, stored)
	})

	t.Run("hidden question value is never stored", func(t *testing.T) {
		result := f.Validate(Payload{
			Answers: map[string]model.Value{
				"q1":  model.String("Estimator"),
				"q7":  model.String("pain"),
				"q11": model.String("Historical pricing"),
			},
		})
		require.True(t, result.OK, "errors: %v", result.Errors)
		_, stored := result.Answers["q11"]
		assert.False(t, stored)
	})

	t.Run("invalid option rejected", func(t *testing.T) {
		result := f.Validate(Payload{
			Answers: map[string]model.Value{
				"q1": model.String("Astronaut"),
				"q7": model.String("pain"),
			},
		})
		require.False(t, result.OK)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "Invalid option")
	})

	t.Run("invalid option in multi-select rejected", func(t *testing.T) {
		result := f.Validate(Payload{
			Answers: map[string]model.Value{
				"q1":  model.String("Estimator"),
				"q7":  model.String("pain"),
				"q16": model.List("Extract PDFs", "Teleportation"),
			},
		})
		require.False(t, result.OK)
		assert.Contains(t, result.Errors[0], "Invalid option")
	})

	t.Run("Other requires free text even on optional questions", func(t *testing.T) {
		result := f.Validate(Payload{
			Answers: map[string]model.Value{
				"q1":  model.String("Estimator"),
				"q7":  model.String("pain"),
				"q16": model.List(OtherOption),
			},
		})
		require.False(t, result.OK)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], `"Other"`)
	})

	t.Run("Other with text is captured", func(t *testing.T) {
		result := f.Validate(Payload{
			Answers: map[string]model.Value{
				"q1":  model.String(OtherOption),
				"q7":  model.String("pain"),
				"q16": model.List("Extract PDFs", OtherOption),
			},
			OtherText: map[string]string{
				"q1":  "Foreman",
				"q16": "  Daily summaries  ",
			},
		})
		require.True(t, result.OK, "errors: %v", result.Errors)
		assert.Equal(t, "Foreman", result.Answers["q1"].OtherValue)
		assert.Equal(t, "Daily summaries", result.Answers["q16"].OtherValue)
	})

	t.Run("blank name becomes Anonymous", func(t *testing.T) {
		result := f.Validate(Payload{
			Answers: map[string]model.Value{
				"q1": model.String("Estimator"),
				"q2": model.String("   "),
				"q7": model.String("pain"),
			},
		})
		require.True(t, result.OK, "errors: %v", result.Errors)
		assert.Equal(t, AnonymousName, result.Answers["q2"].Value.Text())
	})

	t.Run("unanswered optional questions are not stored", func(t *testing.T) {
		result := f.Validate(Payload{
			Answers: map[string]model.Value{
				"q1":  model.String("Estimator"),
				"q7":  model.String("pain"),
				"q16": model.List(),
			},
		})
		require.True(t, result.OK, "errors: %v", result.Errors)
		_, stored := result.Answers["q16"]
		assert.False(t, stored)
	})
}

func TestValidateRaw(t *testing.T) {
	f := newTestForm()

	t.Run("good payload passes through", func(t *testing.T) {
		result := f.ValidateRaw([]byte(`{
			"answers": {"q1": "Estimator", "q7": "pain", "q16": ["Extract PDFs"]},
			"other_text": {}
		}`))
		assert.True(t, result.OK, "errors: %v", result.Errors)
	})

	t.Run("malformed shapes collapse to one generic error", func(t *testing.T) {
		for _, body := range []string{
			`not json`,
			`{"answers": 42}`,
			`{"answers": {"q1": 7}}`,
			`{"answers": {"q1": {"nested": true}}}`,
			`{"answers": null}`,
			`{"answers": {"q1": "Estimator", "q7": "pain", "q2": null}}`,
			`{"answers": {"q1": "Estimator", "q7": "pain", "q16": ["Extract PDFs", null]}}`,
			`{"answers": {"q1": "Estimator", "q7": "pain"}, "other_text": null}`,
			`{"other_text": {}}`,
		} {
			result := f.ValidateRaw([]byte(body))
			assert.False(t, result.OK, "body: %s", body)
			assert.Equal(t, []string{ErrInvalidPayload}, result.Errors, "body: %s", body)
		}
	})
}

func TestValidateDefaultForm(t *testing.T) {
	f := Default()

	result := f.Validate(Payload{
		Answers: map[string]model.Value{
			"q1":  model.String("Estimator"),
			"q3":  model.String("Bids and takeoffs"),
			"q4":  model.List("Microsoft Excel", "SharePoint"),
			"q5":  model.String("Almost daily"),
			"q7":  model.String("Rebuilding cost assumptions for every bid."),
			"q8":  model.String("Daily"),
			"q9":  model.List("Historical Bid"),
			"q15": model.String("Heard of it, tried occasionally"),
			"q16": model.List("Extract key information from PDFs"),
			"q18": model.String("Bid risk analysis assistant"),
			"q19": model.String("Can accept 1-2 hours of training"),
		},
	})

	require.True(t, result.OK, "errors: %v", result.Errors)
	assert.Equal(t, "Anonymous", PreferredName(result.Answers))
	assert.Equal(t, "Estimator", PreferredRole(result.Answers))
	assert.Equal(t, "Bid risk analysis assistant", DeriveFocusArea(result.Answers))
	assert.Equal(t, model.PriorityHigh, DerivePriority(result.Answers))
}
