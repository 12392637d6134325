package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanco1/D2Cdashboard/model"
)

func TestDisplayAnswer(t *testing.T) {
	t.Run("missing answer", func(t *testing.T) {
		assert.Equal(t, "No answer", DisplayAnswer(nil))
	})

	t.Run("blank values read as no answer", func(t *testing.T) {
		blank := answer(model.String("   "), "")
		assert.Equal(t, "No answer", DisplayAnswer(&blank))

		empty := answer(model.List(), "")
		assert.Equal(t, "No answer", DisplayAnswer(&empty))
	})

	t.Run("list joins with semicolons", func(t *testing.T) {
		a := answer(model.List("A", "B"), "")
		assert.Equal(t, "A; B", DisplayAnswer(&a))
	})

	t.Run("other text expands", func(t *testing.T) {
		multi := answer(model.List("A", "Other"), "custom thing")
		assert.Equal(t, "A; Other; Other: custom thing", DisplayAnswer(&multi))

		single := answer(model.String("Other"), "custom thing")
		assert.Equal(t, "Other: custom thing", DisplayAnswer(&single))
	})
}

func TestRenderAnswers(t *testing.T) {
	f := newTestForm()

	result := f.Validate(Payload{
		Answers: map[string]model.Value{
			"q1": model.String("Estimator"),
			"q2": model.String("Jane"),
			"q7": model.String("pain"),
		},
	})
	require.True(t, result.OK, "errors: %v", result.Errors)

	rendered := f.RenderAnswers(result.Answers)
	require.Len(t, rendered, 2)

	assert.Equal(t, "s1", rendered[0].SectionID)
	require.Len(t, rendered[0].Answers, 2)
	assert.Equal(t, "Estimator", rendered[0].Answers[0].Answer)
	assert.Equal(t, "Jane", rendered[0].Answers[1].Answer)

	// q11 is hidden for estimators, unanswered optionals show as "No answer"
	require.Len(t, rendered[1].Answers, 3)
	assert.Equal(t, "pain", rendered[1].Answers[0].Answer)
	assert.Equal(t, "No answer", rendered[1].Answers[1].Answer)
	assert.Equal(t, "No answer", rendered[1].Answers[2].Answer)
}

func TestProgress(t *testing.T) {
	f := newTestForm()

	t.Run("empty answers", func(t *testing.T) {
		answered, required := f.Progress(nil)
		assert.Equal(t, 0, answered)
		assert.Equal(t, 2, required) // q1 and q7; q11 hidden without q1
	})

	t.Run("conditional requirements appear when triggered", func(t *testing.T) {
		answers := map[string]model.Value{
			"q1": model.String("Project Manager (PM)"),
		}
		answered, required := f.Progress(answers)
		assert.Equal(t, 1, answered)
		assert.Equal(t, 3, required) // q11 is now visible and required
	})

	t.Run("complete", func(t *testing.T) {
		answers := map[string]model.Value{
			"q1": model.String("Estimator"),
			"q7": model.String("pain"),
		}
		answered, required := f.Progress(answers)
		assert.Equal(t, required, answered)
	})
}
