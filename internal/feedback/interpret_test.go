package feedback

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maturapolski/matura/internal/exercise"
)

func sectionKinds(rep Report) []SectionKind {
	var out []SectionKind
	for _, s := range rep.Sections {
		out = append(out, s.Kind)
	}
	return out
}

func TestClassify(t *testing.T) {
	closed := &exercise.Exercise{Kind: exercise.KindClosedSingle}
	open := &exercise.Exercise{Kind: exercise.KindShortAnswer}
	partial := &Feedback{IsPartiallyCorrect: true}

	tests := []struct {
		name string
		ex   *exercise.Exercise
		res  *Result
		want Outcome
	}{
		{"nil result", open, nil, Incorrect},
		{"positive score closed", closed, &Result{Score: 1}, Correct},
		{"zero score closed", closed, &Result{Score: 0}, Incorrect},
		{"closed never partial", closed, &Result{Score: 0, Feedback: partial}, Incorrect},
		{"positive score wins over partial flag", open, &Result{Score: 2, Assessment: partial}, Correct},
		{"partial flag", open, &Result{Score: 0, Assessment: partial}, PartiallyCorrect},
		{"open zero", open, &Result{Score: 0, Assessment: &Feedback{}}, Incorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ex, tt.res))
		})
	}
}

func TestInterpret_ClosedIncorrect(t *testing.T) {
	ex := &exercise.Exercise{Kind: exercise.KindClosedSingle, Points: 1}
	res := &Result{Feedback: &Feedback{CorrectAnswerText: "B", Explanation: "Bo tak"}}

	rep := Interpret(ex, res)
	assert.Equal(t, Incorrect, rep.Outcome)
	assert.True(t, rep.Closed)
	assert.Equal(t, []SectionKind{SectionCorrectAnswer, SectionExplanation}, sectionKinds(rep))
	assert.Equal(t, "B", rep.Sections[0].Text)
}

func TestInterpret_ClosedCorrectHidesAnswer(t *testing.T) {
	ex := &exercise.Exercise{Kind: exercise.KindClosedMultiple, Points: 2}
	res := &Result{Score: 2, Feedback: &Feedback{CorrectAnswerText: "A, C"}}

	rep := Interpret(ex, res)
	assert.Equal(t, Correct, rep.Outcome)
	assert.Empty(t, rep.Sections)
	assert.Equal(t, float64(2), rep.MaxScore)
}

func TestInterpret_OpenAllSections(t *testing.T) {
	formal, literary := 1.0, 12.0
	ex := &exercise.Exercise{Kind: exercise.KindEssay, Points: 35}
	res := &Result{
		Score: 20,
		Assessment: &Feedback{
			Message:          "Dobra praca",
			CorrectElements:  []string{"teza"},
			MissingElements:  []string{"kontekst"},
			CorrectAnswer:    "Wzór",
			Suggestions:      []string{"więcej przykładów"},
			MaxScore:         35,
			DetailedFeedback: json.RawMessage(`{"x":1}`),
			FormalScore:      &formal,
			LiteraryScore:    &literary,
		},
	}

	rep := Interpret(ex, res)
	assert.Equal(t, []SectionKind{
		SectionNarrative, SectionCorrectElements, SectionMissingElements,
		SectionModelAnswer, SectionSuggestions, SectionRubric,
	}, sectionKinds(rep))

	rub := rep.Sections[len(rep.Sections)-1].Rubric
	require.Len(t, rub, 2)
	assert.Equal(t, RubricItem{Key: "formal", Score: 1, Max: MaxFormal}, rub[0])
	assert.Equal(t, RubricItem{Key: "literary", Score: 12, Max: MaxLiterary}, rub[1])
}

func TestInterpret_RubricOnlyForEssay(t *testing.T) {
	formal := 1.0
	ex := &exercise.Exercise{Kind: exercise.KindSynthesisNote, Points: 4}
	res := &Result{Assessment: &Feedback{DetailedFeedback: json.RawMessage(`true`), FormalScore: &formal}}

	rep := Interpret(ex, res)
	assert.Empty(t, rep.Sections)
	assert.Equal(t, float64(4), rep.MaxScore, "falls back to exercise points")
}

func TestInterpret_EmptyFeedback(t *testing.T) {
	ex := &exercise.Exercise{Kind: exercise.KindShortAnswer, Points: 2}
	rep := Interpret(ex, &Result{Score: 0})
	assert.Equal(t, Incorrect, rep.Outcome)
	assert.Empty(t, rep.Sections)
}

func TestResultDecode(t *testing.T) {
	t.Run("feedback as string", func(t *testing.T) {
		var r Result
		require.NoError(t, json.Unmarshal([]byte(`{"score":0,"assessment":{"feedback":"Za krótko","isPartiallyCorrect":true}}`), &r))
		d := r.Details()
		require.NotNil(t, d)
		assert.Equal(t, Message("Za krótko"), d.Message)
		assert.True(t, d.IsPartiallyCorrect)
	})
	t.Run("feedback as object", func(t *testing.T) {
		var r Result
		require.NoError(t, json.Unmarshal([]byte(`{"score":3,"assessment":{"feedback":{"message":"Świetnie"}}}`), &r))
		assert.Equal(t, Message("Świetnie"), r.Details().Message)
	})
	t.Run("feedback preferred over assessment", func(t *testing.T) {
		var r Result
		require.NoError(t, json.Unmarshal([]byte(`{"score":1,"feedback":{"explanation":"a"},"assessment":{"explanation":"b"}}`), &r))
		assert.Equal(t, "a", r.Details().Explanation)
	})
}
