package exercise

import (
	"encoding/json"
	"slices"
	"strings"
)

// Answer is the client-side buffer for the exercise on screen. A nil Answer
// means nothing has been entered yet.
type Answer interface {
	json.Marshaler
	isAnswer()
}

// ChoiceAnswer is the selected option index of a ClosedSingle exercise.
type ChoiceAnswer struct {
	Index int
}

func (ChoiceAnswer) isAnswer() {}

func (a ChoiceAnswer) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Index)
}

// MultiChoiceAnswer is the set of selected option indices of a
// ClosedMultiple exercise, in selection order.
type MultiChoiceAnswer struct {
	Indices []int
}

func (MultiChoiceAnswer) isAnswer() {}

func (a MultiChoiceAnswer) MarshalJSON() ([]byte, error) {
	if a.Indices == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.Indices)
}

// Has reports whether idx is selected.
func (a MultiChoiceAnswer) Has(idx int) bool {
	return slices.Contains(a.Indices, idx)
}

// Toggle returns a copy with idx added or removed.
func (a MultiChoiceAnswer) Toggle(idx int) MultiChoiceAnswer {
	if a.Has(idx) {
		out := make([]int, 0, len(a.Indices))
		for _, i := range a.Indices {
			if i != idx {
				out = append(out, i)
			}
		}
		return MultiChoiceAnswer{Indices: out}
	}
	out := make([]int, len(a.Indices), len(a.Indices)+1)
	copy(out, a.Indices)
	return MultiChoiceAnswer{Indices: append(out, idx)}
}

// TextAnswer is free text for ShortAnswer, SynthesisNote and Essay exercises.
type TextAnswer struct {
	Text string
}

func (TextAnswer) isAnswer() {}

func (a TextAnswer) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Text)
}

// WordCount counts whitespace-delimited non-empty tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CanSubmit reports whether answer is complete enough to submit for ex.
func CanSubmit(ex *Exercise, answer Answer) bool {
	if ex == nil || answer == nil {
		return false
	}

	switch ex.Kind {
	case KindClosedSingle:
		a, ok := answer.(ChoiceAnswer)
		if !ok || a.Index < 0 {
			return false
		}
		if opts := ex.Options(); len(opts) > 0 && a.Index >= len(opts) {
			return false
		}
		return true
	case KindClosedMultiple:
		a, ok := answer.(MultiChoiceAnswer)
		return ok && len(a.Indices) > 0
	case KindShortAnswer, KindSynthesisNote:
		a, ok := answer.(TextAnswer)
		return ok && len(strings.TrimSpace(a.Text)) > 0
	case KindEssay:
		a, ok := answer.(TextAnswer)
		return ok && WordCount(a.Text) >= ex.MinWords()
	default:
		return false
	}
}

// WordsToMinimum is how many more words an essay answer needs, 0 when met.
func WordsToMinimum(ex *Exercise, text string) int {
	missing := ex.MinWords() - WordCount(text)
	if missing < 0 {
		return 0
	}
	return missing
}
