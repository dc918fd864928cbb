package feedback

import "github.com/maturapolski/matura/internal/exercise"

// Outcome classifies a submission.
type Outcome int

const (
	Incorrect Outcome = iota
	PartiallyCorrect
	Correct
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case PartiallyCorrect:
		return "partially_correct"
	default:
		return "incorrect"
	}
}

// Classify applies the precedence: any positive score is correct, then the
// partial flag on open exercises, else incorrect.
func Classify(ex *exercise.Exercise, r *Result) Outcome {
	if r == nil {
		return Incorrect
	}
	if r.Score > 0 {
		return Correct
	}
	if ex != nil && ex.Kind.IsClosed() {
		return Incorrect
	}
	if d := r.Details(); d != nil && d.IsPartiallyCorrect {
		return PartiallyCorrect
	}
	return Incorrect
}

// SectionKind identifies one block of the feedback panel.
type SectionKind int

const (
	SectionCorrectAnswer SectionKind = iota
	SectionExplanation
	SectionNarrative
	SectionCorrectElements
	SectionMissingElements
	SectionModelAnswer
	SectionSuggestions
	SectionRubric
)

// RubricItem is one essay sub-score.
type RubricItem struct {
	Key   string
	Score float64
	Max   float64
}

// Rubric maxima for the written part of the exam.
const (
	MaxFormal      = 1
	MaxLiterary    = 16
	MaxComposition = 7
	MaxLanguage    = 11
)

// Section is a single renderable block. Only the fields relevant to Kind are set.
type Section struct {
	Kind   SectionKind
	Text   string
	Items  []string
	Rubric []RubricItem
}

// Report is what the feedback panel renders.
type Report struct {
	Outcome  Outcome
	Score    float64
	MaxScore float64
	Closed   bool
	Sections []Section
}

// Interpret maps a result for ex into an ordered list of sections. Missing
// optional fields produce no section.
func Interpret(ex *exercise.Exercise, r *Result) Report {
	rep := Report{Outcome: Classify(ex, r)}
	if r == nil {
		return rep
	}
	rep.Score = r.Score

	d := r.Details()
	if ex != nil {
		rep.Closed = ex.Kind.IsClosed()
		rep.MaxScore = float64(ex.Points)
	}
	if d != nil && d.MaxScore > 0 {
		rep.MaxScore = d.MaxScore
	}
	if d == nil {
		return rep
	}

	if rep.Closed {
		if rep.Outcome != Correct && d.CorrectAnswerText != "" {
			rep.Sections = append(rep.Sections, Section{Kind: SectionCorrectAnswer, Text: d.CorrectAnswerText})
		}
		if d.Explanation != "" {
			rep.Sections = append(rep.Sections, Section{Kind: SectionExplanation, Text: d.Explanation})
		}
		return rep
	}

	if d.Message != "" {
		rep.Sections = append(rep.Sections, Section{Kind: SectionNarrative, Text: string(d.Message)})
	}
	if len(d.CorrectElements) > 0 {
		rep.Sections = append(rep.Sections, Section{Kind: SectionCorrectElements, Items: d.CorrectElements})
	}
	if len(d.MissingElements) > 0 {
		rep.Sections = append(rep.Sections, Section{Kind: SectionMissingElements, Items: d.MissingElements})
	}
	if d.CorrectAnswer != "" {
		rep.Sections = append(rep.Sections, Section{Kind: SectionModelAnswer, Text: d.CorrectAnswer})
	}
	if len(d.Suggestions) > 0 {
		rep.Sections = append(rep.Sections, Section{Kind: SectionSuggestions, Items: d.Suggestions})
	}
	if ex != nil && ex.Kind == exercise.KindEssay && d.hasDetailed() {
		if items := rubric(d); len(items) > 0 {
			rep.Sections = append(rep.Sections, Section{Kind: SectionRubric, Rubric: items})
		}
	}
	return rep
}

func rubric(d *Feedback) []RubricItem {
	var items []RubricItem
	add := func(key string, v *float64, max float64) {
		if v != nil {
			items = append(items, RubricItem{Key: key, Score: *v, Max: max})
		}
	}
	add("formal", d.FormalScore, MaxFormal)
	add("literary", d.LiteraryScore, MaxLiterary)
	add("composition", d.CompositionScore, MaxComposition)
	add("language", d.LanguageScore, MaxLanguage)
	return items
}
