package exercise

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind determines the expected answer shape and the submit rule.
type Kind string

const (
	KindClosedSingle   Kind = "CLOSED_SINGLE"
	KindClosedMultiple Kind = "CLOSED_MULTIPLE"
	KindShortAnswer    Kind = "SHORT_ANSWER"
	KindSynthesisNote  Kind = "SYNTHESIS_NOTE"
	KindEssay          Kind = "ESSAY"
)

// AllKinds lists every exercise kind in display order.
var AllKinds = []Kind{KindClosedSingle, KindClosedMultiple, KindShortAnswer, KindSynthesisNote, KindEssay}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindClosedSingle, KindClosedMultiple, KindShortAnswer, KindSynthesisNote, KindEssay:
		return true
	}
	return false
}

// IsClosed is true for the option-picking kinds.
func (k Kind) IsClosed() bool {
	return k == KindClosedSingle || k == KindClosedMultiple
}

// Category groups exercises by exam section.
type Category string

const (
	CategoryLanguageUse        Category = "LANGUAGE_USE"
	CategoryHistoricalLiterary Category = "HISTORICAL_LITERARY"
	CategoryWriting            Category = "WRITING"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{CategoryLanguageUse, CategoryHistoricalLiterary, CategoryWriting}

// DefaultEssayMinWords applies when neither content nor metadata carry a minimum.
const DefaultEssayMinWords = 50

// WordLimit bounds an essay's length. Zero means unset.
type WordLimit struct {
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`
}

// Content is the kind-specific payload of an exercise. The concrete type is
// selected by the exercise kind when decoding.
type Content interface {
	contentKind() string
}

// ChoiceContent backs ClosedSingle and ClosedMultiple exercises.
type ChoiceContent struct {
	Text    string   `json:"text,omitempty"`
	Options []string `json:"options,omitempty"`
}

func (ChoiceContent) contentKind() string { return "choice" }

// TextContent backs ShortAnswer and SynthesisNote exercises.
type TextContent struct {
	Instruction string `json:"instruction,omitempty"`
	Phrase      string `json:"phrase,omitempty"`
	Work        string `json:"work,omitempty"`
}

func (TextContent) contentKind() string { return "text" }

// EssayStructure lists the structural hints shown above the essay input.
type EssayStructure struct {
	Introduction string `json:"introduction,omitempty"`
	ArgumentsFor string `json:"arguments_for,omitempty"`
	Conclusion   string `json:"conclusion,omitempty"`
}

// EssayContent backs Essay exercises.
type EssayContent struct {
	Thesis       string          `json:"thesis,omitempty"`
	Structure    *EssayStructure `json:"structure,omitempty"`
	Requirements []string        `json:"requirements,omitempty"`
	WordLimit    *WordLimit      `json:"wordLimit,omitempty"`
}

func (EssayContent) contentKind() string { return "essay" }

// Metadata carries the few metadata fields the client reads.
type Metadata struct {
	WordLimit *WordLimit `json:"wordLimit,omitempty"`
}

// Exercise is a single question served by the remote learning API.
type Exercise struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"type"`
	Category   Category  `json:"category"`
	Epoch      string    `json:"epoch,omitempty"`
	Difficulty int       `json:"difficulty"`
	Points     int       `json:"points"`
	Question   string    `json:"question"`
	Content    Content   `json:"content,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Metadata   *Metadata `json:"metadata,omitempty"`
}

type exerciseWire struct {
	ID         string          `json:"id"`
	Kind       Kind            `json:"type"`
	Category   Category        `json:"category"`
	Epoch      string          `json:"epoch,omitempty"`
	Difficulty int             `json:"difficulty"`
	Points     int             `json:"points"`
	Question   string          `json:"question"`
	Content    json.RawMessage `json:"content,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
	Metadata   *Metadata       `json:"metadata,omitempty"`
}

// UnmarshalJSON decodes the content payload into the type matching the kind.
func (e *Exercise) UnmarshalJSON(data []byte) error {
	var w exerciseWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	content, err := decodeContent(w.Kind, w.Content)
	if err != nil {
		return fmt.Errorf("exercise %s: %w", w.ID, err)
	}

	*e = Exercise{
		ID:         w.ID,
		Kind:       w.Kind,
		Category:   w.Category,
		Epoch:      w.Epoch,
		Difficulty: w.Difficulty,
		Points:     w.Points,
		Question:   w.Question,
		Content:    content,
		Tags:       w.Tags,
		Metadata:   w.Metadata,
	}
	return nil
}

func decodeContent(kind Kind, raw json.RawMessage) (Content, error) {
	empty := len(raw) == 0 || string(raw) == "null"

	switch kind {
	case KindClosedSingle, KindClosedMultiple:
		var c ChoiceContent
		if !empty {
			if err := json.Unmarshal(raw, &c); err != nil {
				return nil, fmt.Errorf("decode choice content: %w", err)
			}
		}
		return c, nil
	case KindShortAnswer, KindSynthesisNote:
		var c TextContent
		if !empty {
			if err := json.Unmarshal(raw, &c); err != nil {
				return nil, fmt.Errorf("decode text content: %w", err)
			}
		}
		return c, nil
	case KindEssay:
		var c EssayContent
		if !empty {
			if err := json.Unmarshal(raw, &c); err != nil {
				return nil, fmt.Errorf("decode essay content: %w", err)
			}
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown exercise type %q", kind)
	}
}

// Options returns the answer options of a closed exercise, or nil.
func (e *Exercise) Options() []string {
	if c, ok := e.Content.(ChoiceContent); ok {
		return c.Options
	}
	return nil
}

// Essay returns the essay content, or the zero value for other kinds.
func (e *Exercise) Essay() EssayContent {
	if c, ok := e.Content.(EssayContent); ok {
		return c
	}
	return EssayContent{}
}

// MinWords is the essay word minimum: content limit, then metadata limit,
// then DefaultEssayMinWords.
func (e *Exercise) MinWords() int {
	if wl := e.Essay().WordLimit; wl != nil && wl.Min > 0 {
		return wl.Min
	}
	if e.Metadata != nil && e.Metadata.WordLimit != nil && e.Metadata.WordLimit.Min > 0 {
		return e.Metadata.WordLimit.Min
	}
	return DefaultEssayMinWords
}

// MaxWords is the essay word maximum, 0 when unbounded.
func (e *Exercise) MaxWords() int {
	if wl := e.Essay().WordLimit; wl != nil && wl.Max > 0 {
		return wl.Max
	}
	if e.Metadata != nil && e.Metadata.WordLimit != nil {
		return e.Metadata.WordLimit.Max
	}
	return 0
}

// DifficultyStars renders the difficulty as a row of stars.
func (e *Exercise) DifficultyStars() string {
	if e.Difficulty < 1 {
		return ""
	}
	return strings.Repeat("★", e.Difficulty)
}
