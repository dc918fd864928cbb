package feedback

import (
	"encoding/json"
	"fmt"
)

// Result is the server's answer to a submission.
type Result struct {
	Score      float64   `json:"score"`
	Feedback   *Feedback `json:"feedback,omitempty"`
	Assessment *Feedback `json:"assessment,omitempty"`
}

// Details returns the structured feedback. Closed exercises report it under
// "feedback", AI-graded ones under "assessment".
func (r *Result) Details() *Feedback {
	if r == nil {
		return nil
	}
	if r.Feedback != nil {
		return r.Feedback
	}
	return r.Assessment
}

// Message is narrative feedback. The service sends either a bare string or an
// object with a message field.
type Message string

func (m *Message) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = Message(s)
		return nil
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("feedback message: %w", err)
	}
	*m = Message(obj.Message)
	return nil
}

// Feedback is the optional-field record attached to a Result. Absent fields
// stay at their zero value and the matching section is omitted.
type Feedback struct {
	Explanation        string   `json:"explanation,omitempty"`
	CorrectAnswerText  string   `json:"correctAnswerText,omitempty"`
	Message            Message  `json:"feedback,omitempty"`
	CorrectElements    []string `json:"correctElements,omitempty"`
	MissingElements    []string `json:"missingElements,omitempty"`
	CorrectAnswer      string   `json:"correctAnswer,omitempty"`
	Suggestions        []string `json:"suggestions,omitempty"`
	IsPartiallyCorrect bool     `json:"isPartiallyCorrect,omitempty"`
	MaxScore           float64  `json:"maxScore,omitempty"`

	// Essay rubric. DetailedFeedback gates the whole block.
	DetailedFeedback json.RawMessage `json:"detailedFeedback,omitempty"`
	FormalScore      *float64        `json:"formalScore,omitempty"`
	LiteraryScore    *float64        `json:"literaryScore,omitempty"`
	CompositionScore *float64        `json:"compositionScore,omitempty"`
	LanguageScore    *float64        `json:"languageScore,omitempty"`
}

func (f *Feedback) hasDetailed() bool {
	if f == nil || len(f.DetailedFeedback) == 0 {
		return false
	}
	switch string(f.DetailedFeedback) {
	case "null", "false", `""`, "0":
		return false
	}
	return true
}
