package exercise

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("słowo ", n))
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"only whitespace", "  \n\t ", 0},
		{"single", "Pan", 1},
		{"collapsed separators", "Pan   Tadeusz\n\tto  epopeja", 4},
		{"leading and trailing", "  Lalka  ", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordCount(tt.in))
		})
	}
}

func TestCanSubmit_ClosedSingle(t *testing.T) {
	ex := &Exercise{Kind: KindClosedSingle, Content: ChoiceContent{Options: []string{"A", "B", "C"}}}

	assert.False(t, CanSubmit(ex, nil))
	assert.True(t, CanSubmit(ex, ChoiceAnswer{Index: 0}), "first option is a valid selection")
	assert.True(t, CanSubmit(ex, ChoiceAnswer{Index: 2}))
	assert.False(t, CanSubmit(ex, ChoiceAnswer{Index: 3}))
	assert.False(t, CanSubmit(ex, ChoiceAnswer{Index: -1}))
	assert.False(t, CanSubmit(ex, TextAnswer{Text: "A"}))
}

func TestCanSubmit_ClosedMultiple(t *testing.T) {
	ex := &Exercise{Kind: KindClosedMultiple, Content: ChoiceContent{Options: []string{"A", "B", "C"}}}

	assert.False(t, CanSubmit(ex, MultiChoiceAnswer{}))
	assert.False(t, CanSubmit(ex, MultiChoiceAnswer{Indices: []int{}}))
	assert.True(t, CanSubmit(ex, MultiChoiceAnswer{Indices: []int{1}}))
	assert.True(t, CanSubmit(ex, MultiChoiceAnswer{Indices: []int{0, 2}}))
}

func TestCanSubmit_Text(t *testing.T) {
	for _, kind := range []Kind{KindShortAnswer, KindSynthesisNote} {
		t.Run(string(kind), func(t *testing.T) {
			ex := &Exercise{Kind: kind, Content: TextContent{}}
			assert.False(t, CanSubmit(ex, TextAnswer{Text: ""}))
			assert.False(t, CanSubmit(ex, TextAnswer{Text: "   \n"}))
			assert.True(t, CanSubmit(ex, TextAnswer{Text: " metafora "}))
		})
	}
}

func TestCanSubmit_EssayBoundary(t *testing.T) {
	ex := &Exercise{Kind: KindEssay, Content: EssayContent{WordLimit: &WordLimit{Min: 50}}}

	assert.False(t, CanSubmit(ex, TextAnswer{Text: words(49)}))
	assert.True(t, CanSubmit(ex, TextAnswer{Text: words(50)}))
	assert.True(t, CanSubmit(ex, TextAnswer{Text: words(51)}))
}

func TestMinWords(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		ex := &Exercise{Kind: KindEssay, Content: EssayContent{}}
		assert.Equal(t, DefaultEssayMinWords, ex.MinWords())
	})
	t.Run("content wins", func(t *testing.T) {
		ex := &Exercise{
			Kind:     KindEssay,
			Content:  EssayContent{WordLimit: &WordLimit{Min: 300, Max: 500}},
			Metadata: &Metadata{WordLimit: &WordLimit{Min: 200}},
		}
		assert.Equal(t, 300, ex.MinWords())
		assert.Equal(t, 500, ex.MaxWords())
	})
	t.Run("metadata fallback", func(t *testing.T) {
		ex := &Exercise{
			Kind:     KindEssay,
			Content:  EssayContent{},
			Metadata: &Metadata{WordLimit: &WordLimit{Min: 200, Max: 250}},
		}
		assert.Equal(t, 200, ex.MinWords())
		assert.Equal(t, 250, ex.MaxWords())
	})
}

func TestWordsToMinimum(t *testing.T) {
	ex := &Exercise{Kind: KindEssay, Content: EssayContent{WordLimit: &WordLimit{Min: 10}}}
	assert.Equal(t, 7, WordsToMinimum(ex, words(3)))
	assert.Equal(t, 0, WordsToMinimum(ex, words(12)))
}

func TestMultiChoiceToggle(t *testing.T) {
	var a MultiChoiceAnswer
	a = a.Toggle(2)
	a = a.Toggle(0)
	assert.Equal(t, []int{2, 0}, a.Indices)

	b := a.Toggle(2)
	assert.Equal(t, []int{0}, b.Indices)
	assert.Equal(t, []int{2, 0}, a.Indices, "toggle must not mutate the receiver")
}

func TestAnswerJSON(t *testing.T) {
	body := map[string]Answer{"answer": ChoiceAnswer{Index: 1}}
	data, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":1}`, string(data))

	data, err = json.Marshal(map[string]Answer{"answer": MultiChoiceAnswer{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":[]}`, string(data))

	data, err = json.Marshal(map[string]Answer{"answer": TextAnswer{Text: "Lalka"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"Lalka"}`, string(data))
}
