package exercise

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ClosedSingle(t *testing.T) {
	raw := []byte(`{
		"id": "ex-1",
		"type": "CLOSED_SINGLE",
		"category": "HISTORICAL_LITERARY",
		"epoch": "ROMANTICISM",
		"difficulty": 2,
		"points": 1,
		"question": "Kto napisał Dziady?",
		"content": {"text": "Fragment", "options": ["Mickiewicz", "Słowacki", "Norwid"]},
		"tags": ["romantyzm"]
	}`)

	ex, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "ex-1", ex.ID)
	assert.Equal(t, KindClosedSingle, ex.Kind)
	assert.Equal(t, []string{"Mickiewicz", "Słowacki", "Norwid"}, ex.Options())
	assert.Equal(t, "★★", ex.DifficultyStars())

	c, ok := ex.Content.(ChoiceContent)
	require.True(t, ok)
	assert.Equal(t, "Fragment", c.Text)
}

func TestDecode_Essay(t *testing.T) {
	raw := []byte(`{
		"id": "ex-9",
		"type": "ESSAY",
		"category": "WRITING",
		"difficulty": 4,
		"points": 35,
		"question": "Napisz rozprawkę",
		"content": {
			"thesis": "Czy warto być uczciwym?",
			"structure": {"introduction": "Teza", "arguments_for": "Dwa argumenty", "conclusion": "Wnioski"},
			"requirements": ["Odwołaj się do lektury"],
			"wordLimit": {"min": 300, "max": 500}
		}
	}`)

	ex, err := Decode(raw)
	require.NoError(t, err)
	essay := ex.Essay()
	assert.Equal(t, "Czy warto być uczciwym?", essay.Thesis)
	require.NotNil(t, essay.Structure)
	assert.Equal(t, "Dwa argumenty", essay.Structure.ArgumentsFor)
	assert.Equal(t, 300, ex.MinWords())
}

func TestDecode_NullContent(t *testing.T) {
	ex, err := Decode([]byte(`{"id":"x","type":"SHORT_ANSWER","difficulty":1,"points":2,"question":"q","content":null}`))
	require.NoError(t, err)
	assert.Equal(t, TextContent{}, ex.Content)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"id":`},
		{"missing id", `{"type":"ESSAY","difficulty":1,"points":1,"question":"q"}`},
		{"unknown type", `{"id":"x","type":"ORAL","difficulty":1,"points":1,"question":"q"}`},
		{"zero difficulty", `{"id":"x","type":"ESSAY","difficulty":0,"points":1,"question":"q"}`},
		{"negative points", `{"id":"x","type":"ESSAY","difficulty":1,"points":-1,"question":"q"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			require.Error(t, err)
			var invalid *ErrInvalidPayload
			assert.True(t, errors.As(err, &invalid))
		})
	}
}
