package i18n

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadKeys(t *testing.T, name string) []string {
	t.Helper()
	data, err := localeFS.ReadFile("locales/" + name)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestLocalesHaveSameKeys(t *testing.T) {
	assert.Equal(t, loadKeys(t, "pl.json"), loadKeys(t, "en.json"))
}

func TestPolishPlurals(t *testing.T) {
	require.NoError(t, Init("pl"))
	t.Cleanup(func() { _ = Init(DefaultLang) })

	assert.Equal(t, "1 zadanie", Tp("history.exercises", 1))
	assert.Equal(t, "3 zadania", Tp("history.exercises", 3))
	assert.Equal(t, "5 zadań", Tp("history.exercises", 5))
	assert.Equal(t, "22 zadania", Tp("history.exercises", 22))
}

func TestEnglishTemplates(t *testing.T) {
	require.NoError(t, Init("en"))
	t.Cleanup(func() { _ = Init(DefaultLang) })

	assert.Equal(t, "en", Lang())
	assert.Equal(t, "2 exercises", Tp("history.exercises", 2))
	assert.Equal(t, "Good morning, Ola!", Td("home.greeting_morning", map[string]any{"Name": "Ola"}))
}

func TestMissingKeyReturnsID(t *testing.T) {
	require.NoError(t, Init("pl"))
	assert.Equal(t, "no.such_key", T("no.such_key"))
}

func TestInitRejectsBadTag(t *testing.T) {
	assert.Error(t, Init("!!"))
}
