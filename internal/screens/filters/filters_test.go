package filters

import (
	"reflect"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen/screentest"
	"github.com/maturapolski/matura/internal/session"
)

func send(t *testing.T, e Editor, msgs ...tea.KeyPressMsg) (Editor, Result) {
	t.Helper()
	res := Editing
	for _, m := range msgs {
		e, res, _ = e.Update(m)
	}
	return e, res
}

// unsequence runs cmd and returns the commands of the tea.Sequence it built.
func unsequence(cmd tea.Cmd) []tea.Cmd {
	msg := cmd()
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice {
		return []tea.Cmd{func() tea.Msg { return msg }}
	}
	var out []tea.Cmd
	for i := 0; i < v.Len(); i++ {
		if c, ok := v.Index(i).Interface().(tea.Cmd); ok && c != nil {
			out = append(out, c)
		}
	}
	return out
}

func TestEditorCyclesTypeAndCategory(t *testing.T) {
	e := NewEditor(session.Filters{})

	e, _ = send(t, e, screentest.Special(tea.KeyRight), screentest.Special(tea.KeyRight))
	assert.Equal(t, exercise.AllKinds[1], e.Value().Type)

	// Left from the first option wraps back to "any".
	e, _ = send(t, e, screentest.Special(tea.KeyLeft), screentest.Special(tea.KeyLeft))
	assert.Equal(t, exercise.Kind(""), e.Value().Type)

	e, _ = send(t, e, screentest.Special(tea.KeyDown), screentest.Special(tea.KeyLeft))
	assert.Equal(t, exercise.AllCategories[len(exercise.AllCategories)-1], e.Value().Category)
}

func TestEditorDifficultyToggles(t *testing.T) {
	e := NewEditor(session.Filters{})
	e, _ = send(t, e, screentest.Special(tea.KeyUp)) // wraps to the difficulty row
	e, _ = send(t, e, screentest.Key('4'), screentest.Key('2'))
	assert.Equal(t, []int{2, 4}, e.Value().Difficulty)

	e, _ = send(t, e, screentest.Key('4'))
	assert.Equal(t, []int{2}, e.Value().Difficulty)
}

func TestEditorClearAndResults(t *testing.T) {
	e := NewEditor(session.Filters{Type: exercise.KindEssay, Epoch: "Barok", Difficulty: []int{3}})

	e, res := send(t, e, screentest.Ctrl('x'))
	assert.Equal(t, Editing, res)
	assert.True(t, e.Value().IsEmpty())

	_, res = send(t, e, screentest.Special(tea.KeyEnter))
	assert.Equal(t, Saved, res)
	_, res = send(t, e, screentest.Special(tea.KeyEscape))
	assert.Equal(t, Discarded, res)
}

func TestEditorDoesNotAliasInput(t *testing.T) {
	in := session.Filters{Difficulty: []int{1}}
	e := NewEditor(in)
	e, _ = send(t, e, screentest.Special(tea.KeyUp), screentest.Key('2'))
	assert.Equal(t, []int{1}, in.Difficulty)
	assert.Equal(t, []int{1, 2}, e.Value().Difficulty)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, i18n.T("filters.none"), Summary(session.Filters{}))

	s := Summary(session.Filters{
		Category:   exercise.CategoryWriting,
		Epoch:      "Romantyzm",
		Difficulty: []int{1, 3},
	})
	assert.Contains(t, s, CategoryLabel(exercise.CategoryWriting))
	assert.Contains(t, s, "Romantyzm")
	assert.Contains(t, s, "1,3")
}

func TestLabels(t *testing.T) {
	for _, k := range exercise.AllKinds {
		assert.NotContains(t, KindLabel(k), "kind.", "missing label for %s", k)
	}
	for _, c := range exercise.AllCategories {
		assert.NotContains(t, CategoryLabel(c), "category.", "missing label for %s", c)
	}
	assert.Equal(t, i18n.T("filters.any"), KindLabel(""))
}

func TestScreenSavesAndPops(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps)

	_, _ = s.Update(screentest.Special(tea.KeyRight))
	_, cmd := s.Update(screentest.Special(tea.KeyEnter))
	require.NotNil(t, cmd)

	var popped bool
	for _, c := range unsequence(cmd) {
		if _, ok := c().(router.PopScreenMsg); ok {
			popped = true
		}
	}
	assert.True(t, popped)

	want := session.Filters{Type: exercise.AllKinds[0]}
	assert.Equal(t, want, f.Deps.Session.Snapshot().Filters)
	require.Len(t, f.Filters.Saved, 1)
	assert.Equal(t, want, f.Filters.Saved[0])
}

func TestScreenEscDiscards(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps)

	_, _ = s.Update(screentest.Special(tea.KeyRight))
	_, cmd := s.Update(screentest.Special(tea.KeyEscape))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
	assert.True(t, f.Deps.Session.Snapshot().Filters.IsEmpty())
	assert.Empty(t, f.Filters.Saved)
}
