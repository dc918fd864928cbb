// Package filters edits the exercise filters pushed before each fetch.
package filters

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/session"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/layout"
	"github.com/maturapolski/matura/internal/ui/theme"
)

// MaxDifficulty is the highest difficulty level the service uses.
const MaxDifficulty = 5

type row int

const (
	rowType row = iota
	rowCategory
	rowEpoch
	rowDifficulty
	rowCount
)

// Result is what an Editor key press produced.
type Result int

const (
	Editing Result = iota
	Saved
	Discarded
)

// Editor is an inline form over session.Filters.
type Editor struct {
	value  session.Filters
	row    row
	epoch  components.TextInput
	cursor int // difficulty cursor, 0-based
}

// NewEditor starts editing a copy of f.
func NewEditor(f session.Filters) Editor {
	epoch := components.NewTextInput(i18n.T("filters.epoch_placeholder"), false, 40)
	epoch.SetValue(f.Epoch)
	f.Difficulty = slices.Clone(f.Difficulty)
	return Editor{value: f, epoch: epoch}
}

// Value returns the filters as edited so far.
func (e Editor) Value() session.Filters {
	v := e.value
	v.Epoch = strings.TrimSpace(e.epoch.Value())
	v.Difficulty = slices.Clone(v.Difficulty)
	slices.Sort(v.Difficulty)
	return v
}

// Update handles one key. Enter saves, Esc discards, ctrl+x clears all.
func (e Editor) Update(msg tea.Msg) (Editor, Result, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if e.row == rowEpoch {
			var cmd tea.Cmd
			e.epoch, cmd = e.epoch.Update(msg)
			return e, Editing, cmd
		}
		return e, Editing, nil
	}

	switch kmsg.String() {
	case "enter":
		return e, Saved, nil
	case "esc":
		return e, Discarded, nil
	case "ctrl+x":
		e.value = session.Filters{}
		e.epoch.SetValue("")
		return e, Editing, nil
	case "up", "shift+tab":
		return e.move(-1)
	case "down", "tab":
		return e.move(1)
	}

	switch e.row {
	case rowType:
		e.value.Type = cycle(exercise.AllKinds, e.value.Type, kmsg.String())
	case rowCategory:
		e.value.Category = cycle(exercise.AllCategories, e.value.Category, kmsg.String())
	case rowEpoch:
		var cmd tea.Cmd
		e.epoch, cmd = e.epoch.Update(msg)
		return e, Editing, cmd
	case rowDifficulty:
		e.updateDifficulty(kmsg.String())
	}
	return e, Editing, nil
}

func (e Editor) move(delta int) (Editor, Result, tea.Cmd) {
	e.row = row((int(e.row) + delta + int(rowCount)) % int(rowCount))
	if e.row == rowEpoch {
		return e, Editing, e.epoch.Focus()
	}
	e.epoch.Blur()
	return e, Editing, nil
}

func (e *Editor) updateDifficulty(key string) {
	switch key {
	case "left", "h":
		if e.cursor > 0 {
			e.cursor--
		}
		return
	case "right", "l":
		if e.cursor < MaxDifficulty-1 {
			e.cursor++
		}
		return
	case "space", " ":
		e.toggle(e.cursor + 1)
		return
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '0'+MaxDifficulty {
		e.cursor = int(key[0] - '1')
		e.toggle(e.cursor + 1)
	}
}

func (e *Editor) toggle(level int) {
	if i := slices.Index(e.value.Difficulty, level); i >= 0 {
		e.value.Difficulty = slices.Delete(e.value.Difficulty, i, i+1)
		return
	}
	e.value.Difficulty = append(e.value.Difficulty, level)
}

// cycle steps through "" followed by opts with left/right or space.
func cycle[T comparable](opts []T, cur T, key string) T {
	var zero T
	all := append([]T{zero}, opts...)
	i := slices.Index(all, cur)
	if i < 0 {
		i = 0
	}
	switch key {
	case "right", "l", "space", " ":
		i = (i + 1) % len(all)
	case "left", "h":
		i = (i - 1 + len(all)) % len(all)
	default:
		return cur
	}
	return all[i]
}

// View renders the form.
func (e Editor) View(width int) string {
	label := func(r row, text string) string {
		if r == e.row {
			return theme.Selected.Render("▸ " + text)
		}
		return theme.Label.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(label(rowType, i18n.T("filters.type")))
	b.WriteString("   " + chip(KindLabel(e.value.Type)) + "\n\n")
	b.WriteString(label(rowCategory, i18n.T("filters.category")))
	b.WriteString("   " + chip(CategoryLabel(e.value.Category)) + "\n\n")
	b.WriteString(label(rowEpoch, i18n.T("filters.epoch")) + "\n")
	b.WriteString("    " + e.epoch.View() + "\n\n")
	b.WriteString(label(rowDifficulty, i18n.T("filters.difficulty")) + "   ")
	for lvl := 1; lvl <= MaxDifficulty; lvl++ {
		on := slices.Contains(e.value.Difficulty, lvl)
		text := fmt.Sprintf(" %d ", lvl)
		style := theme.Unselected
		if on {
			style = theme.Badge
		}
		if e.row == rowDifficulty && e.cursor == lvl-1 {
			style = style.Underline(true)
		}
		b.WriteString(style.Render(text) + " ")
	}
	if len(e.value.Difficulty) == 0 {
		b.WriteString(theme.Hint.Render(i18n.T("filters.any")))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func chip(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Accent).Render("‹ " + s + " ›")
}

// KindLabel is the display name of an exercise kind; empty means any.
func KindLabel(k exercise.Kind) string {
	if k == "" {
		return i18n.T("filters.any")
	}
	return i18n.T("kind." + strings.ToLower(string(k)))
}

// CategoryLabel is the display name of a category; empty means any.
func CategoryLabel(c exercise.Category) string {
	if c == "" {
		return i18n.T("filters.any")
	}
	return i18n.T("category." + strings.ToLower(string(c)))
}

// Summary is a one-line description of f.
func Summary(f session.Filters) string {
	if f.IsEmpty() {
		return i18n.T("filters.none")
	}
	var parts []string
	if f.Type != "" {
		parts = append(parts, KindLabel(f.Type))
	}
	if f.Category != "" {
		parts = append(parts, CategoryLabel(f.Category))
	}
	if f.Epoch != "" {
		parts = append(parts, f.Epoch)
	}
	if len(f.Difficulty) > 0 {
		lv := make([]string, 0, len(f.Difficulty))
		for _, d := range f.Difficulty {
			lv = append(lv, fmt.Sprint(d))
		}
		parts = append(parts, i18n.T("filters.difficulty")+" "+strings.Join(lv, ","))
	}
	return strings.Join(parts, " · ")
}

// Apply hands f to the controller and remembers it for the next run.
func Apply(deps *screen.Deps, f session.Filters) tea.Cmd {
	if deps.Session != nil {
		deps.Session.SetFilters(f)
	}
	if deps.Filters == nil {
		return nil
	}
	store, log := deps.Filters, deps.Log
	return func() tea.Msg {
		if err := store.SaveFilters(context.Background(), f); err != nil {
			log.Warn().Err(err).Msg("save filters")
		}
		return nil
	}
}

// FiltersScreen wraps an Editor as a pushed screen.
type FiltersScreen struct {
	deps   *screen.Deps
	editor Editor
}

var _ screen.Screen = (*FiltersScreen)(nil)
var _ screen.KeyHintProvider = (*FiltersScreen)(nil)
var _ screen.BackHandler = (*FiltersScreen)(nil)

// New edits the controller's current filters.
func New(deps *screen.Deps) *FiltersScreen {
	var cur session.Filters
	if deps.Session != nil {
		cur = deps.Session.Snapshot().Filters
	}
	return &FiltersScreen{deps: deps, editor: NewEditor(cur)}
}

func (s *FiltersScreen) Init() tea.Cmd { return nil }

func (s *FiltersScreen) Title() string { return i18n.T("filters.title") }

func (s *FiltersScreen) HandlesBack() bool { return true }

func (s *FiltersScreen) KeyHints() []layout.KeyHint {
	return Hints()
}

// Hints are the editor's footer key hints.
func Hints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: i18n.T("hints.navigate")},
		{Key: "←→", Description: i18n.T("filters.change")},
		{Key: "Enter", Description: i18n.T("hints.save")},
		{Key: "Ctrl+X", Description: i18n.T("filters.clear")},
		{Key: "Esc", Description: i18n.T("hints.cancel")},
	}
}

func (s *FiltersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var (
		res Result
		cmd tea.Cmd
	)
	s.editor, res, cmd = s.editor.Update(msg)
	pop := func() tea.Msg { return router.PopScreenMsg{} }
	switch res {
	case Saved:
		return s, tea.Sequence(Apply(s.deps, s.editor.Value()), pop)
	case Discarded:
		return s, pop
	}
	return s, cmd
}

func (s *FiltersScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	card := components.TitledCard(i18n.T("filters.title"), "\n"+s.editor.View(cw-4), cw, theme.Title)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
