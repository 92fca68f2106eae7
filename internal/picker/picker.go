// Package picker is a fuzzy-filterable list with a preview pane, built on
// bubbletea. It is agnostic of what it lists: sources hand it entries with
// a display label and a search key.
package picker

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// Entry is one selectable row. Display is what the list shows, Ordinal is
// what the fuzzy filter matches against. Value carries the decoded record
// for the preview pane and the caller's confirm handling.
type Entry struct {
	Value   any
	Display string
	Ordinal string
}

// Source binds a picker session to its data. Load runs once on open, in
// the background, under a context that is cancelled when the session ends.
// Preview must be pure formatting; it is called on every highlight change.
type Source struct {
	Title   string
	Load    func(ctx context.Context) []Entry
	Preview func(Entry) string
}

type entriesMsg []Entry

type entrySlice []Entry

func (e entrySlice) String(i int) string { return e[i].Ordinal }
func (e entrySlice) Len() int            { return len(e) }

type model struct {
	src     Source
	loadCtx context.Context
	cancel  context.CancelFunc
	filter  textinput.Model
	spinner spinner.Model

	entries []Entry
	matches []int // indices into entries, in display order
	cursor  int
	loading bool

	selected  Entry
	confirmed bool

	width  int
	height int
}

func newModel(src Source, loadCtx context.Context, cancel context.CancelFunc) model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = "> "
	ti.CharLimit = 100
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return model{
		src:     src,
		loadCtx: loadCtx,
		cancel:  cancel,
		filter:  ti,
		spinner: sp,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, m.load())
}

// load queries the source in the background. The context is cancelled when
// the session ends, so closing the picker abandons an in-flight query.
func (m model) load() tea.Cmd {
	return func() tea.Msg {
		if m.src.Load == nil {
			return entriesMsg(nil)
		}
		return entriesMsg(m.src.Load(m.loadCtx))
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.matches) {
				m.selected = m.entries[m.matches[m.cursor]]
				m.confirmed = true
			}
			m.cancel()
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.refilter()
		return m, cmd

	case entriesMsg:
		m.entries = msg
		m.loading = false
		m.refilter()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// refilter recomputes the visible rows from the current query. An empty
// query keeps the source order; otherwise rows are ranked by match score.
func (m *model) refilter() {
	query := m.filter.Value()
	if query == "" {
		m.matches = make([]int, len(m.entries))
		for i := range m.entries {
			m.matches[i] = i
		}
	} else {
		ranked := fuzzy.FindFrom(query, entrySlice(m.entries))
		m.matches = make([]int, len(ranked))
		for i, r := range ranked {
			m.matches[i] = r.Index
		}
	}
	if m.cursor >= len(m.matches) {
		m.cursor = 0
	}
}

// highlighted returns the entry under the cursor, if any.
func (m model) highlighted() (Entry, bool) {
	if m.cursor < len(m.matches) {
		return m.entries[m.matches[m.cursor]], true
	}
	return Entry{}, false
}

// Run opens an interactive session and blocks until the user confirms or
// cancels. It returns the confirmed entry, if any.
func Run(src Source) (Entry, bool, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(newModel(src, ctx, cancel), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return Entry{}, false, fmt.Errorf("picker: %w", err)
	}
	final, ok := out.(model)
	if !ok {
		return Entry{}, false, fmt.Errorf("picker: unexpected final model %T", out)
	}
	return final.selected, final.confirmed, nil
}
