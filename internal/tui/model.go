package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"termdex/internal/client"
	"termdex/internal/models"
	"termdex/internal/view"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeTermForm
	modeProjectForm
	modeConfirmTermDelete
	modeProjects
	modeConfirmProjectDelete
)

// Model is the Bubble Tea application state. All list/filter/page state
// lives in view.State and view.Snapshot; the model adds widget and
// selection concerns on top.
type Model struct {
	api *client.Client

	state    view.State
	snapshot view.Snapshot
	styles   Styles

	mode     mode
	selected int // index into the visible page (normal mode)
	cursor   int // index into the project list (projects mode)

	search      textinput.Model
	termForm    termForm
	projectForm projectForm

	status string
	errMsg string

	width  int
	height int
}

type termForm struct {
	editing *models.Term // nil in create mode
	fields  []textinput.Model
	focus   int
	project int // index into snapshot.Projects + 1, 0 means unassigned
}

type projectForm struct {
	editing *models.Project
	fields  []textinput.Model
	focus   int
}

func InitialModel(api *client.Client, dark bool) Model {
	search := textinput.New()
	search.Placeholder = "search terms..."
	search.CharLimit = 120

	state := view.NewState()
	state.Dark = dark

	return Model{
		api:    api,
		state:  state,
		styles: NewStyles(dark),
		search: search,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadProjects(), m.loadTerms())
}

// Messages

type projectsLoadedMsg struct{ projects []models.Project }
type termsLoadedMsg struct{ terms []models.Term }
type mutationDoneMsg struct{ status string }
type opFailedMsg struct{ op string }

// Commands. Each user action issues at most one round trip; failures
// surface as a fixed per-operation message and leave prior state alone.

func (m Model) loadProjects() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		projects, err := api.Projects(ctx)
		if err != nil {
			return opFailedMsg{op: "could not load projects"}
		}
		return projectsLoadedMsg{projects: projects}
	}
}

func (m Model) loadTerms() tea.Cmd {
	api := m.api
	query := client.TermQuery{
		Query:     m.state.Query,
		ProjectID: m.state.ProjectID,
		Tag:       m.state.Tag,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		terms, err := api.Terms(ctx, query)
		if err != nil {
			return opFailedMsg{op: "could not load terms"}
		}
		return termsLoadedMsg{terms: terms}
	}
}

// visibleTerms returns the current page of the already-filtered snapshot.
func (m Model) visibleTerms() []models.Term {
	return view.VisibleTerms(m.snapshot.Terms, m.state)
}

func (m Model) selectedTerm() *models.Term {
	visible := m.visibleTerms()
	if len(visible) == 0 || m.selected >= len(visible) {
		return nil
	}
	return &visible[m.selected]
}

func (m Model) selectedProject() *models.Project {
	if len(m.snapshot.Projects) == 0 || m.cursor >= len(m.snapshot.Projects) {
		return nil
	}
	return &m.snapshot.Projects[m.cursor]
}

// clampSelection keeps the row cursor inside the visible page after the
// list or the page changes.
func (m *Model) clampSelection() {
	visible := len(m.visibleTerms())
	if visible == 0 {
		m.selected = 0
		return
	}
	if m.selected >= visible {
		m.selected = visible - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
