package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"termdex/internal/config"
	"termdex/internal/view"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case projectsLoadedMsg:
		m.snapshot.Projects = msg.projects
		if m.cursor >= len(m.snapshot.Projects) {
			m.cursor = 0
		}
		return m, nil

	case termsLoadedMsg:
		m.snapshot.Terms = msg.terms
		m.state.Page = view.ClampPage(m.state.Page, len(msg.terms), m.state.Layout)
		m.clampSelection()
		return m, nil

	case mutationDoneMsg:
		m.status = msg.status
		m.errMsg = ""
		return m, tea.Batch(m.loadProjects(), m.loadTerms())

	case opFailedMsg:
		m.errMsg = msg.op
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeTermForm:
			return m.updateTermForm(msg)
		case modeProjectForm:
			return m.updateProjectForm(msg)
		case modeConfirmTermDelete:
			return m.updateConfirmTermDelete(msg)
		case modeProjects:
			return m.updateProjects(msg)
		case modeConfirmProjectDelete:
			return m.updateConfirmProjectDelete(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(m.snapshot.Terms)

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.selected < len(m.visibleTerms())-1 {
			m.selected++
		}
		return m, nil

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "l", "right":
		m.state = view.Apply(m.state, view.NextPage{}, total)
		m.clampSelection()
		return m, nil

	case "h", "left":
		m.state = view.Apply(m.state, view.PrevPage{}, total)
		m.clampSelection()
		return m, nil

	case "/":
		m.mode = modeSearch
		m.search.SetValue(m.state.Query)
		m.search.Focus()
		return m, textinput.Blink

	case "v":
		layout := view.LayoutCards
		if m.state.Layout == view.LayoutCards {
			layout = view.LayoutRows
		}
		m.state = view.Apply(m.state, view.SetLayout{Layout: layout}, total)
		m.selected = 0
		return m, nil

	case "p":
		m.state = view.Apply(m.state, view.SetProjectFilter{ProjectID: m.nextProjectFilter()}, total)
		m.selected = 0
		return m, m.loadTerms()

	case "t":
		m.state = view.Apply(m.state, view.SetTagFilter{Tag: m.nextTagFilter()}, total)
		m.selected = 0
		return m, m.loadTerms()

	case "T":
		m.state = view.Apply(m.state, view.ToggleTheme{}, total)
		m.styles = NewStyles(m.state.Dark)
		return m, saveTheme(m.state.Dark)

	case "n":
		m.mode = modeTermForm
		m.termForm = newTermForm(nil, m.snapshot.Projects)
		return m, textinput.Blink

	case "e":
		if term := m.selectedTerm(); term != nil {
			m.mode = modeTermForm
			m.termForm = newTermForm(term, m.snapshot.Projects)
			return m, textinput.Blink
		}
		return m, nil

	case "d":
		if m.selectedTerm() != nil {
			m.mode = modeConfirmTermDelete
		}
		return m, nil

	case "P":
		m.mode = modeProjects
		m.cursor = 0
		return m, nil

	case "r":
		return m, tea.Batch(m.loadProjects(), m.loadTerms())

	case "esc":
		m.errMsg = ""
		return m, nil
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeNormal
		m.state = view.Apply(m.state, view.SetQuery{Query: m.search.Value()}, len(m.snapshot.Terms))
		m.selected = 0
		return m, m.loadTerms()

	case "esc":
		m.mode = modeNormal
		m.search.SetValue(m.state.Query)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateTermForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		return m, nil

	case "tab", "down":
		m.termForm.focus = (m.termForm.focus + 1) % len(m.termForm.fields)
		m.focusTermField()
		return m, textinput.Blink

	case "shift+tab", "up":
		m.termForm.focus = (m.termForm.focus + len(m.termForm.fields) - 1) % len(m.termForm.fields)
		m.focusTermField()
		return m, textinput.Blink

	case "ctrl+p":
		m.termForm.cycleProject(m.snapshot.Projects)
		return m, nil

	case "enter":
		m.mode = modeNormal
		return m, m.saveTerm()
	}

	var cmd tea.Cmd
	m.termForm.fields[m.termForm.focus], cmd = m.termForm.fields[m.termForm.focus].Update(msg)
	return m, cmd
}

func (m *Model) focusTermField() {
	for i := range m.termForm.fields {
		if i == m.termForm.focus {
			m.termForm.fields[i].Focus()
		} else {
			m.termForm.fields[i].Blur()
		}
	}
}

func (m Model) updateProjectForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeProjects
		return m, nil

	case "tab", "down":
		m.projectForm.focus = (m.projectForm.focus + 1) % len(m.projectForm.fields)
		m.focusProjectField()
		return m, textinput.Blink

	case "shift+tab", "up":
		m.projectForm.focus = (m.projectForm.focus + len(m.projectForm.fields) - 1) % len(m.projectForm.fields)
		m.focusProjectField()
		return m, textinput.Blink

	case "enter":
		m.mode = modeProjects
		return m, m.saveProject()
	}

	var cmd tea.Cmd
	m.projectForm.fields[m.projectForm.focus], cmd = m.projectForm.fields[m.projectForm.focus].Update(msg)
	return m, cmd
}

func (m *Model) focusProjectField() {
	for i := range m.projectForm.fields {
		if i == m.projectForm.focus {
			m.projectForm.fields[i].Focus()
		} else {
			m.projectForm.fields[i].Blur()
		}
	}
}

func (m Model) updateConfirmTermDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = modeNormal
		if term := m.selectedTerm(); term != nil {
			return m, m.deleteTerm(term.ID)
		}
		return m, nil

	case "n", "esc":
		m.mode = modeNormal
		return m, nil
	}
	return m, nil
}

func (m Model) updateProjects(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "P", "q":
		m.mode = modeNormal
		return m, nil

	case "j", "down":
		if m.cursor < len(m.snapshot.Projects)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "n":
		m.mode = modeProjectForm
		m.projectForm = newProjectForm(nil)
		return m, textinput.Blink

	case "e":
		if project := m.selectedProject(); project != nil {
			m.mode = modeProjectForm
			m.projectForm = newProjectForm(project)
			return m, textinput.Blink
		}
		return m, nil

	case "d":
		if m.selectedProject() != nil {
			m.mode = modeConfirmProjectDelete
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateConfirmProjectDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = modeProjects
		if project := m.selectedProject(); project != nil {
			return m, m.deleteProject(project.ID)
		}
		return m, nil

	case "n", "esc":
		m.mode = modeProjects
		return m, nil
	}
	return m, nil
}

// nextProjectFilter cycles unfiltered -> first project -> ... -> unfiltered.
func (m Model) nextProjectFilter() *int64 {
	projects := m.snapshot.Projects
	if len(projects) == 0 {
		return nil
	}
	if m.state.ProjectID == nil {
		id := projects[0].ID
		return &id
	}
	for i := range projects {
		if projects[i].ID == *m.state.ProjectID {
			if i+1 < len(projects) {
				id := projects[i+1].ID
				return &id
			}
			return nil
		}
	}
	return nil
}

// nextTagFilter cycles through the vocabulary derived from the visible
// snapshot, ending back at "no tag filter".
func (m Model) nextTagFilter() string {
	vocabulary := view.TagVocabulary(m.snapshot.Terms)
	if len(vocabulary) == 0 {
		return ""
	}
	if m.state.Tag == "" {
		return vocabulary[0]
	}
	for i, tag := range vocabulary {
		if tag == m.state.Tag && i+1 < len(vocabulary) {
			return vocabulary[i+1]
		}
	}
	return ""
}

// Mutation commands

func (m Model) saveTerm() tea.Cmd {
	api := m.api
	form := m.termForm
	term, description, projectID, extraTags := form.values(m.snapshot.Projects)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var err error
		if form.editing != nil {
			_, err = api.UpdateTerm(ctx, form.editing.ID, term, description, projectID, extraTags)
		} else {
			_, err = api.CreateTerm(ctx, term, description, projectID, extraTags)
		}
		if err != nil {
			return opFailedMsg{op: "could not save term"}
		}
		return mutationDoneMsg{status: "term saved"}
	}
}

func (m Model) deleteTerm(id int64) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := api.DeleteTerm(ctx, id); err != nil {
			return opFailedMsg{op: "could not delete term"}
		}
		return mutationDoneMsg{status: "term deleted"}
	}
}

func (m Model) saveProject() tea.Cmd {
	api := m.api
	form := m.projectForm
	name, description := form.values()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var err error
		if form.editing != nil {
			_, err = api.UpdateProject(ctx, form.editing.ID, name, description)
		} else {
			_, err = api.CreateProject(ctx, name, description)
		}
		if err != nil {
			return opFailedMsg{op: "could not save project"}
		}
		return mutationDoneMsg{status: "project saved"}
	}
}

func (m Model) deleteProject(id int64) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := api.DeleteProject(ctx, id); err != nil {
			return opFailedMsg{op: "could not delete project"}
		}
		return mutationDoneMsg{status: "project deleted"}
	}
}

func saveTheme(dark bool) tea.Cmd {
	return func() tea.Msg {
		if err := config.SaveTheme(config.ThemeConfig{Dark: dark}); err != nil {
			return opFailedMsg{op: "could not save theme"}
		}
		return nil
	}
}
