package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termdex/internal/models"
	"termdex/internal/view"
)

const cardsPerRow = 3

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case modeTermForm:
		return m.viewTermForm()
	case modeProjectForm:
		return m.viewProjectForm()
	case modeConfirmTermDelete:
		return m.viewConfirm("Delete this term?")
	case modeConfirmProjectDelete:
		return m.viewConfirm("Delete this project? Its terms will be detached.")
	case modeProjects:
		return m.viewProjects()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.mode == modeSearch {
		b.WriteString(" / " + m.search.View() + "\n\n")
	}

	visible := m.visibleTerms()
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("no terms") + "\n")
	} else if m.state.Layout == view.LayoutCards {
		b.WriteString(m.viewCards(visible))
	} else {
		b.WriteString(m.viewRows(visible))
	}

	b.WriteString("\n" + m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("termdex")

	var filters []string
	if m.state.Query != "" {
		filters = append(filters, "q="+m.state.Query)
	}
	if m.state.ProjectID != nil {
		name := fmt.Sprintf("#%d", *m.state.ProjectID)
		for i := range m.snapshot.Projects {
			if m.snapshot.Projects[i].ID == *m.state.ProjectID {
				name = m.snapshot.Projects[i].Name
			}
		}
		filters = append(filters, "project="+name)
	}
	if m.state.Tag != "" {
		filters = append(filters, "tag="+m.state.Tag)
	}

	if len(filters) == 0 {
		return title
	}
	return title + " " + m.styles.Muted.Render(strings.Join(filters, "  "))
}

func (m Model) viewRows(terms []models.Term) string {
	var b strings.Builder
	for i := range terms {
		term := &terms[i]

		line := term.Term + "  " + truncate(term.Description, 60)
		if tags := term.Tags(); len(tags) > 0 {
			line += "  " + m.styles.Tag.Render("["+strings.Join(tags, ", ")+"]")
		}
		if term.Project != nil {
			line += "  " + m.styles.Project.Render(term.Project.Name)
		}

		style := m.styles.Row
		if i == m.selected {
			style = m.styles.RowActive
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}

func (m Model) viewCards(terms []models.Term) string {
	var cards []string
	for i := range terms {
		term := &terms[i]

		content := m.styles.CardTitle.Render(term.Term) + "\n" + truncate(term.Description, 80)
		if tags := term.Tags(); len(tags) > 0 {
			content += "\n" + m.styles.Tag.Render(strings.Join(tags, ", "))
		}
		if term.Project != nil {
			content += "\n" + m.styles.Project.Render(term.Project.Name)
		}

		card := m.styles.Card
		if i == m.selected {
			card = card.BorderForeground(m.styles.CardTitle.GetForeground())
		}
		cards = append(cards, card.Render(content))
	}

	var rows []string
	for start := 0; start < len(cards); start += cardsPerRow {
		end := start + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m Model) viewProjects() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("projects") + "\n\n")

	if len(m.snapshot.Projects) == 0 {
		b.WriteString(m.styles.Muted.Render("no projects") + "\n")
	}
	for i := range m.snapshot.Projects {
		project := &m.snapshot.Projects[i]

		line := project.Name
		if project.TermCount != nil {
			line += fmt.Sprintf("  (%d terms)", *project.TermCount)
		}
		if project.Description != nil && *project.Description != "" {
			line += "  " + truncate(*project.Description, 50)
		}

		style := m.styles.Row
		if i == m.cursor {
			style = m.styles.RowActive
		}
		b.WriteString(style.Render(line) + "\n")
	}

	b.WriteString("\n" + m.styles.Help.Render("n new · e edit · d delete · esc back"))
	return b.String()
}

func (m Model) viewTermForm() string {
	title := "New Term"
	if m.termForm.editing != nil {
		title = "Edit Term"
	}

	project := "unassigned"
	if m.termForm.project > 0 && m.termForm.project <= len(m.snapshot.Projects) {
		project = m.snapshot.Projects[m.termForm.project-1].Name
	}

	content := title + "\n\n" +
		m.termForm.fields[termFieldName].View() + "\n" +
		m.termForm.fields[termFieldDescription].View() + "\n" +
		m.termForm.fields[termFieldTags].View() + "\n\n" +
		m.styles.Muted.Render("project: "+project+" (ctrl+p to cycle)") + "\n\n" +
		m.styles.Help.Render("enter save · esc cancel")

	return m.centered(m.styles.FormBox.Render(content))
}

func (m Model) viewProjectForm() string {
	title := "New Project"
	if m.projectForm.editing != nil {
		title = "Edit Project"
	}

	content := title + "\n\n" +
		m.projectForm.fields[projectFieldName].View() + "\n" +
		m.projectForm.fields[projectFieldDescription].View() + "\n\n" +
		m.styles.Help.Render("enter save · esc cancel")

	return m.centered(m.styles.FormBox.Render(content))
}

func (m Model) viewConfirm(question string) string {
	content := question + "\n\n" + m.styles.Help.Render("y confirm · n cancel")
	return m.centered(m.styles.Confirm.Render(content))
}

func (m Model) viewFooter() string {
	total := len(m.snapshot.Terms)
	pages := view.TotalPages(total, m.state.Layout)
	page := view.ClampPage(m.state.Page, total, m.state.Layout)

	info := fmt.Sprintf("page %d/%d · %d terms · %s", page, pages, total, m.state.Layout)

	var b strings.Builder
	b.WriteString(m.styles.Status.Render(info) + "\n")
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg) + "\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status) + "\n")
	}
	b.WriteString(m.styles.Help.Render("/ search · p project · t tag · v layout · h/l page · n/e/d term · P projects · T theme · q quit"))
	return b.String()
}

func (m Model) centered(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
