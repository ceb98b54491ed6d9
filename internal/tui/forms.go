package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"termdex/internal/models"
)

const (
	termFieldName = iota
	termFieldDescription
	termFieldTags
	termFieldCount
)

const (
	projectFieldName = iota
	projectFieldDescription
	projectFieldCount
)

func newTermForm(editing *models.Term, projects []models.Project) termForm {
	fields := make([]textinput.Model, termFieldCount)
	for i := range fields {
		fields[i] = textinput.New()
		fields[i].CharLimit = 300
	}
	fields[termFieldName].Placeholder = "term"
	fields[termFieldDescription].Placeholder = "description"
	fields[termFieldTags].Placeholder = "tags, comma, separated"

	form := termForm{editing: editing, fields: fields}

	if editing != nil {
		form.fields[termFieldName].SetValue(editing.Term)
		form.fields[termFieldDescription].SetValue(editing.Description)
		if editing.ExtraTags != nil {
			form.fields[termFieldTags].SetValue(*editing.ExtraTags)
		}
		if editing.ProjectID != nil {
			for i := range projects {
				if projects[i].ID == *editing.ProjectID {
					form.project = i + 1
					break
				}
			}
		}
	}

	form.fields[0].Focus()
	return form
}

// values returns the form content in wire shape: trimmed strings, nil for
// an empty tag list, nil for the unassigned project slot.
func (f *termForm) values(projects []models.Project) (term, description string, projectID *int64, extraTags *string) {
	term = strings.TrimSpace(f.fields[termFieldName].Value())
	description = strings.TrimSpace(f.fields[termFieldDescription].Value())

	if tags := strings.TrimSpace(f.fields[termFieldTags].Value()); tags != "" {
		extraTags = &tags
	}
	if f.project > 0 && f.project <= len(projects) {
		id := projects[f.project-1].ID
		projectID = &id
	}
	return term, description, projectID, extraTags
}

func (f *termForm) cycleProject(projects []models.Project) {
	// 0 is "unassigned", 1..n map onto the project list.
	f.project = (f.project + 1) % (len(projects) + 1)
}

func newProjectForm(editing *models.Project) projectForm {
	fields := make([]textinput.Model, projectFieldCount)
	for i := range fields {
		fields[i] = textinput.New()
		fields[i].CharLimit = 300
	}
	fields[projectFieldName].Placeholder = "name"
	fields[projectFieldDescription].Placeholder = "description"

	form := projectForm{editing: editing, fields: fields}

	if editing != nil {
		form.fields[projectFieldName].SetValue(editing.Name)
		if editing.Description != nil {
			form.fields[projectFieldDescription].SetValue(*editing.Description)
		}
	}

	form.fields[0].Focus()
	return form
}

func (f *projectForm) values() (name string, description *string) {
	name = strings.TrimSpace(f.fields[projectFieldName].Value())
	if desc := strings.TrimSpace(f.fields[projectFieldDescription].Value()); desc != "" {
		description = &desc
	}
	return name, description
}
