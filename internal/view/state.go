// Package view holds the client view state as a plain serializable value
// plus pure functions over an immutable snapshot of the last fetch. All
// deriving (pagination, tag vocabulary) is recomputed from the snapshot
// rather than mutated in place.
package view

import (
	"sort"

	"termdex/internal/models"
)

type Layout string

const (
	LayoutRows  Layout = "rows"
	LayoutCards Layout = "cards"
)

const (
	rowsPageSize  = 15
	cardsPageSize = 12
)

// Snapshot is the last server-fetched data. Terms arrive already filtered
// by the server; paging over them is purely a client concern.
type Snapshot struct {
	Projects []models.Project
	Terms    []models.Term
}

// State is everything the view needs to render, independent of widget
// internals.
type State struct {
	Query     string `json:"query"`
	ProjectID *int64 `json:"projectId"`
	Tag       string `json:"tag"`
	Layout    Layout `json:"layout"`
	Page      int    `json:"page"`
	Dark      bool   `json:"dark"`
}

func NewState() State {
	return State{Layout: LayoutRows, Page: 1}
}

func PageSize(layout Layout) int {
	if layout == LayoutCards {
		return cardsPageSize
	}
	return rowsPageSize
}

func TotalPages(total int, layout Layout) int {
	size := PageSize(layout)
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage keeps the page inside [1, TotalPages] when the list shrinks
// below the current offset.
func ClampPage(page, total int, layout Layout) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(total, layout); page > last {
		return last
	}
	return page
}

// VisibleTerms slices the current page out of the already-filtered list.
func VisibleTerms(terms []models.Term, s State) []models.Term {
	size := PageSize(s.Layout)
	page := ClampPage(s.Page, len(terms), s.Layout)

	start := (page - 1) * size
	if start >= len(terms) {
		return nil
	}
	end := start + size
	if end > len(terms) {
		end = len(terms)
	}
	return terms[start:end]
}

// TagVocabulary collects the distinct values shown in the tag filter: the
// related project name of each term plus every comma-separated extraTags
// entry, sorted lexicographically.
func TagVocabulary(terms []models.Term) []string {
	seen := make(map[string]struct{})
	for i := range terms {
		term := &terms[i]
		if term.Project != nil && term.Project.Name != "" {
			seen[term.Project.Name] = struct{}{}
		}
		for _, tag := range term.Tags() {
			seen[tag] = struct{}{}
		}
	}

	vocabulary := make([]string, 0, len(seen))
	for tag := range seen {
		vocabulary = append(vocabulary, tag)
	}
	sort.Strings(vocabulary)
	return vocabulary
}
