package models

import (
	"strings"
	"time"
)

type Term struct {
	ID          int64     `json:"id"`
	Term        string    `json:"term"`
	Description string    `json:"description"`
	ProjectID   *int64    `json:"projectId"`
	ExtraTags   *string   `json:"extraTags"`
	CreatedAt   time.Time `json:"createdAt"`

	// Project is the joined parent row, nil for unassigned terms.
	Project *Project `json:"project"`
}

// Tags splits the comma-separated ExtraTags string into trimmed,
// non-empty entries.
func (t *Term) Tags() []string {
	if t.ExtraTags == nil {
		return nil
	}
	var tags []string
	for _, raw := range strings.Split(*t.ExtraTags, ",") {
		if tag := strings.TrimSpace(raw); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
