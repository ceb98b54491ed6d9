package models

import "time"

type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`

	// TermCount is a read-time aggregate, only populated by the list query.
	TermCount *int64 `json:"termCount,omitempty"`
}
