package model

import "time"

// QuickReference is a freeform field tip or snippet. Not related to jobs.
type QuickReference struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Tag       string    `json:"tag,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
