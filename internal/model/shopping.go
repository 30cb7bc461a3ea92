package model

import "time"

// ShoppingItem is one line on the supply-run list. Independent of jobs.
type ShoppingItem struct {
	ID        string    `json:"id"`
	Item      string    `json:"item"`
	Qty       int       `json:"qty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
