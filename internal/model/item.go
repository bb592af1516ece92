package model

import "time"

// Item is a single portfolio entry. ShowcasePath points at the stored
// showcase image; SortKey controls display order (ascending).
type Item struct {
	ID           string    `json:"id"`
	ShowcasePath string    `json:"showcasePath"`
	Title        string    `json:"title"`
	Link         string    `json:"link"`
	Description  string    `json:"description"`
	Tech         []string  `json:"tech"`
	Type         string    `json:"type"`
	SortKey      int       `json:"sortKey"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
