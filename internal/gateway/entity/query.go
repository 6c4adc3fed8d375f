package entity

import "time"

// Query is one search-performance record as fetched for a clustering run.
// Records are immutable once fetched; the query store owns their lifecycle.
type Query struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	CTR         *float64  `json:"ctr"`
	Position    *float64  `json:"position"`
	Opportunity bool      `json:"opportunity"`
	UserID      UserID    `json:"-"`
	CreatedAt   time.Time `json:"-"`
}
