package entity

import "time"

// Group is a persisted collection of queries owned by one user.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	UserID      UserID    `json:"userId"`
	AIGenerated bool      `json:"aiGenerated"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GroupMetrics is the aggregated snapshot persisted alongside a group.
type GroupMetrics struct {
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	CTR         float64  `json:"ctr"`
	AvgPosition *float64 `json:"avgPosition"`
	QueryCount  int      `json:"queryCount"`
}

// GroupWithMetrics is the authoritative read-back shape returned after
// a group's metrics snapshot has been recomputed.
type GroupWithMetrics struct {
	Group
	Metrics GroupMetrics `json:"metrics"`
}
