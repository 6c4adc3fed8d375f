package clustering

import "querylens/internal/gateway/entity"

// AggregateMetrics computes the suggestion-level metrics for a resolved
// cluster. Derivation rules live with the entity package so persisted
// group snapshots and ephemeral suggestions agree.
func AggregateMetrics(queries []entity.Query) Metrics {
	m := entity.AggregateQueryMetrics(queries)
	return Metrics{
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
		CTR:         m.CTR,
		AvgPosition: m.AvgPosition,
	}
}
