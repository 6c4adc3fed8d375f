package entity

// AggregateQueryMetrics derives a metrics snapshot from a set of resolved
// queries: impressions and clicks are summed, CTR guards against zero
// impressions, and the average position ignores nil positions.
func AggregateQueryMetrics(queries []Query) GroupMetrics {
	var m GroupMetrics
	var posSum float64
	var posCount int
	for _, q := range queries {
		m.Impressions += q.Impressions
		m.Clicks += q.Clicks
		if q.Position != nil {
			posSum += *q.Position
			posCount++
		}
	}
	if m.Impressions > 0 {
		m.CTR = float64(m.Clicks) / float64(m.Impressions)
	}
	if posCount > 0 {
		avg := posSum / float64(posCount)
		m.AvgPosition = &avg
	}
	m.QueryCount = len(queries)
	return m
}
