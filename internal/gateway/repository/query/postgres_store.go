package query

import (
	"context"
	"fmt"

	"querylens/internal/gateway/ent"
	"querylens/internal/gateway/ent/searchquery"
	"querylens/internal/gateway/entity"
)

type PostgresStore struct {
	client *ent.Client
}

func NewPostgresStore(client *ent.Client) *PostgresStore {
	return &PostgresStore{client: client}
}

func (s *PostgresStore) List(ctx context.Context, userID entity.UserID, offset, limit int) ([]entity.Query, error) {
	if s == nil || s.client == nil {
		return nil, fmt.Errorf("query store is not initialized")
	}
	if userID.IsZero() {
		return nil, fmt.Errorf("user_id is required")
	}
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.client.SearchQuery.Query().
		Where(searchquery.UserID(userID.String())).
		Order(
			ent.Desc(searchquery.FieldImpressions),
			ent.Desc(searchquery.FieldCreatedAt),
		).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}
	out := make([]entity.Query, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.Query{
			ID:          row.ID,
			Text:        row.Text,
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			CTR:         row.Ctr,
			Position:    row.Position,
			Opportunity: row.Opportunity,
			UserID:      entity.UserID(row.UserID),
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}
