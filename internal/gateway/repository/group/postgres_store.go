package group

import (
	"context"
	"fmt"
	"strings"

	"querylens/internal/gateway/ent"
	"querylens/internal/gateway/ent/groupitem"
	"querylens/internal/gateway/ent/querygroup"
	"querylens/internal/gateway/ent/searchquery"
	"querylens/internal/gateway/entity"
)

type PostgresStore struct {
	client *ent.Client
}

func NewPostgresStore(client *ent.Client) *PostgresStore {
	return &PostgresStore{client: client}
}

func (s *PostgresStore) Create(ctx context.Context, g entity.Group) (entity.Group, error) {
	if strings.TrimSpace(g.ID) == "" || strings.TrimSpace(g.Name) == "" {
		return entity.Group{}, fmt.Errorf("group id and name are required")
	}
	row, err := s.client.QueryGroup.Create().
		SetID(g.ID).
		SetName(g.Name).
		SetUserID(g.UserID.String()).
		SetAiGenerated(g.AIGenerated).
		SetCreatedAt(g.CreatedAt).
		Save(ctx)
	if err != nil {
		return entity.Group{}, fmt.Errorf("create group: %w", err)
	}
	return groupFromRow(row), nil
}

func (s *PostgresStore) AddItems(ctx context.Context, groupID string, queryIDs []string) error {
	if len(queryIDs) == 0 {
		return nil
	}
	builders := make([]*ent.GroupItemCreate, 0, len(queryIDs))
	for _, qid := range queryIDs {
		builders = append(builders, s.client.GroupItem.Create().
			SetGroupID(groupID).
			SetQueryID(qid))
	}
	if err := s.client.GroupItem.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("attach group items: %w", err)
	}
	return nil
}

func (s *PostgresStore) RecomputeMetrics(ctx context.Context, groupID string) error {
	items, err := s.client.GroupItem.Query().
		Where(groupitem.GroupID(groupID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("list group items: %w", err)
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.QueryID)
	}

	var queries []entity.Query
	if len(ids) > 0 {
		rows, err := s.client.SearchQuery.Query().
			Where(searchquery.IDIn(ids...)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("resolve group queries: %w", err)
		}
		for _, row := range rows {
			queries = append(queries, entity.Query{
				ID:          row.ID,
				Impressions: row.Impressions,
				Clicks:      row.Clicks,
				Position:    row.Position,
			})
		}
	}

	m := entity.AggregateQueryMetrics(queries)
	update := s.client.QueryGroup.UpdateOneID(groupID).
		SetImpressions(m.Impressions).
		SetClicks(m.Clicks).
		SetCtr(m.CTR).
		SetQueryCount(len(items))
	if m.AvgPosition != nil {
		update = update.SetAvgPosition(*m.AvgPosition)
	} else {
		update = update.ClearAvgPosition()
	}
	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("persist group metrics: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetWithMetrics(ctx context.Context, groupID string) (entity.GroupWithMetrics, error) {
	row, err := s.client.QueryGroup.Query().
		Where(querygroup.ID(groupID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return entity.GroupWithMetrics{}, ErrNotFound
		}
		return entity.GroupWithMetrics{}, fmt.Errorf("get group: %w", err)
	}
	return entity.GroupWithMetrics{
		Group: groupFromRow(row),
		Metrics: entity.GroupMetrics{
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			CTR:         row.Ctr,
			AvgPosition: row.AvgPosition,
			QueryCount:  row.QueryCount,
		},
	}, nil
}

func groupFromRow(row *ent.QueryGroup) entity.Group {
	return entity.Group{
		ID:          row.ID,
		Name:        row.Name,
		UserID:      entity.UserID(row.UserID),
		AIGenerated: row.AiGenerated,
		CreatedAt:   row.CreatedAt,
	}
}
