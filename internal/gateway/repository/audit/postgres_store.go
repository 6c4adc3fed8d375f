package audit

import (
	"context"
	"fmt"

	"querylens/internal/gateway/ent"
	"querylens/internal/gateway/entity"
)

type PostgresStore struct {
	client *ent.Client
}

func NewPostgresStore(client *ent.Client) *PostgresStore {
	return &PostgresStore{client: client}
}

func (s *PostgresStore) Record(ctx context.Context, userID entity.UserID, action string, details map[string]any) error {
	if action == "" {
		return fmt.Errorf("audit action is required")
	}
	_, err := s.client.AuditLog.Create().
		SetUserID(userID.String()).
		SetAction(action).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}
