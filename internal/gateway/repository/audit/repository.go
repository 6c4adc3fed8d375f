// Package audit records user-scoped audit events. Writes are best
// effort at call sites; the store itself reports failures normally.
package audit

import (
	"context"

	"querylens/internal/gateway/entity"
)

type Store interface {
	Record(ctx context.Context, userID entity.UserID, action string, details map[string]any) error
}
