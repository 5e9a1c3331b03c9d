package repository

import (
	"context"

	"crosslink/internal/domain/entity"
)

// LinkEventRepository persists the append-only link audit trail consumed by
// the event worker.
type LinkEventRepository interface {
	Append(ctx context.Context, record *entity.LinkEventRecord) error
}
