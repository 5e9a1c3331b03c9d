package postgres

import (
	"context"

	"crosslink/internal/domain/entity"
	"crosslink/internal/domain/repository"
	"crosslink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// linkEventRepository implements repository.LinkEventRepository using GORM.
type linkEventRepository struct {
	db *gorm.DB
}

// NewLinkEventRepository is the constructor for linkEventRepository.
func NewLinkEventRepository(db *gorm.DB) repository.LinkEventRepository {
	return &linkEventRepository{db: db}
}

// Append inserts one audit row.
func (repo *linkEventRepository) Append(ctx context.Context, record *entity.LinkEventRecord) error {
	eventM := &model.LinkEventModel{
		Type:       record.Type,
		PCID:       record.PCID,
		ConsoleID:  record.ConsoleID,
		OccurredAt: record.OccurredAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return errors.Wrap(err, "failed to append link event")
	}

	record.ID = eventM.ID

	return nil
}
