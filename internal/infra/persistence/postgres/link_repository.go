// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"crosslink/internal/domain/entity"
	"crosslink/internal/domain/repository"
	"crosslink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// linkRepository implements the repository.LinkRepository interface using GORM.
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository is the constructor for linkRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{db: db}
}

// Upsert writes the link in a single statement keyed on pc_id. An existing
// row for that key is replaced whole, never patched field by field.
func (repo *linkRepository) Upsert(ctx context.Context, link *entity.Link) (bool, error) {
	linkM := model.FromLinkDomain(link)

	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pc_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"pc_name", "console_id", "updated_at"}),
	}).Create(linkM)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to upsert link")
	}

	return result.RowsAffected != 0, nil
}

// DeleteByPCID removes the link keyed by the PC account id.
func (repo *linkRepository) DeleteByPCID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("pc_id = ?", id).
		Delete(&model.LinkModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete link by pc id")
	}

	return result.RowsAffected != 0, nil
}

// DeleteByConsoleID removes the link whose console side matches the id.
func (repo *linkRepository) DeleteByConsoleID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("console_id = ?", id).
		Delete(&model.LinkModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete link by console id")
	}

	return result.RowsAffected != 0, nil
}

// FindByPCID retrieves a link by its PC account id.
func (repo *linkRepository) FindByPCID(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	var linkM model.LinkModel

	err := repo.db.WithContext(ctx).
		Where("pc_id = ?", id).
		First(&linkM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find link by pc id")
	}

	return model.ToLinkDomain(&linkM), nil
}

// FindByConsoleID retrieves a link by its console account id.
func (repo *linkRepository) FindByConsoleID(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	var linkM model.LinkModel

	err := repo.db.WithContext(ctx).
		Where("console_id = ?", id).
		First(&linkM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find link by console id")
	}

	return model.ToLinkDomain(&linkM), nil
}
