// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"crosslink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLinkNotFound is returned when no durable link exists for the given key.
// The application layer handles this outcome without depending on
// database-specific errors.
var ErrLinkNotFound = errors.New("link not found")

// LinkRepository defines the standard operations for durable link persistence.
// Every operation is keyed (pc id or console id) and idempotent at the row
// level, so all of them are safe to retry.
type LinkRepository interface {
	// Upsert atomically writes the link keyed on the PC id, replacing any prior
	// row for that key as a whole. It reports whether a row was written.
	Upsert(ctx context.Context, link *entity.Link) (bool, error)

	// DeleteByPCID removes the link whose PC side is the given id,
	// reporting whether a row existed.
	DeleteByPCID(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteByConsoleID removes the link whose console side is the given id,
	// reporting whether a row existed.
	DeleteByConsoleID(ctx context.Context, id uuid.UUID) (bool, error)

	// FindByPCID retrieves the link for a PC id, or ErrLinkNotFound.
	FindByPCID(ctx context.Context, id uuid.UUID) (*entity.Link, error)

	// FindByConsoleID retrieves the link for a console id, or ErrLinkNotFound.
	FindByConsoleID(ctx context.Context, id uuid.UUID) (*entity.Link, error)
}
