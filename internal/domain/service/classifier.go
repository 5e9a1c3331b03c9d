// Package service defines the interfaces for domain services that the
// application layer consumes but the infrastructure layer implements.
package service

import (
	"crosslink/internal/domain/entity"

	"github.com/google/uuid"
)

// PlatformClassifier answers which account system an id belongs to.
// Platforms are mutually exclusive; an id the classifier has never seen
// yields an error rather than a guess.
type PlatformClassifier interface {
	Classify(id uuid.UUID) (entity.Platform, error)
}
