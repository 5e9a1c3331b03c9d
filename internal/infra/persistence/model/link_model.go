// Package model contains the GORM persistence models and their mappers to
// and from domain entities.
package model

import (
	"time"

	"crosslink/internal/domain/entity"

	"github.com/google/uuid"
)

// LinkModel is the durable link row. One row per PC account; re-linking
// replaces the row as a whole through an upsert on pc_id. The console side is
// deliberately not uniqueness-constrained, last write wins there.
type LinkModel struct {
	PCID      uuid.UUID `gorm:"column:pc_id;type:uuid;primaryKey"`
	PCName    string    `gorm:"column:pc_name;type:varchar(64);not null"`
	ConsoleID uuid.UUID `gorm:"column:console_id;type:uuid;not null;index:idx_links_console_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default GORM table name.
func (LinkModel) TableName() string {
	return "links"
}

// FromLinkDomain maps a domain link to its persistence model.
func FromLinkDomain(link *entity.Link) *LinkModel {
	return &LinkModel{
		PCID:      link.PCID,
		PCName:    link.PCName,
		ConsoleID: link.ConsoleID,
	}
}

// ToLinkDomain maps a persistence model back to a pure domain entity.
func ToLinkDomain(m *LinkModel) *entity.Link {
	return &entity.Link{
		PCID:      m.PCID,
		PCName:    m.PCName,
		ConsoleID: m.ConsoleID,
	}
}
