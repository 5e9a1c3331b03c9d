package model

import (
	"time"

	"github.com/google/uuid"
)

// LinkEventModel is one row of the link audit trail, appended by the event
// worker for every link.completed / link.removed it consumes.
type LinkEventModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Type       string    `gorm:"column:type;type:varchar(32);not null;index:idx_link_events_type"`
	PCID       uuid.UUID `gorm:"column:pc_id;type:uuid;not null;index:idx_link_events_pc_id"`
	ConsoleID  *uuid.UUID `gorm:"column:console_id;type:uuid"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

// TableName overrides the default GORM table name.
func (LinkEventModel) TableName() string {
	return "link_events"
}
