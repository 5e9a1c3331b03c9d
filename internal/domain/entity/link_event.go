package entity

import (
	"time"

	"github.com/google/uuid"
)

// LinkEventRecord is one entry of the durable link audit trail. Records are
// append-only; they exist for operators and downstream tooling, never for
// link-coordination decisions.
type LinkEventRecord struct {
	ID         uuid.UUID
	Type       string
	PCID       uuid.UUID
	ConsoleID  *uuid.UUID
	OccurredAt time.Time
}
