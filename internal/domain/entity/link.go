package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LinkRequest is a pending pairing attempt, held in memory only.
// It is created when an identity starts linking, and destroyed by exactly one of:
// redemption, cancellation (a new request from the same identity supersedes the
// old one), or expiry.
type LinkRequest struct {
	Code          int
	ExpiresAt     time.Time
	RequesterID   uuid.UUID
	RequesterName string
}

// Expired reports whether the request is no longer redeemable at the given time.
// Requests are valid strictly before ExpiresAt.
func (r *LinkRequest) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// DisplayCode renders the code the way it is relayed between players,
// zero-padded to four digits.
func (r *LinkRequest) DisplayCode() string {
	return fmt.Sprintf("%04d", r.Code)
}

// Link is the durable pairing of a PC account and a console account.
// Exactly one row exists per PC id; re-linking replaces the whole row via an
// atomic upsert. The console display name is deliberately not stored.
type Link struct {
	PCID      uuid.UUID
	PCName    string
	ConsoleID uuid.UUID
}

// FullLink is the read-side view of a Link with both display names filled in,
// used for display and notification. It is never partially updated; a fresh
// lookup replaces the whole value.
type FullLink struct {
	PCID        uuid.UUID
	PCName      string
	ConsoleID   uuid.UUID
	ConsoleName string
}

// Opposed returns the id of the other side of the link.
func (l *FullLink) Opposed(id uuid.UUID) uuid.UUID {
	if id == l.PCID {
		return l.ConsoleID
	}

	return l.PCID
}

// SideOf returns the platform the given id occupies in this link.
func (l *FullLink) SideOf(id uuid.UUID) Platform {
	if id == l.PCID {
		return PlatformPC
	}

	return PlatformConsole
}
