// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
)

// Platform identifies which account system an identity belongs to.
// An identity belongs to exactly one platform; the two are mutually exclusive.
type Platform string

const (
	// PlatformPC is the PC account system. The durable link row is keyed by the
	// PC account id and carries the PC display name.
	PlatformPC Platform = "pc"

	// PlatformConsole is the console account system. Console display names are
	// not persisted; they are resolved from the presence layer at lookup time.
	PlatformConsole Platform = "console"
)

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	return p == PlatformPC || p == PlatformConsole
}

// Opposite returns the other platform.
func (p Platform) Opposite() Platform {
	if p == PlatformPC {
		return PlatformConsole
	}

	return PlatformPC
}

// Identity is an authenticated account on one of the two platforms.
// Authentication itself happens before an Identity reaches this service;
// here it is just an id, a display name, and a platform tag.
type Identity struct {
	ID       uuid.UUID
	Name     string
	Platform Platform
}
