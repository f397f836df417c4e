// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the local user of the device. It is a singleton: the service
// manages exactly one profile, and it is the only entity that survives a
// restart.
type Profile struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	City         string     `json:"city"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	PasswordHash string     `json:"-"`
	RegisteredAt *time.Time `json:"registered_at,omitempty"`
	LoggedIn     bool       `json:"logged_in"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsEmpty reports whether the profile carries no identity yet. Absence of
// both name and email is treated as "no account on this device".
func (p *Profile) IsEmpty() bool {
	return p == nil || (p.Name == "" && p.Email == "")
}
