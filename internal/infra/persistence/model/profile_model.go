// Package model contains the persistence models mapped by GORM. They are
// kept separate from the domain entities so storage concerns never leak
// into the domain layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileKey is the fixed primary key of the single profile row, mirroring
// the one-record-per-device storage model.
const ProfileKey = "userProfile"

// ProfileModel is the GORM mapping of the device profile.
type ProfileModel struct {
	Key          string    `gorm:"primaryKey;column:key"`
	ID           uuid.UUID `gorm:"column:id;type:text"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	Phone        string    `gorm:"column:phone"`
	City         string    `gorm:"column:city"`
	AvatarURL    string    `gorm:"column:avatar_url"`
	PasswordHash string    `gorm:"column:password_hash"`
	RegisteredAt *time.Time `gorm:"column:registered_at"`
	LoggedIn     bool      `gorm:"column:logged_in"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default GORM table name.
func (ProfileModel) TableName() string {
	return "profiles"
}
