// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertType classifies a synthetic notification.
type AlertType string

const (
	AlertNewListing  AlertType = "new_listing"
	AlertDonation    AlertType = "donation"
	AlertMessage     AlertType = "message"
	AlertReservation AlertType = "reservation"
)

// Alert is a synthetic notification produced by the simulator. Alerts are
// volatile: only the most recent ones are retained and none survive a
// restart.
type Alert struct {
	ID         uuid.UUID `json:"id"`
	Type       AlertType `json:"type"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	ListingID  *int64    `json:"listing_id,omitempty"`
	RedirectTo string    `json:"redirect_to,omitempty"` // Client route the alert points at, e.g. "/products".
	CreatedAt  time.Time `json:"created_at"`
	Read       bool      `json:"read"`
}
