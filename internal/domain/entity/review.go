// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating left on a listing. Reviews are purely additive: they
// are never edited, deleted or moderated.
type Review struct {
	ID         uuid.UUID `json:"id"`
	ListingID  int64     `json:"listing_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Rating     int       `json:"rating"` // 1..5 stars.
	Comment    string    `json:"comment,omitempty"`
	Date       time.Time `json:"date"`
	Helpful    int       `json:"helpful"` // Helpful-vote counter.
	Verified   bool      `json:"verified"`
}

// ReviewSummary aggregates the reviews of one listing.
type ReviewSummary struct {
	ListingID    int64       `json:"listing_id"`
	Count        int         `json:"count"`
	Average      float64     `json:"average"`
	Distribution []StarCount `json:"distribution"` // 5 stars down to 1.
}

// StarCount is one row of the per-star distribution.
type StarCount struct {
	Stars   int     `json:"stars"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}
