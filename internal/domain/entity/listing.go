// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Donation price markers. A listing whose price text matches one of these at
// creation time is a donation; the flag is frozen afterwards and never
// recomputed, even though no edit path exists today.
const (
	PriceFree     = "Gratuit"
	PriceZeroDA   = "0 DA"
	DefaultWeight = 1.0
)

// DefaultCondition is applied when a listing is created without one.
const DefaultCondition = "Excellent"

// Listing is an offered item: a surplus product for sale or a donation.
type Listing struct {
	ID          int64      `json:"id"`           // Creation-time-derived identifier (unix milliseconds, made unique by the store).
	Name        string     `json:"name"`         // Display name of the item.
	Description string     `json:"description"`  // Free-text description.
	Price       string     `json:"price"`        // Free-text price, e.g. "800 DA", "Gratuit".
	Location    string     `json:"location"`     // Wilaya / city name.
	Owner       string     `json:"owner"`        // Display name of the offering user.
	OwnerID     uuid.UUID  `json:"owner_id"`     // Stable identifier of the offering profile, if it is the local one.
	ImageURL    string     `json:"image_url"`    // Illustration image reference.
	ExpiryDate  string     `json:"expiry_date"`  // Best-before date, YYYY-MM-DD.
	Category    string     `json:"category"`     // Category tag, e.g. "Plats préparés".
	Condition   string     `json:"condition"`    // Condition tag, e.g. "Excellent", "Très bon".
	Weight      *float64   `json:"weight,omitempty"` // Approximate weight in kg; nil counts as DefaultWeight in statistics.
	FlashOffer  bool       `json:"is_flash_offer"`
	IsDonation  bool       `json:"is_donation"` // Frozen at creation from the price text.
	Reserved    bool       `json:"reserved"`
	ReservedAt  *time.Time `json:"reserved_at,omitempty"` // Set when reserved, cleared when unreserved.
	ReservedBy  uuid.UUID  `json:"reserved_by,omitempty"` // Profile that holds the reservation.
	CreatedAt   time.Time  `json:"created_at"`
}

// PriceIsDonation reports whether a price text denotes a donation.
func PriceIsDonation(price string) bool {
	return price == "" || price == PriceFree || price == PriceZeroDA
}

// EffectiveWeight returns the weight used for aggregate statistics.
func (l *Listing) EffectiveWeight() float64 {
	if l.Weight == nil {
		return DefaultWeight
	}

	return *l.Weight
}

// CatalogStatistics aggregates the catalog partitioned by reservation state.
// TotalProducts/TotalWeight cover the still-available listings only, so
// TotalProducts + ReservedProducts always equals the catalog size.
type CatalogStatistics struct {
	TotalProducts    int     `json:"total_products"`
	TotalWeight      float64 `json:"total_weight"`
	ReservedProducts int     `json:"reserved_products"`
	ReservedWeight   float64 `json:"reserved_weight"`
}
