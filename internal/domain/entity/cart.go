// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryOption selects how a cart item is handed over.
type DeliveryOption string

const (
	DeliveryPickup   DeliveryOption = "pickup"
	DeliveryCourier  DeliveryOption = "delivery"
	MinCartQuantity                 = 1
)

// CartItem is one selected listing in a cart. The listing is a snapshot
// taken when the item was added.
type CartItem struct {
	Listing        Listing        `json:"listing"`
	Quantity       int            `json:"quantity"` // Never below MinCartQuantity; a quantity of zero drops the item.
	DeliveryOption DeliveryOption `json:"delivery_option"`
	AddedAt        time.Time      `json:"added_at"`
}

// Cart is the ephemeral per-profile selection. It lives in memory only and
// is cleared by a successful order.
type Cart struct {
	ProfileID uuid.UUID   `json:"profile_id"`
	Items     []*CartItem `json:"items"`
	Total     int         `json:"total"` // Dinars; donations contribute zero.
}

// OrderReceipt is the outcome of a (simulated) order submission.
type OrderReceipt struct {
	OrderID     uuid.UUID `json:"order_id"`
	ItemCount   int       `json:"item_count"`
	Total       int       `json:"total"`
	SubmittedAt time.Time `json:"submitted_at"`
}
