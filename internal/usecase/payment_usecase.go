package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Payment kinds. Purchases carry a percentage platform fee, seller
// registration a flat one.
const (
	PaymentKindPurchase     = "purchase"
	PaymentKindRegistration = "registration"
)

// PaymentUsecase defines the interface for the simulated payment flow.
type PaymentUsecase interface {
	Quote(ctx context.Context, input *QuoteInput) (*PaymentQuote, error)
	Pay(ctx context.Context, input *PayInput) (*PaymentReceipt, error)
}

// --- Input/Output DTOs ---

// QuoteInput defines the data required to price a payment.
type QuoteInput struct {
	Kind     string `json:"kind" validate:"required,oneof=purchase registration"`
	ItemName string `json:"item_name"`
	Amount   int64  `json:"amount" validate:"gte=0"`
}

// PaymentQuote breaks a payment down into base amount, platform fee and
// total, all in dinars.
type PaymentQuote struct {
	Kind        string `json:"kind"`
	ItemName    string `json:"item_name"`
	Amount      int64  `json:"amount"`
	PlatformFee int64  `json:"platform_fee"`
	Total       int64  `json:"total"`
}

// PayInput defines the data required to settle a quote. Card numbers are
// format-checked only, nothing is charged.
type PayInput struct {
	Kind       string `json:"kind" validate:"required,oneof=purchase registration"`
	ItemName   string `json:"item_name"`
	Amount     int64  `json:"amount" validate:"gte=0"`
	CardNumber string `json:"card_number" validate:"required,len=16,numeric"`
	CardHolder string `json:"card_holder" validate:"required"`
}

// PaymentReceipt records a settled simulated payment.
type PaymentReceipt struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Kind          string    `json:"kind"`
	ItemName      string    `json:"item_name"`
	Total         int64     `json:"total"`
	MaskedCard    string    `json:"masked_card"`
	PaidAt        time.Time `json:"paid_at"`
}
