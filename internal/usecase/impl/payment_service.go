package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"antigaspi/config"
	"antigaspi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// paymentService implements the PaymentUsecase interface. No money moves:
// the gateway prices, waits, and issues a receipt.
type paymentService struct {
	cfg    *config.PaymentConfig
	logger *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(cfg *config.Config, logger *slog.Logger) usecase.PaymentUsecase {
	return &paymentService{
		cfg:    cfg.Payment,
		logger: logger,
	}
}

// Quote prices a payment: purchases carry a percentage platform fee,
// seller registration a flat one.
func (srv *paymentService) Quote(_ context.Context, input *usecase.QuoteInput) (*usecase.PaymentQuote, error) {
	fee := srv.platformFee(input.Kind, input.Amount)

	return &usecase.PaymentQuote{
		Kind:        input.Kind,
		ItemName:    input.ItemName,
		Amount:      input.Amount,
		PlatformFee: fee,
		Total:       input.Amount + fee,
	}, nil
}

// Pay settles a quote after the simulated gateway delay and returns the
// receipt with a masked card reference.
func (srv *paymentService) Pay(ctx context.Context, input *usecase.PayInput) (*usecase.PaymentReceipt, error) {
	if err := sleepFor(ctx, srv.cfg.ProcessingDelay); err != nil {
		return nil, errors.Wrap(err, "payment aborted")
	}

	fee := srv.platformFee(input.Kind, input.Amount)
	receipt := &usecase.PaymentReceipt{
		TransactionID: uuid.New(),
		Kind:          input.Kind,
		ItemName:      input.ItemName,
		Total:         input.Amount + fee,
		MaskedCard:    maskCard(input.CardNumber),
		PaidAt:        time.Now(),
	}

	srv.logger.Info("payment settled",
		"transactionID", receipt.TransactionID, "kind", receipt.Kind, "total", receipt.Total)

	return receipt, nil
}

func (srv *paymentService) platformFee(kind string, amount int64) int64 {
	if kind == usecase.PaymentKindRegistration {
		return int64(srv.cfg.RegistrationFee)
	}

	return int64(math.Round(float64(amount) * float64(srv.cfg.PlatformFeePercent) / 100))
}

// maskCard keeps only the last four digits of a card number.
func maskCard(number string) string {
	if len(number) < 4 {
		return "****"
	}

	return "**** **** **** " + number[len(number)-4:]
}
