package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"teerenta/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CardGateway is the external card-payment processor boundary.
type CardGateway interface {
	Charge(ctx context.Context, req models.ChargeRequest) (*models.ChargeReceipt, error)
}

// StripeGateway charges cards through Stripe PaymentIntents.
type StripeGateway struct {
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewStripeGateway constructs a gateway with a bounded per-charge timeout.
func NewStripeGateway(timeout time.Duration, logger *zap.Logger) *StripeGateway {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &StripeGateway{Timeout: timeout, Logger: logger}
}

// Charge creates a PaymentIntent for the amount. A timeout counts as a
// failed payment; the caller never waits past the bound.
func (g *StripeGateway) Charge(ctx context.Context, req models.ChargeRequest) (*models.ChargeReceipt, error) {
	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.AmountMinor),
		Currency:           stripe.String(strings.ToLower(req.Currency)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		g.Logger.Warn("stripe charge failed",
			zap.Int64("amount_minor", req.AmountMinor),
			zap.String("currency", req.Currency),
			zap.Error(err))
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	g.Logger.Info("stripe charge created",
		zap.String("payment_intent", pi.ID),
		zap.Int64("amount_minor", req.AmountMinor))
	return &models.ChargeReceipt{
		TransactionID: pi.ID,
		AmountMinor:   req.AmountMinor,
		Currency:      req.Currency,
		CreatedAt:     time.Now(),
	}, nil
}
