package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"karaoke/infras/otel"
	"karaoke/shared/constant"
)

// CheckoutParams describes a single deposit charge to collect up front.
// Amount is in the currency's minor unit (pence for GBP).
type CheckoutParams struct {
	Amount      int64
	Currency    string
	ProductName string
	Description string
	BookingID   string
	SuccessURL  string
	CancelURL   string
}

type Session struct {
	ID  string
	URL string
}

// Gateway creates hosted checkout sessions. The secret key is passed per
// call because it lives in the venue settings, not in the environment.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, secretKey string, params CheckoutParams) (Session, error)
}

type stripeGateway struct {
	otel otel.Otel
}

func NewStripeGateway(otl otel.Otel) Gateway {
	return &stripeGateway{otel: otl}
}

func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, secretKey string, params CheckoutParams) (res Session, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateCheckoutSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	sc := &client.API{}
	sc.Init(secretKey, nil)

	sessionParams := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(params.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(params.ProductName),
						Description: stripe.String(params.Description),
					},
					UnitAmount: stripe.Int64(params.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
		Metadata: map[string]string{
			"booking_id": params.BookingID,
		},
	}
	sessionParams.Context = ctx

	session, err := sc.CheckoutSessions.New(sessionParams)
	if err != nil {
		log.Error().Err(err).Str("bookingID", params.BookingID).Msg("failed to create checkout session")

		return res, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return Session{ID: session.ID, URL: session.URL}, nil
}
