package payment

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/zap-shift/parcel-delivery-api/config"
	"github.com/zap-shift/parcel-delivery-api/data"
	"github.com/zap-shift/parcel-delivery-api/keys"
)

// StripeGateway implements Gateway with Stripe Checkout
type StripeGateway struct {
	API      *client.API
	SiteURL  string
	Settings *config.CheckoutSettings
}

// NewStripeGateway returns a Gateway talking to the Stripe API. The SDK's own
// network retries are disabled, callers re-initiate on failure.
func NewStripeGateway(secretKey, siteURL string, settings *config.CheckoutSettings) *StripeGateway {
	return NewStripeGatewayWithURL(secretKey, "", siteURL, settings)
}

// NewStripeGatewayWithURL is NewStripeGateway against a non default API url
func NewStripeGatewayWithURL(secretKey, apiURL, siteURL string, settings *config.CheckoutSettings) *StripeGateway {
	backendConfig := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
	}
	if apiURL != "" {
		backendConfig.URL = stripe.String(apiURL)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig)

	return &StripeGateway{
		API:      client.New(secretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend}),
		SiteURL:  strings.TrimRight(siteURL, "/"),
		Settings: settings,
	}
}

// CreateCheckoutSession creates a one line item payment session for the parcel
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req data.CheckoutRequest) (string, error) {

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(g.Settings.Currency),
					UnitAmount: stripe.Int64(ToMinorUnits(req.Cost)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ParcelName),
					},
				},
				Quantity: stripe.Int64(g.Settings.Quantity),
			},
		},
		CustomerEmail: stripe.String(req.SenderEmail),
		SuccessURL:    stripe.String(g.SiteURL + g.Settings.SuccessPath + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(g.SiteURL + g.Settings.CancelPath),
	}
	params.Context = ctx
	params.AddMetadata(data.MetadataParcelID, req.ParcelID)
	params.AddMetadata(data.MetadataParcelName, req.ParcelName)

	log.Trace("creating stripe checkout session", log.Data{keys.ParcelID: req.ParcelID, keys.Email: req.SenderEmail})

	session, err := g.API.CheckoutSessions.New(params)
	if err != nil {
		return "", &GatewayError{Op: "create checkout session", Err: err}
	}

	log.Info("stripe checkout session created", log.Data{keys.SessionID: session.ID, keys.ParcelID: req.ParcelID})

	return session.URL, nil
}

// GetCheckoutSession retrieves a checkout session by id
func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (data.CheckoutSession, error) {

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	log.Trace("retrieving stripe checkout session", log.Data{keys.SessionID: sessionID})

	session, err := g.API.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return data.CheckoutSession{}, ErrSessionNotFound
		}
		return data.CheckoutSession{}, &GatewayError{Op: "get checkout session", Err: err}
	}

	return fromStripeSession(session), nil
}

func fromStripeSession(session *stripe.CheckoutSession) data.CheckoutSession {
	s := data.CheckoutSession{
		ID:            session.ID,
		PaymentStatus: string(session.PaymentStatus),
		AmountTotal:   session.AmountTotal,
		Currency:      string(session.Currency),
		CustomerEmail: session.CustomerEmail,
		Metadata:      session.Metadata,
	}
	if s.CustomerEmail == "" && session.CustomerDetails != nil {
		s.CustomerEmail = session.CustomerDetails.Email
	}
	if session.PaymentIntent != nil {
		s.PaymentIntentID = session.PaymentIntent.ID
	}
	return s
}
