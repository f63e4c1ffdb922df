package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/zap-shift/parcel-delivery-api/data"
)

//go:generate mockgen -source=payment.go -destination=mock_payment.go -package=payment

// ErrSessionNotFound is returned when the gateway does not know the session reference
var ErrSessionNotFound = errors.New("checkout session not found")

// InvalidSessionError is returned when a checkout session cannot be reconciled
// because a field the reconciliation relies on is missing
type InvalidSessionError struct {
	SessionID string
	Field     string
}

// Error provides a consistent error for sessions missing reconciliation data
func (e *InvalidSessionError) Error() string {
	return fmt.Sprintf("checkout session %s is missing %s", e.SessionID, e.Field)
}

// GatewayError is returned when the checkout provider rejects or fails a call
type GatewayError struct {
	Op  string
	Err error
}

// Error provides a consistent error for failed gateway calls
func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s: %s", e.Op, e.Err)
}

// Unwrap returns the provider error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Gateway provides an interface to the hosted checkout provider
type Gateway interface {
	// CreateCheckoutSession opens a hosted checkout for a parcel and returns the
	// URL the payer is redirected to
	CreateCheckoutSession(ctx context.Context, req data.CheckoutRequest) (string, error)
	// GetCheckoutSession resolves a session reference
	GetCheckoutSession(ctx context.Context, sessionID string) (data.CheckoutSession, error)
}

// Validate checks that a paid session carries everything needed to record it
func Validate(session data.CheckoutSession) error {
	if session.PaymentIntentID == "" {
		return &InvalidSessionError{SessionID: session.ID, Field: "payment intent"}
	}
	if session.ParcelID() == "" {
		return &InvalidSessionError{SessionID: session.ID, Field: "parcel metadata"}
	}
	return nil
}
