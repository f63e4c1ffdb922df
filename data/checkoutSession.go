package data

import "github.com/zap-shift/parcel-delivery-api/models"

// Metadata keys attached to a checkout session at creation time
const (
	MetadataParcelID   = "parcelId"
	MetadataParcelName = "parcelName"
)

// CheckoutRequest is the body of POST /create-checkout-session
type CheckoutRequest struct {
	ParcelID    string  `json:"parcelId"    validate:"required"`
	ParcelName  string  `json:"parcelName"  validate:"required"`
	Cost        float64 `json:"cost"        validate:"gt=0,lte=999999.99"`
	SenderEmail string  `json:"senderEmail" validate:"required,email"`
}

// CheckoutResponse carries the hosted checkout page the client is redirected to
type CheckoutResponse struct {
	URL string `json:"url"`
}

// CheckoutSession is the gateway-neutral view of a hosted checkout session
type CheckoutSession struct {
	ID              string
	PaymentStatus   string
	AmountTotal     int64
	Currency        string
	CustomerEmail   string
	PaymentIntentID string
	Metadata        map[string]string
}

// ParcelID returns the parcel identifier recorded in the session metadata
func (s CheckoutSession) ParcelID() string {
	return s.Metadata[MetadataParcelID]
}

// ParcelName returns the parcel name recorded in the session metadata
func (s CheckoutSession) ParcelName() string {
	return s.Metadata[MetadataParcelName]
}

// IsPaid reports whether the gateway considers the session paid
func (s CheckoutSession) IsPaid() bool {
	return s.PaymentStatus == models.PaymentStatusPaid
}
