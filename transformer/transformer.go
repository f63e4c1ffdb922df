package transformer

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zap-shift/parcel-delivery-api/data"
	"github.com/zap-shift/parcel-delivery-api/models"
	"github.com/zap-shift/parcel-delivery-api/payment"
)

//go:generate mockgen -source=transformer.go -destination=mock_transformer.go -package=transformer

// Transformer provides an interface by which to transform checkout sessions to parcel delivery entities
type Transformer interface {
	GetPaymentResource(session data.CheckoutSession, trackingID string, paidAt time.Time) (models.PaymentDao, error)
	GetParcelPaidEvent(p models.PaymentDao) data.ParcelPaid
}

// Transform implements the Transformer interface
type Transform struct{}

// New returns a new implementation of the Transformer interface
func New() *Transform {

	return &Transform{}
}

// GetPaymentResource transforms a paid checkout session into the payment record stored against its parcel
func (t *Transform) GetPaymentResource(session data.CheckoutSession, trackingID string, paidAt time.Time) (models.PaymentDao, error) {

	if err := payment.Validate(session); err != nil {
		return models.PaymentDao{}, err
	}

	return models.PaymentDao{
		Amount:        payment.ToMajorUnits(session.AmountTotal),
		Currency:      session.Currency,
		Email:         session.CustomerEmail,
		ParcelID:      session.ParcelID(),
		ParcelName:    session.ParcelName(),
		TransactionID: session.PaymentIntentID,
		PaymentStatus: session.PaymentStatus,
		PaidAt:        paidAt.UTC(),
		TrackingID:    trackingID,
	}, nil
}

// GetParcelPaidEvent transforms a recorded payment into the event announcing the parcel was paid
func (t *Transform) GetParcelPaidEvent(p models.PaymentDao) data.ParcelPaid {

	return data.ParcelPaid{
		ParcelID:      p.ParcelID,
		TrackingID:    p.TrackingID,
		TransactionID: p.TransactionID,
		Email:         p.Email,
		Amount:        decimal.NewFromFloat(p.Amount).StringFixed(2),
		Currency:      p.Currency,
		PaidAt:        p.PaidAt.Format(time.RFC3339),
	}
}
