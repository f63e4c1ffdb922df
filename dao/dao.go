package dao

import (
	"context"
	"errors"

	"github.com/zap-shift/parcel-delivery-api/data"
	"github.com/zap-shift/parcel-delivery-api/models"
)

//go:generate mockgen -source=dao.go -destination=mock_dao.go -package=dao

var (
	// ErrNotFound is returned when the addressed document does not exist
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a write violates a unique index
	ErrDuplicate = errors.New("duplicate document")
	// ErrInvalidID is returned for identifiers that are not valid object ids
	ErrInvalidID = errors.New("invalid document id")
)

// Service interface declares how to interact with the persistence layer regardless of underlying technology
type Service interface {
	// CreateUser persists a new user, ErrDuplicate when the email is taken
	CreateUser(ctx context.Context, user *models.UserDao) (data.InsertResult, error)
	// GetUserByEmail returns the user registered with email
	GetUserByEmail(ctx context.Context, email string) (*models.UserDao, error)
	// ListParcels returns parcels newest first, limited to a sender when senderEmail is set
	ListParcels(ctx context.Context, senderEmail string) ([]models.ParcelDao, error)
	// GetParcel returns a single parcel
	GetParcel(ctx context.Context, id string) (*models.ParcelDao, error)
	// CreateParcel persists a new parcel
	CreateParcel(ctx context.Context, parcel *models.ParcelDao) (data.InsertResult, error)
	// DeleteParcel removes a parcel
	DeleteParcel(ctx context.Context, id string) (data.DeleteResult, error)
	// GetPaymentByTransactionID returns the payment recorded for a gateway transaction
	GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.PaymentDao, error)
	// ListPayments returns payments newest paid first, limited to a payer when email is set
	ListPayments(ctx context.Context, email string) ([]models.PaymentDao, error)
	// RecordPayment stamps the payment's parcel as paid with its tracking id and
	// inserts the payment, both or neither. ErrNotFound when the parcel does not
	// exist, ErrDuplicate when the transaction was already recorded.
	RecordPayment(ctx context.Context, payment *models.PaymentDao) (data.UpdateResult, data.InsertResult, error)
	// ListRiders returns rider applications newest first, limited to a status when set
	ListRiders(ctx context.Context, status string) ([]models.RiderDao, error)
	// CreateRider persists a new rider application
	CreateRider(ctx context.Context, rider *models.RiderDao) (data.InsertResult, error)
	// Ping checks the store is reachable
	Ping(ctx context.Context) error
	// Shutdown can be called to clean up any open resources that the service may be holding on to.
	Shutdown(ctx context.Context)
}
