package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/zap-shift/parcel-delivery-api/config"
	"github.com/zap-shift/parcel-delivery-api/dao"
	"github.com/zap-shift/parcel-delivery-api/data"
	"github.com/zap-shift/parcel-delivery-api/events"
	"github.com/zap-shift/parcel-delivery-api/keys"
	"github.com/zap-shift/parcel-delivery-api/models"
	"github.com/zap-shift/parcel-delivery-api/payment"
	"github.com/zap-shift/parcel-delivery-api/tracking"
	"github.com/zap-shift/parcel-delivery-api/transformer"
)

const (
	alreadyRecordedMessage = "already exist"

	// a payment is recorded with at most this many generated tracking ids
	maxRecordAttempts = 2
)

var (
	// ErrForbidden is returned when a caller asks for another user's data
	ErrForbidden = errors.New("forbidden access")
	// ErrParcelNotFound is returned when a paid session names a parcel that does not exist
	ErrParcelNotFound = errors.New("parcel not found")
)

// ValidationError wraps a request that failed boundary validation
type ValidationError struct {
	Err error
}

// Error provides a consistent error for rejected input
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Err)
}

// Unwrap returns the underlying validation failure
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Service represents the parcel delivery operations behind the HTTP api
type Service struct {
	DAO            dao.Service
	Gateway        payment.Gateway
	Transformer    transformer.Transformer
	Events         events.Publisher
	Validate       *validator.Validate
	NewTrackingID  func() string
	Now            func() time.Time
	GatewayTimeout time.Duration
	StoreTimeout   time.Duration
}

// New creates a new instance of service over the given collaborators
func New(cfg *config.Config, store dao.Service, gateway payment.Gateway, publisher events.Publisher) *Service {

	return &Service{
		DAO:            store,
		Gateway:        gateway,
		Transformer:    transformer.New(),
		Events:         publisher,
		Validate:       validator.New(validator.WithRequiredStructEnabled()),
		NewTrackingID:  tracking.NewID,
		Now:            time.Now,
		GatewayTimeout: cfg.GatewayTimeout(),
		StoreTimeout:   cfg.StoreTimeout(),
	}
}

// CreateUser registers a user unless the email is already known, in which case exists is true
func (svc *Service) CreateUser(ctx context.Context, user *models.UserDao) (result data.InsertResult, exists bool, err error) {

	if err = svc.validate(user); err != nil {
		return data.InsertResult{}, false, err
	}

	storeCtx, cancel := withTimeout(ctx, svc.StoreTimeout)
	defer cancel()

	_, err = svc.DAO.GetUserByEmail(storeCtx, user.Email)
	if err == nil {
		return data.InsertResult{}, true, nil
	}
	if !errors.Is(err, dao.ErrNotFound) {
		return data.InsertResult{}, false, err
	}

	user.Role = models.DefaultUserRole
	user.CreatedAt = svc.Now().UTC()

	result, err = svc.DAO.CreateUser(storeCtx, user)
	if errors.Is(err, dao.ErrDuplicate) {
		// registered concurrently between the lookup and the insert
		return data.InsertResult{}, true, nil
	}
	if err != nil {
		return data.InsertResult{}, false, err
	}

	log.Info("user registered", log.Data{keys.Email: user.Email})

	return result, false, nil
}

// ListParcels returns parcels newest first, limited to a sender when senderEmail is set
func (svc *Service) ListParcels(ctx context.Context, senderEmail string) ([]models.ParcelDao, error) {

	storeCtx, cancel := withTimeout(ctx, svc.StoreTimeout)
	defer cancel()

	return svc.DAO.ListParcels(storeCtx, senderEmail)
}

// GetParcel returns a single parcel
func (svc *Service) GetParcel(ctx context.Context, id string) (*models.ParcelDao, error) {

	storeCtx, cancel := withTimeout(ctx, svc.StoreTimeout)
	defer cancel()

	return svc.DAO.GetParcel(storeCtx, id)
}

// CreateParcel stores a new unpaid parcel stamped with its creation time
func (svc *Service) CreateParcel(ctx context.Context, parcel *models.ParcelDao) (data.InsertResult, error) {

	if err := svc.validate(parcel); err != nil {
		return data.InsertResult{}, err
	}

	// payment fields are only ever set by reconciliation
	parcel.PaymentStatus = ""
	parcel.TrackingID = ""
	parcel.CreatedAt = svc.Now().UTC()

	storeCtx, cancel := withTimeout(ctx, svc.StoreTimeout)
	defer cancel()

	result, err := svc.DAO.CreateParcel(storeCtx, parcel)
	if err != nil {
		return data.InsertResult{}, err
	}

	log.Info("parcel created", log.Data{keys.ParcelID: result.InsertedID, keys.Email: parcel.SenderEmail})

	return result, nil
}

// DeleteParcel removes a parcel
func (svc *Service) DeleteParcel(ctx context.Context, id string) (data.DeleteResult, error) {

	storeCtx, cancel := withTimeout(ctx, svc.StoreTimeout)
	defer cancel()

	result, err := svc.DAO.DeleteParcel(storeCtx, id)
	if err != nil {
		return data.DeleteResult{}, err
	}

	log.Info("parcel deleted", log.Data{keys.ParcelID: id, "deleted_count": result.DeletedCount})

	return result, nil
}

// CreateCheckoutSession opens a hosted checkout for a parcel and returns where to send the payer
func (svc *Service) CreateCheckoutSession(ctx context.Context, req data.CheckoutRequest) (data.CheckoutResponse, error) {

	if err := svc.validate(req); err != nil {
		return data.CheckoutResponse{}, err
	}

	gatewayCtx, cancel := withTimeout(ctx, svc.GatewayTimeout)
	defer cancel()

	url, err := svc.Gateway.CreateCheckoutSession(gatewayCtx, req)
	if err != nil {
		log.Error(err, log.Data{keys.ParcelID: req.ParcelID})
		return data.CheckoutResponse{}, err
	}

	log.Info("checkout session created", log.Data{keys.ParcelID: req.ParcelID, keys.Email: req.SenderEmail})

	return data.CheckoutResponse{URL: url}, nil
}

// ReconcilePayment turns a paid checkout session into a stamped parcel and a
// payment record, exactly once per payment intent. A session that is not paid
// yields an unsuccessful response and no writes. Replays answer with the
// tracking id recorded the first time.
func (svc *Service) ReconcilePayment(ctx context.Context, sessionID string) (data.ReconcileResponse, error) {

	if sessionID == "" {
		return data.ReconcileResponse{}, &ValidationError{Err: errors.New("session_id is required")}
	}

	logData := log.Data{keys.SessionID: sessionID}

	gatewayCtx, cancelGateway := withTimeout(ctx, svc.GatewayTimeout)
	session, err := svc.Gateway.GetCheckoutSession(gatewayCtx, sessionID)
	cancelGateway()
	if err != nil {
		log.Error(err, logData)
		return data.ReconcileResponse{}, err
	}
	logData[keys.TransactionID] = session.PaymentIntentID
	logData[keys.PaymentStatus] = session.PaymentStatus
	log.Trace("checkout session resolved", logData)

	storeCtx, cancelStore := withTimeout(ctx, svc.StoreTimeout)
	defer cancelStore()

	if session.PaymentIntentID != "" {
		existing, err := svc.DAO.GetPaymentByTransactionID(storeCtx, session.PaymentIntentID)
		if err == nil {
			log.Info("payment already reconciled", logData)
			return alreadyRecorded(existing), nil
		}
		if !errors.Is(err, dao.ErrNotFound) {
			log.Error(err, logData)
			return data.ReconcileResponse{}, err
		}
	}

	if !session.IsPaid() {
		log.Info("checkout session is not paid, nothing recorded", logData)
		return data.ReconcileResponse{
			Success: false,
			Message: fmt.Sprintf("payment status is %s", session.PaymentStatus),
		}, nil
	}

	record, err := svc.Transformer.GetPaymentResource(session, svc.NewTrackingID(), svc.Now())
	if err != nil {
		log.Error(err, logData)
		return data.ReconcileResponse{}, err
	}
	logData[keys.ParcelID] = record.ParcelID
	logData[keys.TrackingID] = record.TrackingID

	var updated data.UpdateResult
	var inserted data.InsertResult
	for attempt := 1; ; attempt++ {
		updated, inserted, err = svc.DAO.RecordPayment(storeCtx, &record)
		if !errors.Is(err, dao.ErrDuplicate) {
			break
		}

		// either a concurrent confirmation of the same session recorded it
		// first or the generated tracking id is already taken
		existing, lookupErr := svc.DAO.GetPaymentByTransactionID(storeCtx, session.PaymentIntentID)
		switch {
		case lookupErr == nil:
			log.Info("payment already reconciled", logData)
			return alreadyRecorded(existing), nil
		case !errors.Is(lookupErr, dao.ErrNotFound):
			log.Error(lookupErr, logData)
			return data.ReconcileResponse{}, lookupErr
		case attempt == maxRecordAttempts:
			err = fmt.Errorf("error recording payment: tracking id %s already in use", record.TrackingID)
			log.Error(err, logData)
			return data.ReconcileResponse{}, err
		}

		record.TrackingID = svc.NewTrackingID()
		logData[keys.TrackingID] = record.TrackingID
		log.Info("tracking id already in use, retrying with a new one", logData)
	}

	switch {
	case errors.Is(err, dao.ErrNotFound), errors.Is(err, dao.ErrInvalidID):
		log.Error(ErrParcelNotFound, logData)
		return data.ReconcileResponse{}, ErrParcelNotFound
	case err != nil:
		log.Error(err, logData)
		return data.ReconcileResponse{}, err
	}

	log.Info("payment reconciled", logData)

	svc.publishParcelPaid(ctx, record)

	return data.ReconcileResponse{
		Success:       true,
		ModifyParcel:  &updated,
		PaymentInfo:   &inserted,
		TrackingID:    record.TrackingID,
		TransactionID: record.TransactionID,
	}, nil
}

// publishParcelPaid announces a recorded payment. The records are already
// durable so a failure is logged rather than returned.
func (svc *Service) publishParcelPaid(ctx context.Context, record models.PaymentDao) {

	if svc.Events == nil {
		return
	}

	publishCtx, cancel := withTimeout(context.WithoutCancel(ctx), svc.GatewayTimeout)
	defer cancel()

	if err := svc.Events.PublishParcelPaid(publishCtx, svc.Transformer.GetParcelPaidEvent(record)); err != nil {
		log.Error(fmt.Errorf("error publishing parcel-paid event: %w", err), log.Data{
			keys.ParcelID:   record.ParcelID,
			keys.TrackingID: record.TrackingID,
		})
	}
}

// ListPayments returns the payment history of queriedEmail, which must be the
// caller's own. An empty query means the caller's history.
func (svc *Service) ListPayments(ctx context.Context, callerEmail, queriedEmail string) ([]models.PaymentDao, error) {

	if callerEmail == "" {
		return nil, ErrForbidden
	}
	if queriedEmail == "" {
		queriedEmail = callerEmail
	}
	if queriedEmail != callerEmail {
		log.Info("payment history requested for another user", log.Data{keys.Email: callerEmail, "queried_email": queriedEmail})
		return nil, ErrForbidden
	}

	storeCtx, cancel := withTimeout(ctx, svc.StoreTimeout)
	defer cancel()

	return svc.DAO.ListPayments(storeCtx, queriedEmail)
}

// ListRiders returns rider applications newest first, limited to a status when set
func (svc *Service) ListRiders(ctx context.Context, status string) ([]models.RiderDao, error) {

	err := svc.Validate.Var(status, "omitempty,oneof="+models.RiderStatusPending+" "+models.RiderStatusApproved+" "+models.RiderStatusRejected)
	if err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("unknown rider status %q", status)}
	}

	storeCtx, cancel := withTimeout(ctx, svc.StoreTimeout)
	defer cancel()

	return svc.DAO.ListRiders(storeCtx, status)
}

// CreateRider stores a pending rider application stamped with its apply time
func (svc *Service) CreateRider(ctx context.Context, rider *models.RiderDao) (data.InsertResult, error) {

	if err := svc.validate(rider); err != nil {
		return data.InsertResult{}, err
	}

	rider.Status = models.RiderStatusPending
	rider.AppliedAt = svc.Now().UTC()

	storeCtx, cancel := withTimeout(ctx, svc.StoreTimeout)
	defer cancel()

	result, err := svc.DAO.CreateRider(storeCtx, rider)
	if err != nil {
		return data.InsertResult{}, err
	}

	log.Info("rider application received", log.Data{keys.RiderID: result.InsertedID, keys.Email: rider.Email})

	return result, nil
}

func (svc *Service) validate(v interface{}) error {
	if err := svc.Validate.Struct(v); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

func alreadyRecorded(existing *models.PaymentDao) data.ReconcileResponse {
	return data.ReconcileResponse{
		Success:       true,
		Message:       alreadyRecordedMessage,
		TrackingID:    existing.TrackingID,
		TransactionID: existing.TransactionID,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
