package service

import (
	"context"
	"sort"
	"sync"

	"github.com/zap-shift/parcel-delivery-api/dao"
	"github.com/zap-shift/parcel-delivery-api/data"
	"github.com/zap-shift/parcel-delivery-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryStore is an in-process dao.Service holding the same uniqueness rules as the mongo indexes
type memoryStore struct {
	mu       sync.Mutex
	parcels  map[string]models.ParcelDao
	payments []models.PaymentDao
	users    map[string]models.UserDao
	riders   []models.RiderDao
	writes   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		parcels: map[string]models.ParcelDao{},
		users:   map[string]models.UserDao{},
	}
}

func (s *memoryStore) CreateUser(ctx context.Context, user *models.UserDao) (data.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return data.InsertResult{}, dao.ErrDuplicate
	}
	user.ID = primitive.NewObjectID()
	s.users[user.Email] = *user
	s.writes++
	return data.InsertResult{Acknowledged: true, InsertedID: user.ID.Hex()}, nil
}

func (s *memoryStore) GetUserByEmail(ctx context.Context, email string) (*models.UserDao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return &user, nil
}

func (s *memoryStore) ListParcels(ctx context.Context, senderEmail string) ([]models.ParcelDao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parcels := []models.ParcelDao{}
	for _, p := range s.parcels {
		if senderEmail == "" || p.SenderEmail == senderEmail {
			parcels = append(parcels, p)
		}
	}
	sort.Slice(parcels, func(i, j int) bool { return parcels[i].CreatedAt.After(parcels[j].CreatedAt) })
	return parcels, nil
}

func (s *memoryStore) GetParcel(ctx context.Context, id string) (*models.ParcelDao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.parcels[id]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return &p, nil
}

func (s *memoryStore) CreateParcel(ctx context.Context, parcel *models.ParcelDao) (data.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parcel.ID = primitive.NewObjectID()
	s.parcels[parcel.ID.Hex()] = *parcel
	s.writes++
	return data.InsertResult{Acknowledged: true, InsertedID: parcel.ID.Hex()}, nil
}

func (s *memoryStore) DeleteParcel(ctx context.Context, id string) (data.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parcels[id]; !ok {
		return data.DeleteResult{Acknowledged: true}, nil
	}
	delete(s.parcels, id)
	s.writes++
	return data.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (s *memoryStore) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.PaymentDao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.TransactionID == transactionID {
			found := p
			return &found, nil
		}
	}
	return nil, dao.ErrNotFound
}

func (s *memoryStore) ListPayments(ctx context.Context, email string) ([]models.PaymentDao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payments := []models.PaymentDao{}
	for _, p := range s.payments {
		if email == "" || p.Email == email {
			payments = append(payments, p)
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].PaidAt.After(payments[j].PaidAt) })
	return payments, nil
}

func (s *memoryStore) RecordPayment(ctx context.Context, payment *models.PaymentDao) (data.UpdateResult, data.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parcel, ok := s.parcels[payment.ParcelID]
	if !ok {
		return data.UpdateResult{}, data.InsertResult{}, dao.ErrNotFound
	}
	for _, p := range s.payments {
		if p.TransactionID == payment.TransactionID || p.TrackingID == payment.TrackingID {
			return data.UpdateResult{}, data.InsertResult{}, dao.ErrDuplicate
		}
	}
	payment.ID = primitive.NewObjectID()
	s.payments = append(s.payments, *payment)
	parcel.PaymentStatus = payment.PaymentStatus
	parcel.TrackingID = payment.TrackingID
	s.parcels[payment.ParcelID] = parcel
	s.writes += 2
	return data.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1},
		data.InsertResult{Acknowledged: true, InsertedID: payment.ID.Hex()}, nil
}

func (s *memoryStore) ListRiders(ctx context.Context, status string) ([]models.RiderDao, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	riders := []models.RiderDao{}
	for _, r := range s.riders {
		if status == "" || r.Status == status {
			riders = append(riders, r)
		}
	}
	sort.Slice(riders, func(i, j int) bool { return riders[i].AppliedAt.After(riders[j].AppliedAt) })
	return riders, nil
}

func (s *memoryStore) CreateRider(ctx context.Context, rider *models.RiderDao) (data.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rider.ID = primitive.NewObjectID()
	s.riders = append(s.riders, *rider)
	s.writes++
	return data.InsertResult{Acknowledged: true, InsertedID: rider.ID.Hex()}, nil
}

func (s *memoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *memoryStore) Shutdown(ctx context.Context) {}

func (s *memoryStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
