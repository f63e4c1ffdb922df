package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/zap-shift/parcel-delivery-api/config"
	"github.com/zap-shift/parcel-delivery-api/data"
	"github.com/zap-shift/parcel-delivery-api/keys"
	"github.com/zap-shift/parcel-delivery-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const pingTimeout = 5 * time.Second

// Connect opens a client to mongoDBURL and checks the server answers
func Connect(ctx context.Context, mongoDBURL string) (*mongo.Client, error) {

	clientOptions := options.Client().
		ApplyURI(mongoDBURL).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	pingContext, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = client.Ping(pingContext, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping to mongodb failed, please check the connection to mongodb and that it is running: %w", err)
	}

	log.Info("connected to mongodb successfully")

	return client, nil
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// MongoService is an implementation of the Service interface using MongoDB as the backend driver.
type MongoService struct {
	client              *mongo.Client
	db                  MongoDatabaseInterface
	ParcelsCollection   string
	PaymentsCollection  string
	RidersCollection    string
	UsersCollection     string
	TransactionsEnabled bool
}

// New connects to MongoDB using the service configuration and makes sure the
// indexes the service relies on exist
func New(ctx context.Context, cfg *config.Config) (*MongoService, error) {

	client, err := Connect(ctx, cfg.MongoURL())
	if err != nil {
		return nil, err
	}

	m := NewMongoService(client, cfg)
	if err = m.EnsureIndexes(ctx); err != nil {
		m.Shutdown(ctx)
		return nil, err
	}

	return m, nil
}

// NewMongoService wraps an open client with the configured database and collections
func NewMongoService(client *mongo.Client, cfg *config.Config) *MongoService {
	return &MongoService{
		client:              client,
		db:                  client.Database(cfg.Database),
		ParcelsCollection:   cfg.ParcelsCollection,
		PaymentsCollection:  cfg.PaymentsCollection,
		RidersCollection:    cfg.RidersCollection,
		UsersCollection:     cfg.UsersCollection,
		TransactionsEnabled: cfg.TransactionsEnabled,
	}
}

// EnsureIndexes creates the unique and lookup indexes; creating an existing index is a no-op
func (m *MongoService) EnsureIndexes(ctx context.Context) error {

	indexes := map[string][]mongo.IndexModel{
		m.PaymentsCollection: {
			{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: options.Index().SetName("transactionId_unique").SetUnique(true)},
			{Keys: bson.D{{Key: "trackingId", Value: 1}}, Options: options.Index().SetName("trackingId_unique").SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}, {Key: "paidAt", Value: -1}}, Options: options.Index().SetName("email_paidAt")},
		},
		m.UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email_unique").SetUnique(true)},
		},
		m.ParcelsCollection: {
			{Keys: bson.D{{Key: "senderEmail", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("senderEmail_createdAt")},
		},
		m.RidersCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "appliedAt", Value: -1}}, Options: options.Index().SetName("status_appliedAt")},
		},
	}

	for collection, indexModels := range indexes {
		names, err := m.db.Collection(collection).Indexes().CreateMany(ctx, indexModels)
		if err != nil {
			return fmt.Errorf("error creating indexes on %s: %w", collection, err)
		}
		log.Info("mongodb indexes ensured", log.Data{keys.Collection: collection, "indexes": names})
	}

	return nil
}

// CreateUser will store the user into the database
func (m *MongoService) CreateUser(ctx context.Context, user *models.UserDao) (data.InsertResult, error) {
	user.ID = primitive.NewObjectID()
	return m.insert(ctx, m.UsersCollection, user.ID, user)
}

// GetUserByEmail fetches the user registered with email
func (m *MongoService) GetUserByEmail(ctx context.Context, email string) (*models.UserDao, error) {

	var user models.UserDao
	err := m.db.Collection(m.UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, notFound(err)
	}

	return &user, nil
}

// ListParcels fetches parcels, newest first
func (m *MongoService) ListParcels(ctx context.Context, senderEmail string) ([]models.ParcelDao, error) {

	filter := bson.M{}
	if senderEmail != "" {
		filter["senderEmail"] = senderEmail
	}

	parcels := []models.ParcelDao{}
	if err := m.find(ctx, m.ParcelsCollection, filter, "createdAt", &parcels); err != nil {
		return nil, err
	}

	return parcels, nil
}

// GetParcel fetches a parcel by id
func (m *MongoService) GetParcel(ctx context.Context, id string) (*models.ParcelDao, error) {

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var parcel models.ParcelDao
	err = m.db.Collection(m.ParcelsCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&parcel)
	if err != nil {
		return nil, notFound(err)
	}

	return &parcel, nil
}

// CreateParcel will store the parcel into the database
func (m *MongoService) CreateParcel(ctx context.Context, parcel *models.ParcelDao) (data.InsertResult, error) {
	parcel.ID = primitive.NewObjectID()
	return m.insert(ctx, m.ParcelsCollection, parcel.ID, parcel)
}

// DeleteParcel removes a parcel by id
func (m *MongoService) DeleteParcel(ctx context.Context, id string) (data.DeleteResult, error) {

	oid, err := objectID(id)
	if err != nil {
		return data.DeleteResult{}, err
	}

	res, err := m.db.Collection(m.ParcelsCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Error(err, log.Data{keys.ParcelID: id})
		return data.DeleteResult{}, err
	}

	return data.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// GetPaymentByTransactionID fetches the payment recorded for transactionID
func (m *MongoService) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.PaymentDao, error) {

	var payment models.PaymentDao
	err := m.db.Collection(m.PaymentsCollection).FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&payment)
	if err != nil {
		return nil, notFound(err)
	}

	return &payment, nil
}

// ListPayments fetches payments, newest paid first
func (m *MongoService) ListPayments(ctx context.Context, email string) ([]models.PaymentDao, error) {

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	payments := []models.PaymentDao{}
	if err := m.find(ctx, m.PaymentsCollection, filter, "paidAt", &payments); err != nil {
		return nil, err
	}

	return payments, nil
}

// RecordPayment stamps the parcel and stores the payment. With transactions
// enabled both writes commit together; otherwise a failed parcel update
// removes the payment again.
func (m *MongoService) RecordPayment(ctx context.Context, payment *models.PaymentDao) (data.UpdateResult, data.InsertResult, error) {

	parcelID, err := objectID(payment.ParcelID)
	if err != nil {
		return data.UpdateResult{}, data.InsertResult{}, err
	}

	if !m.TransactionsEnabled {
		return m.recordPaymentWithCompensation(ctx, parcelID, payment)
	}

	session, err := m.client.StartSession()
	if err != nil {
		return data.UpdateResult{}, data.InsertResult{}, err
	}
	defer session.EndSession(ctx)

	var updated data.UpdateResult
	var inserted data.InsertResult
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var txErr error
		updated, inserted, txErr = m.recordPayment(sc, parcelID, payment)
		return nil, txErr
	})
	if err != nil {
		return data.UpdateResult{}, data.InsertResult{}, err
	}

	return updated, inserted, nil
}

func (m *MongoService) recordPaymentWithCompensation(ctx context.Context, parcelID primitive.ObjectID, payment *models.PaymentDao) (data.UpdateResult, data.InsertResult, error) {

	updated, inserted, err := m.recordPayment(ctx, parcelID, payment)
	if err == nil || inserted.InsertedID == "" {
		return updated, inserted, err
	}

	// the payment went in but the parcel was not stamped
	if _, delErr := m.db.Collection(m.PaymentsCollection).DeleteOne(context.WithoutCancel(ctx), bson.M{"_id": payment.ID}); delErr != nil {
		log.Error(fmt.Errorf("error removing payment after failed parcel update: %w", delErr), log.Data{
			keys.ParcelID:      payment.ParcelID,
			keys.TransactionID: payment.TransactionID,
		})
	}

	return data.UpdateResult{}, data.InsertResult{}, err
}

// recordPayment checks the parcel exists, claims the transaction id by
// inserting the payment and then stamps the parcel. A non empty InsertedID
// alongside an error means the payment was written before the failure.
func (m *MongoService) recordPayment(ctx context.Context, parcelID primitive.ObjectID, payment *models.PaymentDao) (data.UpdateResult, data.InsertResult, error) {

	parcels := m.db.Collection(m.ParcelsCollection)

	err := parcels.FindOne(ctx, bson.M{"_id": parcelID}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err != nil {
		return data.UpdateResult{}, data.InsertResult{}, notFound(err)
	}

	payment.ID = primitive.NewObjectID()
	inserted, err := m.insert(ctx, m.PaymentsCollection, payment.ID, payment)
	if err != nil {
		return data.UpdateResult{}, data.InsertResult{}, err
	}

	res, err := parcels.UpdateOne(ctx, bson.M{"_id": parcelID}, bson.M{"$set": bson.M{
		"paymentStatus": payment.PaymentStatus,
		"trackingId":    payment.TrackingID,
	}})
	if err != nil {
		log.Error(err, log.Data{keys.ParcelID: payment.ParcelID, keys.TrackingID: payment.TrackingID})
		return data.UpdateResult{}, inserted, err
	}
	if res.MatchedCount == 0 {
		return data.UpdateResult{}, inserted, ErrNotFound
	}

	updated := data.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}

	return updated, inserted, nil
}

// ListRiders fetches rider applications, newest first
func (m *MongoService) ListRiders(ctx context.Context, status string) ([]models.RiderDao, error) {

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	riders := []models.RiderDao{}
	if err := m.find(ctx, m.RidersCollection, filter, "appliedAt", &riders); err != nil {
		return nil, err
	}

	return riders, nil
}

// CreateRider will store the rider application into the database
func (m *MongoService) CreateRider(ctx context.Context, rider *models.RiderDao) (data.InsertResult, error) {
	rider.ID = primitive.NewObjectID()
	return m.insert(ctx, m.RidersCollection, rider.ID, rider)
}

// Ping checks the mongodb server answers
func (m *MongoService) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Shutdown is a hook that can be used to clean up db resources
func (m *MongoService) Shutdown(ctx context.Context) {
	if m.client != nil {
		err := m.client.Disconnect(ctx)
		if err != nil {
			log.Error(err)
			return
		}
		log.Info("disconnected from mongodb successfully")
	}
}

func (m *MongoService) insert(ctx context.Context, collectionName string, id primitive.ObjectID, document interface{}) (data.InsertResult, error) {

	_, err := m.db.Collection(collectionName).InsertOne(ctx, document)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return data.InsertResult{}, ErrDuplicate
		}
		log.Error(err, log.Data{keys.Collection: collectionName})
		return data.InsertResult{}, err
	}

	return data.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (m *MongoService) find(ctx context.Context, collectionName string, filter bson.M, newestFirst string, results interface{}) error {

	opts := options.Find().SetSort(bson.D{{Key: newestFirst, Value: -1}})

	cursor, err := m.db.Collection(collectionName).Find(ctx, filter, opts)
	if err != nil {
		log.Error(err, log.Data{keys.Collection: collectionName})
		return err
	}

	return cursor.All(ctx, results)
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
