package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatusPaid is the only payment status that triggers reconciliation
const PaymentStatusPaid = "paid"

// Rider application statuses
const (
	RiderStatusPending  = "pending"
	RiderStatusApproved = "approved"
	RiderStatusRejected = "rejected"
)

// DefaultUserRole is assigned to every newly registered user
const DefaultUserRole = "user"

// ParcelDao represents a parcel shipment
type ParcelDao struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"              json:"_id,omitempty"`
	ParcelType       string             `bson:"parcelType,omitempty"       json:"parcelType,omitempty"`
	ParcelName       string             `bson:"parcelName"                 json:"parcelName"                 validate:"required"`
	ParcelWeight     float64            `bson:"parcelWeight,omitempty"     json:"parcelWeight,omitempty"     validate:"gte=0"`
	Description      string             `bson:"description,omitempty"      json:"description,omitempty"`
	Cost             float64            `bson:"cost"                       json:"cost"                       validate:"gt=0,lte=999999.99"`
	SenderName       string             `bson:"senderName,omitempty"       json:"senderName,omitempty"`
	SenderEmail      string             `bson:"senderEmail"                json:"senderEmail"                validate:"required,email"`
	SenderPhone      string             `bson:"senderPhone,omitempty"      json:"senderPhone,omitempty"`
	SenderAddress    string             `bson:"senderAddress,omitempty"    json:"senderAddress,omitempty"`
	SenderRegion     string             `bson:"senderRegion,omitempty"     json:"senderRegion,omitempty"`
	SenderDistrict   string             `bson:"senderDistrict,omitempty"   json:"senderDistrict,omitempty"`
	ReceiverName     string             `bson:"receiverName,omitempty"     json:"receiverName,omitempty"`
	ReceiverEmail    string             `bson:"receiverEmail,omitempty"    json:"receiverEmail,omitempty"    validate:"omitempty,email"`
	ReceiverPhone    string             `bson:"receiverPhone,omitempty"    json:"receiverPhone,omitempty"`
	ReceiverAddress  string             `bson:"receiverAddress,omitempty"  json:"receiverAddress,omitempty"`
	ReceiverRegion   string             `bson:"receiverRegion,omitempty"   json:"receiverRegion,omitempty"`
	ReceiverDistrict string             `bson:"receiverDistrict,omitempty" json:"receiverDistrict,omitempty"`
	PaymentStatus    string             `bson:"paymentStatus,omitempty"    json:"paymentStatus,omitempty"`
	TrackingID       string             `bson:"trackingId,omitempty"       json:"trackingId,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"                  json:"createdAt"`
}

// PaymentDao represents a completed checkout recorded against a parcel
type PaymentDao struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"  json:"_id,omitempty"`
	Amount        float64            `bson:"amount"         json:"amount"`
	Currency      string             `bson:"currency"       json:"currency"`
	Email         string             `bson:"email"          json:"email"`
	ParcelID      string             `bson:"parcelId"       json:"parcelId"`
	ParcelName    string             `bson:"parcelName"     json:"parcelName"`
	TransactionID string             `bson:"transactionId"  json:"transactionId"`
	PaymentStatus string             `bson:"paymentStatus"  json:"paymentStatus"`
	PaidAt        time.Time          `bson:"paidAt"         json:"paidAt"`
	TrackingID    string             `bson:"trackingId"     json:"trackingId"`
}

// RiderDao represents a delivery rider application
type RiderDao struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"              json:"_id,omitempty"`
	Name             string             `bson:"name"                       json:"name"                       validate:"required"`
	Email            string             `bson:"email"                      json:"email"                      validate:"required,email"`
	Age              int                `bson:"age,omitempty"              json:"age,omitempty"              validate:"omitempty,gte=18"`
	Phone            string             `bson:"phone,omitempty"            json:"phone,omitempty"`
	NID              string             `bson:"nid,omitempty"              json:"nid,omitempty"`
	Region           string             `bson:"region,omitempty"           json:"region,omitempty"`
	District         string             `bson:"district,omitempty"         json:"district,omitempty"`
	BikeBrand        string             `bson:"bikeBrand,omitempty"        json:"bikeBrand,omitempty"`
	BikeRegistration string             `bson:"bikeRegistration,omitempty" json:"bikeRegistration,omitempty"`
	Status           string             `bson:"status"                     json:"status"`
	AppliedAt        time.Time          `bson:"appliedAt"                  json:"appliedAt"`
}

// UserDao represents a registered user
type UserDao struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"         json:"_id,omitempty"`
	Email       string             `bson:"email"                 json:"email"                 validate:"required,email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL    string             `bson:"photoURL,omitempty"    json:"photoURL,omitempty"`
	Role        string             `bson:"role"                  json:"role"`
	CreatedAt   time.Time          `bson:"createdAt"             json:"createdAt"`
}
