package data

// ParcelPaid represents the parcel-paid avro schema
type ParcelPaid struct {
	ParcelID      string `avro:"parcel_id"`
	TrackingID    string `avro:"tracking_id"`
	TransactionID string `avro:"transaction_id"`
	Email         string `avro:"email"`
	Amount        string `avro:"amount"`
	Currency      string `avro:"currency"`
	PaidAt        string `avro:"paid_at"`
}
