package data

// MessageResponse is a bare message body, used for errors and soft outcomes
type MessageResponse struct {
	Message string `json:"message"`
}

// InsertResult mirrors the acknowledgement of a single document insert
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult mirrors the acknowledgement of a single document update
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the acknowledgement of a single document delete
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// ReconcileResponse is the body of PATCH /payment-success
type ReconcileResponse struct {
	Success       bool          `json:"success"`
	Message       string        `json:"message,omitempty"`
	ModifyParcel  *UpdateResult `json:"modifyParcel,omitempty"`
	PaymentInfo   *InsertResult `json:"paymentInfo,omitempty"`
	TrackingID    string        `json:"trackingId,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
}
