package keys

// Keys used to identify log message data items.
const AppName = "app_name"
const BindAddr = "bind_addr"
const Collection = "collection"
const Email = "email"
const Method = "method"
const ParcelID = "parcel_id"
const Path = "path"
const PaymentStatus = "payment_status"
const RequestID = "request_id"
const RiderID = "rider_id"
const SessionID = "session_id"
const StatusCode = "status_code"
const Duration = "duration_ms"
const Topic = "topic"
const TrackingID = "tracking_id"
const TransactionID = "transaction_id"
