package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// PaidCheckoutSessionResponse is a Stripe checkout session for a 25.50 USD parcel payment
const PaidCheckoutSessionResponse = `{
    "id": "cs_test_a1b2c3",
    "object": "checkout.session",
    "amount_total": 2550,
    "currency": "usd",
    "customer_email": "a@x.com",
    "customer_details": {
        "email": "a@x.com"
    },
    "livemode": false,
    "metadata": {
        "parcelId": "64b7f0c2a1b2c3d4e5f60718",
        "parcelName": "Box A"
    },
    "mode": "payment",
    "payment_intent": "pi_123",
    "payment_status": "paid",
    "status": "complete",
    "url": null
}`

// UnpaidCheckoutSessionResponse is a Stripe checkout session the payer abandoned
const UnpaidCheckoutSessionResponse = `{
    "id": "cs_test_d4e5f6",
    "object": "checkout.session",
    "amount_total": 1000,
    "currency": "usd",
    "customer_email": null,
    "customer_details": {
        "email": "b@x.com"
    },
    "metadata": {
        "parcelId": "64b7f0c2a1b2c3d4e5f60719",
        "parcelName": "Box B"
    },
    "mode": "payment",
    "payment_intent": null,
    "payment_status": "unpaid",
    "status": "open",
    "url": "https://checkout.stripe.com/c/pay/cs_test_d4e5f6"
}`

// CreatedCheckoutSessionResponse is the Stripe answer to a session creation
const CreatedCheckoutSessionResponse = `{
    "id": "cs_test_new",
    "object": "checkout.session",
    "mode": "payment",
    "payment_status": "unpaid",
    "status": "open",
    "url": "https://checkout.stripe.com/c/pay/cs_test_new"
}`

// MissingCheckoutSessionResponse is the Stripe error body for an unknown session
const MissingCheckoutSessionResponse = `{
    "error": {
        "code": "resource_missing",
        "message": "No such checkout.session: 'cs_missing'",
        "param": "session",
        "type": "invalid_request_error"
    }
}`

// RecordedRequest is a request received by a mock server
type RecordedRequest struct {
	Method string
	Path   string
	Form   url.Values
}

// MockServer is an httptest server answering every request with a canned response
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// Requests returns the requests received so far
func (m *MockServer) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RecordedRequest(nil), m.requests...)
}

// CreateMockServer starts a server replying with the given status and body and
// recording each request it receives
func CreateMockServer(status int, responseBody string) *MockServer {

	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		form, _ := url.ParseQuery(string(body))

		m.mu.Lock()
		m.requests = append(m.requests, RecordedRequest{Method: req.Method, Path: req.URL.Path, Form: form})
		m.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(responseBody))
	}))

	return m
}
