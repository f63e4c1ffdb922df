package handlers

import (
	"errors"
	"net/http"

	"github.com/zap-shift/parcel-delivery-api/data"
	"github.com/zap-shift/parcel-delivery-api/service"
)

// HandleCreateCheckoutSession opens a hosted checkout and returns its url
func HandleCreateCheckoutSession(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		var checkout data.CheckoutRequest
		if err := decodeJSON(req, &checkout); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		resp, err := svc.CreateCheckoutSession(req.Context(), checkout)
		if err != nil {
			writeError(w, req, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleReconcilePayment confirms the checkout session named by ?session_id=
func HandleReconcilePayment(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		resp, err := svc.ReconcilePayment(req.Context(), req.URL.Query().Get("session_id"))
		if errors.Is(err, service.ErrParcelNotFound) {
			writeJSON(w, http.StatusNotFound, data.ReconcileResponse{Success: false, Message: "parcel not found"})
			return
		}
		if err != nil {
			writeError(w, req, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleListPayments lists the caller's payments newest first. Must run behind RequireIdentity.
func HandleListPayments(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		payments, err := svc.ListPayments(req.Context(), EmailFromContext(req.Context()), req.URL.Query().Get("email"))
		if err != nil {
			writeError(w, req, err)
			return
		}

		writeJSON(w, http.StatusOK, payments)
	}
}
