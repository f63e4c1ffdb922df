package handlers

import (
	"net/http"

	"github.com/zap-shift/parcel-delivery-api/models"
	"github.com/zap-shift/parcel-delivery-api/service"
)

// HandleListRiders lists rider applications, optionally filtered by ?status=
func HandleListRiders(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		riders, err := svc.ListRiders(req.Context(), req.URL.Query().Get("status"))
		if err != nil {
			writeError(w, req, err)
			return
		}

		writeJSON(w, http.StatusOK, riders)
	}
}

// HandleCreateRider stores a rider application
func HandleCreateRider(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		var rider models.RiderDao
		if err := decodeJSON(req, &rider); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := svc.CreateRider(req.Context(), &rider)
		if err != nil {
			writeError(w, req, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
