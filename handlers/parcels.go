package handlers

import (
	"net/http"

	"github.com/zap-shift/parcel-delivery-api/models"
	"github.com/zap-shift/parcel-delivery-api/service"
)

// HandleListParcels lists parcels newest first, optionally for one sender (?email=)
func HandleListParcels(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		parcels, err := svc.ListParcels(req.Context(), req.URL.Query().Get("email"))
		if err != nil {
			writeError(w, req, err)
			return
		}

		writeJSON(w, http.StatusOK, parcels)
	}
}

// HandleGetParcel fetches a single parcel
func HandleGetParcel(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		parcel, err := svc.GetParcel(req.Context(), req.URL.Query().Get(":id"))
		if err != nil {
			writeError(w, req, err)
			return
		}

		writeJSON(w, http.StatusOK, parcel)
	}
}

// HandleCreateParcel stores a new parcel
func HandleCreateParcel(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		var parcel models.ParcelDao
		if err := decodeJSON(req, &parcel); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := svc.CreateParcel(req.Context(), &parcel)
		if err != nil {
			writeError(w, req, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// HandleDeleteParcel removes a parcel
func HandleDeleteParcel(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		result, err := svc.DeleteParcel(req.Context(), req.URL.Query().Get(":id"))
		if err != nil {
			writeError(w, req, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
