package handlers

import (
	"net/http"

	"github.com/zap-shift/parcel-delivery-api/data"
	"github.com/zap-shift/parcel-delivery-api/models"
	"github.com/zap-shift/parcel-delivery-api/service"
)

// HandleCreateUser registers a user, answering {"message":"user exist"} for a known email
func HandleCreateUser(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		var user models.UserDao
		if err := decodeJSON(req, &user); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, exists, err := svc.CreateUser(req.Context(), &user)
		if err != nil {
			writeError(w, req, err)
			return
		}
		if exists {
			writeJSON(w, http.StatusOK, data.MessageResponse{Message: "user exist"})
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
