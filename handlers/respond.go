package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/zap-shift/parcel-delivery-api/dao"
	"github.com/zap-shift/parcel-delivery-api/data"
	"github.com/zap-shift/parcel-delivery-api/keys"
	"github.com/zap-shift/parcel-delivery-api/payment"
	"github.com/zap-shift/parcel-delivery-api/service"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error(err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, data.MessageResponse{Message: message})
}

func decodeJSON(req *http.Request, v interface{}) error {
	defer req.Body.Close()
	return json.NewDecoder(req.Body).Decode(v)
}

// writeError maps an error onto a status code and message
func writeError(w http.ResponseWriter, req *http.Request, err error) {

	var validationErr *service.ValidationError
	var invalidSessionErr *payment.InvalidSessionError
	var gatewayErr *payment.GatewayError

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.As(err, &validationErr):
		status, message = http.StatusBadRequest, validationErr.Error()
	case errors.Is(err, dao.ErrInvalidID):
		status, message = http.StatusBadRequest, "invalid id"
	case errors.Is(err, service.ErrForbidden):
		status, message = http.StatusForbidden, "forbidden access"
	case errors.Is(err, dao.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, payment.ErrSessionNotFound):
		status, message = http.StatusNotFound, "checkout session not found"
	case errors.Is(err, context.DeadlineExceeded):
		status, message = http.StatusGatewayTimeout, "upstream timed out"
	case errors.As(err, &invalidSessionErr), errors.As(err, &gatewayErr):
		status, message = http.StatusBadGateway, "payment gateway error"
	}

	if status >= http.StatusInternalServerError {
		log.Error(err, log.Data{keys.Path: req.URL.Path})
	}

	writeMessage(w, status, message)
}
