package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/zap-shift/parcel-delivery-api/keys"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck reports 200 while the document store answers a ping and 503 otherwise
func HealthCheck(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {

		ctx, cancel := context.WithTimeout(req.Context(), healthCheckTimeout)
		defer cancel()

		if ping != nil {
			if err := ping(ctx); err != nil {
				log.Error(err, log.Data{keys.Path: req.URL.Path})
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
	}
}
