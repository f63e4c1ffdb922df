package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/pat"
	"github.com/zap-shift/parcel-delivery-api/identity"
	"github.com/zap-shift/parcel-delivery-api/service"
)

const basePath = "/parcel-delivery-api"

// Init registers the parcel delivery routes on the router. Routes with a path
// parameter come before their collection route because pat matches by prefix.
func Init(r *pat.Router, svc *service.Service, verifier identity.Verifier, identityTimeout time.Duration, ping func(ctx context.Context) error) {

	log.Info("initialising parcel delivery routes, healthcheck beneath " + basePath)

	r.Use(RequestLogging)

	appRouter := r.PathPrefix(basePath).Subrouter()
	appRouter.Path("/healthcheck").Methods(http.MethodGet).HandlerFunc(HealthCheck(ping))

	requireIdentity := RequireIdentity(verifier, identityTimeout)

	r.Post("/users", HandleCreateUser(svc))

	r.Get("/parcels/{id}", HandleGetParcel(svc))
	r.Delete("/parcels/{id}", HandleDeleteParcel(svc))
	r.Get("/parcels", HandleListParcels(svc))
	r.Post("/parcels", HandleCreateParcel(svc))

	r.Post("/create-checkout-session", HandleCreateCheckoutSession(svc))
	r.Add(http.MethodPatch, "/payment-success", HandleReconcilePayment(svc))
	r.Add(http.MethodGet, "/payments", requireIdentity(HandleListPayments(svc)))

	r.Get("/riders", HandleListRiders(svc))
	r.Post("/riders", HandleCreateRider(svc))

	r.Path("/").Methods(http.MethodGet).HandlerFunc(Root)
}

// Root answers the liveness probe of the original web client
func Root(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ZapShift Server"))
}
