package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/zap-shift/parcel-delivery-api/identity"
	"github.com/zap-shift/parcel-delivery-api/keys"
)

// RequestIDHeader carries the id used to correlate log lines of one request
const RequestIDHeader = "X-Request-Id"

type contextKey string

const emailContextKey contextKey = "email"

// statusRecorder remembers the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogging logs the start and end of every request, tagging both with a request id
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()

		requestID := req.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		log.Info("request started", log.Data{
			keys.RequestID: requestID,
			keys.Method:    req.Method,
			keys.Path:      req.URL.Path,
		})

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, req)

		log.Info("request completed", log.Data{
			keys.RequestID:  requestID,
			keys.Method:     req.Method,
			keys.Path:       req.URL.Path,
			keys.StatusCode: recorder.status,
			keys.Duration:   time.Since(start).Milliseconds(),
		})
	})
}

// RequireIdentity only lets requests through that carry a bearer token the
// verifier accepts. The verified email is available to the wrapped handler
// through EmailFromContext.
func RequireIdentity(verifier identity.Verifier, timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {

			token, ok := bearerToken(req)
			if !ok {
				writeMessage(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ctx := req.Context()
			var cancel context.CancelFunc = func() {}
			if timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, timeout)
			}
			email, err := verifier.Verify(ctx, token)
			cancel()
			if errors.Is(err, identity.ErrInvalidToken) {
				log.Info("id token rejected", log.Data{keys.Path: req.URL.Path, "error": err.Error()})
				writeMessage(w, http.StatusUnauthorized, "unauthorized access")
				return
			}
			if err != nil {
				writeError(w, req, err)
				return
			}

			next(w, req.WithContext(context.WithValue(req.Context(), emailContextKey, email)))
		}
	}
}

// EmailFromContext returns the email verified by RequireIdentity
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailContextKey).(string)
	return email
}

func bearerToken(req *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(req.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
