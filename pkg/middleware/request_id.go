package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/layoutlab/warehouse-analytics/pkg/requestid"
)

// RequestID reuses the caller's X-Request-Id, then chi's generated id, and
// only then mints a new one. The id is stored with requestid and echoed back
// in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestid.Header)
		if requestID == "" {
			requestID = middleware.GetReqID(r.Context())
		}
		if requestID == "" {
			requestID = requestid.Generate()
		}

		w.Header().Set(requestid.Header, requestID)
		next.ServeHTTP(w, r.WithContext(requestid.ToContext(r.Context(), requestID)))
	})
}
