package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/pkg/ctxutil"
)

// RequestID tags each request with an identifier for log correlation. An
// incoming X-Request-Id header is trusted; otherwise a fresh UUID is
// generated. The ID is echoed back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
