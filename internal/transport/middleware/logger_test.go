package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atinroy/focusflow-backend/pkg/ctxutil"
)

func loggedRequest(t *testing.T, status int, req *http.Request) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})

	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)
	return buf.String()
}

func TestLogger_Success(t *testing.T) {
	out := loggedRequest(t, http.StatusOK, httptest.NewRequest(http.MethodGet, "/streak", nil))

	for _, want := range []string{"http.request", "GET", "/streak", `"status":200`, "duration", "INFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %q", want, out)
		}
	}
}

func TestLogger_ServerError(t *testing.T) {
	out := loggedRequest(t, http.StatusInternalServerError, httptest.NewRequest(http.MethodPost, "/blocks", nil))

	if !strings.Contains(out, "ERROR") {
		t.Errorf("want ERROR level for status 500, got %q", out)
	}
	if !strings.Contains(out, `"status":500`) {
		t.Errorf("log output missing status 500: %q", out)
	}
}

func TestLogger_IncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-abc-123"))

	out := loggedRequest(t, http.StatusOK, req)

	if !strings.Contains(out, "req-abc-123") {
		t.Errorf("log output missing request_id: %q", out)
	}
}
