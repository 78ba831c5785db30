package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/miluk-lexicon/pkg/ctxutil"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})

	wrapped := Logger(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/view?mode=miluk", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	logOutput := buf.String()
	for _, want := range []string{
		`"msg":"http.request"`,
		`"method":"GET"`,
		`"path":"/api/view"`,
		`"query":"mode=miluk"`,
		`"status":200`,
		`"bytes":5`,
		`"level":"INFO"`,
		"duration",
	} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("expected log to contain %s, got %q", want, logOutput)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusNotFound, level: `"level":"WARN"`},
		{status: http.StatusInternalServerError, level: `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			wrapped := Logger(newBufferLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

			if !strings.Contains(buf.String(), tt.level) {
				t.Errorf("expected %s for status %d, got %q", tt.level, tt.status, buf.String())
			}
		})
	}
}

func TestLogger_ScopedLoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxutil.LoggerFromCtx(r.Context(), nil).Info("inside handler")
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Chain(RequestID(), Logger(logger))(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "test-request-id-123")
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, `"request_id":"test-request-id-123"`) {
			t.Errorf("expected request_id on every line, got %q", line)
		}
	}
}
