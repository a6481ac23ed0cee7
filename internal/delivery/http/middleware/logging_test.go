package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockedBuffer is a bytes.Buffer safe for a server goroutine to write while the test reads.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func jsonLogger(buf io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func lastLogLine(t *testing.T, buf *lockedBuffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		method    string
		path      string
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, body: `{"data":{}}`, method: http.MethodGet, path: "/cart", wantLevel: "INFO"},
		{name: "implicit ok", body: "ok", method: http.MethodGet, path: "/healthz", wantLevel: "INFO"},
		{name: "unauthorized", status: http.StatusUnauthorized, method: http.MethodGet, path: "/session", wantLevel: "INFO"},
		{name: "bad quantity", status: http.StatusBadRequest, method: http.MethodPatch, path: "/cart/items/p1", wantLevel: "WARN"},
		{name: "no booking", status: http.StatusConflict, method: http.MethodPost, path: "/calendar/booking/submit", wantLevel: "WARN"},
		{name: "catalog unavailable", status: http.StatusServiceUnavailable, method: http.MethodGet, path: "/products", wantLevel: "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf lockedBuffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = io.WriteString(w, tt.body)
			})
			rr := httptest.NewRecorder()

			LoggingMiddleware(jsonLogger(&buf), next).ServeHTTP(rr, httptest.NewRequest(tt.method, "http://test"+tt.path, nil))

			wantStatus := tt.status
			if wantStatus == 0 {
				wantStatus = http.StatusOK
			}
			entry := lastLogLine(t, &buf)
			assert.Equal(t, "request", entry["msg"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, float64(wantStatus), entry["status"])
			assert.Equal(t, float64(len(tt.body)), entry["bytes"])
			assert.Contains(t, entry, "duration_ms")
			assert.Equal(t, wantStatus, rr.Code)
		})
	}
}

func TestLoggingMiddleware_Hijack(t *testing.T) {
	var buf lockedBuffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, rw, err := w.(http.Hijacker).Hijack()
		if err != nil {
			t.Errorf("hijack: %v", err)
			return
		}
		defer conn.Close()
		_, _ = rw.WriteString("HTTP/1.1 101 Switching Protocols\r\nUpgrade: websocket\r\nConnection: Upgrade\r\n\r\n")
		_ = rw.Flush()
	})
	srv := httptest.NewServer(CORS([]string{"https://wemet.example"}, LoggingMiddleware(jsonLogger(&buf), next)))
	defer srv.Close()

	conn, err := net.Dial("tcp", strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)
	defer conn.Close()
	_, err = io.WriteString(conn, "GET /notifications/ws HTTP/1.1\r\nHost: test\r\nOrigin: https://wemet.example\r\nConnection: Upgrade\r\nUpgrade: websocket\r\n\r\n")
	require.NoError(t, err)

	resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.Eventually(t, func() bool { return strings.Contains(buf.String(), `"status":101`) }, time.Second, 10*time.Millisecond)
}
