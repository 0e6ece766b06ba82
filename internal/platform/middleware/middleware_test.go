package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func logLines(buf *bytes.Buffer, t *testing.T) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLoggerLevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	e.Use(RequestID())
	e.Use(Logger(logger))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	})

	cases := []struct {
		path  string
		level string
	}{
		{"/ok", "info"},
		{"/missing", "warn"},
	}
	for _, tc := range cases {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, req)

		lines := logLines(&buf, t)
		if len(lines) != 1 {
			t.Fatalf("%s: expected 1 log line, got %d", tc.path, len(lines))
		}
		if lines[0]["level"] != tc.level {
			t.Errorf("%s: level = %v, want %s", tc.path, lines[0]["level"], tc.level)
		}
		if lines[0]["request_id"] == "" {
			t.Errorf("%s: request_id missing", tc.path)
		}
		if lines[0]["method"] != "GET" || lines[0]["path"] != tc.path {
			t.Errorf("%s: line = %v", tc.path, lines[0])
		}
	}
}

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	e.Use(Recovery(logger))
	e.GET("/boom", func(c echo.Context) error { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	lines := logLines(&buf, t)
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(lines))
	}
	if lines[0]["panic"] != "kaboom" || lines[0]["path"] != "/boom" {
		t.Errorf("panic line = %v", lines[0])
	}
	if s, _ := lines[0]["stack"].(string); s == "" {
		t.Errorf("stack missing from panic line")
	}
}
