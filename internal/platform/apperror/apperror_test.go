package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestKindHTTPStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{Reference, http.StatusBadRequest},
		{InvalidCredentials, http.StatusUnauthorized},
		{NotFound, http.StatusNotFound},
		{DuplicateUsername, http.StatusConflict},
		{InvalidStateTransition, http.StatusConflict},
		{InsufficientStock, http.StatusConflict},
		{Storage, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.kind.HTTPStatus(); got != tc.want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	err := New(NotFound, "bill not found")
	if KindOf(err) != NotFound {
		t.Errorf("KindOf = %v, want NotFound", KindOf(err))
	}

	wrapped := fmt.Errorf("handler: %w", err)
	if KindOf(wrapped) != NotFound {
		t.Errorf("KindOf(wrapped) = %v, want NotFound", KindOf(wrapped))
	}

	if KindOf(errors.New("plain")) != Storage {
		t.Error("unclassified errors should default to Storage")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(Storage, "insert patient", nil) != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

func TestWrapUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := Wrap(Storage, "insert patient", inner)
	if !errors.Is(err, inner) {
		t.Error("wrapped error should match errors.Is on the inner error")
	}
}

func TestHTTPErrorHandler_TaxonomyError(t *testing.T) {
	e := echo.New()
	logger := zerolog.New(os.Stderr)
	e.HTTPErrorHandler = HTTPErrorHandler(logger)
	e.GET("/boom", func(c echo.Context) error {
		return New(InvalidStateTransition, "bill already paid")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
	body := rec.Body.String()
	if !contains(body, "InvalidStateTransition") || !contains(body, "bill already paid") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestHTTPErrorHandler_UnclassifiedError(t *testing.T) {
	e := echo.New()
	logger := zerolog.New(os.Stderr)
	e.HTTPErrorHandler = HTTPErrorHandler(logger)
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("pgx: connection reset")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if contains(rec.Body.String(), "pgx") {
		t.Error("driver error detail must not leak to the caller")
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
