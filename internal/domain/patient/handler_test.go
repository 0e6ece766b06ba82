package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/platform/apperror"
)

func setupHandler(t *testing.T) (*echo.Echo, *mockRepo, *spyRecorder) {
	t.Helper()
	repo := newMockRepo()
	rec := &spyRecorder{}
	h := NewHandler(NewService(repo, fakeTxRunner{}, rec))

	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(zerolog.Nop())
	e.GET("/patients", h.List)
	e.POST("/patients", h.Register)
	e.GET("/patients/:id", h.Get)
	e.PUT("/patients/:id", h.Update)
	e.DELETE("/patients/:id", h.Delete)
	return e, repo, rec
}

func TestRegisterPatientEndpoint(t *testing.T) {
	e, repo, _ := setupHandler(t)

	body := `{"name":"Amit Rao","age":34,"gender":"Male","phone":"555-0101","history":"asthma"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var created Patient
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.FullName != "Amit Rao" || created.Phone != "555-0101" {
		t.Errorf("created row = %+v", created)
	}
	if created.MedicalHistory != "asthma" {
		t.Errorf("history not bound: %+v", created)
	}
	if len(repo.patients) != 1 {
		t.Errorf("expected 1 stored patient, got %d", len(repo.patients))
	}
}

func TestUpdatePatientWireKeys(t *testing.T) {
	e, repo, _ := setupHandler(t)

	var seeded Patient
	seeded.FullName = "Amit Rao"
	if err := repo.Insert(nil, &seeded); err != nil {
		t.Fatalf("seed: %v", err)
	}

	body := `{"name":"Amit K Rao","age":35,"phone":"555-0199"}`
	req := httptest.NewRequest(http.MethodPut, "/patients/"+seeded.ID.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	got := repo.patients[seeded.ID]
	if got.FullName != "Amit K Rao" || got.Age != 35 || got.Phone != "555-0199" {
		t.Errorf("stored row = %+v", got)
	}
}

func TestRegisterPatientMissingName(t *testing.T) {
	e, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{"age":34}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp apperror.Payload
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error != "ValidationError" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestDeletePatientEndpointNotFound(t *testing.T) {
	e, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/patients/7b0d2f7e-9a75-4f44-9b9a-000000000000", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetPatientInvalidID(t *testing.T) {
	e, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/patients/not-a-uuid", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
