package inventory

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

func setupHandler() (*echo.Echo, *mockRepo) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo, &spyRecorder{}))

	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(zerolog.Nop())
	e.POST("/inventory", h.AddStock)
	e.POST("/inventory/:id/dispense", h.Dispense)
	return e, repo
}

func TestAddStockWireKeys(t *testing.T) {
	e, repo := setupHandler()

	body := `{"name":"Paracetamol","batch":"B-2026-01","qty":200,"cost":1.10,"sale":2.50,"expiry":"2027-06-30","supplier":"MediSupply"}`
	req := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 stored item, got %d", len(repo.items))
	}
	for _, it := range repo.items {
		if it.MedicineName != "Paracetamol" || it.BatchNumber != "B-2026-01" || it.QuantityOnHand != 200 {
			t.Errorf("stored item = %+v", it)
		}
		if it.CostPrice != 1.10 || it.SalePrice != 2.50 || it.ExpirationDate != "2027-06-30" || it.Supplier != "MediSupply" {
			t.Errorf("stored item = %+v", it)
		}
	}

	var created Item
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.MedicineName != "Paracetamol" {
		t.Errorf("response row = %+v", created)
	}
}

func TestDispenseWireKeys(t *testing.T) {
	e, repo := setupHandler()

	it := &Item{MedicineName: "Amoxicillin", BatchNumber: "B2", QuantityOnHand: 50}
	if err := repo.Insert(nil, it); err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/inventory/"+it.ID.String()+"/dispense", strings.NewReader(`{"qty":20}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if repo.items[it.ID].QuantityOnHand != 30 {
		t.Errorf("quantity = %d, want 30", repo.items[it.ID].QuantityOnHand)
	}
}
