package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/audit-logs"+query, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContext_Defaults(t *testing.T) {
	p := paramsFor(t, "")
	if p.Limit != DefaultLimit {
		t.Errorf("Limit = %d, want %d", p.Limit, DefaultLimit)
	}
	if p.Offset != 0 {
		t.Errorf("Offset = %d, want 0", p.Offset)
	}
}

func TestFromContext_Explicit(t *testing.T) {
	p := paramsFor(t, "?limit=25&offset=50")
	if p.Limit != 25 || p.Offset != 50 {
		t.Errorf("params = %+v", p)
	}
}

func TestFromContext_ClampsLimit(t *testing.T) {
	p := paramsFor(t, "?limit=99999")
	if p.Limit != MaxLimit {
		t.Errorf("Limit = %d, want %d", p.Limit, MaxLimit)
	}
}

func TestFromContext_NegativeValues(t *testing.T) {
	p := paramsFor(t, "?limit=-5&offset=-2")
	if p.Limit != DefaultLimit || p.Offset != 0 {
		t.Errorf("params = %+v", p)
	}
}

func TestHasNext(t *testing.T) {
	p := Params{Limit: 10, Offset: 90}
	if !p.HasNext(101) {
		t.Error("expected more pages at total=101")
	}
	if p.HasNext(100) {
		t.Error("expected no more pages at total=100")
	}
	if p.NextOffset() != 100 {
		t.Errorf("NextOffset = %d, want 100", p.NextOffset())
	}
}
