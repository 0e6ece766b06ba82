package audit

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinicore/internal/platform/apperror"
	"github.com/clinicore/clinicore/internal/platform/auth"
	"github.com/clinicore/clinicore/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	logs := g.Group("/audit-logs", auth.RequireModule(auth.ModuleAudit))
	logs.GET("", h.ListEntries)
	logs.GET("/export", h.ExportEntries)
}

// ListEntries returns the latest entries, newest first, default page 100.
func (h *Handler) ListEntries(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, _, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apperror.Wrap(apperror.Storage, "error fetching logs", err)
	}
	if items == nil {
		items = []*Entry{}
	}
	return c.JSON(http.StatusOK, items)
}

// ExportEntries returns the full trail without pagination.
func (h *Handler) ExportEntries(c echo.Context) error {
	items, err := h.svc.Export(c.Request().Context())
	if err != nil {
		return apperror.Wrap(apperror.Storage, "error exporting logs", err)
	}
	if items == nil {
		items = []*Entry{}
	}
	return c.JSON(http.StatusOK, items)
}
