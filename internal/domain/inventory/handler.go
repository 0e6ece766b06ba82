package inventory

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinicore/internal/platform/apperror"
	"github.com/clinicore/clinicore/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	inv := g.Group("/inventory", auth.RequireModule(auth.ModuleInventory))
	inv.GET("", h.List)
	inv.POST("", h.AddStock)
	inv.POST("/:id/dispense", h.Dispense)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Item{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddStock(c echo.Context) error {
	var in StockInput
	if err := c.Bind(&in); err != nil {
		return apperror.New(apperror.Validation, "Invalid request body")
	}
	it, err := h.svc.AddStock(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *Handler) Dispense(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.New(apperror.Validation, "Invalid inventory item ID")
	}
	var in DispenseInput
	if err := c.Bind(&in); err != nil {
		return apperror.New(apperror.Validation, "Invalid request body")
	}
	it, err := h.svc.Dispense(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Medication dispensed",
		"data":    it,
	})
}
