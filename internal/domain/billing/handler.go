package billing

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
	gate := auth.RequireModule(auth.ModuleBilling)
	g.GET("/patients/:id/bills", h.ListByPatient, gate)
	bl := g.Group("/billing", gate)
	bl.GET("/all", h.ListAll)
	bl.POST("", h.Create)
	bl.PUT("/:id/pay", h.Pay)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.New(apperror.Validation, "Invalid patient ID")
	}
	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Bill{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListAll(c echo.Context) error {
	items, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*BillWithPatient{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return apperror.New(apperror.Validation, "Invalid request body")
	}
	b, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) Pay(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.New(apperror.Validation, "Invalid bill ID")
	}
	var in PayInput
	if err := c.Bind(&in); err != nil {
		return apperror.New(apperror.Validation, "Invalid request body")
	}
	if err := h.svc.Settle(c.Request().Context(), id, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Payment recorded successfully"})
}
