package records

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
	gate := auth.RequireModule(auth.ModuleRecords)
	g.GET("/patients/:id/records", h.ListByPatient, gate)
	g.POST("/records", h.RecordConsultation, gate)
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
		items = []*MedicalRecord{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) RecordConsultation(c echo.Context) error {
	var in ConsultationInput
	if err := c.Bind(&in); err != nil {
		return apperror.New(apperror.Validation, "Invalid request body")
	}
	rec, err := h.svc.RecordConsultation(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rec)
}
