package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

// FacilityLister is the service surface the handler needs.
type FacilityLister interface {
	Create(ctx context.Context, name, location string) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
}

// FacilityHandler handles HTTP requests for clinic facilities.
type FacilityHandler struct {
	service FacilityLister
}

func NewFacilityHandler(service FacilityLister) *FacilityHandler {
	return &FacilityHandler{service: service}
}

type createFacilityRequest struct {
	Name     string `json:"name"     validate:"required"`
	Location string `json:"location"`
}

// List handles GET /api/facilities.
//
// @Summary      List facilities
// @Tags         facilities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Facility
// @Router       /api/facilities [get]
func (h *FacilityHandler) List(c echo.Context) error {
	facilities, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if facilities == nil {
		facilities = []*domain.Facility{}
	}
	return c.JSON(http.StatusOK, facilities)
}

// Create handles POST /api/facilities. Restricted to system administrators.
//
// @Summary      Create a facility
// @Tags         facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFacilityRequest  true  "Facility details"
// @Success      201   {object}  domain.Facility
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/facilities [post]
func (h *FacilityHandler) Create(c echo.Context) error {
	var req createFacilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	facility, err := h.service.Create(c.Request().Context(), req.Name, req.Location)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, facility)
}
