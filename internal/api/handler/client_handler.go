package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hivcare/art-tracker/internal/api/metrics"
	"github.com/hivcare/art-tracker/internal/core/domain"
	"github.com/hivcare/art-tracker/internal/core/ports"
)

// ClientHandler handles HTTP requests for ART client operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /api/clients, returning the full client list as a JSON array.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        q       query     string  false  "Search on ART number or full name"
// @Success      200     {array}   clientResponse
// @Failure      401     {object}  map[string]string
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	clients, err := h.service.List(c.Request().Context(), caller, c.QueryParam("status"), c.QueryParam("q"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toClientListResponse(clients))
}

// Get handles GET /api/clients/:artNumber.
//
// @Summary      Get a client by ART number
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        artNumber  path      string  true  "ART number"
// @Success      200        {object}  clientResponse
// @Failure      404        {object}  map[string]string
// @Router       /api/clients/{artNumber} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), caller, c.Param("artNumber"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Register handles POST /api/clients, enrolling a new client.
//
// @Summary      Register a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerClientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/clients [post]
func (h *ClientHandler) Register(c echo.Context) error {
	var req registerClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	client, err := h.service.Register(c.Request().Context(), caller, ports.RegisterClientInput{
		ARTNumber:  req.ARTNumber,
		FullName:   req.FullName,
		Age:        req.Age,
		Address:    req.Address,
		NextPickup: parseDate(req.NextPickup),
		FacilityID: req.FacilityID,
	})
	if err != nil {
		return err
	}

	metrics.ClientsRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, toClientResponse(client))
}

// Update handles PUT /api/clients/:artNumber.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        artNumber  path      string               true  "ART number"
// @Param        body       body      updateClientRequest  true  "Fields to change"
// @Success      200        {object}  clientResponse
// @Failure      404        {object}  map[string]string
// @Failure      422        {object}  map[string]string
// @Router       /api/clients/{artNumber} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	input := ports.UpdateClientInput{
		FullName:    req.FullName,
		Age:         req.Age,
		Address:     req.Address,
		NextPickup:  parseDate(req.NextPickup),
		ClearPickup: req.ClearPickup,
	}
	if req.Status != nil {
		status := domain.ClientStatus(*req.Status)
		input.Status = &status
	}

	client, err := h.service.Update(c.Request().Context(), caller, c.Param("artNumber"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toClientResponse(client))
}

// RecordPickup handles POST /api/clients/:artNumber/pickup.
//
// @Summary      Record a medication pickup
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        artNumber  path      string               true  "ART number"
// @Param        body       body      recordPickupRequest  true  "Next pickup date"
// @Success      200        {object}  clientResponse
// @Failure      404        {object}  map[string]string
// @Failure      422        {object}  map[string]string
// @Router       /api/clients/{artNumber}/pickup [post]
func (h *ClientHandler) RecordPickup(c echo.Context) error {
	var req recordPickupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	nextPickup, err := time.Parse(dateLayout, req.NextPickup)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "nextPickup must be a date in the form 2006-01-02")
	}

	client, err := h.service.RecordPickup(c.Request().Context(), caller, c.Param("artNumber"), nextPickup)
	if err != nil {
		return err
	}

	metrics.PickupsRecordedTotal.Inc()
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Delete handles DELETE /api/clients/:artNumber.
//
// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        artNumber  path  string  true  "ART number"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/clients/{artNumber} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("artNumber")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /api/stats, the authoritative due/overdue summary.
//
// @Summary      Client pickup statistics
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/stats [get]
func (h *ClientHandler) Stats(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), caller, time.Now().UTC())
	if err != nil {
		return err
	}

	metrics.ClientsDue.Set(float64(stats.DueToday))
	metrics.ClientsOverdue.Set(float64(stats.Overdue))

	return c.JSON(http.StatusOK, toStatsResponse(stats))
}
