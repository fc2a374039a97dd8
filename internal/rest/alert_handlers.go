package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/acsess/dept-portal/config"
	"github.com/acsess/dept-portal/internal/alerts"
)

type AlertHandler struct {
	m    *alerts.Manager
	auth config.AuthConfig
	log  *slog.Logger
}

func NewAlertHandler(m *alerts.Manager, auth config.AuthConfig, log *slog.Logger) *AlertHandler {
	return &AlertHandler{
		m:    m,
		auth: auth,
		log:  log,
	}
}

func (h *AlertHandler) ok(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Response{Success: true, Data: data})
}

func (h *AlertHandler) fail(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{Success: false, Message: message})
}

// handleError translates manager failures into the uniform envelope.
// Nothing propagates to the client unstructured.
func (h *AlertHandler) handleError(c echo.Context, err error) error {
	var ve *alerts.ValidationError
	switch {
	case errors.As(err, &ve):
		return h.fail(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, alerts.ErrNotFound):
		return h.fail(c, http.StatusNotFound, "Alert not found")
	default:
		h.log.Error("handleError", "error", err, "path", c.Request().URL.Path)
		return h.fail(c, http.StatusInternalServerError, "internal error")
	}
}

func (h *AlertHandler) alertID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// List handles GET /api/v1/alerts
// @Summary List alerts
// @Description Retrieves all alerts sorted by date DESC. Optional filtering by active flag and result limit.
// @Tags alerts
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Param limit query int false "Cap the number of results"
// @Success 200 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Router /api/v1/alerts [get]
func (h *AlertHandler) List(c echo.Context) error {
	var filter AlertsFilter
	if err := unmarshalFilter(c, &filter); err != nil {
		return h.fail(c, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.m.Alerts(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	if filter.Active != nil {
		filtered := list[:0]
		for _, a := range list {
			if a.Active == *filter.Active {
				filtered = append(filtered, a)
			}
		}
		list = filtered
	}
	if filter.Limit > 0 && len(list) > filter.Limit {
		list = list[:filter.Limit]
	}

	return h.ok(c, http.StatusOK, NewAlerts(list))
}

// Create handles POST /api/v1/alerts
// @Summary Create alert
// @Description Validates and creates one alert. Date defaults to now, isNewAlert and active default to true.
// @Tags alerts
// @Accept json
// @Produce json
// @Param alert body rest.AlertRequest true "Alert fields"
// @Success 201 {object} rest.Response
// @Failure 400,401,500 {object} rest.Response
// @Router /api/v1/alerts [post]
func (h *AlertHandler) Create(c echo.Context) error {
	var req AlertRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, "invalid request body")
	}

	created, err := h.m.Create(c.Request().Context(), req.ToDraft())
	if err != nil {
		return h.handleError(c, err)
	}

	return h.ok(c, http.StatusCreated, NewAlert(*created))
}

// ByID handles GET /api/v1/alerts/:id
// @Summary Get alert by ID
// @Tags alerts
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Router /api/v1/alerts/{id} [get]
func (h *AlertHandler) ByID(c echo.Context) error {
	id, err := h.alertID(c)
	if err != nil {
		return h.fail(c, http.StatusBadRequest, "invalid id")
	}

	alert, err := h.m.AlertByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.ok(c, http.StatusOK, NewAlert(*alert))
}

// Update handles PUT /api/v1/alerts/:id
// @Summary Update alert
// @Description Replaces the mutable fields of the identified alert. Omitted flags reset to true, an omitted date is preserved.
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path int true "Alert ID"
// @Param alert body rest.AlertRequest true "Alert fields"
// @Success 200 {object} rest.Response
// @Failure 400,401,404,500 {object} rest.Response
// @Router /api/v1/alerts/{id} [put]
func (h *AlertHandler) Update(c echo.Context) error {
	id, err := h.alertID(c)
	if err != nil {
		return h.fail(c, http.StatusBadRequest, "invalid id")
	}

	var req AlertRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.m.Update(c.Request().Context(), id, req.ToDraft())
	if err != nil {
		return h.handleError(c, err)
	}

	return h.ok(c, http.StatusOK, NewAlert(*updated))
}

// Delete handles DELETE /api/v1/alerts/:id
// @Summary Delete alert
// @Tags alerts
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} rest.Response
// @Failure 400,401,404,500 {object} rest.Response
// @Router /api/v1/alerts/{id} [delete]
func (h *AlertHandler) Delete(c echo.Context) error {
	id, err := h.alertID(c)
	if err != nil {
		return h.fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.m.Delete(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return h.ok(c, http.StatusOK, struct{}{})
}
