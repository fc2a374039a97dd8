package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acsess/dept-portal/internal/alerts"
)

type homePageData struct {
	Alerts []Alert
	Error  string
}

// HomePage renders the public landing page with the three most recent
// active alerts.
func (h *AlertHandler) HomePage(c echo.Context) error {
	data := homePageData{}

	recent, err := h.m.Recent(c.Request().Context(), alerts.RecentLimit)
	if err != nil {
		h.log.Error("failed to load recent alerts", "error", err)
		data.Error = "Alerts are temporarily unavailable."
	} else {
		data.Alerts = NewAlerts(recent)
	}

	return c.Render(http.StatusOK, "home.html", data)
}

func (h *AlertHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

func (h *AlertHandler) AdminAlertsPage(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_alerts.html", nil)
}
