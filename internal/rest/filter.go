package rest

import (
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

func unmarshalFilter(c echo.Context, filter *AlertsFilter) error {
	return urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), filter)
}
