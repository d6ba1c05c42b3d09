package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"collabhub/internal/metrics"
)

// Metrics counts every request by method, route and status.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			c.Path(),
			strconv.Itoa(status),
		).Inc()
		return err
	}
}
