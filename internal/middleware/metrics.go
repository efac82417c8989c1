package middleware

import (
	"strconv"
	"time"

	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware adds prometheus metrics to track HTTP requests
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Start timer for request duration
		start := time.Now()

		// Process request
		err := next(c)

		// Record metrics
		method := c.Request().Method
		path := c.Path()
		status := strconv.Itoa(c.Response().Status)
		prometheus.ObserveHttpRequest(method, path, status, time.Since(start))

		return err
	}
}
