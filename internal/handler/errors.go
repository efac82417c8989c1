package handler

import (
	"errors"
	"net/http"

	"catalog-service/internal/repository"
	"catalog-service/internal/service"

	"github.com/labstack/echo/v4"
)

// writeServiceError maps repository/service errors onto HTTP status codes.
// Validation problems carry their message to the client; everything else is
// surfaced as a generic failure.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	case errors.Is(err, repository.ErrInquiryNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Inquiry not found"})
	case errors.Is(err, service.ErrSlugTaken):
		return c.JSON(http.StatusConflict, echo.Map{"error": "Product with this slug already exists"})
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
}
