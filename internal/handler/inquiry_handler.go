package handler

import (
	"net/http"

	"catalog-service/internal/service"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InquiryHandler translates inquiry HTTP requests into service calls
type InquiryHandler struct {
	inquiries service.InquiryService
}

func NewInquiryHandler(inquiries service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// RegisterRoutes wires the inquiry endpoints. Submission is public; the rest
// belongs to the admin back-office.
func (h *InquiryHandler) RegisterRoutes(g *echo.Group, admin echo.MiddlewareFunc) {
	g.POST("/inquiries", h.Create)
	g.GET("/inquiries", h.List, admin)
	g.GET("/inquiries/:id", h.Get, admin)
	g.PUT("/inquiries/:id", h.UpdateStatus, admin)
	g.DELETE("/inquiries/:id", h.Delete, admin)
}

// List returns all inquiries, newest first
func (h *InquiryHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	inquiries, err := h.inquiries.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list inquiries", zap.Error(err))
		return writeServiceError(c, err)
	}

	prometheus.RecordInquiryOperation("list")
	return c.JSON(http.StatusOK, echo.Map{"inquiries": inquiries})
}

// Get handles retrieving a single inquiry by ID
func (h *InquiryHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid inquiry ID"})
	}

	inquiry, err := h.inquiries.Get(c.Request().Context(), id)
	if err != nil {
		log.Warn("Inquiry lookup failed", zap.Uint("inquiry_id", id), zap.Error(err))
		return writeServiceError(c, err)
	}

	prometheus.RecordInquiryOperation("get")
	return c.JSON(http.StatusOK, echo.Map{"inquiry": inquiry})
}

// Create handles a public inquiry submission
func (h *InquiryHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req service.CreateInquiryRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid inquiry payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	inquiry, err := h.inquiries.Create(c.Request().Context(), req)
	if err != nil {
		log.Warn("Inquiry creation rejected", zap.Error(err))
		return writeServiceError(c, err)
	}

	log.Info("Inquiry created", zap.Uint("inquiry_id", inquiry.ID))
	prometheus.RecordInquiryOperation("create")
	return c.JSON(http.StatusCreated, echo.Map{"inquiry": inquiry})
}

// UpdateStatus moves an inquiry through its workflow states
func (h *InquiryHandler) UpdateStatus(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid inquiry ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid status payload", zap.Uint("inquiry_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	inquiry, err := h.inquiries.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		log.Warn("Inquiry status update rejected",
			zap.Uint("inquiry_id", id),
			zap.String("status", req.Status),
			zap.Error(err))
		return writeServiceError(c, err)
	}

	prometheus.RecordInquiryOperation("update_status")
	return c.JSON(http.StatusOK, echo.Map{"inquiry": inquiry})
}

// Delete handles a hard inquiry delete
func (h *InquiryHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid inquiry ID"})
	}

	if err := h.inquiries.Delete(c.Request().Context(), id); err != nil {
		log.Warn("Inquiry delete rejected", zap.Uint("inquiry_id", id), zap.Error(err))
		return writeServiceError(c, err)
	}

	prometheus.RecordInquiryOperation("delete")
	return c.NoContent(http.StatusNoContent)
}
