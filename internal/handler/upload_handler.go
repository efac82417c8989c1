package handler

import (
	"errors"
	"net/http"

	"catalog-service/internal/upload"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UploadHandler accepts product image uploads for the admin form
type UploadHandler struct {
	ingestor *upload.Ingestor
}

func NewUploadHandler(ingestor *upload.Ingestor) *UploadHandler {
	return &UploadHandler{ingestor: ingestor}
}

func (h *UploadHandler) RegisterRoutes(g *echo.Group, admin echo.MiddlewareFunc) {
	g.POST("/upload", h.Upload, admin)
}

// Upload stores every file sent under the multipart field `images` and
// returns their public paths in input order.
func (h *UploadHandler) Upload(c echo.Context) error {
	log := logger.FromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		log.Warn("Invalid multipart request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "No image files found in request.",
		})
	}

	paths, err := h.ingestor.Save(form.File["images"])
	if err != nil {
		if errors.Is(err, upload.ErrNoFiles) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"error":   "No image files found in request.",
			})
		}
		log.Error("File upload failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "File upload failed. Internal Server Error.",
		})
	}

	log.Info("Files uploaded", zap.Int("count", len(paths)))
	prometheus.RecordUploadedFiles(len(paths))
	return c.JSON(http.StatusOK, echo.Map{
		"success":           true,
		"uploadedFilePaths": paths,
	})
}
