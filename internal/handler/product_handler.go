package handler

import (
	"net/http"
	"strconv"

	"catalog-service/internal/service"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductHandler translates product HTTP requests into service calls
type ProductHandler struct {
	products service.ProductService
}

func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// RegisterRoutes wires the product endpoints. Reads are public; writes sit
// behind the admin auth middleware.
func (h *ProductHandler) RegisterRoutes(g *echo.Group, admin echo.MiddlewareFunc) {
	g.GET("/products", h.List)
	g.GET("/products/:id", h.Get)
	g.GET("/products/slug/:slug", h.GetBySlug)
	g.POST("/products", h.Create, admin)
	g.PUT("/products/:id", h.Update, admin)
	g.DELETE("/products/:id", h.Delete, admin)
}

// List handles retrieving all products
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	products, err := h.products.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return writeServiceError(c, err)
	}

	prometheus.RecordProductOperation("list")
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

// Get handles retrieving a single product by ID
func (h *ProductHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	product, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		log.Warn("Product lookup failed", zap.Uint("product_id", id), zap.Error(err))
		return writeServiceError(c, err)
	}

	prometheus.RecordProductOperation("get")
	return c.JSON(http.StatusOK, echo.Map{"product": product})
}

// GetBySlug handles the public product detail lookup
func (h *ProductHandler) GetBySlug(c echo.Context) error {
	log := logger.FromContext(c)
	slug := c.Param("slug")

	product, err := h.products.GetBySlug(c.Request().Context(), slug)
	if err != nil {
		log.Warn("Product slug lookup failed", zap.String("slug", slug), zap.Error(err))
		return writeServiceError(c, err)
	}

	prometheus.RecordProductOperation("get_by_slug")
	return c.JSON(http.StatusOK, echo.Map{"product": product})
}

// Create handles creating a new product
func (h *ProductHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req service.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid product payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	product, err := h.products.Create(c.Request().Context(), req)
	if err != nil {
		log.Warn("Product creation rejected", zap.String("slug", req.Slug), zap.Error(err))
		return writeServiceError(c, err)
	}

	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("slug", product.Slug))
	prometheus.RecordProductOperation("create")
	return c.JSON(http.StatusCreated, echo.Map{"product": product})
}

// Update handles a partial product update
func (h *ProductHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	var req service.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid product payload", zap.Uint("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	product, err := h.products.Update(c.Request().Context(), id, req)
	if err != nil {
		log.Warn("Product update rejected", zap.Uint("product_id", id), zap.Error(err))
		return writeServiceError(c, err)
	}

	prometheus.RecordProductOperation("update")
	return c.JSON(http.StatusOK, echo.Map{"product": product})
}

// Delete handles a hard product delete
func (h *ProductHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		log.Warn("Product delete rejected", zap.Uint("product_id", id), zap.Error(err))
		return writeServiceError(c, err)
	}

	prometheus.RecordProductOperation("delete")
	return c.NoContent(http.StatusNoContent)
}

func parseID(raw string) (uint, error) {
	id64, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}
