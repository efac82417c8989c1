package handler

import (
	"net/http"

	"catalog-service/pkg/config"
	"catalog-service/pkg/jwtutil"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues admin tokens against the configured credentials
type AuthHandler struct {
	admin config.AdminConfig
}

func NewAuthHandler(admin config.AdminConfig) *AuthHandler {
	return &AuthHandler{admin: admin}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/login", h.Login)
}

// Login verifies the admin credentials and returns a signed token
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAuthAttempt()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Username != h.admin.Username ||
		bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(req.Password)) != nil {
		log.Warn("Invalid admin credentials", zap.String("username", req.Username))
		prometheus.RecordAuthError()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(req.Username)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("Admin logged in", zap.String("username", req.Username))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
