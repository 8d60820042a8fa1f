package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/aminfam/family_wallet_app/internal/dto"
	"github.com/aminfam/family_wallet_app/internal/middleware"
	"github.com/aminfam/family_wallet_app/internal/platform/config"
	"github.com/aminfam/family_wallet_app/internal/utils"

	"github.com/gin-gonic/gin"
)

// ownerSubject is the single JWT subject the wallet issues. There are no
// user accounts: everyone who knows the family password shares one session
// identity.
const ownerSubject = "family-owner"

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	passwordHash string
	jwtSecret    string
	jwtDuration  time.Duration
	jwtIssuer    string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		passwordHash: cfg.FamilyPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtDuration:  cfg.JWTExpiryDuration,
		jwtIssuer:    cfg.JWTIssuer,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	// Brute-forcing a single shared password is the main threat here, so
	// login is rate limited per IP.
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
	}
}

// Login godoc
// @Summary Family login
// @Description Verifies the shared family password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Login failed: Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if h.passwordHash == "" {
		logger.Error("Login rejected: no family password hash configured")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Authentication is not configured"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, h.passwordHash) {
		logger.Warn("Login failed: password mismatch", slog.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid password"})
		return
	}

	token, err := utils.GenerateJWT(ownerSubject, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Login failed: could not sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Login successful", slog.String("ip", c.ClientIP()))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.jwtDuration.Seconds()),
	})
}
