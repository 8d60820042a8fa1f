package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/aminfam/family_wallet_app/internal/core/ports/services"
	"github.com/aminfam/family_wallet_app/internal/dto"
	"github.com/aminfam/family_wallet_app/internal/middleware"
	"github.com/aminfam/family_wallet_app/internal/platform/config"
	"github.com/aminfam/family_wallet_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// adminHandler handles destructive maintenance operations
type adminHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	passwordHash  string
}

// newAdminHandler creates a new adminHandler
func newAdminHandler(ls portssvc.LedgerSvcFacade, cfg *config.Config) *adminHandler {
	return &adminHandler{
		ledgerService: ls,
		passwordHash:  cfg.FamilyPasswordHash,
	}
}

// registerAdminRoutes registers routes for maintenance operations
func registerAdminRoutes(rg *gin.RouterGroup, cfg *config.Config, ls portssvc.LedgerSvcFacade) {
	h := newAdminHandler(ls, cfg)

	adminGroup := rg.Group("/admin")
	{
		adminGroup.DELETE("/entries", h.resetEntries)
	}
}

// resetEntries godoc
// @Summary Delete the entire entry log
// @Description Wipes every ledger entry. Requires re-confirming the family password in the request body. Irreversible.
// @Tags admin
// @Accept json
// @Produce json
// @Param confirmation body dto.ResetRequest true "Password confirmation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Password mismatch"
// @Failure 500 {object} ErrorResponse "Failed to delete entries"
// @Security BearerAuth
// @Router /admin/entries [delete]
func (h *adminHandler) resetEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid reset request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Password confirmation required"})
		return
	}

	// A valid session is not enough to wipe the ledger; the password is
	// checked again at the moment of deletion.
	if !utils.CheckPasswordHash(req.Password, h.passwordHash) {
		logger.Warn("Reset rejected: password mismatch", slog.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid password"})
		return
	}

	if owner, ok := middleware.GetOwnerIDFromContext(c); ok {
		logger = logger.With(slog.String("owner_id", owner))
	}

	if err := h.ledgerService.ResetAll(c.Request.Context()); err != nil {
		logger.Error("Failed to reset entry log", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete entries"})
		return
	}

	logger.Info("Entry log wiped", slog.String("ip", c.ClientIP()))
	c.JSON(http.StatusOK, gin.H{"message": "All entries deleted"})
}
