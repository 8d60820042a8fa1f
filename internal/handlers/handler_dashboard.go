package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/aminfam/family_wallet_app/internal/core/ports/services"
	"github.com/aminfam/family_wallet_app/internal/dto"
	"github.com/aminfam/family_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the aggregate ledger view
type dashboardHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newDashboardHandler creates a new dashboardHandler
func newDashboardHandler(ls portssvc.LedgerSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		ledgerService: ls,
	}
}

// registerDashboardRoutes registers routes related to the dashboard
func registerDashboardRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := newDashboardHandler(ls)

	dashboardGroup := rg.Group("/dashboard")
	{
		dashboardGroup.GET("/summary", h.getSummary)
	}
}

// getSummary godoc
// @Summary Get the ledger summary
// @Description Recomputes balances, debt positions, expense windows, category breakdown and budget status from the full entry log.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Entry log unavailable"
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.ledgerService.Summarize(c.Request.Context())
	if err != nil {
		// The summary is never served from partial data; an unreadable log
		// must surface as unavailable, not as zeroed balances.
		logger.Error("Failed to compute ledger summary", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Aggregation is unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(*summary))
}
