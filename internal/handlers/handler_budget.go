package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/aminfam/family_wallet_app/internal/core/ports/services"
	"github.com/aminfam/family_wallet_app/internal/dto"
	"github.com/aminfam/family_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests for the monthly budget limit
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// newBudgetHandler creates a new budgetHandler
func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService: bs,
	}
}

// registerBudgetRoutes registers routes related to the budget
func registerBudgetRoutes(rg *gin.RouterGroup, bs portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(bs)

	budgetGroup := rg.Group("/budget")
	{
		budgetGroup.GET("", h.getBudget)
		budgetGroup.PUT("", h.setBudget)
	}
}

// getBudget godoc
// @Summary Get the monthly budget limit
// @Description Returns the stored monthly spending limit, seeding the default when none is set.
// @Tags budget
// @Produce json
// @Success 200 {object} dto.BudgetResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Settings store unavailable"
// @Security BearerAuth
// @Router /budget [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, err := h.budgetService.GetBudget(c.Request.Context())
	if err != nil {
		logger.Error("Failed to read budget limit", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Budget store is unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.BudgetResponse{MonthlyLimit: limit})
}

// setBudget godoc
// @Summary Set the monthly budget limit
// @Description Overwrites the monthly spending limit. Last write wins.
// @Tags budget
// @Accept json
// @Produce json
// @Param budget body dto.SetBudgetRequest true "New monthly limit"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to persist the limit"
// @Security BearerAuth
// @Router /budget [put]
func (h *budgetHandler) setBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid budget request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.budgetService.SetBudget(c.Request.Context(), req.MonthlyLimit); err != nil {
		logger.Error("Failed to store budget limit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store budget limit"})
		return
	}

	logger.Info("Budget limit updated", slog.String("monthly_limit", req.MonthlyLimit.String()))
	c.JSON(http.StatusOK, dto.BudgetResponse{MonthlyLimit: req.MonthlyLimit})
}
