package handlers

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"net/http"
	"time"

	"github.com/aminfam/family_wallet_app/internal/core/domain"
	portssvc "github.com/aminfam/family_wallet_app/internal/core/ports/services"
	"github.com/aminfam/family_wallet_app/internal/dto"
	"github.com/aminfam/family_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const statementDateLayout = "2006-01-02"

// utf8BOM makes spreadsheet tools detect the encoding, which matters for the
// Arabic item names in the export.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// reportHandler handles HTTP requests for statement exports
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
	loc           *time.Location
}

// newReportHandler creates a new reportHandler
func newReportHandler(rs portssvc.ReportSvcFacade, loc *time.Location) *reportHandler {
	return &reportHandler{
		reportService: rs,
		loc:           loc,
	}
}

// registerReportRoutes registers routes related to statement exports
func registerReportRoutes(rg *gin.RouterGroup, rs portssvc.ReportSvcFacade, loc *time.Location) {
	h := newReportHandler(rs, loc)

	reportGroup := rg.Group("/reports")
	{
		reportGroup.GET("/statement", h.getStatement)
	}
}

// getStatement godoc
// @Summary Export a statement
// @Description Returns the filtered entry log as JSON or as a downloadable CSV file. Bounds are inclusive dates; omitting one leaves that side open.
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param format query string false "json or csv" default(json)
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} ErrorResponse "Invalid date or format"
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Entry log unavailable"
// @Security BearerAuth
// @Router /reports/statement [get]
func (h *reportHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fromStr := c.Query("from")
	toStr := c.Query("to")

	var from, to time.Time
	if fromStr != "" {
		parsed, err := time.ParseInLocation(statementDateLayout, fromStr, h.loc)
		if err != nil {
			logger.Warn("Invalid from date", slog.String("from", fromStr))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid from date. Use YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.ParseInLocation(statementDateLayout, toStr, h.loc)
		if err != nil {
			logger.Warn("Invalid to date", slog.String("to", toStr))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid to date. Use YYYY-MM-DD"})
			return
		}
		// The bound is an inclusive calendar date, so cover its whole day.
		to = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	rows, err := h.reportService.Statement(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build statement", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Entry log is unavailable"})
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, dto.ToStatementResponse(rows, fromStr, toStr))
	case "csv":
		h.writeCSV(c, logger, rows)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "format must be json or csv"})
	}
}

// writeCSV renders the statement as an attachment named Statement.csv.
func (h *reportHandler) writeCSV(c *gin.Context, logger *slog.Logger, rows []domain.StatementRow) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Timestamp", "Item", "Amount", "Account", "Category", "Kind"})
	for _, r := range rows {
		_ = w.Write([]string{r.Timestamp, r.Item, r.Amount, r.Account, r.Category, r.Kind})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to render CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render CSV"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="Statement.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
