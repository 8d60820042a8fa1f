package handlers

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aminfam/family_wallet_app/internal/apperrors"
	portssvc "github.com/aminfam/family_wallet_app/internal/core/ports/services"
	"github.com/aminfam/family_wallet_app/internal/dto"
	"github.com/aminfam/family_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// defaultRecentLimit caps the entry list when the client does not ask for a
// specific count.
const defaultRecentLimit = 30

// transactionHandler handles HTTP requests for recording and listing entries
type transactionHandler struct {
	recorderService   portssvc.RecorderSvcFacade
	ledgerService     portssvc.LedgerSvcFacade
	classifierService portssvc.ClassifierSvcFacade
}

// newTransactionHandler creates a new transactionHandler
func newTransactionHandler(rs portssvc.RecorderSvcFacade, ls portssvc.LedgerSvcFacade, cs portssvc.ClassifierSvcFacade) *transactionHandler {
	return &transactionHandler{
		recorderService:   rs,
		ledgerService:     ls,
		classifierService: cs,
	}
}

// registerTransactionRoutes registers routes related to transactions
func registerTransactionRoutes(rg *gin.RouterGroup, rs portssvc.RecorderSvcFacade, ls portssvc.LedgerSvcFacade, cs portssvc.ClassifierSvcFacade) {
	h := newTransactionHandler(rs, ls, cs)

	txnGroup := rg.Group("/transactions")
	{
		txnGroup.POST("", h.recordTransaction)
		txnGroup.POST("/classify", h.classifyAndRecord)
		txnGroup.POST("/preview", h.previewClassification)
		txnGroup.GET("", h.listRecent)
	}
}

// recordTransaction godoc
// @Summary Record a transaction
// @Description Validates a candidate transaction and appends it to the ledger. A transfer appends two entries.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.RecordTransactionRequest true "Transaction details"
// @Success 201 {object} dto.RecordTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or unknown kind"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to persist the entry"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid record request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entries, err := h.recorderService.Record(c.Request.Context(), req.ToCandidate())
	if err != nil {
		h.respondRecordError(c, logger, err)
		return
	}

	logger.Info("Transaction recorded", slog.Int("entries", len(entries)))
	c.JSON(http.StatusCreated, dto.RecordTransactionResponse{Entries: dto.ToListEntryResponse(entries)})
}

// classifyAndRecord godoc
// @Summary Classify input and record the result
// @Description Runs text or image input through the classifier, then records the resulting candidate transaction.
// @Tags transactions
// @Accept json
// @Produce json
// @Param input body dto.ClassifyRequest true "Free text or base64 image"
// @Success 201 {object} dto.RecordTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or rejected candidate"
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Classifier produced no usable output"
// @Security BearerAuth
// @Router /transactions/classify [post]
func (h *transactionHandler) classifyAndRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	candidate, ok := h.classify(c, logger)
	if !ok {
		return
	}

	entries, err := h.recorderService.Record(c.Request.Context(), *candidate)
	if err != nil {
		h.respondRecordError(c, logger, err)
		return
	}

	logger.Info("Classified transaction recorded", slog.Int("entries", len(entries)))
	c.JSON(http.StatusCreated, dto.RecordTransactionResponse{Entries: dto.ToListEntryResponse(entries)})
}

// previewClassification godoc
// @Summary Classify input without recording
// @Description Returns the classifier's candidate transaction so the client can confirm it before recording.
// @Tags transactions
// @Accept json
// @Produce json
// @Param input body dto.ClassifyRequest true "Free text or base64 image"
// @Success 200 {object} dto.CandidateTransaction
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Classifier produced no usable output"
// @Security BearerAuth
// @Router /transactions/preview [post]
func (h *transactionHandler) previewClassification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	candidate, ok := h.classify(c, logger)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// listRecent godoc
// @Summary List recent entries
// @Description Returns the latest ledger entries, newest first.
// @Tags transactions
// @Produce json
// @Param limit query int false "Maximum number of entries" default(30)
// @Success 200 {array} dto.EntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Entry log unavailable"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listRecent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			logger.Warn("Invalid limit query parameter", slog.String("limit", raw))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.ledgerService.RecentEntries(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list recent entries", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Entry log is unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntryResponse(entries))
}

// classify decodes the classify request and runs the appropriate classifier
// path. It writes the error response itself and reports success via ok.
func (h *transactionHandler) classify(c *gin.Context, logger *slog.Logger) (*dto.CandidateTransaction, bool) {
	var req dto.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid classify request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return nil, false
	}

	var (
		candidate *dto.CandidateTransaction
		err       error
	)
	switch {
	case req.ImageBase64 != "":
		var data []byte
		data, err = base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			logger.Warn("Invalid base64 image payload", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "imageBase64 is not valid base64"})
			return nil, false
		}
		mimeType := req.ImageMIMEType
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		candidate, err = h.classifierService.ClassifyImage(c.Request.Context(), mimeType, data)
	case req.Text != "":
		candidate, err = h.classifierService.ClassifyText(c.Request.Context(), req.Text)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Either text or imageBase64 is required"})
		return nil, false
	}

	if err != nil {
		logger.Error("Classification failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Could not classify the input"})
		return nil, false
	}

	return candidate, true
}

// respondRecordError maps recorder errors onto HTTP statuses.
func (h *transactionHandler) respondRecordError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount):
		logger.Warn("Rejected candidate: invalid amount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Amount is missing or not a number"})
	case errors.Is(err, apperrors.ErrUnknownKind):
		logger.Warn("Rejected candidate: unknown kind", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown transaction type"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Rejected candidate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Failed to record transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record transaction"})
	}
}
