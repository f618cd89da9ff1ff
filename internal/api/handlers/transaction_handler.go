package handlers

import (
	"strings"

	"fisk-dimension/internal/dto"
	"fisk-dimension/internal/models"
	"fisk-dimension/internal/service"
	"fisk-dimension/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// CreateTransaction godoc
// @Summary Log a transaction or system event
// @Description Validates and logs a record. A flagged threat is returned alongside the record and does not block it.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction data"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		return middleware.RespondWithValidationError(c, validationErrors)
	}

	resp, err := h.txService.Create(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to log transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListTransactions godoc
// @Summary List logged transactions
// @Description Search, filter, sort and paginate the chain log
// @Tags transactions
// @Produce json
// @Param search query string false "Case-insensitive search term"
// @Param types query string false "Comma separated transaction types"
// @Param from query string false "Start date (YYYY-MM-DD), inclusive"
// @Param to query string false "End date (YYYY-MM-DD), inclusive"
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size, at most 100" default(20)
// @Param sort query string false "Sort column, e.g. timestamp or data.amount"
// @Param direction query string false "asc or desc"
// @Success 200 {object} dto.TransactionListResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	params := dto.ListTransactionsQuery{Page: 1, Limit: defaultPageLimit}
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}

	validationErrors := middleware.ValidateRequest(params)

	var types []models.TransactionType
	for _, t := range splitList(params.Types) {
		tt := models.TransactionType(t)
		if !tt.Valid() {
			validationErrors = append(validationErrors, middleware.ValidationError{
				Field:   "types",
				Message: "Unknown transaction type: " + t,
				Type:    "oneof",
			})
			continue
		}
		types = append(types, tt)
	}

	if params.Sort != "" && !service.IsSortColumn(params.Sort) {
		validationErrors = append(validationErrors, middleware.ValidationError{
			Field:   "sort",
			Message: "Must be one of: " + strings.Join(service.SortColumns(), " "),
			Type:    "oneof",
		})
	}

	if validationErrors != nil {
		return middleware.RespondWithValidationError(c, validationErrors)
	}

	dateRange, err := parseDateRange(params.From, params.To)
	if err != nil {
		return middleware.RespondWithValidationError(c, []middleware.ValidationError{
			{Field: "from", Message: "Invalid date range", Type: "datetime"},
		})
	}

	if params.Limit > maxPageLimit {
		params.Limit = maxPageLimit
	}

	query := service.TransactionQuery{
		SearchTerm: params.Search,
		Types:      types,
		DateRange:  dateRange,
		Page:       params.Page,
		Limit:      params.Limit,
	}
	if params.Sort != "" {
		direction := service.SortAsc
		if params.Direction == string(service.SortDesc) {
			direction = service.SortDesc
		}
		query.Sort = &service.SortSpec{Column: params.Sort, Direction: direction}
	}

	page, err := h.txService.Query(c.Context(), query)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}

	return c.JSON(dto.TransactionListResponse{
		Items: page.Items,
		Total: page.Total,
		Page:  params.Page,
		Limit: params.Limit,
	})
}
