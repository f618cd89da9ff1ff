package handlers

import (
	"fisk-dimension/internal/dto"
	"fisk-dimension/internal/service"
	"fisk-dimension/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Summary godoc
// @Summary Monthly revenue and expense summary
// @Description Aggregates revenue and expense records by month with an expense breakdown by category
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD), inclusive"
// @Param to query string false "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.ReportSummaryResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	var params dto.ReportQuery
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}

	if validationErrors := middleware.ValidateRequest(params); validationErrors != nil {
		return middleware.RespondWithValidationError(c, validationErrors)
	}

	dateRange, err := parseDateRange(params.From, params.To)
	if err != nil {
		return middleware.RespondWithValidationError(c, []middleware.ValidationError{
			{Field: "from", Message: "Invalid date range", Type: "datetime"},
		})
	}

	summary, err := h.reportService.Summary(c.Context(), dateRange)
	if err != nil {
		h.logger.Error("Failed to build report summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build report",
		})
	}

	return c.JSON(summary)
}
