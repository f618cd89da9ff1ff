package handlers

import (
	"errors"

	"fisk-dimension/internal/dto"
	"fisk-dimension/internal/models"
	"fisk-dimension/internal/service"
	"fisk-dimension/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ThreatHandler struct {
	threatService *service.ThreatService
	logger        *zap.Logger
}

func NewThreatHandler(threatService *service.ThreatService, logger *zap.Logger) *ThreatHandler {
	return &ThreatHandler{
		threatService: threatService,
		logger:        logger,
	}
}

// AnalyzeThreat godoc
// @Summary Analyze a record for threats
// @Description Runs the heuristic classifier on a record, flat or wrapped in transactionData. Responds with null when nothing is flagged.
// @Tags threats
// @Accept json
// @Produce json
// @Param request body object true "Record to analyze"
// @Success 200 {object} models.Threat
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/threats [post]
func (h *ThreatHandler) AnalyzeThreat(c *fiber.Ctx) error {
	threat, err := h.threatService.Detect(c.Context(), c.Body())
	if errors.Is(err, service.ErrInvalidPayload) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid JSON payload",
		})
	}
	if err != nil {
		h.logger.Error("Threat analysis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze transaction for threats",
		})
	}

	// A nil threat encodes as JSON null.
	return c.JSON(threat)
}

// ListThreats godoc
// @Summary List detected threats
// @Tags threats
// @Produce json
// @Param severity query string false "Comma separated severities, case-insensitive"
// @Param status query string false "Comma separated statuses: new, investigating, resolved"
// @Success 200 {array} models.Threat
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/threats [get]
func (h *ThreatHandler) ListThreats(c *fiber.Ctx) error {
	var params dto.ListThreatsQuery
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}

	filter := service.ThreatFilter{Severities: splitList(params.Severity)}
	for _, s := range splitList(params.Status) {
		status := models.ThreatStatus(s)
		if !status.Valid() {
			return middleware.RespondWithValidationError(c, []middleware.ValidationError{
				{Field: "status", Message: "Must be one of: new investigating resolved", Type: "oneof"},
			})
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	threats, err := h.threatService.List(c.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list threats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list threats",
		})
	}

	return c.JSON(threats)
}

// UpdateThreatStatus godoc
// @Summary Change a threat's status
// @Tags threats
// @Accept json
// @Produce json
// @Param id path string true "Threat ID"
// @Param request body dto.UpdateThreatStatusRequest true "New status"
// @Success 200 {object} models.Threat
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/threats/{id}/status [patch]
func (h *ThreatHandler) UpdateThreatStatus(c *fiber.Ctx) error {
	var req dto.UpdateThreatStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		return middleware.RespondWithValidationError(c, validationErrors)
	}

	threat, err := h.threatService.UpdateStatus(c.Context(), c.Params("id"), models.ThreatStatus(req.Status))
	switch {
	case errors.Is(err, service.ErrThreatNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Threat not found",
		})
	case errors.Is(err, service.ErrInvalidThreatStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid threat status",
		})
	case err != nil:
		h.logger.Error("Failed to update threat status", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update threat status",
		})
	}

	return c.JSON(threat)
}
