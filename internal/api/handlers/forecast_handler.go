package handlers

import (
	"errors"

	"fisk-dimension/internal/dto"
	"fisk-dimension/internal/service"
	"fisk-dimension/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ForecastHandler struct {
	forecastService *service.ForecastService
	logger          *zap.Logger
}

func NewForecastHandler(forecastService *service.ForecastService, logger *zap.Logger) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
		logger:          logger,
	}
}

// Forecast godoc
// @Summary Forecast revenue and expenses
// @Description Produces revenue, expense and profit forecasts with recommendations from free-text history and market trends
// @Tags forecasts
// @Accept json
// @Produce json
// @Param request body dto.ForecastRequest true "Historical data and market trends"
// @Success 200 {object} dto.ForecastResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 502 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/forecasts [post]
func (h *ForecastHandler) Forecast(c *fiber.Ctx) error {
	var req dto.ForecastRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		return middleware.RespondWithValidationError(c, validationErrors)
	}

	out, err := h.forecastService.Forecast(c.Context(), service.ForecastInput{
		HistoricalData: req.HistoricalData,
		MarketTrends:   req.MarketTrends,
	})
	if errors.Is(err, service.ErrForecastUnavailable) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Forecast service returned an unusable response",
		})
	}
	if err != nil {
		h.logger.Error("Failed to generate forecast", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate forecast",
		})
	}

	return c.JSON(dto.ForecastResponse{
		RevenueForecast: out.RevenueForecast,
		ExpenseForecast: out.ExpenseForecast,
		ProfitForecast:  out.ProfitForecast,
		Recommendations: out.Recommendations,
	})
}
