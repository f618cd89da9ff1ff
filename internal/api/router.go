package api

import (
	"errors"

	"fisk-dimension/docs"
	"fisk-dimension/internal/api/handlers"
	"fisk-dimension/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Transactions *handlers.TransactionHandler
	Threats      *handlers.ThreatHandler
	Reports      *handlers.ReportHandler
	Forecasts    *handlers.ForecastHandler
}

func SetupRouter(h Handlers, serverCfg *config.ServerConfig, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Fisk Dimension",
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *fiber.Error
			if errors.As(err, &e) {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			// Internal details stay in the log.
			appLogger.Error("Unhandled request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: serverCfg.AllowOrigins,
		AllowMethods: "GET,POST,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Importing docs registers the swagger document.
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	transactions := api.Group("/transactions")
	transactions.Post("", h.Transactions.CreateTransaction)
	transactions.Get("", h.Transactions.ListTransactions)

	threats := api.Group("/threats")
	threats.Post("", h.Threats.AnalyzeThreat)
	threats.Get("", h.Threats.ListThreats)
	threats.Patch("/:id/status", h.Threats.UpdateThreatStatus)

	api.Get("/reports/summary", h.Reports.Summary)
	api.Post("/forecasts", h.Forecasts.Forecast)

	return app
}
