package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"istereg_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar untuk semua route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(GlobalRateLimiter())
}
