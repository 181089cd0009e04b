package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationRoute "istereg_backend/internals/features/registration/route"
	"istereg_backend/internals/features/registration/service"
)

func SetupRoutes(app *fiber.App, svc *service.RegistrationService, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")
	registrationRoute.RegistrationRoutes(api, svc)
}
