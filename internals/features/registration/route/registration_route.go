package route

import (
	"github.com/gofiber/fiber/v2"

	registrationController "istereg_backend/internals/features/registration/controller"
	"istereg_backend/internals/features/registration/service"
	"istereg_backend/internals/middlewares"
)

func RegistrationRoutes(api fiber.Router, svc *service.RegistrationService) {
	ctl := registrationController.NewRegistrationController(svc)

	api.Post("/register/", middlewares.RegisterRateLimiter(), ctl.CreateRegistration)
	api.Get("/registrations/", ctl.ListRegistrations)
	api.Get("/registrations/:id", ctl.GetRegistration)
	api.Get("/stats/", ctl.RegistrationStats)
}
