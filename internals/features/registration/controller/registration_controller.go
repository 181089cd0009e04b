package controller

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"istereg_backend/internals/features/registration/dto"
	"istereg_backend/internals/features/registration/service"
	helper "istereg_backend/internals/helpers"
)

// Validator instance untuk gate "<field> is required".
// Nama field diambil dari tag json supaya pesan cocok dengan payload client.
var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type RegistrationController struct {
	Service *service.RegistrationService
}

func NewRegistrationController(svc *service.RegistrationService) *RegistrationController {
	return &RegistrationController{Service: svc}
}

// POST /api/register/
func (ctl *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Semua field wajib; field pertama yang kosong menentukan pesannya.
	if err := validate.Struct(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return helper.Error(c, fiber.StatusBadRequest, ve[0].Field()+" is required")
		}
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	reg, err := ctl.Service.Create(c.UserContext(), req)
	if err != nil {
		var fieldErrs service.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			return helper.ErrorWithFields(c, fiber.StatusBadRequest, "Validation failed", fieldErrs)
		case errors.Is(err, service.ErrDuplicateRegistration):
			log.Printf("[WARN] Duplicate registration attempt: %s", req.AdmissionNo)
			return helper.Error(c, fiber.StatusBadRequest, service.ErrDuplicateRegistration.Error())
		default:
			log.Println("[ERROR] Registration error:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	log.Printf("[SUCCESS] Registration created: %s (%s)", reg.Name, reg.AdmissionNo)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration successful!", dto.FromModel(reg))
}

// GET /api/registrations/?branch=<prefix>&limit=<n>
func (ctl *RegistrationController) ListRegistrations(c *fiber.Ctx) error {
	branch := c.Query("branch")
	limit := c.QueryInt("limit", 100)

	regs, err := ctl.Service.List(c.UserContext(), branch, limit)
	if err != nil {
		log.Println("[ERROR] Error fetching registrations:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"registrations": dto.FromModels(regs),
		"count":         len(regs),
	})
}

// GET /api/registrations/:id
func (ctl *RegistrationController) GetRegistration(c *fiber.Ctx) error {
	reg, err := ctl.Service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			return helper.Error(c, fiber.StatusNotFound, service.ErrRegistrationNotFound.Error())
		}
		log.Println("[ERROR] Error fetching registration by ID:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(dto.FromModel(reg))
}

// GET /api/stats/
func (ctl *RegistrationController) RegistrationStats(c *fiber.Ctx) error {
	stats, err := ctl.Service.Stats(c.UserContext())
	if err != nil {
		log.Println("[ERROR] Error fetching stats:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(stats)
}
