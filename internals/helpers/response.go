package helper

import (
	"github.com/gofiber/fiber/v2"
)

// ✅ Error response sederhana: {"error": "..."}
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// ✅ Error response dengan detail per field (untuk error validasi)
func ErrorWithFields(c *fiber.Ctx, code int, message string, fields map[string]string) error {
	return c.Status(code).JSON(fiber.Map{
		"error":  message,
		"fields": fields,
	})
}

// ✅ Success response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}
