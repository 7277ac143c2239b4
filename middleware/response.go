package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"skillforge/services"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ErrorResponse maps a service error kind to its HTTP status. Not-found,
// bad-input and upstream failures stay distinguishable for clients.
func ErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, services.ErrValidation):
		return JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
	case errors.Is(err, services.ErrGeneration), errors.Is(err, services.ErrUpload):
		return JsonResponse(c, fiber.StatusBadGateway, false, err.Error(), nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
