package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"skillforge/middleware"
)

func UpdateProgressValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string  `json:"email"`
		CourseID string  `json:"courseId"`
		Progress float64 `json:"progress"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)

	if strings.TrimSpace(reqData.Email) == "" {
		errors["email"] = "Email is required."
	}
	if strings.TrimSpace(reqData.CourseID) == "" {
		errors["courseId"] = "Course id is required."
	}
	if reqData.Progress < 0 || reqData.Progress > 100 {
		errors["progress"] = "Progress must be between 0 and 100."
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedProgress", reqData)
	return c.Next()
}
