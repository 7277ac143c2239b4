package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"skillforge/middleware"
	"skillforge/models"
)

func CreateCourseValidator(c *fiber.Ctx) error {
	course := new(models.Course)
	if err := c.BodyParser(course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)

	if strings.TrimSpace(course.Title) == "" {
		errors["title"] = "Title is required."
	}
	if strings.TrimSpace(course.InstructorEmail) == "" {
		errors["instructorEmail"] = "Instructor email is required."
	} else if !strings.Contains(course.InstructorEmail, "@") {
		errors["instructorEmail"] = "Instructor email is invalid."
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedCourse", course)
	return c.Next()
}

func AddSectionValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		Title string `json:"title"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)

	if strings.TrimSpace(reqData.Title) == "" {
		errors["title"] = "Section title is required."
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedSection", reqData)
	return c.Next()
}
