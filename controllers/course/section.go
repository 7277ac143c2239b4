package controllers

import (
	"github.com/gofiber/fiber/v2"

	"skillforge/middleware"
)

func AddSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSection").(*struct {
		Title string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := Courses.AddSection(c.Params("courseId"), reqData.Title)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section added successfully!", course)
}

func DeleteSection(c *fiber.Ctx) error {
	course, err := Courses.DeleteSection(c.Params("courseId"), c.Params("sectionId"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", course)
}
