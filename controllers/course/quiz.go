package controllers

import (
	"github.com/gofiber/fiber/v2"

	"skillforge/middleware"
	"skillforge/models"
)

func AddQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*models.Quiz)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := Courses.AddQuizToSection(c.Params("courseId"), c.Params("sectionId"), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz added successfully!", course)
}

func UpdateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*models.Quiz)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := Courses.UpdateQuiz(c.Params("courseId"), c.Params("sectionId"), c.Params("quizId"), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", course)
}

func DeleteQuiz(c *fiber.Ctx) error {
	course, err := Courses.DeleteQuizFromSection(c.Params("courseId"), c.Params("sectionId"), c.Params("quizId"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", course)
}

// GenerateQuiz builds a quiz for the section from a topic, via the external
// text-generation API when configured and the offline generator otherwise.
func GenerateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGenerateQuiz").(*struct {
		Topic            string `json:"topic"`
		NumQuestions     int    `json:"numQuestions"`
		TimeLimitSeconds *int   `json:"timeLimitSeconds"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := QuizGen.GenerateQuizFromTopic(
		c.Params("courseId"),
		c.Params("sectionId"),
		reqData.Topic,
		reqData.NumQuestions,
		reqData.TimeLimitSeconds,
	)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz generated successfully!", course)
}
