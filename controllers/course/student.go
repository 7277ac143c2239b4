package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"skillforge/middleware"
	"skillforge/services"
)

func BrowseCourses(c *fiber.Ctx) error {
	courses, err := Students.BrowseCourses()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

func StudentGetCourse(c *fiber.Ctx) error {
	course, err := Students.GetCourseByID(c.Params("courseId"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func Enroll(c *fiber.Ctx) error {
	email := c.Query("email")
	if strings.TrimSpace(email) == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
	}

	message, err := Students.EnrollInCourse(email, c.Params("courseId"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, nil)
}

func GetMyCourses(c *fiber.Ctx) error {
	email := c.Query("email")
	if strings.TrimSpace(email) == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
	}

	enrollments, err := Students.GetMyCourses(email)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

func UpdateProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgress").(*struct {
		Email    string  `json:"email"`
		CourseID string  `json:"courseId"`
		Progress float64 `json:"progress"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message, err := Students.UpdateProgress(reqData.Email, reqData.CourseID, reqData.Progress)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, nil)
}

// SubmitQuiz grades a student submission. Answer-map entries with
// non-integer keys or values are skipped individually.
func SubmitQuiz(c *fiber.Ctx) error {
	reqData := new(struct {
		StudentEmail    string         `json:"studentEmail"`
		Answers         map[string]any `json:"answers"`
		DurationSeconds *int           `json:"durationSeconds"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	answers := services.ParseAnswers(reqData.Answers)

	resp, err := Students.GradeQuiz(
		c.Params("courseId"),
		c.Params("sectionId"),
		c.Params("quizId"),
		reqData.StudentEmail,
		answers,
		reqData.DurationSeconds,
	)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", resp)
}
