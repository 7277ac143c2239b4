package controllers

import (
	"github.com/gofiber/fiber/v2"

	"skillforge/middleware"
	"skillforge/models"
	"skillforge/services"
)

// Service handles, wired once at startup.
var (
	Courses  *services.CourseService
	QuizGen  *services.QuizGenService
	Grading  *services.GradingService
	Students *services.StudentService
)

// Init wires the controller package to its services.
func Init(courses *services.CourseService, quizGen *services.QuizGenService, grading *services.GradingService, students *services.StudentService) {
	Courses = courses
	QuizGen = quizGen
	Grading = grading
	Students = students
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*models.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := Courses.CreateCourse(reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func GetAllCourses(c *fiber.Ctx) error {
	courses, err := Courses.GetAllCourses()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

func GetCourseByID(c *fiber.Ctx) error {
	course, err := Courses.GetByID(c.Params("courseId"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	if err := Courses.DeleteCourse(c.Params("courseId")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
