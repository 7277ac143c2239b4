package studentRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "skillforge/controllers/course"
	courseValidator "skillforge/validators/course"
)

func SetupStudentRoutes(app *fiber.App) {
	student := app.Group("/api/student")

	student.Get("/browse", controllers.BrowseCourses)
	student.Get("/my-courses", controllers.GetMyCourses)
	student.Post("/progress", courseValidator.UpdateProgressValidator, controllers.UpdateProgress)

	student.Get("/course/:courseId", controllers.StudentGetCourse)
	student.Get("/course/:courseId/videos", controllers.GetCourseVideos)
	student.Post("/enroll/:courseId", controllers.Enroll)
	student.Post("/course/:courseId/sections/:sectionId/quizzes/:quizId/submit", controllers.SubmitQuiz)
}
