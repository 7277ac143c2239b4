package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "skillforge/controllers/course"
	courseValidator "skillforge/validators/course"
)

func SetupCourseRoutes(app *fiber.App) {
	course := app.Group("/api/courses")

	course.Post("/", courseValidator.CreateCourseValidator, controllers.CreateCourse)
	course.Get("/", controllers.GetAllCourses)

	// Fixed paths must be registered before the :courseId wildcard.
	course.Post("/upload-video", controllers.UploadVideo)

	course.Get("/:courseId", controllers.GetCourseByID)
	course.Delete("/:courseId", controllers.DeleteCourse)
	course.Get("/:courseId/videos", controllers.GetCourseVideos)
	course.Put("/:courseId/thumbnail", controllers.UpdateThumbnail)
	course.Post("/:courseId/notes", controllers.UploadNote)

	course.Post("/:courseId/sections", courseValidator.AddSectionValidator, controllers.AddSection)
	course.Delete("/:courseId/sections/:sectionId", controllers.DeleteSection)
	course.Post("/:courseId/sections/:sectionId/lectures", controllers.AddLecture)

	course.Post("/:courseId/sections/:sectionId/quizzes", courseValidator.QuizValidator, controllers.AddQuiz)
	course.Put("/:courseId/sections/:sectionId/quizzes/:quizId", courseValidator.QuizValidator, controllers.UpdateQuiz)
	course.Delete("/:courseId/sections/:sectionId/quizzes/:quizId", controllers.DeleteQuiz)
	course.Post("/:courseId/sections/:sectionId/generate-quiz", courseValidator.GenerateQuizValidator, controllers.GenerateQuiz)
}
