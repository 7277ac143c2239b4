package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"skillforge/config"
	controllers "skillforge/controllers/course"
	"skillforge/database"
	courseRoutes "skillforge/routers/courseRoutes"
	studentRoutes "skillforge/routers/studentRoutes"
	"skillforge/services"
	"skillforge/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	courseStore := database.NewCourseStore(database.Database.Db)
	videoStore := database.NewVideoStore(database.Database.Db)
	responseStore := database.NewResponseStore(database.Database.Db)
	enrollmentStore := database.NewEnrollmentStore(database.Database.Db)

	media := utils.NewLocalMedia(config.AppConfig.UploadDir, config.AppConfig.BaseURL)

	// A nil generator makes quiz generation fall back to the offline source.
	var textGen services.TextGenerator
	if config.AppConfig.PerplexityApiKey != "" {
		textGen = utils.NewPerplexityClient(config.AppConfig.PerplexityApiKey, config.AppConfig.PerplexityApiUrl)
	}

	courseService := services.NewCourseService(courseStore, videoStore, media)
	quizGenService := services.NewQuizGenService(courseService, textGen)
	gradingService := services.NewGradingService(courseStore, responseStore)
	studentService := services.NewStudentService(courseStore, enrollmentStore, gradingService)

	controllers.Init(courseService, quizGenService, gradingService, studentService)

	scheduler := utils.StartStatsScheduler()
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		BodyLimit: 512 * 1024 * 1024, // lecture videos come through multipart uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded media from the local upload directory
	app.Static("/uploads", config.AppConfig.UploadDir)

	courseRoutes.SetupCourseRoutes(app)
	studentRoutes.SetupStudentRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
