package controllers

import (
	"github.com/gofiber/fiber/v2"

	"skillforge/middleware"
)

// UploadVideo attaches an uploaded video to a section located by title,
// auto-provisioning course and section when they do not exist yet.
func UploadVideo(c *fiber.Ctx) error {
	file, _ := c.FormFile("file") // a missing file fails service validation

	video, err := Courses.UploadVideoAndAttach(
		c.FormValue("courseId"),
		c.FormValue("sectionTitle"),
		file,
		c.FormValue("title"),
		c.FormValue("uploadedBy"),
	)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video uploaded successfully!", video)
}

// AddLecture attaches an uploaded video to an existing section by id.
func AddLecture(c *fiber.Ctx) error {
	file, _ := c.FormFile("file")

	course, err := Courses.AddLectureToSection(
		c.Params("courseId"),
		c.Params("sectionId"),
		file,
		c.FormValue("title"),
		c.FormValue("uploadedBy"),
	)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture added successfully!", course)
}

func UpdateThumbnail(c *fiber.Ctx) error {
	file, _ := c.FormFile("file")

	course, err := Courses.UpdateThumbnail(c.Params("courseId"), file)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail updated successfully!", course)
}

func UploadNote(c *fiber.Ctx) error {
	file, _ := c.FormFile("file")

	course, err := Courses.UploadCourseNote(c.Params("courseId"), file, c.FormValue("title"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note uploaded successfully!", course)
}

func GetCourseVideos(c *fiber.Ctx) error {
	videos, err := Courses.GetCourseVideos(c.Params("courseId"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", fiber.Map{
		"videos": videos,
	})
}
