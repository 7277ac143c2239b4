package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillforge/models"
)

func newTestCourseService() (*CourseService, *fakeCourseStore, *fakeVideoStore, *fakeMedia) {
	courses := newFakeCourseStore()
	videos := &fakeVideoStore{}
	media := &fakeMedia{}
	return NewCourseService(courses, videos, media), courses, videos, media
}

func TestCreateCourseDefaults(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{
		Title:           "Go Fundamentals",
		InstructorEmail: "jane@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, course.ID)
	assert.Equal(t, "draft", course.Status)
	assert.Equal(t, "English", course.Language)
}

func TestCreateCourseKeepsExplicitStatus(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{
		Title:  "Go Fundamentals",
		Status: "published",
	})
	require.NoError(t, err)
	assert.Equal(t, "published", course.Status)
}

func TestAddAndDeleteSection(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)

	course, err = svc.AddSection(course.ID, "Basics")
	require.NoError(t, err)
	course, err = svc.AddSection(course.ID, "Concurrency")
	require.NoError(t, err)
	require.Len(t, course.Sections, 2)
	assert.NotEmpty(t, course.Sections[0].ID)
	assert.NotEqual(t, course.Sections[0].ID, course.Sections[1].ID)

	course, err = svc.DeleteSection(course.ID, course.Sections[0].ID)
	require.NoError(t, err)
	require.Len(t, course.Sections, 1)
	assert.Equal(t, "Concurrency", course.Sections[0].Title)

	// Round trip: the surviving section is what the store reloads.
	reloaded, err := svc.GetByID(course.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Sections, 1)
	assert.Equal(t, "Concurrency", reloaded.Sections[0].Title)
}

func TestDeleteSectionUnknownIDKeepsCourse(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)
	course, err = svc.AddSection(course.ID, "Basics")
	require.NoError(t, err)

	course, err = svc.DeleteSection(course.ID, "no-such-section")
	require.NoError(t, err)
	assert.Len(t, course.Sections, 1)
}

func TestDeleteSectionOnCourseWithoutSections(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)

	got, err := svc.DeleteSection(course.ID, "anything")
	require.NoError(t, err)
	assert.Equal(t, course.ID, got.ID)
	assert.Empty(t, got.Sections)
}

func TestAddSectionUnknownCourse(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	_, err := svc.AddSection("missing", "Basics")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUploadVideoValidatesBeforeProvisioning(t *testing.T) {
	svc, courses, _, _ := newTestCourseService()

	_, err := svc.UploadVideoAndAttach("missing", "Basics", nil, "Intro", "jane@example.com")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UploadVideoAndAttach("missing", "Basics", fileHeader("intro.mp4"), "   ", "jane@example.com")
	assert.ErrorIs(t, err, ErrValidation)

	// Neither failure may leave an auto-created course behind.
	assert.Empty(t, courses.courses)
}

func TestUploadVideoAutoProvisionsCourseAndSection(t *testing.T) {
	svc, courses, videos, _ := newTestCourseService()

	video, err := svc.UploadVideoAndAttach("missing", "", fileHeader("intro.mp4"), "Intro", "jane@example.com")
	require.NoError(t, err)

	require.Len(t, courses.courses, 1)
	var course *models.Course
	for _, c := range courses.courses {
		course = c
	}
	assert.Equal(t, "Untitled Course", course.Title)
	assert.Equal(t, "Auto-created course during video upload", course.Description)
	assert.Equal(t, "jane@example.com", course.InstructorName)
	assert.Equal(t, "jane@example.com", course.InstructorEmail)

	require.Len(t, course.Sections, 1)
	assert.Equal(t, "Default Section", course.Sections[0].Title)
	require.Len(t, course.Sections[0].Lectures, 1)
	assert.Equal(t, video.ID, course.Sections[0].Lectures[0].VideoID)
	assert.Equal(t, video.VideoURL, course.Sections[0].Lectures[0].URL)
	assert.Equal(t, 1, course.VideoCount)

	require.Len(t, videos.videos, 1)
	assert.Equal(t, course.ID, videos.videos[0].CourseID)
	assert.Equal(t, "Default Section", videos.videos[0].SectionTitle)
}

func TestUploadVideoReusesSectionByTitle(t *testing.T) {
	svc, _, _, media := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)
	course, err = svc.AddSection(course.ID, "Basics")
	require.NoError(t, err)

	_, err = svc.UploadVideoAndAttach(course.ID, "Basics", fileHeader("a.mp4"), "Part 1", "jane@example.com")
	require.NoError(t, err)
	_, err = svc.UploadVideoAndAttach(course.ID, "Basics", fileHeader("b.mp4"), "Part 2", "jane@example.com")
	require.NoError(t, err)

	reloaded, err := svc.GetByID(course.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Sections, 1)
	assert.Len(t, reloaded.Sections[0].Lectures, 2)
	assert.Equal(t, 2, reloaded.VideoCount)

	require.Len(t, media.folders, 2)
	assert.Equal(t, "skillforge/videos/"+course.ID+"/Basics", media.folders[0])
}

func TestUploadVideoMediaFailure(t *testing.T) {
	svc, _, videos, media := newTestCourseService()
	media.uploadErr = errors.New("disk full")

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)

	_, err = svc.UploadVideoAndAttach(course.ID, "Basics", fileHeader("a.mp4"), "Part 1", "jane@example.com")
	assert.ErrorIs(t, err, ErrUpload)
	assert.Empty(t, videos.videos)
}

func TestAddLectureToSection(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)
	course, err = svc.AddSection(course.ID, "Basics")
	require.NoError(t, err)
	sectionID := course.Sections[0].ID

	course, err = svc.AddLectureToSection(course.ID, sectionID, fileHeader("a.mp4"), "Part 1", "jane@example.com")
	require.NoError(t, err)
	require.Len(t, course.Sections[0].Lectures, 1)
	assert.Equal(t, "Part 1", course.Sections[0].Lectures[0].Title)
	assert.Equal(t, 1, course.VideoCount)
}

func TestAddLectureToMissingSection(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)

	_, err = svc.AddLectureToSection(course.ID, "no-such-section", fileHeader("a.mp4"), "Part 1", "jane@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateThumbnail(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)

	course, err = svc.UpdateThumbnail(course.ID, fileHeader("cover.png"))
	require.NoError(t, err)
	assert.Contains(t, course.Thumbnail, "skillforge/courses/"+course.ID+"/thumbnail")
}

func TestUploadCourseNoteTitleFallback(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)

	course, err = svc.UploadCourseNote(course.ID, fileHeader("syllabus.pdf"), "")
	require.NoError(t, err)
	require.Len(t, course.Notes, 1)
	assert.Equal(t, "syllabus.pdf", course.Notes[0].Title)
	assert.NotEmpty(t, course.Notes[0].ID)

	course, err = svc.UploadCourseNote(course.ID, fileHeader("extra.pdf"), "Reading List")
	require.NoError(t, err)
	require.Len(t, course.Notes, 2)
	assert.Equal(t, "Reading List", course.Notes[1].Title)
}

func TestAddQuizAssignsID(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)
	course, err = svc.AddSection(course.ID, "Basics")
	require.NoError(t, err)
	sectionID := course.Sections[0].ID

	course, err = svc.AddQuizToSection(course.ID, sectionID, models.Quiz{Title: "Checkpoint"})
	require.NoError(t, err)
	require.Len(t, course.Sections[0].Quizzes, 1)
	assert.NotEmpty(t, course.Sections[0].Quizzes[0].ID)
}

func TestUpdateQuizKeepsImmutableFields(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)
	course, err = svc.AddSection(course.ID, "Basics")
	require.NoError(t, err)
	sectionID := course.Sections[0].ID

	limit := 600
	course, err = svc.AddQuizToSection(course.ID, sectionID, models.Quiz{
		Title:            "Checkpoint",
		TimeLimitSeconds: &limit,
		GeneratedByAI:    true,
	})
	require.NoError(t, err)
	quizID := course.Sections[0].Quizzes[0].ID

	passing := 80
	course, err = svc.UpdateQuiz(course.ID, sectionID, quizID, models.Quiz{
		Title:        "Final Checkpoint",
		Description:  "Updated",
		PassingScore: &passing,
		IsPublished:  true,
	})
	require.NoError(t, err)

	quiz := course.Sections[0].Quizzes[0]
	assert.Equal(t, quizID, quiz.ID)
	assert.Equal(t, "Final Checkpoint", quiz.Title)
	assert.Equal(t, 80, *quiz.PassingScore)
	assert.True(t, quiz.IsPublished)
	assert.True(t, quiz.GeneratedByAI)
	require.NotNil(t, quiz.TimeLimitSeconds)
	assert.Equal(t, 600, *quiz.TimeLimitSeconds)
}

func TestUpdateQuizNotFound(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)
	course, err = svc.AddSection(course.ID, "Basics")
	require.NoError(t, err)

	_, err = svc.UpdateQuiz(course.ID, course.Sections[0].ID, "no-such-quiz", models.Quiz{Title: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteQuizFromSection(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)
	course, err = svc.AddSection(course.ID, "Basics")
	require.NoError(t, err)
	sectionID := course.Sections[0].ID

	course, err = svc.AddQuizToSection(course.ID, sectionID, models.Quiz{Title: "Checkpoint"})
	require.NoError(t, err)
	quizID := course.Sections[0].Quizzes[0].ID

	course, err = svc.DeleteQuizFromSection(course.ID, sectionID, quizID)
	require.NoError(t, err)
	assert.Empty(t, course.Sections[0].Quizzes)
}

func TestDeleteCourse(t *testing.T) {
	svc, _, _, _ := newTestCourseService()

	course, err := svc.CreateCourse(&models.Course{Title: "Go Fundamentals"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(course.ID))

	_, err = svc.GetByID(course.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
