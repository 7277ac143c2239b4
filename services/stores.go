package services

import (
	"mime/multipart"

	"skillforge/models"
)

// CourseStore is the aggregate store: whole-document load and save keyed by
// course id. Save assigns an id on first save; Load reports ErrNotFound for
// unknown ids.
type CourseStore interface {
	Load(id string) (*models.Course, error)
	Save(course *models.Course) (*models.Course, error)
	Delete(id string) error
	FindAll() ([]models.Course, error)
}

// VideoStore keeps the standalone video records written on every upload.
type VideoStore interface {
	Save(video *models.Video) (*models.Video, error)
	FindByCourse(courseID string) ([]models.Video, error)
}

// ResponseStore persists graded quiz submissions. Append-only.
type ResponseStore interface {
	Save(resp *models.QuizResponse) error
}

// EnrollmentStore holds student-course enrollment rows. Find reports
// ErrNotFound when the student is not enrolled.
type EnrollmentStore interface {
	Find(email, courseID string) (*models.Enrollment, error)
	FindByEmail(email string) ([]models.Enrollment, error)
	Save(enrollment *models.Enrollment) error
}

// MediaStore stores binary uploads under a logical folder path and returns a
// durable URL for each, plus a thumbnail URL derived from a video URL.
type MediaStore interface {
	UploadVideo(file *multipart.FileHeader, folder string) (string, error)
	UploadImage(file *multipart.FileHeader, folder string) (string, error)
	UploadFile(file *multipart.FileHeader, folder string) (string, error)
	VideoThumbnail(videoURL string) string
}

// TextGenerator is the external text-generation API. The returned body is
// expected, but not guaranteed, to be JSON.
type TextGenerator interface {
	Generate(prompt string, maxQuestions int) (string, error)
}
