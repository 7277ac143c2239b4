package database

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillforge/models"
	"skillforge/services"
)

// VideoStore keeps the standalone video rows written on every upload.
type VideoStore struct {
	db *gorm.DB
}

func NewVideoStore(db *gorm.DB) *VideoStore {
	return &VideoStore{db: db}
}

func (s *VideoStore) Save(video *models.Video) (*models.Video, error) {
	if video.ID == "" {
		video.ID = uuid.NewString()
	}
	if err := s.db.Save(video).Error; err != nil {
		return nil, fmt.Errorf("save video %s: %v: %w", video.ID, err, services.ErrStore)
	}
	return video, nil
}

func (s *VideoStore) FindByCourse(courseID string) ([]models.Video, error) {
	var videos []models.Video
	if err := s.db.Where("course_id = ?", courseID).Order("created_at asc").Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("list videos of course %s: %v: %w", courseID, err, services.ErrStore)
	}
	return videos, nil
}

// ResponseStore persists graded quiz submissions. Rows are only ever
// inserted.
type ResponseStore struct {
	db *gorm.DB
}

func NewResponseStore(db *gorm.DB) *ResponseStore {
	return &ResponseStore{db: db}
}

func (s *ResponseStore) Save(resp *models.QuizResponse) error {
	if err := s.db.Create(resp).Error; err != nil {
		return fmt.Errorf("save quiz response %s: %v: %w", resp.ID, err, services.ErrStore)
	}
	return nil
}

// EnrollmentStore holds student-course enrollment rows.
type EnrollmentStore struct {
	db *gorm.DB
}

func NewEnrollmentStore(db *gorm.DB) *EnrollmentStore {
	return &EnrollmentStore{db: db}
}

func (s *EnrollmentStore) Find(email, courseID string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Where("student_email = ? AND course_id = ?", email, courseID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("enrollment of %s in course %s: %w", email, courseID, services.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("load enrollment: %v: %w", err, services.ErrStore)
	}
	return &enrollment, nil
}

func (s *EnrollmentStore) FindByEmail(email string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("student_email = ?", email).Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("list enrollments of %s: %v: %w", email, err, services.ErrStore)
	}
	return enrollments, nil
}

func (s *EnrollmentStore) Save(enrollment *models.Enrollment) error {
	if err := s.db.Save(enrollment).Error; err != nil {
		return fmt.Errorf("save enrollment %s: %v: %w", enrollment.ID, err, services.ErrStore)
	}
	return nil
}
