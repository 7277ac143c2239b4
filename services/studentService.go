package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"skillforge/models"
)

// StudentService covers the student-facing flows: browsing, enrollment and
// progress tracking. Enrollment rows are plain single-field CRUD with no
// nested structure.
type StudentService struct {
	Courses     CourseStore
	Enrollments EnrollmentStore
	Grading     *GradingService
}

func NewStudentService(courses CourseStore, enrollments EnrollmentStore, grading *GradingService) *StudentService {
	return &StudentService{Courses: courses, Enrollments: enrollments, Grading: grading}
}

func (s *StudentService) BrowseCourses() ([]models.Course, error) {
	return s.Courses.FindAll()
}

func (s *StudentService) GetCourseByID(courseID string) (*models.Course, error) {
	return s.Courses.Load(courseID)
}

// EnrollInCourse is idempotent per (email, course): re-enrolling reports
// "already enrolled" without writing a second row.
func (s *StudentService) EnrollInCourse(email, courseID string) (string, error) {
	course, err := s.Courses.Load(courseID)
	if errors.Is(err, ErrNotFound) {
		return "Course not found", nil
	} else if err != nil {
		return "", err
	}

	if _, err := s.Enrollments.Find(email, courseID); err == nil {
		return "Already enrolled in this course", nil
	}

	enrollment := &models.Enrollment{
		ID:             uuid.NewString(),
		StudentEmail:   email,
		CourseID:       courseID,
		CourseTitle:    course.Title,
		InstructorName: course.InstructorName,
		Thumbnail:      course.Thumbnail,
		EnrolledAt:     time.Now(),
	}
	if err := s.Enrollments.Save(enrollment); err != nil {
		return "", err
	}
	return "Enrolled successfully!", nil
}

func (s *StudentService) GetMyCourses(email string) ([]models.Enrollment, error) {
	return s.Enrollments.FindByEmail(email)
}

// UpdateProgress sets the completion percentage on an existing enrollment.
func (s *StudentService) UpdateProgress(email, courseID string, progress float64) (string, error) {
	enrollment, err := s.Enrollments.Find(email, courseID)
	if err != nil {
		return "", err
	}

	enrollment.Progress = progress
	if err := s.Enrollments.Save(enrollment); err != nil {
		return "", err
	}
	return "Progress updated successfully!", nil
}

// GradeQuiz delegates to the grading engine.
func (s *StudentService) GradeQuiz(courseID, sectionID, quizID, studentEmail string, answers map[int]int, durationSeconds *int) (*models.QuizResponse, error) {
	return s.Grading.GradeQuizSubmission(courseID, sectionID, quizID, studentEmail, answers, durationSeconds)
}
