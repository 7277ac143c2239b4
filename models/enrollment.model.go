package models

import "time"

// Enrollment links a student to a course. Title, instructor and thumbnail
// are denormalized at enrollment time for the my-courses listing.
type Enrollment struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	StudentEmail   string    `json:"studentEmail" gorm:"index:idx_enrollment_student_course,unique"`
	CourseID       string    `json:"courseId" gorm:"index:idx_enrollment_student_course,unique"`
	CourseTitle    string    `json:"courseTitle"`
	InstructorName string    `json:"instructorName"`
	Thumbnail      string    `json:"thumbnail"`
	Progress       float64   `json:"progress" gorm:"default:0"`
	EnrolledAt     time.Time `json:"enrolledAt"`
}
