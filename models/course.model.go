package models

import (
	"time"

	"gorm.io/datatypes"
)

// Course is the aggregate root of the catalog. The whole tree (sections with
// their lectures and quizzes, plus notes) travels together: every edit loads
// the full document, mutates it in memory and saves it back as one unit.
type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	InstructorName  string    `json:"instructorName"`
	InstructorEmail string    `json:"instructorEmail"`
	Status          string    `json:"status"` // draft, published
	Thumbnail       string    `json:"thumbnail"`
	Language        string    `json:"language"`
	StudentsCount   int       `json:"studentsCount"`
	VideoCount      int       `json:"videoCount"`
	Sections        []Section `json:"sections"`
	Notes           []Note    `json:"notes"`
}

// Section groups lectures and quizzes inside a course. Its id is unique
// within the owning course only.
type Section struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Lectures []Lecture `json:"lectures"`
	Quizzes  []Quiz    `json:"quizzes"`
}

// Lecture is an embedded record created as a side effect of a video upload.
// It is never queried on its own; the standalone Video row carries the same
// data for course-level listings.
type Lecture struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	VideoID   string `json:"videoId"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Note is an attached document (PDF etc.), append-only within a course.
type Note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CourseDocument is the persisted shape of Course: scalar columns for the
// root fields, with the nested sections and notes serialized into JSON
// columns so the aggregate stays a single row.
type CourseDocument struct {
	ID              string `gorm:"primaryKey"`
	Title           string
	Description     string
	InstructorName  string
	InstructorEmail string
	Status          string `gorm:"default:'draft'"`
	Thumbnail       string
	Language        string `gorm:"default:'English'"`
	StudentsCount   int    `gorm:"default:0"`
	VideoCount      int    `gorm:"default:0"`
	Sections        datatypes.JSON
	Notes           datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (CourseDocument) TableName() string {
	return "course_documents"
}
