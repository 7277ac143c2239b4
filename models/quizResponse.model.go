package models

import "time"

// QuizResponse records one graded submission. Append-only: it references the
// course, section and quiz by id only, so it survives structural edits to
// (or deletion of) the course it was graded against.
type QuizResponse struct {
	ID              string      `json:"id" gorm:"primaryKey"`
	StudentEmail    string      `json:"studentEmail" gorm:"index"`
	CourseID        string      `json:"courseId" gorm:"index"`
	SectionID       string      `json:"sectionId"`
	QuizID          string      `json:"quizId" gorm:"index"`
	Answers         map[int]int `json:"answers" gorm:"serializer:json"` // question index -> selected option index
	Score           int         `json:"score"` // 0-100
	Passed          bool        `json:"passed"`
	DurationSeconds *int        `json:"durationSeconds,omitempty"`
	SubmittedAt     time.Time   `json:"submittedAt"`
}
