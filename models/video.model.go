package models

import "time"

// Video is the standalone record saved for every uploaded lecture video,
// kept outside the course document for course-level listings.
type Video struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title"`
	VideoURL     string    `json:"videoUrl"`
	Thumbnail    string    `json:"thumbnail"`
	CourseID     string    `json:"courseId" gorm:"index"`
	SectionTitle string    `json:"sectionTitle"`
	UploadedBy   string    `json:"uploadedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
