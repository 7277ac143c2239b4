package database

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"skillforge/models"
	"skillforge/services"
)

// CourseStore persists the course aggregate as a single course_documents
// row, with the nested sections and notes serialized into JSON columns.
// Load and save always move the whole document.
type CourseStore struct {
	db *gorm.DB
}

func NewCourseStore(db *gorm.DB) *CourseStore {
	return &CourseStore{db: db}
}

func (s *CourseStore) Load(id string) (*models.Course, error) {
	var row models.CourseDocument
	if err := s.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course %s: %w", id, services.ErrNotFound)
		}
		return nil, fmt.Errorf("load course %s: %v: %w", id, err, services.ErrStore)
	}
	return documentToCourse(&row)
}

func (s *CourseStore) Save(course *models.Course) (*models.Course, error) {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}

	row, err := courseToDocument(course)
	if err != nil {
		return nil, err
	}
	if err := s.db.Save(row).Error; err != nil {
		return nil, fmt.Errorf("save course %s: %v: %w", course.ID, err, services.ErrStore)
	}
	return course, nil
}

func (s *CourseStore) Delete(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&models.CourseDocument{}).Error; err != nil {
		return fmt.Errorf("delete course %s: %v: %w", id, err, services.ErrStore)
	}
	return nil
}

func (s *CourseStore) FindAll() ([]models.Course, error) {
	var rows []models.CourseDocument
	if err := s.db.Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list courses: %v: %w", err, services.ErrStore)
	}

	courses := make([]models.Course, 0, len(rows))
	for i := range rows {
		course, err := documentToCourse(&rows[i])
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, nil
}

func courseToDocument(course *models.Course) (*models.CourseDocument, error) {
	sections, err := json.Marshal(course.Sections)
	if err != nil {
		return nil, fmt.Errorf("encode sections: %v: %w", err, services.ErrStore)
	}
	notes, err := json.Marshal(course.Notes)
	if err != nil {
		return nil, fmt.Errorf("encode notes: %v: %w", err, services.ErrStore)
	}

	return &models.CourseDocument{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		InstructorName:  course.InstructorName,
		InstructorEmail: course.InstructorEmail,
		Status:          course.Status,
		Thumbnail:       course.Thumbnail,
		Language:        course.Language,
		StudentsCount:   course.StudentsCount,
		VideoCount:      course.VideoCount,
		Sections:        datatypes.JSON(sections),
		Notes:           datatypes.JSON(notes),
	}, nil
}

func documentToCourse(row *models.CourseDocument) (*models.Course, error) {
	course := &models.Course{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		InstructorName:  row.InstructorName,
		InstructorEmail: row.InstructorEmail,
		Status:          row.Status,
		Thumbnail:       row.Thumbnail,
		Language:        row.Language,
		StudentsCount:   row.StudentsCount,
		VideoCount:      row.VideoCount,
	}

	if len(row.Sections) > 0 {
		if err := json.Unmarshal(row.Sections, &course.Sections); err != nil {
			return nil, fmt.Errorf("decode sections of course %s: %v: %w", row.ID, err, services.ErrStore)
		}
	}
	if len(row.Notes) > 0 {
		if err := json.Unmarshal(row.Notes, &course.Notes); err != nil {
			return nil, fmt.Errorf("decode notes of course %s: %v: %w", row.ID, err, services.ErrStore)
		}
	}
	return course, nil
}
