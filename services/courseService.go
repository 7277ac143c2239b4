package services

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"skillforge/models"
)

// CourseService is the aggregate editor: every structural change to a course
// is a load-whole, mutate-in-memory, save-whole cycle against the course
// store. There is no field-level update path; the document is the unit of
// persistence.
//
// The document carries no version token. Two concurrent editors of the same
// course both load the pre-edit aggregate and the later save wins, silently
// dropping the earlier writer's change. Single-writer use is the supported
// mode.
type CourseService struct {
	Courses CourseStore
	Videos  VideoStore
	Media   MediaStore
}

func NewCourseService(courses CourseStore, videos VideoStore, media MediaStore) *CourseService {
	return &CourseService{Courses: courses, Videos: videos, Media: media}
}

// CreateCourse fills defaults and saves a new course document.
func (s *CourseService) CreateCourse(course *models.Course) (*models.Course, error) {
	if course.Status == "" {
		course.Status = "draft"
	}
	if course.Language == "" {
		course.Language = "English"
	}
	return s.Courses.Save(course)
}

func (s *CourseService) GetAllCourses() ([]models.Course, error) {
	return s.Courses.FindAll()
}

func (s *CourseService) GetByID(courseID string) (*models.Course, error) {
	return s.Courses.Load(courseID)
}

// AddSection appends a section with a fresh id and saves the course.
func (s *CourseService) AddSection(courseID, title string) (*models.Course, error) {
	course, err := s.Courses.Load(courseID)
	if err != nil {
		return nil, err
	}

	course.Sections = append(course.Sections, models.Section{
		ID:    uuid.NewString(),
		Title: title,
	})
	return s.Courses.Save(course)
}

// DeleteSection filters the section out by id. A course that has no sections
// is returned unchanged.
func (s *CourseService) DeleteSection(courseID, sectionID string) (*models.Course, error) {
	course, err := s.Courses.Load(courseID)
	if err != nil {
		return nil, err
	}

	if course.Sections == nil {
		return course, nil
	}

	kept := make([]models.Section, 0, len(course.Sections))
	for _, section := range course.Sections {
		if section.ID != sectionID {
			kept = append(kept, section)
		}
	}
	course.Sections = kept
	return s.Courses.Save(course)
}

func (s *CourseService) DeleteCourse(courseID string) error {
	return s.Courses.Delete(courseID)
}

// UploadVideoAndAttach validates the upload, resolves the course
// (auto-provisioning one when the id is unknown), stores the media, records
// the standalone video row and appends a lecture to the section matching
// sectionTitle, creating that section when absent. Returns the video record
// rather than the course.
func (s *CourseService) UploadVideoAndAttach(courseID, sectionTitle string, file *multipart.FileHeader, title, uploadedBy string) (*models.Video, error) {
	if file == nil {
		return nil, fmt.Errorf("video file is required: %w", ErrValidation)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("video title is required: %w", ErrValidation)
	}

	course, err := s.Courses.Load(courseID)
	if errors.Is(err, ErrNotFound) {
		course, err = s.Courses.Save(&models.Course{
			Title:           "Untitled Course",
			Description:     "Auto-created course during video upload",
			InstructorName:  uploadedBy,
			InstructorEmail: uploadedBy,
			Status:          "draft",
			Language:        "English",
		})
		if err != nil {
			return nil, err
		}
		courseID = course.ID
		log.Printf("Auto-created course %s during video upload", courseID)
	} else if err != nil {
		return nil, err
	}

	if strings.TrimSpace(sectionTitle) == "" {
		sectionTitle = "Default Section"
	}

	folder := fmt.Sprintf("skillforge/videos/%s/%s", courseID, sectionTitle)
	videoURL, err := s.Media.UploadVideo(file, folder)
	if err != nil {
		return nil, fmt.Errorf("upload video: %v: %w", err, ErrUpload)
	}

	video, err := s.Videos.Save(&models.Video{
		ID:           uuid.NewString(),
		Title:        title,
		VideoURL:     videoURL,
		Thumbnail:    s.Media.VideoThumbnail(videoURL),
		CourseID:     courseID,
		SectionTitle: sectionTitle,
		UploadedBy:   uploadedBy,
	})
	if err != nil {
		return nil, err
	}

	section := findSectionByTitle(course, sectionTitle)
	if section == nil {
		course.Sections = append(course.Sections, models.Section{
			ID:    uuid.NewString(),
			Title: sectionTitle,
		})
		section = &course.Sections[len(course.Sections)-1]
	}
	section.Lectures = append(section.Lectures, lectureFromVideo(video))
	course.VideoCount++

	if _, err := s.Courses.Save(course); err != nil {
		return nil, err
	}
	return video, nil
}

// AddLectureToSection uploads a video the same way as UploadVideoAndAttach
// but targets an existing section by id and returns the saved course.
func (s *CourseService) AddLectureToSection(courseID, sectionID string, file *multipart.FileHeader, title, uploadedBy string) (*models.Course, error) {
	if file == nil {
		return nil, fmt.Errorf("video file is required: %w", ErrValidation)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("video title is required: %w", ErrValidation)
	}

	course, err := s.Courses.Load(courseID)
	if err != nil {
		return nil, err
	}

	section := findSectionByID(course, sectionID)
	if section == nil {
		return nil, fmt.Errorf("section %s: %w", sectionID, ErrNotFound)
	}

	folder := fmt.Sprintf("skillforge/videos/%s/%s", courseID, section.Title)
	videoURL, err := s.Media.UploadVideo(file, folder)
	if err != nil {
		return nil, fmt.Errorf("upload lecture: %v: %w", err, ErrUpload)
	}

	video, err := s.Videos.Save(&models.Video{
		ID:           uuid.NewString(),
		Title:        title,
		VideoURL:     videoURL,
		Thumbnail:    s.Media.VideoThumbnail(videoURL),
		CourseID:     courseID,
		SectionTitle: section.Title,
		UploadedBy:   uploadedBy,
	})
	if err != nil {
		return nil, err
	}

	section.Lectures = append(section.Lectures, lectureFromVideo(video))
	course.VideoCount++
	return s.Courses.Save(course)
}

// UpdateThumbnail uploads a course thumbnail image and saves its URL on the
// document.
func (s *CourseService) UpdateThumbnail(courseID string, file *multipart.FileHeader) (*models.Course, error) {
	course, err := s.Courses.Load(courseID)
	if err != nil {
		return nil, err
	}

	if file == nil {
		return nil, fmt.Errorf("thumbnail file is required: %w", ErrValidation)
	}

	folder := fmt.Sprintf("skillforge/courses/%s/thumbnail", courseID)
	url, err := s.Media.UploadImage(file, folder)
	if err != nil {
		return nil, fmt.Errorf("upload thumbnail: %v: %w", err, ErrUpload)
	}

	course.Thumbnail = url
	return s.Courses.Save(course)
}

// UploadCourseNote uploads a document and appends it to the course notes.
// The note title falls back to the uploaded file's original name.
func (s *CourseService) UploadCourseNote(courseID string, file *multipart.FileHeader, title string) (*models.Course, error) {
	course, err := s.Courses.Load(courseID)
	if err != nil {
		return nil, err
	}

	if file == nil {
		return nil, fmt.Errorf("notes file is required: %w", ErrValidation)
	}

	folder := fmt.Sprintf("skillforge/courses/%s/notes", courseID)
	url, err := s.Media.UploadFile(file, folder)
	if err != nil {
		return nil, fmt.Errorf("upload note: %v: %w", err, ErrUpload)
	}

	if strings.TrimSpace(title) == "" {
		title = file.Filename
	}
	course.Notes = append(course.Notes, models.Note{
		ID:    uuid.NewString(),
		Title: title,
		URL:   url,
	})
	return s.Courses.Save(course)
}

func (s *CourseService) GetCourseVideos(courseID string) ([]models.Video, error) {
	return s.Videos.FindByCourse(courseID)
}

// AddQuizToSection attaches a quiz to the section, assigning an id when the
// quiz does not carry one.
func (s *CourseService) AddQuizToSection(courseID, sectionID string, quiz models.Quiz) (*models.Course, error) {
	course, err := s.Courses.Load(courseID)
	if err != nil {
		return nil, err
	}

	section := findSectionByID(course, sectionID)
	if section == nil {
		return nil, fmt.Errorf("section %s: %w", sectionID, ErrNotFound)
	}

	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	section.Quizzes = append(section.Quizzes, quiz)
	return s.Courses.Save(course)
}

// UpdateQuiz replaces the editable quiz fields. The id, generatedByAI flag
// and time limit are left untouched.
func (s *CourseService) UpdateQuiz(courseID, sectionID, quizID string, updated models.Quiz) (*models.Course, error) {
	course, err := s.Courses.Load(courseID)
	if err != nil {
		return nil, err
	}

	section := findSectionByID(course, sectionID)
	if section == nil {
		return nil, fmt.Errorf("section %s: %w", sectionID, ErrNotFound)
	}

	var quiz *models.Quiz
	for i := range section.Quizzes {
		if section.Quizzes[i].ID == quizID {
			quiz = &section.Quizzes[i]
			break
		}
	}
	if quiz == nil {
		return nil, fmt.Errorf("quiz %s: %w", quizID, ErrNotFound)
	}

	quiz.Title = updated.Title
	quiz.Description = updated.Description
	quiz.Questions = updated.Questions
	quiz.PassingScore = updated.PassingScore
	quiz.IsPublished = updated.IsPublished
	return s.Courses.Save(course)
}

// DeleteQuizFromSection filters the quiz out of the section by id.
func (s *CourseService) DeleteQuizFromSection(courseID, sectionID, quizID string) (*models.Course, error) {
	course, err := s.Courses.Load(courseID)
	if err != nil {
		return nil, err
	}

	section := findSectionByID(course, sectionID)
	if section == nil {
		return nil, fmt.Errorf("section %s: %w", sectionID, ErrNotFound)
	}

	if section.Quizzes != nil {
		kept := make([]models.Quiz, 0, len(section.Quizzes))
		for _, quiz := range section.Quizzes {
			if quiz.ID != quizID {
				kept = append(kept, quiz)
			}
		}
		section.Quizzes = kept
	}
	return s.Courses.Save(course)
}

func findSectionByID(course *models.Course, sectionID string) *models.Section {
	for i := range course.Sections {
		if course.Sections[i].ID == sectionID {
			return &course.Sections[i]
		}
	}
	return nil
}

func findSectionByTitle(course *models.Course, title string) *models.Section {
	for i := range course.Sections {
		if course.Sections[i].Title == title {
			return &course.Sections[i]
		}
	}
	return nil
}

func lectureFromVideo(video *models.Video) models.Lecture {
	return models.Lecture{
		ID:        video.ID,
		Title:     video.Title,
		VideoID:   video.ID,
		URL:       video.VideoURL,
		Thumbnail: video.Thumbnail,
	}
}
