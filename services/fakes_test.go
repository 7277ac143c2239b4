package services

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path"

	"github.com/google/uuid"

	"skillforge/models"
)

// fakeCourseStore persists deep copies so a test observes only what Save
// actually wrote, the way the document store behaves.
type fakeCourseStore struct {
	courses map[string]*models.Course
	saves   int
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[string]*models.Course)}
}

func cloneCourse(course *models.Course) *models.Course {
	raw, _ := json.Marshal(course)
	clone := new(models.Course)
	_ = json.Unmarshal(raw, clone)
	return clone
}

func (f *fakeCourseStore) Load(id string) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, fmt.Errorf("course %s: %w", id, ErrNotFound)
	}
	return cloneCourse(course), nil
}

func (f *fakeCourseStore) Save(course *models.Course) (*models.Course, error) {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	f.courses[course.ID] = cloneCourse(course)
	f.saves++
	return cloneCourse(course), nil
}

func (f *fakeCourseStore) Delete(id string) error {
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseStore) FindAll() ([]models.Course, error) {
	all := make([]models.Course, 0, len(f.courses))
	for _, course := range f.courses {
		all = append(all, *cloneCourse(course))
	}
	return all, nil
}

type fakeVideoStore struct {
	videos []models.Video
}

func (f *fakeVideoStore) Save(video *models.Video) (*models.Video, error) {
	if video.ID == "" {
		video.ID = uuid.NewString()
	}
	f.videos = append(f.videos, *video)
	return video, nil
}

func (f *fakeVideoStore) FindByCourse(courseID string) ([]models.Video, error) {
	var out []models.Video
	for _, v := range f.videos {
		if v.CourseID == courseID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeResponseStore struct {
	saved   []*models.QuizResponse
	failErr error
}

func (f *fakeResponseStore) Save(resp *models.QuizResponse) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.saved = append(f.saved, resp)
	return nil
}

type fakeEnrollmentStore struct {
	rows map[string]*models.Enrollment
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{rows: make(map[string]*models.Enrollment)}
}

func enrollmentKey(email, courseID string) string {
	return email + "|" + courseID
}

func (f *fakeEnrollmentStore) Find(email, courseID string) (*models.Enrollment, error) {
	row, ok := f.rows[enrollmentKey(email, courseID)]
	if !ok {
		return nil, fmt.Errorf("enrollment for %s: %w", email, ErrNotFound)
	}
	clone := *row
	return &clone, nil
}

func (f *fakeEnrollmentStore) FindByEmail(email string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, row := range f.rows {
		if row.StudentEmail == email {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) Save(enrollment *models.Enrollment) error {
	clone := *enrollment
	f.rows[enrollmentKey(enrollment.StudentEmail, enrollment.CourseID)] = &clone
	return nil
}

// fakeMedia returns predictable URLs derived from the folder and filename.
type fakeMedia struct {
	uploadErr error
	folders   []string
}

func (f *fakeMedia) upload(file *multipart.FileHeader, folder string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.folders = append(f.folders, folder)
	return "http://media.test/uploads/" + path.Join(folder, file.Filename), nil
}

func (f *fakeMedia) UploadVideo(file *multipart.FileHeader, folder string) (string, error) {
	return f.upload(file, folder)
}

func (f *fakeMedia) UploadImage(file *multipart.FileHeader, folder string) (string, error) {
	return f.upload(file, folder)
}

func (f *fakeMedia) UploadFile(file *multipart.FileHeader, folder string) (string, error) {
	return f.upload(file, folder)
}

func (f *fakeMedia) VideoThumbnail(videoURL string) string {
	return videoURL + ".jpg"
}

type fakeTextGen struct {
	body       string
	err        error
	lastPrompt string
	lastMax    int
}

func (f *fakeTextGen) Generate(prompt string, maxQuestions int) (string, error) {
	f.lastPrompt = prompt
	f.lastMax = maxQuestions
	if f.err != nil {
		return "", f.err
	}
	return f.body, nil
}

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}
