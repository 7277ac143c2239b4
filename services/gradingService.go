package services

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"skillforge/models"
)

const defaultPassingScore = 70

// GradingService scores submissions against a quiz's answer key. It reads
// the course aggregate but never mutates it; every submission produces a
// durable QuizResponse, passing or not.
type GradingService struct {
	Courses   CourseStore
	Responses ResponseStore
}

func NewGradingService(courses CourseStore, responses ResponseStore) *GradingService {
	return &GradingService{Courses: courses, Responses: responses}
}

// GradeQuizSubmission resolves the course, section and quiz chain, counts
// the answers matching each question's correct index, derives the rounded
// percentage score and pass flag, and persists the response. Unanswered
// questions simply do not count.
func (s *GradingService) GradeQuizSubmission(courseID, sectionID, quizID, studentEmail string, answers map[int]int, durationSeconds *int) (*models.QuizResponse, error) {
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

	total := len(quiz.Questions)
	correct := 0
	for i := 0; i < total; i++ {
		if selected, ok := answers[i]; ok && selected == quiz.Questions[i].CorrectOptionIndex {
			correct++
		}
	}

	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	passing := defaultPassingScore
	if quiz.PassingScore != nil {
		passing = *quiz.PassingScore
	}

	resp := &models.QuizResponse{
		ID:              uuid.NewString(),
		StudentEmail:    studentEmail,
		CourseID:        courseID,
		SectionID:       sectionID,
		QuizID:          quizID,
		Answers:         answers,
		Score:           score,
		Passed:          score >= passing,
		DurationSeconds: durationSeconds,
		SubmittedAt:     time.Now(),
	}

	if err := s.Responses.Save(resp); err != nil {
		return nil, fmt.Errorf("save quiz response: %v: %w", err, ErrStore)
	}
	return resp, nil
}

// ParseAnswers converts a raw answers object from a submission body into
// the question-index map. Entries whose key or value is not an integer are
// skipped individually rather than failing the submission.
func ParseAnswers(raw map[string]any) map[int]int {
	answers := make(map[int]int)
	for key, value := range raw {
		idx, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		switch v := value.(type) {
		case float64:
			if v == math.Trunc(v) {
				answers[idx] = int(v)
			}
		case string:
			if selected, err := strconv.Atoi(v); err == nil {
				answers[idx] = selected
			}
		}
	}
	return answers
}
