package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"skillforge/models"
)

// QuizSource produces a populated quiz for a topic. Two implementations
// exist: the AI-backed source and the offline template source. The engine
// picks one at construction time based on credential presence, so nothing
// downstream branches on quiz origin.
type QuizSource interface {
	BuildQuiz(topic string, numQuestions int, timeLimitSeconds *int) (models.Quiz, error)
}

// QuizGenService builds quizzes for a section and attaches them through the
// aggregate editor.
type QuizGenService struct {
	Courses *CourseService
	Source  QuizSource
}

// NewQuizGenService selects the AI source when a text generator is supplied
// and the offline template source otherwise.
func NewQuizGenService(courses *CourseService, gen TextGenerator) *QuizGenService {
	var source QuizSource
	if gen != nil {
		source = &aiQuizSource{Gen: gen}
	} else {
		source = &mockQuizSource{}
	}
	return &QuizGenService{Courses: courses, Source: source}
}

// GenerateQuizFromTopic builds a quiz and attaches it via AddQuizToSection,
// so course or section lookup failures surface the same way for both
// sources.
func (s *QuizGenService) GenerateQuizFromTopic(courseID, sectionID, topic string, numQuestions int, timeLimitSeconds *int) (*models.Course, error) {
	quiz, err := s.Source.BuildQuiz(topic, numQuestions, timeLimitSeconds)
	if err != nil {
		return nil, err
	}
	return s.Courses.AddQuizToSection(courseID, sectionID, quiz)
}

type aiQuizSource struct {
	Gen TextGenerator
}

func (a *aiQuizSource) BuildQuiz(topic string, numQuestions int, timeLimitSeconds *int) (models.Quiz, error) {
	prompt := fmt.Sprintf(
		"Generate %d multiple-choice questions (4 options each) about the topic: %s. "+
			"Return a JSON object with key 'questions' which is an array of objects "+
			"{question, options, correctOptionIndex, explanation}. "+
			"Do not include any extra text outside JSON.",
		numQuestions, topic,
	)

	body, err := a.Gen.Generate(prompt, numQuestions)
	if err != nil {
		return models.Quiz{}, fmt.Errorf("text generation call failed: %v: %w", err, ErrGeneration)
	}

	questions, err := parseGeneratedQuestions(body)
	if err != nil {
		return models.Quiz{}, err
	}

	return models.Quiz{
		ID:               uuid.NewString(),
		Title:            "Quiz: " + topic,
		Description:      "Auto-generated quiz on: " + topic,
		Questions:        questions,
		PassingScore:     intPtr(70),
		IsPublished:      true,
		TimeLimitSeconds: timeLimitSeconds,
		GeneratedByAI:    true,
	}, nil
}

// parseGeneratedQuestions reads the raw model output defensively: every
// field is optional and untyped at this boundary. Missing options become an
// empty list, a missing or non-numeric correct index becomes 0. Only a
// wholly unexpected top-level shape is an error; the raw body is attached
// for diagnostics.
func parseGeneratedQuestions(body string) ([]models.QuizQuestion, error) {
	var root any
	if err := json.Unmarshal([]byte(body), &root); err != nil {
		return nil, fmt.Errorf("AI response is not valid JSON. Response: %s: %w", body, ErrGeneration)
	}

	var items []any
	switch v := root.(type) {
	case map[string]any:
		arr, ok := v["questions"].([]any)
		if !ok {
			return nil, fmt.Errorf("AI response did not include a 'questions' array. Response: %s: %w", body, ErrGeneration)
		}
		items = arr
	case []any:
		items = v
	default:
		return nil, fmt.Errorf("AI response did not include a 'questions' array. Response: %s: %w", body, ErrGeneration)
	}

	questions := make([]models.QuizQuestion, 0, len(items))
	for _, item := range items {
		fields, _ := item.(map[string]any)

		q := models.QuizQuestion{
			ID:      uuid.NewString(),
			Options: []string{},
		}
		if text, ok := fields["question"].(string); ok {
			q.Question = text
		}
		if opts, ok := fields["options"].([]any); ok {
			for _, opt := range opts {
				if s, ok := opt.(string); ok {
					q.Options = append(q.Options, s)
				}
			}
		}
		if idx, ok := fields["correctOptionIndex"].(float64); ok {
			q.CorrectOptionIndex = int(idx)
		}
		if expl, ok := fields["explanation"].(string); ok {
			q.Explanation = &expl
		}
		questions = append(questions, q)
	}
	return questions, nil
}

type mockQuizSource struct{}

// BuildQuiz produces a deterministic quiz from five fixed templates, each
// one stem plus four options parameterized by topic. The correct option
// rotates through (i+1)%4 so the answer key is not uniform.
func (m *mockQuizSource) BuildQuiz(topic string, numQuestions int, timeLimitSeconds *int) (models.Quiz, error) {
	templates := [][5]string{
		{
			"What is the primary definition of " + topic + "?",
			"A fundamental concept in " + topic,
			"An advanced technique in " + topic,
			"A historical reference to " + topic,
			"A modern interpretation of " + topic,
		},
		{
			"Which of the following is a key characteristic of " + topic + "?",
			"It focuses on efficiency and speed",
			"It emphasizes scalability and flexibility",
			"It prioritizes security and reliability",
			"It combines all of the above",
		},
		{
			"How is " + topic + " typically implemented?",
			"Through a top-down approach",
			"Using a bottom-up methodology",
			"By iterative development cycles",
			"By waterfall project management",
		},
		{
			"What is one major advantage of " + topic + "?",
			"Reduces complexity significantly",
			"Improves performance and throughput",
			"Enhances user experience",
			"Lowers overall costs",
		},
		{
			"Which field or industry benefits most from " + topic + "?",
			"Software development",
			"Data science and analytics",
			"Cloud computing",
			"All fields that require structured solutions",
		},
	}

	count := numQuestions
	if count > len(templates) {
		count = len(templates)
	}

	questions := make([]models.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		t := templates[i]
		explanation := "This is a sample question generated without API access. " +
			"To enable real AI-generated questions with " + topic +
			", configure your Perplexity API key in the server environment."
		questions = append(questions, models.QuizQuestion{
			ID:                 uuid.NewString(),
			Question:           t[0],
			Options:            []string{t[1], t[2], t[3], t[4]},
			CorrectOptionIndex: (i + 1) % 4,
			Explanation:        &explanation,
		})
	}

	return models.Quiz{
		ID:               uuid.NewString(),
		Title:            "Quiz: " + topic,
		Description:      "Auto-generated quiz on: " + topic + " (Mock - API not configured)",
		Questions:        questions,
		PassingScore:     intPtr(70),
		IsPublished:      true,
		TimeLimitSeconds: timeLimitSeconds,
		GeneratedByAI:    true,
	}, nil
}

func intPtr(v int) *int {
	return &v
}
