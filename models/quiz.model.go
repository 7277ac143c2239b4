package models

// Quiz lives inside a section. Authored by instructors or produced by the
// quiz generator (AI or mock); both paths end up with this same shape.
type Quiz struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Questions        []QuizQuestion `json:"questions"`
	PassingScore     *int           `json:"passingScore"` // percentage; graded as 70 when unset
	IsPublished      bool           `json:"isPublished"`
	TimeLimitSeconds *int           `json:"timeLimitSeconds,omitempty"`
	GeneratedByAI    bool           `json:"generatedByAI"`
}

// QuizQuestion is a multiple-choice question. CorrectOptionIndex is 0-based;
// AI-sourced questions may carry an index outside the options range, which
// grading treats as never matching rather than as an error.
type QuizQuestion struct {
	ID                 string   `json:"id"`
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Explanation        *string  `json:"explanation,omitempty"`
}
