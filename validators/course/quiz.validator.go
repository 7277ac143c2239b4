package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"skillforge/middleware"
	"skillforge/models"
)

func QuizValidator(c *fiber.Ctx) error {
	quiz := new(models.Quiz)
	if err := c.BodyParser(quiz); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)

	if strings.TrimSpace(quiz.Title) == "" {
		errors["title"] = "Quiz title is required."
	}
	for _, q := range quiz.Questions {
		if strings.TrimSpace(q.Question) == "" {
			errors["questions"] = "Every question needs text."
			break
		}
		if len(q.Options) == 0 {
			errors["questions"] = "Every question needs at least one option."
			break
		}
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedQuiz", quiz)
	return c.Next()
}

func GenerateQuizValidator(c *fiber.Ctx) error {
	reqData := new(struct {
		Topic            string `json:"topic"`
		NumQuestions     int    `json:"numQuestions"`
		TimeLimitSeconds *int   `json:"timeLimitSeconds"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)

	if strings.TrimSpace(reqData.Topic) == "" {
		errors["topic"] = "Topic is required."
	}
	if reqData.NumQuestions <= 0 {
		errors["numQuestions"] = "Number of questions must be positive."
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedGenerateQuiz", reqData)
	return c.Next()
}
