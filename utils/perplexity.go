package utils

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// PerplexityClient posts a prompt to the external text-generation API and
// returns the raw response body. The body is expected to be JSON but is
// returned as-is; parsing is the caller's concern.
type PerplexityClient struct {
	ApiKey string
	ApiUrl string
	client *resty.Client
}

func NewPerplexityClient(apiKey, apiUrl string) *PerplexityClient {
	return &PerplexityClient{
		ApiKey: apiKey,
		ApiUrl: apiUrl,
		client: resty.New(),
	}
}

func (p *PerplexityClient) Generate(prompt string, maxQuestions int) (string, error) {
	resp, err := p.client.R().
		SetHeader("Authorization", "Bearer "+p.ApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"prompt":        prompt,
			"max_questions": maxQuestions,
		}).
		Post(p.ApiUrl)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("text generation API returned %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.String(), nil
}
