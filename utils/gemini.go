package utils

import (
	"errors"
	"fmt"

	"neuroscan/config"

	"github.com/go-resty/resty/v2"
)

// ErrChatUnavailable is returned when no API key is configured for the chatbot.
var ErrChatUnavailable = errors.New("chat service is not configured")

var chatClient = resty.New()

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateAnswer sends a single prompt to the conversational API and returns
// the model's reply text. One call per question: no caching, no retry.
func GenerateAnswer(prompt string) (string, error) {
	if config.AppConfig.GeminiApiKey == "" {
		return "", ErrChatUnavailable
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		config.AppConfig.GeminiApiUrl, config.AppConfig.GeminiModel)

	var result geminiResponse
	resp, err := chatClient.R().
		SetHeader("x-goog-api-key", config.AppConfig.GeminiApiKey).
		SetBody(geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}).
		SetResult(&result).
		Post(url)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %v", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("chat API error: status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("chat API returned an empty reply")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
