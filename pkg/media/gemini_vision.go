package media

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultVisionModel = "gemini-2.0-flash"

const visionPrompt = "Analyze this vehicle issue image and describe the visible damage, symptoms, and possible problems. Be specific and detailed."

type GeminiVision struct {
	client *genai.Client
	model  string
}

var _ Vision = &GeminiVision{}

func NewGeminiVision(ctx context.Context, apiKey, model string) (*GeminiVision, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultVisionModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiVision{client: client, model: model}, nil
}

func (g *GeminiVision) Describe(ctx context.Context, image []byte, mimeType, hint string) (string, error) {
	prompt := visionPrompt
	if strings.TrimSpace(hint) != "" {
		prompt = hint + "\n\n" + visionPrompt
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{Data: image, MIMEType: mimeType}},
			{Text: prompt},
		},
	}}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("analyze image: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("image analysis is empty")
	}
	return text, nil
}
