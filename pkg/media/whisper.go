package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

const DefaultTranscriptionModel = "whisper-large-v3"

// WhisperTranscriber uses an OpenAI-compatible audio endpoint (Groq by default)
type WhisperTranscriber struct {
	client *goopenai.Client
	model  string
}

var _ Transcriber = &WhisperTranscriber{}

func NewWhisperTranscriber(apiKey, baseURL, model string) (*WhisperTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("transcription API key is required")
	}
	if model == "" {
		model = DefaultTranscriptionModel
	}

	config := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &WhisperTranscriber{client: goopenai.NewClientWithConfig(config), model: model}, nil
}

func (w *WhisperTranscriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	if filename == "" {
		filename = "audio.m4a"
	}

	resp, err := w.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:       w.model,
		FilePath:    filename,
		Reader:      audio,
		Temperature: 0,
		Format:      goopenai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("transcription is empty")
	}
	return text, nil
}
