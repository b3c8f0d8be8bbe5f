// Package media turns voice and image uploads into symptom text.
package media

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// Transcriber converts recorded speech into text
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// Vision describes what a photo shows. hint is the customer's own text, possibly empty.
type Vision interface {
	Describe(ctx context.Context, image []byte, mimeType, hint string) (string, error)
}

// ImageMIMEType maps a filename extension to an image MIME type, defaulting to JPEG
func ImageMIMEType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

// CombineImageText merges the customer's text with the image analysis
func CombineImageText(text, analysis string) string {
	if strings.TrimSpace(text) == "" {
		return analysis
	}
	return text + "\n\nBased on the image: " + analysis
}
