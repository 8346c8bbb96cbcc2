// Package stt wraps Google Cloud Speech-to-Text for uploaded voice commands.
package stt

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	speech "google.golang.org/api/speech/v1"
)

// Config holds speech recognition settings.
type Config struct {
	APIKey       string
	LanguageCode string
}

// Client transcribes audio into text.
type Client struct {
	svc          *speech.Service
	languageCode string
}

// NewClient creates a Speech-to-Text client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	svc, err := speech.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}

	languageCode := cfg.LanguageCode
	if languageCode == "" {
		languageCode = "en-US"
	}

	return &Client{svc: svc, languageCode: languageCode}, nil
}

// Recognize transcribes the given audio bytes. The transcript comes back
// lower-cased and trimmed, ready for intent classification. An empty
// transcript is not an error; it means nothing was understood.
func (c *Client) Recognize(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio provided for recognition")
	}

	resp, err := c.svc.Speech.Recognize(&speech.RecognizeRequest{
		Config: &speech.RecognitionConfig{
			LanguageCode: c.languageCode,
		},
		Audio: &speech.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			if alt.Transcript != "" {
				return strings.ToLower(strings.TrimSpace(alt.Transcript)), nil
			}
		}
	}
	return "", nil
}
