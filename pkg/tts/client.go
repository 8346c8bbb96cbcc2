// Package tts wraps Google Cloud Text-to-Speech for voice replies.
package tts

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"
)

// Config holds voice synthesis settings.
type Config struct {
	APIKey       string
	Voice        string
	LanguageCode string
	SpeakingRate float64
}

// Client synthesizes speech audio from text.
type Client struct {
	svc          *texttospeech.Service
	voice        string
	languageCode string
	speakingRate float64
}

// NewClient creates a Text-to-Speech client. The API key authenticates all
// requests; no service-account file is needed.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	svc, err := texttospeech.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create texttospeech service: %w", err)
	}

	voice := cfg.Voice
	if voice == "" {
		voice = "en-US-Neural2-A"
	}
	languageCode := cfg.LanguageCode
	if languageCode == "" {
		languageCode = "en-US"
	}
	rate := cfg.SpeakingRate
	if rate == 0 {
		rate = 1.0
	}

	return &Client{
		svc:          svc,
		voice:        voice,
		languageCode: languageCode,
		speakingRate: rate,
	}, nil
}

// Synthesize converts text to MP3 audio and returns it base64-encoded,
// exactly as the API delivers it.
func (c *Client) Synthesize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty text provided for synthesis")
	}

	resp, err := c.svc.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: c.languageCode,
			Name:         c.voice,
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: "MP3",
			SpeakingRate:  c.speakingRate,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("speech synthesis failed: %w", err)
	}

	return resp.AudioContent, nil
}
