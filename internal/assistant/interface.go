package assistant

import (
	"context"

	"voice-assistant-backend/internal/model"
	"voice-assistant-backend/pkg/gemini"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Command processing
	ProcessCommand(ctx context.Context, sc model.Scope, input CommandInput) (model.CommandResponse, error)
	ProcessVoice(ctx context.Context, sc model.Scope, input VoiceInput) (VoiceOutput, error)

	// Per-user persistence
	History(ctx context.Context, sc model.Scope, limit int) ([]model.HistoryEntry, error)
	GetSettings(ctx context.Context, sc model.Scope) (model.Settings, error)
	UpdateSettings(ctx context.Context, sc model.Scope, patch model.SettingsPatch) (model.Settings, error)
}

// Responder produces a short natural-language reply from a prompt plus
// conversation context. Satisfied by *gemini.Client.
type Responder interface {
	GenerateReply(ctx context.Context, req gemini.ReplyRequest) (string, error)
}

// Synthesizer turns a reply into base64-encoded audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

// Transcriber turns uploaded audio into normalized command text.
type Transcriber interface {
	Recognize(ctx context.Context, audio []byte) (string, error)
}
