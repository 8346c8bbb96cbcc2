package assistant

import "voice-assistant-backend/internal/model"

// CommandInput is one text command for a user.
type CommandInput struct {
	Text  string
	Speak bool
}

// VoiceInput is one uploaded audio command.
type VoiceInput struct {
	Audio []byte
	Speak bool
}

// VoiceOutput carries the transcript alongside the processed result.
type VoiceOutput struct {
	Transcript string
	Response   model.CommandResponse
}
