package usecase

import (
	"context"

	"voice-assistant-backend/internal/assistant"
	"voice-assistant-backend/internal/model"
)

// ProcessVoice transcribes an uploaded audio command and runs it through
// the text pipeline. An empty transcript gets the fixed repeat prompt
// without touching session state.
func (uc *implUseCase) ProcessVoice(ctx context.Context, sc model.Scope, input assistant.VoiceInput) (assistant.VoiceOutput, error) {
	if len(input.Audio) == 0 {
		return assistant.VoiceOutput{}, assistant.ErrEmptyAudio
	}
	if uc.stt == nil {
		return assistant.VoiceOutput{
			Response: model.CommandResponse{Response: validationResponse},
		}, nil
	}

	transcript, err := uc.stt.Recognize(ctx, input.Audio)
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.ProcessVoice: %v", err)
		return assistant.VoiceOutput{
			Response: model.CommandResponse{Response: validationResponse},
		}, nil
	}
	if transcript == "" {
		return assistant.VoiceOutput{
			Response: model.CommandResponse{Response: validationResponse},
		}, nil
	}

	resp, err := uc.ProcessCommand(ctx, sc, assistant.CommandInput{Text: transcript, Speak: input.Speak})
	if err != nil {
		return assistant.VoiceOutput{}, err
	}
	return assistant.VoiceOutput{Transcript: transcript, Response: resp}, nil
}
