package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"voice-assistant-backend/internal/assistant"
	"voice-assistant-backend/internal/assistant/repository"
	"voice-assistant-backend/internal/model"
)

// ProcessCommand runs one text command through validation, rate limiting,
// classification and execution. Every outcome is a valid CommandResponse;
// rejected input never touches session state.
func (uc *implUseCase) ProcessCommand(ctx context.Context, sc model.Scope, input assistant.CommandInput) (model.CommandResponse, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" || utf8.RuneCountInString(text) > uc.cfg.MaxCommandLength {
		return model.CommandResponse{Response: validationResponse}, nil
	}

	if !uc.limiter.Allow(sc.UserID) {
		uc.l.Warnf(ctx, "assistant/usecase.ProcessCommand: rate limited user %s", sc.UserID)
		return model.CommandResponse{Response: rateLimitResponse}, nil
	}

	sess := uc.store.GetOrCreate(sc.UserID)
	sess.AppendTurn(model.RoleUser, text)

	it := uc.classifier.Classify(text)
	resp := uc.execute(ctx, sess, it)

	sess.AppendTurn(model.RoleAssistant, resp.Response)
	uc.appendHistory(ctx, sc.UserID, text, resp.Response)

	if input.Speak {
		uc.attachAudio(ctx, &resp)
	}
	return resp, nil
}

// appendHistory persists the command best-effort; storage trouble never
// fails the command.
func (uc *implUseCase) appendHistory(ctx context.Context, userID, command, result string) {
	if uc.repo == nil {
		return
	}
	err := uc.repo.AppendHistory(ctx, repository.AppendHistoryOptions{
		UserID:  userID,
		Command: command,
		Result:  result,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.appendHistory: %v", err)
	}
}

// attachAudio synthesizes the spoken form of the reply; on failure the
// response goes out without audio.
func (uc *implUseCase) attachAudio(ctx context.Context, resp *model.CommandResponse) {
	if uc.tts == nil {
		return
	}
	audio, err := uc.tts.Synthesize(ctx, resp.Response)
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.attachAudio: %v", err)
		return
	}
	resp.AudioBase64 = audio
}
