package usecase

import (
	"context"
	"errors"

	"voice-assistant-backend/internal/assistant"
	"voice-assistant-backend/internal/assistant/repository"
	"voice-assistant-backend/internal/model"
)

const defaultHistoryLimit = 10

// History returns the most recent persisted commands for a user.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, limit int) ([]model.HistoryEntry, error) {
	if uc.repo == nil {
		return nil, assistant.ErrHistoryUnavailable
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := uc.repo.ListHistory(ctx, repository.ListHistoryOptions{UserID: sc.UserID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.History: %v", err)
		return nil, assistant.ErrHistoryUnavailable
	}
	return entries, nil
}

// GetSettings returns the user's stored settings, falling back to the
// defaults when none exist.
func (uc *implUseCase) GetSettings(ctx context.Context, sc model.Scope) (model.Settings, error) {
	if uc.repo == nil {
		return model.Settings{}, assistant.ErrSettingsUnavailable
	}
	s, err := uc.repo.GetSettings(ctx, sc.UserID)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return model.Settings{
			UserID:     sc.UserID,
			Voice:      model.DefaultVoice,
			VoiceSpeed: model.DefaultVoiceSpeed,
			Theme:      model.DefaultTheme,
		}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.GetSettings: %v", err)
		return model.Settings{}, assistant.ErrSettingsUnavailable
	}
	return s, nil
}

// UpdateSettings applies a partial update and returns the merged result.
func (uc *implUseCase) UpdateSettings(ctx context.Context, sc model.Scope, patch model.SettingsPatch) (model.Settings, error) {
	if uc.repo == nil {
		return model.Settings{}, assistant.ErrSettingsUnavailable
	}
	s, err := uc.repo.UpsertSettings(ctx, repository.UpsertSettingsOptions{UserID: sc.UserID, Patch: patch})
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.UpdateSettings: %v", err)
		return model.Settings{}, assistant.ErrSettingsUnavailable
	}
	return s, nil
}
