package repository

import (
	"context"

	"voice-assistant-backend/internal/model"
)

// Repository is the composed interface for the assistant's persisted state.
type Repository interface {
	HistoryRepository
	SettingsRepository
}

// HistoryRepository stores and queries the per-user command audit trail.
type HistoryRepository interface {
	AppendHistory(ctx context.Context, opt AppendHistoryOptions) error
	ListHistory(ctx context.Context, opt ListHistoryOptions) ([]model.HistoryEntry, error)
}

// SettingsRepository stores per-user voice preferences.
type SettingsRepository interface {
	GetSettings(ctx context.Context, userID string) (model.Settings, error)
	UpsertSettings(ctx context.Context, opt UpsertSettingsOptions) (model.Settings, error)
}
