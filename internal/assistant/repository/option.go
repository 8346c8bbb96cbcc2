package repository

import "voice-assistant-backend/internal/model"

// AppendHistoryOptions records one executed command and its reply.
type AppendHistoryOptions struct {
	UserID  string
	Command string
	Result  string
}

// ListHistoryOptions queries the newest entries first.
type ListHistoryOptions struct {
	UserID string
	Limit  int
}

// UpsertSettingsOptions applies a partial update on top of the user's
// current settings, creating the row if absent.
type UpsertSettingsOptions struct {
	UserID string
	Patch  model.SettingsPatch
}
