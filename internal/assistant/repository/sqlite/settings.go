package sqlite

import (
	"context"
	"database/sql"
	"errors"

	repo "voice-assistant-backend/internal/assistant/repository"
	"voice-assistant-backend/internal/model"
)

// GetSettings returns the stored settings for a user, or
// repository.ErrSettingsNotFound if none exist.
func (r *implRepository) GetSettings(ctx context.Context, userID string) (model.Settings, error) {
	const query = `
		SELECT user_id, voice, voice_speed, theme
		FROM settings
		WHERE user_id = ?`

	var s model.Settings
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.UserID, &s.Voice, &s.VoiceSpeed, &s.Theme)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Settings{}, repo.ErrSettingsNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSettings"), err)
		return model.Settings{}, err
	}
	return s, nil
}

// UpsertSettings merges the patch over the stored row (or the defaults when
// the user has none) and writes the result back.
func (r *implRepository) UpsertSettings(ctx context.Context, opt repo.UpsertSettingsOptions) (model.Settings, error) {
	current, err := r.GetSettings(ctx, opt.UserID)
	if errors.Is(err, repo.ErrSettingsNotFound) {
		current = model.Settings{
			UserID:     opt.UserID,
			Voice:      model.DefaultVoice,
			VoiceSpeed: model.DefaultVoiceSpeed,
			Theme:      model.DefaultTheme,
		}
	} else if err != nil {
		return model.Settings{}, err
	}

	if opt.Patch.Voice != nil {
		current.Voice = *opt.Patch.Voice
	}
	if opt.Patch.VoiceSpeed != nil {
		current.VoiceSpeed = *opt.Patch.VoiceSpeed
	}
	if opt.Patch.Theme != nil {
		current.Theme = *opt.Patch.Theme
	}

	const query = `
		INSERT INTO settings (user_id, voice, voice_speed, theme)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			voice = excluded.voice,
			voice_speed = excluded.voice_speed,
			theme = excluded.theme`

	if _, err := r.db.ExecContext(ctx, query, current.UserID, current.Voice, current.VoiceSpeed, current.Theme); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSettings"), err)
		return model.Settings{}, err
	}
	return current, nil
}
