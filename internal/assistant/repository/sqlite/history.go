package sqlite

import (
	"context"
	"time"

	repo "voice-assistant-backend/internal/assistant/repository"
	"voice-assistant-backend/internal/model"
)

// AppendHistory inserts one command/result pair.
func (r *implRepository) AppendHistory(ctx context.Context, opt repo.AppendHistoryOptions) error {
	const query = `
		INSERT INTO command_history (user_id, command, result)
		VALUES (?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.Command, opt.Result); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendHistory"), err)
		return err
	}
	return nil
}

// ListHistory returns the newest entries for a user, most recent first.
func (r *implRepository) ListHistory(ctx context.Context, opt repo.ListHistoryOptions) ([]model.HistoryEntry, error) {
	const query = `
		SELECT id, user_id, command, COALESCE(result, ''), timestamp
		FROM command_history
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListHistory"), err)
		return nil, err
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var (
			e  model.HistoryEntry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Command, &e.Result, &ts); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ListHistory"), err)
			return nil, err
		}
		e.Timestamp = parseTimestamp(ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// parseTimestamp decodes the TEXT form CURRENT_TIMESTAMP produces. SQLite
// stores it as UTC without a zone marker.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
