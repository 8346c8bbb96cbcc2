package model

import "time"

// HistoryEntry is one persisted command/result pair.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Command   string    `json:"command"`
	Result    string    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// Settings are the per-user voice preferences.
type Settings struct {
	UserID     string `json:"user_id"`
	Voice      string `json:"voice"`
	VoiceSpeed int    `json:"voice_speed"`
	Theme      string `json:"theme"`
}

// SettingsPatch is a partial settings update; nil fields are left unchanged.
type SettingsPatch struct {
	Voice      *string `json:"voice"`
	VoiceSpeed *int    `json:"voice_speed"`
	Theme      *string `json:"theme"`
}

// Default settings applied when a user has none stored.
const (
	DefaultVoice      = "Daniel"
	DefaultVoiceSpeed = 180
	DefaultTheme      = "light"
)
