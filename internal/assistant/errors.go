package assistant

import "errors"

var (
	ErrHistoryUnavailable  = errors.New("command history unavailable")
	ErrSettingsUnavailable = errors.New("settings unavailable")
	ErrEmptyAudio          = errors.New("empty audio payload")
)
