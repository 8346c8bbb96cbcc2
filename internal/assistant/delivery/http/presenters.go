package http

import (
	"voice-assistant-backend/internal/assistant"
	"voice-assistant-backend/internal/model"
)

// --- Request DTOs ---

// commandReq accepts user_id as either a string or a number; legacy voice
// clients send numeric IDs.
type commandReq struct {
	Command string `json:"command" binding:"required"`
	UserID  any    `json:"user_id"`
	Speak   bool   `json:"speak"`
}

func (r commandReq) scope() model.Scope {
	if r.UserID == nil {
		return model.Scope{UserID: "1"}
	}
	return model.NewScope(r.UserID)
}

func (r commandReq) toInput() assistant.CommandInput {
	return assistant.CommandInput{
		Text:  r.Command,
		Speak: r.Speak,
	}
}

// ---

type settingsReq struct {
	Voice      *string `json:"voice"       binding:"omitempty,min=1,max=64"`
	VoiceSpeed *int    `json:"voice_speed" binding:"omitempty,min=50,max=400"`
	Theme      *string `json:"theme"       binding:"omitempty,oneof=light dark"`
}

func (r settingsReq) toPatch() model.SettingsPatch {
	return model.SettingsPatch{
		Voice:      r.Voice,
		VoiceSpeed: r.VoiceSpeed,
		Theme:      r.Theme,
	}
}

// --- Response DTOs ---

type voiceResp struct {
	Transcript string                `json:"transcript"`
	Result     model.CommandResponse `json:"result"`
}

type historyResp struct {
	History []model.HistoryEntry `json:"history"`
}

type settingsResp struct {
	Settings model.Settings `json:"settings"`
}
