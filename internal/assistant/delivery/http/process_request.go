package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"voice-assistant-backend/internal/assistant"
	"voice-assistant-backend/internal/model"
)

// maxAudioBytes bounds uploaded voice files (10 MB).
const maxAudioBytes = 10 << 20

// processCommandReq binds and validates the command request body.
func (h *handler) processCommandReq(c *gin.Context) (commandReq, error) {
	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processVoiceReq reads the uploaded audio file plus its form fields.
func (h *handler) processVoiceReq(c *gin.Context) (model.Scope, assistant.VoiceInput, error) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		return model.Scope{}, assistant.VoiceInput{}, err
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		return model.Scope{}, assistant.VoiceInput{}, err
	}

	userID := c.DefaultPostForm("user_id", "1")
	speak := c.PostForm("speak") == "true"
	return model.NewScope(userID), assistant.VoiceInput{Audio: audio, Speak: speak}, nil
}

// processSettingsReq binds the partial settings update body.
func (h *handler) processSettingsReq(c *gin.Context) (settingsReq, error) {
	var req settingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
