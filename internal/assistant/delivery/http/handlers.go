package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"voice-assistant-backend/internal/model"
	"voice-assistant-backend/pkg/response"
)

// ProcessCommand godoc
// @Summary     Process a text command
// @Description Runs one assistant command for a user and returns the reply plus optional client action.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Command"
// @Success     200 {object} model.CommandResponse
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/command [POST]
func (h *handler) ProcessCommand(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	resp, err := h.uc.ProcessCommand(ctx, req.scope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessCommand: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(200, resp)
}

// ProcessVoice godoc
// @Summary     Process an uploaded voice command
// @Description Transcribes the uploaded audio and runs the recognized text through the command pipeline.
// @Tags        Assistant
// @Accept      multipart/form-data
// @Produce     json
// @Param       file    formData file   true  "Audio file"
// @Param       user_id formData string false "User ID (default 1)"
// @Param       speak   formData bool   false "Synthesize spoken reply"
// @Success     200 {object} voiceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/voice [POST]
func (h *handler) ProcessVoice(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processVoiceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ProcessVoice(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessVoice: %v", err)
		response.Error(c, err, nil)
		return
	}

	c.JSON(200, voiceResp{Transcript: out.Transcript, Result: out.Response})
}

// History godoc
// @Summary     Get command history
// @Description Returns the most recent persisted commands for a user, newest first.
// @Tags        Assistant
// @Produce     json
// @Param       user_id path  string true  "User ID"
// @Param       limit   query int    false "Max entries (default 10)"
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/history/{user_id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	sc := model.NewScope(c.Param("user_id"))

	entries, err := h.uc.History(ctx, sc, limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.InternalError(c, err)
		return
	}
	if entries == nil {
		entries = []model.HistoryEntry{}
	}

	response.OK(c, historyResp{History: entries})
}

// GetSettings godoc
// @Summary     Get user settings
// @Description Returns the user's voice preferences, or the defaults when none are stored.
// @Tags        Assistant
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} settingsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/settings/{user_id} [GET]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	sc := model.NewScope(c.Param("user_id"))
	s, err := h.uc.GetSettings(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSettings: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, settingsResp{Settings: s})
}

// UpdateSettings godoc
// @Summary     Update user settings
// @Description Applies a partial update to the user's voice preferences; omitted fields keep their value.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       user_id path string      true "User ID"
// @Param       body    body settingsReq true "Fields to update"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/settings/{user_id} [PUT]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSettingsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.NewScope(c.Param("user_id"))
	s, err := h.uc.UpdateSettings(ctx, sc, req.toPatch())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSettings: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, settingsResp{Settings: s})
}
