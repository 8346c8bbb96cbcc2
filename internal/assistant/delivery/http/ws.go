package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"voice-assistant-backend/internal/assistant"
	"voice-assistant-backend/internal/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The voice frontend is served from other origins in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsInbound is one client frame. Command and Status are mutually exclusive;
// anything else is reported back as an error frame.
type wsInbound struct {
	Command *string `json:"command"`
	Status  string  `json:"status"`
}

// VoiceSocket godoc
// @Summary     Real-time voice command channel
// @Description Upgrades to a WebSocket carrying JSON frames; each command frame gets a command_response frame back.
// @Tags        Assistant
// @Param       client_id path string true "Client ID"
// @Router      /ws/voice/{client_id} [GET]
func (h *handler) VoiceSocket(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.NewScope(c.Param("client_id"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(ctx, "ws upgrade for client %s: %v", sc.UserID, err)
		return
	}
	defer conn.Close()
	h.l.Infof(ctx, "client %s connected", sc.UserID)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			h.l.Infof(ctx, "client %s disconnected: %v", sc.UserID, err)
			return
		}

		var in wsInbound
		if err := json.Unmarshal(raw, &in); err != nil {
			h.writeFrame(ctx, conn, gin.H{"type": "error", "message": "Unknown message format"})
			continue
		}

		switch {
		case in.Command != nil:
			resp, err := h.uc.ProcessCommand(ctx, sc, assistant.CommandInput{Text: *in.Command})
			if err != nil {
				h.l.Errorf(ctx, "uc.ProcessCommand over ws: %v", err)
				h.writeFrame(ctx, conn, gin.H{"type": "error", "message": "Command processing failed"})
				continue
			}
			h.writeFrame(ctx, conn, gin.H{"type": "command_response", "data": resp})

		case in.Status == "listening":
			h.writeFrame(ctx, conn, gin.H{"type": "status_update", "status": "ready"})

		default:
			h.writeFrame(ctx, conn, gin.H{"type": "error", "message": "Unknown message format"})
		}
	}
}

func (h *handler) writeFrame(ctx context.Context, conn *websocket.Conn, frame gin.H) {
	if err := conn.WriteJSON(frame); err != nil {
		h.l.Errorf(ctx, "ws write: %v", err)
	}
}
