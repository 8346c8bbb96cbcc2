package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant-backend/internal/assistant"
	"voice-assistant-backend/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	ProcessCommand(c *gin.Context)
	ProcessVoice(c *gin.Context)
	History(c *gin.Context)
	GetSettings(c *gin.Context)
	UpdateSettings(c *gin.Context)
	VoiceSocket(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
