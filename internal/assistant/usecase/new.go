package usecase

import (
	"time"

	"voice-assistant-backend/internal/assistant"
	"voice-assistant-backend/internal/assistant/repository"
	"voice-assistant-backend/internal/intent"
	"voice-assistant-backend/internal/session"
	"voice-assistant-backend/pkg/log"
)

// Config holds the per-command knobs the engine enforces itself.
type Config struct {
	MaxCommandLength int
}

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l          log.Logger
	cfg        Config
	llm        assistant.Responder
	tts        assistant.Synthesizer
	stt        assistant.Transcriber
	repo       repository.Repository
	store      *session.Store
	limiter    *session.Limiter
	classifier *intent.Classifier

	// clock is overridden in tests.
	clock func() time.Time
}

// New creates a new assistant UseCase implementation. tts and stt may be
// nil when the corresponding Google service is not configured; voice
// features then degrade gracefully.
func New(
	l log.Logger,
	cfg Config,
	llm assistant.Responder,
	tts assistant.Synthesizer,
	stt assistant.Transcriber,
	repo repository.Repository,
	store *session.Store,
	limiter *session.Limiter,
	classifier *intent.Classifier,
) *implUseCase {
	if cfg.MaxCommandLength <= 0 {
		cfg.MaxCommandLength = defaultMaxCommandLength
	}
	return &implUseCase{
		l:          l,
		cfg:        cfg,
		llm:        llm,
		tts:        tts,
		stt:        stt,
		repo:       repo,
		store:      store,
		limiter:    limiter,
		classifier: classifier,
		clock:      time.Now,
	}
}
