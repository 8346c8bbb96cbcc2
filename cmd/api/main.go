package main

import (
	"context"
	"fmt"
	"time"

	"voice-assistant-backend/config"
	_ "voice-assistant-backend/docs" // Swagger docs
	"voice-assistant-backend/internal/assistant"
	assistantHTTP "voice-assistant-backend/internal/assistant/delivery/http"
	"voice-assistant-backend/internal/assistant/repository"
	"voice-assistant-backend/internal/assistant/repository/sqlite"
	"voice-assistant-backend/internal/assistant/usecase"
	"voice-assistant-backend/internal/httpserver"
	"voice-assistant-backend/internal/intent"
	"voice-assistant-backend/internal/middleware"
	"voice-assistant-backend/internal/session"
	"voice-assistant-backend/pkg/gemini"
	"voice-assistant-backend/pkg/log"
	"voice-assistant-backend/pkg/stt"
	"voice-assistant-backend/pkg/tts"
)

// transportRateLimitPerMin throttles a single source IP before requests
// reach the per-user command budget.
const transportRateLimitPerMin = 120

// @title       Ballsy Voice Assistant API
// @description Voice/text personal assistant backend with intent classification, per-user sessions and generative fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Ballsy Voice Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Persistence (best-effort: the engine runs without it)
	var repo repository.Repository
	db, err := sqlite.OpenDB(cfg.Database.Path)
	if err != nil {
		logger.Warnf(ctx, "Database not available, history and settings disabled: %v", err)
	} else {
		defer db.Close()
		repo = sqlite.New(db, logger)
		logger.Infof(ctx, "SQLite database ready at %s", cfg.Database.Path)
	}

	// 4. Generative collaborator
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)
	geminiClient.SetFallbackModels(cfg.Gemini.FallbackModels)
	geminiClient.SetTimeout(cfg.Gemini.Timeout)

	// 5. Speech services (optional)
	var (
		synthesizer assistant.Synthesizer
		transcriber assistant.Transcriber
	)
	if cfg.Google.APIKey != "" {
		ttsClient, err := tts.NewClient(ctx, tts.Config{
			APIKey:       cfg.Google.APIKey,
			Voice:        cfg.Google.TTSVoice,
			LanguageCode: cfg.Google.LanguageCode,
			SpeakingRate: cfg.Google.TTSRate,
		})
		if err != nil {
			logger.Warnf(ctx, "Text-to-Speech not available: %v", err)
		} else {
			synthesizer = ttsClient
		}

		sttClient, err := stt.NewClient(ctx, stt.Config{
			APIKey:       cfg.Google.APIKey,
			LanguageCode: cfg.Google.LanguageCode,
		})
		if err != nil {
			logger.Warnf(ctx, "Speech-to-Text not available: %v", err)
		} else {
			transcriber = sttClient
		}
	} else {
		logger.Warn(ctx, "GOOGLE_API_KEY not set, voice features disabled")
	}

	// 6. Session engine
	limiter := session.NewLimiter(session.LimiterConfig{
		Limit:    cfg.Assistant.MaxRequestsPerMinute,
		Window:   time.Duration(cfg.Assistant.RateLimitWindowSeconds) * time.Second,
		Burst:    cfg.Assistant.RateLimitBurst,
		MaxUsers: cfg.Assistant.MaxSessions,
	})
	store := session.NewStore(session.StoreConfig{
		MaxSessions: cfg.Assistant.MaxSessions,
		Timeout:     time.Duration(cfg.Assistant.SessionTimeoutSeconds) * time.Second,
		OnEvict:     limiter.Forget,
	})

	// 7. Assistant domain
	assistantUC := usecase.New(
		logger,
		usecase.Config{MaxCommandLength: cfg.Assistant.MaxCommandLength},
		geminiClient,
		synthesizer,
		transcriber,
		repo,
		store,
		limiter,
		intent.New(),
	)
	assistantHandler := assistantHTTP.New(logger, assistantUC)

	// 8. HTTP Server
	mw := middleware.New(logger, cfg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		Middleware:         mw,
		TransportRateLimit: transportRateLimitPerMin,
		AssistantHandler:   assistantHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
