// Command chatbot is the main entrypoint for the Twitch chat command bot.
// It:
//   - Loads configuration and initializes structured logging.
//   - Connects to Twitch chat and answers "!" commands, tolerating typos and
//     suggesting the nearest command for near misses.
//   - Exposes a minimal HTTP server with /healthz, /metrics, /commands and /resolve.
//
// Shutdown is graceful on SIGINT/SIGTERM.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/onnwee/chatbot/chat"
	"github.com/onnwee/chatbot/command"
	"github.com/onnwee/chatbot/config"
	"github.com/onnwee/chatbot/server"
	"github.com/onnwee/chatbot/telemetry"
)

func main() {
	// Load .env file if present (local dev convenience only; production relies on real env)
	_ = godotenv.Load(".env")

	// Configure logging (level + format). Defaults: level=info, format=text.
	lvl := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	case "info", "":
		// keep default
	default:
		tmp := slog.New(slog.NewTextHandler(os.Stdout, nil))
		tmp.Warn("unknown LOG_LEVEL, using info", slog.String("value", os.Getenv("LOG_LEVEL")))
	}
	format := strings.ToLower(os.Getenv("LOG_FORMAT")) // text | json
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	}
	slog.SetDefault(slog.New(handler))
	slog.Info("logger initialized", slog.String("level", lvl.String()), slog.String("format", map[bool]string{true: "json", false: "text"}[format == "json"]))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	telemetry.Init()

	// Tracing is optional; requires OTEL_EXPORTER_OTLP_ENDPOINT
	shutdown, err := telemetry.InitTracing("chatbot", "1.0.0")
	if err != nil {
		slog.Error("tracing initialization failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer shutdown()
	slog.Info("tracing configured", slog.Bool("enabled", telemetry.IsTracingEnabled()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cfg.ValidateChatReady(); err == nil {
		go func() {
			if err := chat.StartChatBot(ctx, cfg); err != nil {
				slog.Error("chat bot exited with error", slog.Any("err", err))
			}
		}()
	} else {
		slog.Info("chat bot disabled (missing twitch creds)", slog.Any("reason", err))
	}

	resolver := &command.Resolver{Catalog: chat.DefaultCatalog(), Thresholds: cfg.Thresholds}
	go func() {
		if err := server.Start(ctx, resolver, cfg.HTTPAddr); err != nil {
			slog.Error("http server exited with error", slog.Any("err", err))
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}
