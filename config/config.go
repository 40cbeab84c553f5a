// Package config loads environment variables and provides a typed Config used across the bot.
// It applies sensible defaults so the binary can run locally with minimal setup.
// For required credentials (Twitch chat), use ValidateChatReady.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/onnwee/chatbot/command"
)

// DefaultCommandPrefix marks a chat line as a command attempt.
const DefaultCommandPrefix = "!"

type Config struct {
	// Twitch
	TwitchChannel     string
	TwitchBotUsername string
	TwitchOAuthToken  string
	// Broadcaster may always run moderator-only commands. Defaults to TwitchChannel.
	Broadcaster string

	// Commands
	CommandPrefix   string
	Thresholds      command.Thresholds
	CounterCooldown time.Duration
	// QuestionOfTheDay answers !qod; empty uses the built-in fallback.
	QuestionOfTheDay string

	// HTTP
	HTTPAddr string
}

// Load reads environment variables and applies defaults. It doesn't fail if Twitch creds are missing;
// use ValidateChatReady() when you require a chat connection. Malformed numeric or duration values are errors.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.TwitchChannel = os.Getenv("TWITCH_CHANNEL")
	cfg.TwitchBotUsername = os.Getenv("TWITCH_BOT_USERNAME")
	cfg.TwitchOAuthToken = os.Getenv("TWITCH_OAUTH_TOKEN")
	cfg.Broadcaster = os.Getenv("TWITCH_BROADCASTER")
	if cfg.Broadcaster == "" {
		cfg.Broadcaster = cfg.TwitchChannel
	}

	// Commands
	if v, ok := os.LookupEnv("CHAT_COMMAND_PREFIX"); ok {
		cfg.CommandPrefix = v
	} else {
		cfg.CommandPrefix = DefaultCommandPrefix
	}

	cfg.CounterCooldown = 5 * time.Second
	if v := os.Getenv("CHAT_COUNTER_COOLDOWN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CHAT_COUNTER_COOLDOWN (duration): %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid CHAT_COUNTER_COOLDOWN: negative duration %s", d)
		}
		cfg.CounterCooldown = d
	}

	cfg.QuestionOfTheDay = os.Getenv("CHAT_QOD")

	cfg.Thresholds = command.DefaultThresholds()
	var err error
	if cfg.Thresholds.Match, err = envInt("COMMAND_MATCH_DISTANCE", cfg.Thresholds.Match); err != nil {
		return nil, err
	}
	if cfg.Thresholds.Suggest, err = envInt("COMMAND_SUGGEST_DISTANCE", cfg.Thresholds.Suggest); err != nil {
		return nil, err
	}
	if cfg.Thresholds.Cap, err = envInt("COMMAND_DISTANCE_CAP", cfg.Thresholds.Cap); err != nil {
		return nil, err
	}
	if cfg.Thresholds == (command.Thresholds{}) {
		// the resolver reads an all-zero value as "use the defaults"
		return nil, fmt.Errorf("invalid COMMAND_* thresholds: match, suggest and cap are all 0; set COMMAND_SUGGEST_DISTANCE=1 for exact-only matching")
	}
	if th := cfg.Thresholds; th.Cap > 0 && th.Cap < th.MinCap() {
		return nil, fmt.Errorf("invalid COMMAND_DISTANCE_CAP: %d is below %d and would turn unrelated words into matches", th.Cap, th.MinCap())
	}
	if cfg.Thresholds.Suggest <= cfg.Thresholds.Match+1 {
		slog.Warn("command suggestions disabled by thresholds",
			slog.Int("match", cfg.Thresholds.Match), slog.Int("suggest", cfg.Thresholds.Suggest))
	}

	// HTTP
	cfg.HTTPAddr = os.Getenv("HTTP_ADDR")
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	return cfg, nil
}

// ValidateChatReady checks required fields when the chat bot is enabled.
func (c *Config) ValidateChatReady() error {
	if c.TwitchChannel == "" || c.TwitchBotUsername == "" || c.TwitchOAuthToken == "" {
		return fmt.Errorf("missing twitch env: require TWITCH_CHANNEL, TWITCH_BOT_USERNAME, TWITCH_OAUTH_TOKEN")
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s (integer): %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s: must be >= 0, got %d", key, n)
	}
	return n, nil
}
