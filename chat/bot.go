package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	twitch "github.com/gempir/go-twitch-irc/v4"
	"github.com/google/uuid"

	"github.com/onnwee/chatbot/command"
	"github.com/onnwee/chatbot/config"
	"github.com/onnwee/chatbot/telemetry"
)

// Sender delivers replies to a channel. *twitch.Client satisfies it.
type Sender interface {
	Say(channel, text string)
	Reply(channel, parentMsgID, text string)
}

// Bot resolves chat lines and sends the replies.
type Bot struct {
	Resolver  *command.Resolver
	Responder *Responder
	Sender    Sender
	Prefix    string
}

// NewBot builds a Bot over the default catalog using cfg's prefix, thresholds and cooldown.
func NewBot(cfg *config.Config, sender Sender) *Bot {
	catalog := DefaultCatalog()
	responder := NewResponder(catalog)
	responder.CounterCooldown = cfg.CounterCooldown
	responder.QuestionOfTheDay = cfg.QuestionOfTheDay
	return &Bot{
		Resolver:  &command.Resolver{Catalog: catalog, Thresholds: cfg.Thresholds},
		Responder: responder,
		Sender:    sender,
		Prefix:    cfg.CommandPrefix,
	}
}

// Handle processes one chat line and returns the replies produced for it.
func (b *Bot) Handle(ctx context.Context, msg Message) []Reply {
	telemetry.Inc(telemetry.MessagesReceived)
	b.Responder.Observe(msg.User)

	line, ok := command.StripPrefix(msg.Text, b.Prefix)
	if !ok {
		replies := b.Responder.Passive(msg)
		for _, r := range replies {
			b.send(msg.Channel, r)
		}
		return replies
	}

	corr := msg.ID
	if corr == "" {
		corr = uuid.NewString()
	}
	ctx = telemetry.WithCorrelation(ctx, corr)
	ctx, span := telemetry.StartSpan(ctx, "chat", "chat.command")
	defer span.End()

	var res command.Result
	telemetry.TimeFunc(telemetry.ResolveDuration, func() {
		res = b.Resolver.Resolve(line)
	})
	telemetry.RecordResolution(res.Outcome.String())
	span.SetAttributes(telemetry.CommandAttrs(res.Command, res.Outcome.String(), string(res.Entry.ID), res.Distance)...)

	log := telemetry.LoggerWithCorr(ctx)
	log.Debug("chat command resolved",
		slog.String("component", "chat"),
		slog.String("user", msg.User),
		slog.String("token", res.Command),
		slog.String("outcome", res.Outcome.String()),
		slog.String("entry", string(res.Entry.ID)),
		slog.Int("distance", res.Distance))

	replies := append(b.Responder.ModCheck(msg), b.Responder.Respond(msg, res)...)
	for _, r := range replies {
		b.send(msg.Channel, r)
	}
	if len(replies) > 0 {
		log.Info("chat command answered",
			slog.String("component", "chat"),
			slog.String("user", msg.User),
			slog.String("entry", string(res.Entry.ID)),
			slog.Int("replies", len(replies)))
	}
	telemetry.SetSpanSuccess(span)
	return replies
}

// MaxMessageLength is the longest chat message Twitch accepts.
const MaxMessageLength = 500

func (b *Bot) send(channel string, r Reply) {
	if b.Sender == nil {
		return
	}
	if r.Text == "" || len(r.Text) > MaxMessageLength {
		telemetry.Inc(telemetry.RepliesFailed)
		slog.Warn("chat reply dropped", slog.Int("length", len(r.Text)), slog.String("component", "chat"))
		return
	}
	if r.ReplyTo != "" {
		b.Sender.Reply(channel, r.ReplyTo, r.Text)
	} else {
		b.Sender.Say(channel, r.Text)
	}
	telemetry.Inc(telemetry.RepliesSent)
}

// MessageFromIRC converts a go-twitch-irc private message. broadcaster is the
// login that always counts as the channel owner.
func MessageFromIRC(msg twitch.PrivateMessage, broadcaster string) Message {
	_, mod := msg.User.Badges["moderator"]
	_, owner := msg.User.Badges["broadcaster"]
	if msg.Tags["mod"] == "1" {
		mod = true
	}
	if broadcaster != "" && strings.EqualFold(msg.User.Name, broadcaster) {
		owner = true
	}
	return Message{
		ID:          msg.ID,
		Channel:     msg.Channel,
		User:        msg.User.Name,
		DisplayName: msg.User.DisplayName,
		Text:        msg.Message,
		Moderator:   mod,
		Broadcaster: owner,
	}
}

// StartChatBot connects to Twitch IRC, joins cfg.TwitchChannel and answers
// commands until ctx is cancelled.
func StartChatBot(ctx context.Context, cfg *config.Config) error {
	if err := cfg.ValidateChatReady(); err != nil {
		return err
	}
	client := twitch.NewClient(cfg.TwitchBotUsername, cfg.TwitchOAuthToken)
	bot := NewBot(cfg, client)

	// callbacks run on the client's reader goroutine, one line at a time,
	// which keeps replies in receipt order
	client.OnPrivateMessage(func(msg twitch.PrivateMessage) {
		bot.Handle(ctx, MessageFromIRC(msg, cfg.Broadcaster))
	})
	client.OnConnect(func() {
		telemetry.SetChatConnected(true)
		slog.Info("twitch chat connected", slog.String("channel", cfg.TwitchChannel), slog.String("component", "chat"))
	})

	// Handle context cancellation by closing the client
	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		client.Disconnect()
		close(done)
	}()

	client.Join(cfg.TwitchChannel)
	err := client.Connect()
	telemetry.SetChatConnected(false)
	if err != nil && !errors.Is(err, twitch.ErrClientDisconnected) {
		slog.Error("twitch chat connect error", slog.Any("err", err), slog.String("component", "chat"))
		return err
	}
	<-done
	return nil
}
