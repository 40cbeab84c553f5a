package chat

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/onnwee/chatbot/command"
)

// Message is a chat line as seen by the bot.
type Message struct {
	ID          string
	Channel     string
	User        string // login name
	DisplayName string
	Text        string
	Moderator   bool
	Broadcaster bool
}

func (m Message) name() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.User
}

// Reply is one outgoing chat message. ReplyTo threads it under a message id.
type Reply struct {
	Text    string
	ReplyTo string
}

// Responder produces replies for resolved commands. It keeps the in-memory
// counters and viewer points; both reset when the process restarts.
type Responder struct {
	Catalog          *command.Catalog
	CounterCooldown  time.Duration
	QuestionOfTheDay string
	// Now is the clock; defaults to time.Now.
	Now func() time.Time

	mu          sync.Mutex
	lastCounter time.Time
	holee       int
	heckies     int
	spilled     int
	points      map[string]int
}

// NewResponder returns a Responder with a 5s counter cooldown.
func NewResponder(catalog *command.Catalog) *Responder {
	return &Responder{Catalog: catalog, CounterCooldown: 5 * time.Second}
}

// Observe awards one point to the author of a chat line.
func (r *Responder) Observe(user string) {
	if user == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.points == nil {
		r.points = make(map[string]int)
	}
	r.points[strings.ToLower(user)]++
}

// Points returns the points recorded for user.
func (r *Responder) Points(user string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.points[strings.ToLower(user)]
}

// Respond returns the replies for res. NoMatch yields none.
func (r *Responder) Respond(msg Message, res command.Result) []Reply {
	switch res.Outcome {
	case command.Suggested:
		return []Reply{{Text: fmt.Sprintf("Did you mean to type the !%s command", res.Entry.Display)}}
	case command.Matched:
		return r.respondMatched(msg, res)
	default:
		return nil
	}
}

func (r *Responder) respondMatched(msg Message, res command.Result) []Reply {
	if text, ok := cannedReplies[res.Entry.ID]; ok {
		return []Reply{{Text: text}}
	}

	switch res.Entry.ID {
	case Hello:
		return say(fmt.Sprintf("Welcome to the stream %s! owlkal1LHand owlkal1Leye owlkal1Yap owlkal1Reye owlkal1RHand", msg.name()))
	case HowToQuote:
		return reply(msg, `Type "don't quote" to quote your previous message!`)
	case Quote:
		return reply(msg, `The quotes were cleared! Make your own quote by sending the quote in chat, then have your next message contain "don't quote me" to create a quote.`)
	case Commands:
		return say(r.commandList())
	case Ram:
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return say(fmt.Sprintf("Current Ram: %.1f/%.1f Mb in use by the bot", float64(ms.HeapAlloc)/1e6, float64(ms.Sys)/1e6))
	case Distro:
		return say(fmt.Sprintf("The bot is running on %s/%s", runtime.GOOS, runtime.GOARCH))
	case Lurk, Lurking, Loork, Luwurk:
		return reply(msg, fmt.Sprintf("Thanks for coming by, appreciate the lurk %s!", msg.name()))
	case SO, ShoutOut:
		if len(res.Params) == 0 || !(msg.Moderator || msg.Broadcaster) {
			return nil
		}
		target := strings.TrimPrefix(res.Params[0], "@")
		if target == "" {
			return nil
		}
		return say(fmt.Sprintf("%s is an awesome streamer, follow them at https://twitch.tv/%s", target, strings.ToLower(target)))
	case QOD, QuestionOfTheDay:
		if r.QuestionOfTheDay != "" {
			return say(r.QuestionOfTheDay)
		}
		return say("Question of the day, what a meme!")
	case Rank:
		n := r.Points(msg.User)
		return reply(msg, fmt.Sprintf("%s is a %s variety viewer (%dP)", msg.name(), RankFor(n), n))
	case Ranks:
		return reply(msg, "The available ranks are as follows: "+rankList())
	case Holee, Heckies, Spill:
		return r.bumpCounter(res)
	}
	return nil
}

// bumpCounter increments one of the shared-cooldown counters. Calls inside
// the cooldown window are dropped without a reply.
func (r *Responder) bumpCounter(res command.Result) []Reply {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.lastCounter.IsZero() && now.Sub(r.lastCounter) <= r.CounterCooldown {
		return nil
	}
	r.lastCounter = now

	switch res.Entry.ID {
	case Holee:
		r.holee++
		if len(res.Params) > 0 && strings.Contains(strings.ToLower(res.Params[0]), "holee") {
			r.holee++
		}
		return say(r.holyText())
	case Heckies:
		r.heckies++
		return say(r.heckiesText())
	default:
		r.spilled++
		return say(r.spilledText())
	}
}

// Passive answers a chat line that is not a command. Mentions of the
// counter words report the current count without changing it; the
// broadcaster's own lines never trigger them.
func (r *Responder) Passive(msg Message) []Reply {
	replies := r.ModCheck(msg)
	if msg.Broadcaster {
		return replies
	}
	text := strings.ToLower(msg.Text)

	r.mu.Lock()
	defer r.mu.Unlock()
	if strings.Contains(text, "holee") || strings.Contains(text, "holy") {
		replies = append(replies, say(r.holyText())...)
	}
	if strings.Contains(text, "spill") {
		replies = append(replies, say(r.spilledText())...)
	}
	if strings.Contains(text, "heckies") {
		replies = append(replies, say(r.heckiesText())...)
	}
	return replies
}

// ModCheck answers any line mentioning "modcheck", command or not.
func (r *Responder) ModCheck(msg Message) []Reply {
	if !strings.Contains(strings.ToLower(msg.Text), "modcheck") {
		return nil
	}
	return reply(msg, "Owlbat is here to mod!")
}

// counter texts; callers hold r.mu
func (r *Responder) holyText() string    { return fmt.Sprintf("Owl has said holy %d times!", r.holee) }
func (r *Responder) heckiesText() string { return fmt.Sprintf("Owl has said heckies %d times!", r.heckies) }
func (r *Responder) spilledText() string { return fmt.Sprintf("Owl has spilled %d drinks!", r.spilled) }

func (r *Responder) commandList() string {
	var b strings.Builder
	b.WriteString("The following commands exist:")
	if r.Catalog == nil {
		return b.String()
	}
	for _, e := range r.Catalog.Entries() {
		b.WriteString(" !")
		b.WriteString(e.Display)
	}
	return b.String()
}

func (r *Responder) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func say(text string) []Reply { return []Reply{{Text: text}} }

func reply(msg Message, text string) []Reply {
	return []Reply{{Text: text, ReplyTo: msg.ID}}
}
