package chat

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/onnwee/chatbot/command"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestResponder() (*Responder, *command.Resolver, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 10, 15, 14, 30, 0, 0, time.UTC)}
	catalog := DefaultCatalog()
	r := NewResponder(catalog)
	r.Now = clock.now
	return r, command.NewResolver(catalog), clock
}

func TestRespondNoMatchIsSilent(t *testing.T) {
	r, res, _ := newTestResponder()
	for _, line := range []string{"", "zzzzzz", "héllo", "xy"} {
		if got := r.Respond(Message{User: "viewer"}, res.Resolve(line)); len(got) != 0 {
			t.Errorf("Respond(%q) = %+v, want nothing", line, got)
		}
	}
}

func TestRespondSuggestion(t *testing.T) {
	r, res, _ := newTestResponder()
	got := r.Respond(Message{User: "viewer"}, res.Resolve("discrod"))
	if len(got) != 1 || got[0].Text != "Did you mean to type the !Discord command" {
		t.Errorf("Respond(discrod) = %+v", got)
	}
}

func TestRespondCanned(t *testing.T) {
	r, res, _ := newTestResponder()
	got := r.Respond(Message{User: "viewer"}, res.Resolve("THEME"))
	if len(got) != 1 || got[0].Text != cannedReplies[Theme] || got[0].ReplyTo != "" {
		t.Errorf("Respond(THEME) = %+v", got)
	}
}

func TestRespondGreetingsUseDisplayName(t *testing.T) {
	r, res, _ := newTestResponder()
	msg := Message{ID: "m1", User: "night_owl", DisplayName: "Night_Owl"}

	got := r.Respond(msg, res.Resolve("hello"))
	if len(got) != 1 || !strings.Contains(got[0].Text, "Welcome to the stream Night_Owl!") {
		t.Errorf("hello reply = %+v", got)
	}

	for _, typed := range []string{"lurk", "lurking", "loork", "luwurk", "lirkk"} {
		got := r.Respond(msg, res.Resolve(typed))
		if len(got) != 1 || got[0].Text != "Thanks for coming by, appreciate the lurk Night_Owl!" || got[0].ReplyTo != "m1" {
			t.Errorf("%s reply = %+v", typed, got)
		}
	}
}

func TestRespondShoutOut(t *testing.T) {
	r, res, _ := newTestResponder()
	tests := []struct {
		name string
		msg  Message
		line string
		want string
	}{
		{"moderator", Message{User: "mod", Moderator: true}, "so @CoolStreamer", "CoolStreamer is an awesome streamer, follow them at https://twitch.tv/coolstreamer"},
		{"broadcaster", Message{User: "owl", Broadcaster: true}, "shoutout friend extra", "friend is an awesome streamer, follow them at https://twitch.tv/friend"},
		{"viewer", Message{User: "viewer"}, "so CoolStreamer", ""},
		{"no target", Message{User: "mod", Moderator: true}, "so", ""},
		{"bare at", Message{User: "mod", Moderator: true}, "so @", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Respond(tt.msg, res.Resolve(tt.line))
			if tt.want == "" {
				if len(got) != 0 {
					t.Errorf("expected no reply, got %+v", got)
				}
				return
			}
			if len(got) != 1 || got[0].Text != tt.want {
				t.Errorf("reply = %+v, want %q", got, tt.want)
			}
		})
	}
}

func TestRespondQuestionOfTheDay(t *testing.T) {
	r, res, _ := newTestResponder()
	for _, typed := range []string{"qod", "questionoftheday"} {
		got := r.Respond(Message{}, res.Resolve(typed))
		if len(got) != 1 || got[0].Text != "Question of the day, what a meme!" {
			t.Errorf("%s fallback = %+v", typed, got)
		}
	}
	r.QuestionOfTheDay = "What is your favourite flower?"
	got := r.Respond(Message{}, res.Resolve("qod"))
	if len(got) != 1 || got[0].Text != "What is your favourite flower?" {
		t.Errorf("configured qod = %+v", got)
	}
}

func TestRespondCommandsListsCatalog(t *testing.T) {
	r, res, _ := newTestResponder()
	got := r.Respond(Message{}, res.Resolve("commands"))
	if len(got) != 1 {
		t.Fatalf("commands reply = %+v", got)
	}
	for _, e := range r.Catalog.Entries() {
		if !strings.Contains(got[0].Text, "!"+e.Display) {
			t.Errorf("command list missing !%s: %q", e.Display, got[0].Text)
		}
	}
}

func TestRespondCountersCooldown(t *testing.T) {
	r, res, clock := newTestResponder()
	msg := Message{User: "viewer"}

	got := r.Respond(msg, res.Resolve("holee"))
	if len(got) != 1 || got[0].Text != "Owl has said holy 1 times!" {
		t.Fatalf("first holee = %+v", got)
	}

	// cooldown is shared across all counters
	clock.advance(2 * time.Second)
	if got := r.Respond(msg, res.Resolve("spill")); len(got) != 0 {
		t.Errorf("spill inside cooldown = %+v, want nothing", got)
	}

	clock.advance(4 * time.Second)
	got = r.Respond(msg, res.Resolve("spill"))
	if len(got) != 1 || got[0].Text != "Owl has spilled 1 drinks!" {
		t.Errorf("spill after cooldown = %+v", got)
	}

	clock.advance(6 * time.Second)
	got = r.Respond(msg, res.Resolve("holee HOLEE!!"))
	if len(got) != 1 || got[0].Text != "Owl has said holy 3 times!" {
		t.Errorf("double holee = %+v", got)
	}

	clock.advance(6 * time.Second)
	got = r.Respond(msg, res.Resolve("heckies"))
	if len(got) != 1 || got[0].Text != "Owl has said heckies 1 times!" {
		t.Errorf("heckies = %+v", got)
	}
}

func TestRespondRank(t *testing.T) {
	r, res, _ := newTestResponder()
	msg := Message{ID: "m9", User: "Chatter"}
	for i := 0; i < 12; i++ {
		r.Observe("chatter")
	}
	got := r.Respond(msg, res.Resolve("rank"))
	if len(got) != 1 || got[0].Text != "Chatter is a carnivorous garden variety viewer (12P)" || got[0].ReplyTo != "m9" {
		t.Errorf("rank reply = %+v", got)
	}

	got = r.Respond(msg, res.Resolve("ranks"))
	if len(got) != 1 || !strings.HasPrefix(got[0].Text, "The available ranks are as follows: common") {
		t.Errorf("ranks reply = %+v", got)
	}
}

func TestRespondEveryMatchedEntry(t *testing.T) {
	r, res, _ := newTestResponder()
	msg := Message{ID: "m1", User: "owl", Moderator: true, Broadcaster: true}
	for _, e := range r.Catalog.Entries() {
		got := r.Respond(msg, res.Resolve(e.Name+" someone"))
		// counters share a cooldown, so only the first of them answers here
		if len(got) == 0 && e.ID != Heckies && e.ID != Spill {
			t.Errorf("no reply for %q", e.ID)
		}
		for _, rep := range got {
			if rep.Text == "" {
				t.Errorf("empty reply text for %q", e.ID)
			}
		}
	}
}

func TestPassiveCounterMentions(t *testing.T) {
	r, res, _ := newTestResponder()
	r.Respond(Message{User: "viewer"}, res.Resolve("spill"))

	tests := []struct {
		text string
		want []string
	}{
		{"just vibing", nil},
		{"HOLY moly", []string{"Owl has said holy 0 times!"}},
		{"did owl spill again", []string{"Owl has spilled 1 drinks!"}},
		{"heckies, holee and a spill", []string{"Owl has said holy 0 times!", "Owl has spilled 1 drinks!", "Owl has said heckies 0 times!"}},
	}
	for _, tt := range tests {
		got := r.Passive(Message{ID: "p1", User: "viewer", Text: tt.text})
		var texts []string
		for _, rep := range got {
			texts = append(texts, rep.Text)
		}
		if !reflect.DeepEqual(texts, tt.want) {
			t.Errorf("Passive(%q) = %q, want %q", tt.text, texts, tt.want)
		}
	}

	// mentions report, they never count
	if got := r.Passive(Message{User: "viewer", Text: "spill spill"}); len(got) != 1 || got[0].Text != "Owl has spilled 1 drinks!" {
		t.Errorf("repeated mention = %+v", got)
	}
}

func TestPassiveSkipsBroadcaster(t *testing.T) {
	r, _, _ := newTestResponder()
	if got := r.Passive(Message{User: "owlkalinevt", Broadcaster: true, Text: "holy heckies"}); len(got) != 0 {
		t.Errorf("broadcaster line answered: %+v", got)
	}
	got := r.Passive(Message{ID: "b1", User: "owlkalinevt", Broadcaster: true, Text: "modcheck"})
	if len(got) != 1 || got[0].Text != "Owlbat is here to mod!" || got[0].ReplyTo != "b1" {
		t.Errorf("broadcaster modcheck = %+v", got)
	}
}

func TestModCheck(t *testing.T) {
	r, _, _ := newTestResponder()
	got := r.ModCheck(Message{ID: "m9", User: "viewer", Text: "is anyone here? ModCheck"})
	if len(got) != 1 || got[0].Text != "Owlbat is here to mod!" || got[0].ReplyTo != "m9" {
		t.Errorf("ModCheck = %+v", got)
	}
	if got := r.ModCheck(Message{User: "viewer", Text: "mods?"}); got != nil {
		t.Errorf("ModCheck(mods?) = %+v, want nil", got)
	}
}
