package chat

import (
	"strings"
	"testing"

	"github.com/onnwee/chatbot/command"
)

func TestDefaultCatalogResolvesEveryEntry(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != len(catalogOrder) {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(catalogOrder))
	}
	for _, e := range c.Entries() {
		for _, typed := range []string{e.Name, strings.ToUpper(e.Name), string(e.ID)} {
			res := command.Resolve(typed, c)
			if res.Outcome != command.Matched || res.Entry.ID != e.ID || res.Distance != 0 {
				t.Errorf("Resolve(%q) = %v %q at %d, want exact %q", typed, res.Outcome, res.Entry.ID, res.Distance, e.ID)
			}
		}
	}
}

func TestDefaultCatalogNearMisses(t *testing.T) {
	c := DefaultCatalog()
	tests := []struct {
		typed   string
		outcome command.Outcome
		id      command.ID
	}{
		{"discorrd", command.Matched, Discord},
		{"qotd", command.Matched, QOD},
		{"commnds", command.Matched, Commands},
		{"lurkk", command.Matched, Lurk},
		{"showtout", command.Matched, ShoutOut},
		{"discrod", command.Suggested, Discord},
		{"helol", command.Suggested, Hello},
		{"owlcringe", command.Suggested, OwlBeCringe},
		{"loorking", command.Suggested, Lurking},
		// rank and ranks are both two edits away; the first in order wins
		{"ranker", command.Suggested, Rank},
		// near misses of lurk are always lurks
		{"lirkk", command.Matched, Lurk},
		{"lurkxx", command.Matched, Lurk},
		// so/shoutout are never suggested
		{"xy", command.NoMatch, ""},
		{"sxx", command.NoMatch, ""},
		{"zzzzzz", command.NoMatch, ""},
	}
	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			res := command.Resolve(tt.typed, c)
			if res.Outcome != tt.outcome || res.Entry.ID != tt.id {
				t.Errorf("Resolve(%q) = %v %q, want %v %q", tt.typed, res.Outcome, res.Entry.ID, tt.outcome, tt.id)
			}
		})
	}
}

func TestCannedRepliesAreCatalogEntries(t *testing.T) {
	c := DefaultCatalog()
	for id := range cannedReplies {
		if _, ok := c.Lookup(id); !ok {
			t.Errorf("canned reply for %q which is not in the catalog", id)
		}
	}
}

func TestRankFor(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{0, "common"},
		{4, "common"},
		{5, "uncommon"},
		{89, "Bin Chicken"},
		{90, "Dirty Bin Chicken"},
		{399, "Nean"},
		{400, "HOLEE"},
		{10000, "HOLEE"},
		{-3, "common"},
	}
	for _, tt := range tests {
		if got := RankFor(tt.points); got != tt.want {
			t.Errorf("RankFor(%d) = %q, want %q", tt.points, got, tt.want)
		}
	}
	if list := rankList(); !strings.HasPrefix(list, "common, uncommon") || !strings.HasSuffix(list, "HOLEE") {
		t.Errorf("rankList() = %q", list)
	}
}
