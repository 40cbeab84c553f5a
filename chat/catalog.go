package chat

import "github.com/onnwee/chatbot/command"

// Command identifiers understood by the bot, in catalog scan order.
const (
	Hello            command.ID = "Hello"
	Meat             command.ID = "Meat"
	Processing       command.ID = "Processing"
	Discord          command.ID = "Discord"
	Throne           command.ID = "Throne"
	Owlyfans         command.ID = "Owlyfans"
	HowToQuote       command.ID = "HowToQuote"
	Quote            command.ID = "Quote"
	Commands         command.ID = "Commands"
	Ram              command.ID = "Ram"
	Github           command.ID = "Github"
	Lurk             command.ID = "Lurk"
	Lurking          command.ID = "Lurking"
	Loork            command.ID = "Loork"
	Luwurk           command.ID = "Luwurk"
	DotFiles         command.ID = "DotFiles"
	NeoFetch         command.ID = "NeoFetch"
	Editor           command.ID = "Editor"
	Distro           command.ID = "Distro"
	Projects         command.ID = "Projects"
	Pronouns         command.ID = "Pronouns"
	Fimsh            command.ID = "Fimsh"
	Break            command.ID = "Break"
	Throbber         command.ID = "Throbber"
	VioletCrumble    command.ID = "VioletCrumble"
	SO               command.ID = "SO"
	ShoutOut         command.ID = "ShoutOut"
	QOD              command.ID = "QOD"
	QuestionOfTheDay command.ID = "QuestionOfTheDay"
	Theme            command.ID = "Theme"
	Bones            command.ID = "Bones"
	Train            command.ID = "Train"
	Bread            command.ID = "Bread"
	Rank             command.ID = "Rank"
	Ranks            command.ID = "Ranks"
	OwlBeCringe      command.ID = "OwlBeCringe"
	Holee            command.ID = "Holee"
	Spill            command.ID = "Spill"
	Heckies          command.ID = "Heckies"
)

var catalogOrder = []command.ID{
	Hello, Meat, Processing, Discord, Throne, Owlyfans, HowToQuote, Quote,
	Commands, Ram, Github, Lurk, Lurking, Loork, Luwurk, DotFiles, NeoFetch,
	Editor, Distro, Projects, Pronouns, Fimsh, Break, Throbber, VioletCrumble,
	SO, ShoutOut, QOD, QuestionOfTheDay, Theme, Bones, Train, Bread, Rank,
	Ranks, OwlBeCringe, Holee, Spill, Heckies,
}

// DefaultCatalog returns the bot's command catalog. "so" and "shoutout" are
// short enough to be near misses for unrelated words, so they are never
// suggested; a near miss of "lurk" is always taken as a lurk.
func DefaultCatalog() *command.Catalog {
	entries := make([]command.Entry, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		entries = append(entries, command.Entry{ID: id})
	}
	return command.MustCatalog(entries,
		command.WithIgnoredSuggestions(SO, ShoutOut),
		command.WithForcedAlias(Lurk, Lurk),
	)
}

// cannedReplies are commands answered with fixed text.
var cannedReplies = map[command.ID]string{
	Meat:          "Find out what happened to your meat today! https://youtu.be/7tScAyNaRdQ",
	Processing:    "Neat little programming program for prototyping, check it out: https://processing.org/",
	Discord:       "Join Owl's discord at: https://discord.gg/8pdfBzGbgB",
	Throne:        "Throne wishlist: https://throne.com/owlkaline",
	Owlyfans:      "To Support the Owl more, Support on OwlyFans: https://ko-fi.com/owlkaline",
	Github:        "Owl's github can be found at: https://github.com/Owlkaline",
	DotFiles:      "You can find Owl's linux dot files here: https://github.com/Owlkaline/dotfiles",
	Editor:        "I switch between Helix, Neovim and Zed currently, there is a redeem to make Owl use a new editor!",
	NeoFetch:      "The command you are looking for is !distro",
	Projects:      "Owl is working on a Rust library that allows you to talk to the twitch API: https://github.com/owlkaline/TwitchEventSub-rs",
	Pronouns:      "Owl's pronouns are She/Her, thanks!",
	Fimsh:         "owlkal1Fimsh",
	Break:         "Please break my chat bot, I'll thank you for it!",
	Throbber:      "Time for them blue pills owlkal1LHand owlkal1RHand",
	VioletCrumble: "owlkal1OC",
	Theme:         "Owl uses the Dracula theme! (https://draculatheme.com/)",
	Bones:         "IF YOURE NOT HAVING A GOOD TIME CRACK YOUR BONES ITS GOOD FOR YOU AND BONES ARE NOT REAL ANYWAY",
	Train:         "choo chooooo",
	Bread:         "\U0001F35E I knead your loaf.",
	OwlBeCringe:   "Owl's out of cringes, so you best go follow twitch.tv/bixiavt now!",
}
