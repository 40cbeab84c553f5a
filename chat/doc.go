// Package chat contains the Twitch chat bot that answers streamer commands.
//
// The bot joins TWITCH_CHANNEL over IRC, treats every line starting with the
// command prefix (default "!") as a command attempt, and resolves it with the
// command package against DefaultCatalog. Matched commands are answered by the
// Responder; near misses get a "did you mean" reply; everything else is
// ignored. Lines are handled in the order the IRC client delivers them.
//
// Credentials: the IRC client requires a bot username and an OAuth token with
// chat:read/chat:edit scopes (TWITCH_BOT_USERNAME, TWITCH_OAUTH_TOKEN).
package chat
