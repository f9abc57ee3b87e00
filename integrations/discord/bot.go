package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DefaultIntents is used by NewBot: every unprivileged intent plus message
// content, which command-style extensions need.
const DefaultIntents = discordgo.IntentsAllWithoutPrivileged | discordgo.IntentMessageContent

// Bot represents one Discord gateway session bound to a token.
// Shards of the same application are sibling Bots created with Shard.
type Bot struct {
	token      string
	appID      string
	session    *discordgo.Session
	shardID    int
	shardCount int
}

// NewBot creates a Bot bound to the given Discord bot token. No network
// activity happens until Open or a REST call.
func NewBot(token, appID string) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = DefaultIntents
	return &Bot{
		token:      token,
		appID:      appID,
		session:    session,
		shardCount: 1,
	}, nil
}

// Token returns the raw bot token.
func (b *Bot) Token() string { return b.token }

// AppID returns the application ID.
func (b *Bot) AppID() string { return b.appID }

// Session returns the underlying discordgo session.
func (b *Bot) Session() *discordgo.Session { return b.session }

// ShardID returns the shard this session identifies as.
func (b *Bot) ShardID() int { return b.shardID }

// ShardCount returns the total number of shards of the application.
func (b *Bot) ShardCount() int { return b.shardCount }

// SetIntents replaces the gateway intents sent on identify.
func (b *Bot) SetIntents(intents discordgo.Intent) {
	b.session.Identify.Intents = intents
}

// SetSyncEvents makes discordgo call handlers in the reading goroutine
// instead of one goroutine per event.
func (b *Bot) SetSyncEvents(sync bool) {
	b.session.SyncEvents = sync
}

// Shard returns a sibling Bot identifying as shard id of count, with the
// same token, application, intents and event mode. When id is b's own shard,
// b itself is updated and returned.
func (b *Bot) Shard(id, count int) (*Bot, error) {
	if count < 1 || id < 0 || id >= count {
		return nil, fmt.Errorf("invalid shard %d of %d", id, count)
	}
	if id == b.shardID && count == b.shardCount {
		return b, nil
	}

	sibling := b
	if id != b.shardID {
		var err error
		sibling, err = NewBot(b.token, b.appID)
		if err != nil {
			return nil, err
		}
		sibling.SetIntents(b.session.Identify.Intents)
		sibling.SetSyncEvents(b.session.SyncEvents)
	}
	sibling.shardID = id
	sibling.shardCount = count
	sibling.session.ShardID = id
	sibling.session.ShardCount = count
	return sibling, nil
}

// OnEvent installs fn as a catch-all handler: discordgo calls it with every
// typed event and, afterwards, with the raw *discordgo.Event.
// The returned func removes the handler.
func (b *Bot) OnEvent(fn func(s *discordgo.Session, ev interface{})) func() {
	return b.session.AddHandler(fn)
}

// Open connects the gateway websocket.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway shard %d/%d: %w", b.shardID, b.shardCount, err)
	}
	return nil
}

// Close disconnects the gateway websocket.
func (b *Bot) Close() error {
	return b.session.Close()
}

// BotUser returns the bot's own user information (verifies token).
func (b *Bot) BotUser() (*discordgo.User, error) {
	return b.session.User("@me")
}

// CurrentApplication fetches the application owning the token.
func (b *Bot) CurrentApplication() (*discordgo.Application, error) {
	app, err := b.session.Application("@me")
	if err != nil {
		return nil, fmt.Errorf("fetch current application: %w", err)
	}
	return app, nil
}

// RecommendedShards asks the gateway how many shards the application should run.
func (b *Bot) RecommendedShards() (int, error) {
	resp, err := b.session.GatewayBot()
	if err != nil {
		return 0, fmt.Errorf("fetch gateway bot info: %w", err)
	}
	if resp.Shards < 1 {
		return 1, nil
	}
	return resp.Shards, nil
}
