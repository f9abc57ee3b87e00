package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/yaoapp/jumia/integrations/discord"
)

// IdentityResolver looks up the application a token belongs to.
type IdentityResolver interface {
	ResolveApplicationID(ctx context.Context, token string) (string, error)
}

// ResolverFunc adapts a function to IdentityResolver.
type ResolverFunc func(ctx context.Context, token string) (string, error)

// ResolveApplicationID calls f.
func (f ResolverFunc) ResolveApplicationID(ctx context.Context, token string) (string, error) {
	return f(ctx, token)
}

// ConnectConfig is everything a Connector needs to construct a session.
type ConnectConfig struct {
	Token         string
	ApplicationID string
	Intents       discordgo.Intent
	SyncEvents    bool
}

// Connector constructs the underlying gateway session. It must not open it.
type Connector interface {
	Connect(ctx context.Context, cfg ConnectConfig) (*discord.Bot, error)
}

// ConnectorFunc adapts a function to Connector.
type ConnectorFunc func(ctx context.Context, cfg ConnectConfig) (*discord.Bot, error)

// Connect calls f.
func (f ConnectorFunc) Connect(ctx context.Context, cfg ConnectConfig) (*discord.Bot, error) {
	return f(ctx, cfg)
}

// Builder collects what is needed to construct a Client. Setters return the
// Builder so calls can be chained; Build does the work:
//
//	c, err := client.NewBuilder().
//		Token(os.Getenv("DISCORD_TOKEN")).
//		EventHandler(func(h client.EventHandler) client.EventHandler {
//			return h.OnReady(onReady)
//		}).
//		Extension(ping.New()).
//		Build(ctx)
//
// A Builder is not safe for concurrent use.
type Builder struct {
	token         string
	appID         string
	handler       EventHandler
	intents       discordgo.Intent
	shards        int
	syncEvents    bool
	recoverPanics bool
	resolver      IdentityResolver
	connector     Connector
}

// NewBuilder returns a Builder with an empty registry, default intents,
// automatic sharding, panic recovery on, and the discordgo-backed resolver
// and connector.
func NewBuilder() *Builder {
	return &Builder{
		handler:       NewEventHandler(),
		intents:       discord.DefaultIntents,
		recoverPanics: true,
		resolver:      discordResolver{},
		connector:     discordConnector{},
	}
}

// Token sets the bot token. Required.
func (b *Builder) Token(token string) *Builder {
	b.token = token
	return b
}

// ApplicationID sets the application ID. When set, Build performs no
// identity lookup.
func (b *Builder) ApplicationID(id string) *Builder {
	b.appID = id
	return b
}

// EventHandler replaces the registry with fn(current registry).
func (b *Builder) EventHandler(fn func(EventHandler) EventHandler) *Builder {
	if fn != nil {
		b.handler = fn(b.handler)
	}
	return b
}

// Extension applies ext to the registry.
func (b *Builder) Extension(ext Extension) *Builder {
	if ext == nil {
		return b
	}
	b.handler = ext.EventHandler(b.handler)
	log.Debug("extension applied name=%s", ExtensionName(ext))
	return b
}

// Intents sets the gateway intents sent on identify.
func (b *Builder) Intents(intents discordgo.Intent) *Builder {
	b.intents = intents
	return b
}

// Shards sets the number of shards Start opens. 0 asks the gateway.
func (b *Builder) Shards(n int) *Builder {
	if n >= 0 {
		b.shards = n
	}
	return b
}

// SyncEvents makes the gateway deliver events one at a time per shard
// instead of one goroutine per event.
func (b *Builder) SyncEvents(sync bool) *Builder {
	b.syncEvents = sync
	return b
}

// RecoverPanics sets whether the gateway bridge recovers and logs callback
// panics (true, the default) or lets them propagate.
func (b *Builder) RecoverPanics(on bool) *Builder {
	b.recoverPanics = on
	return b
}

// Resolver replaces the identity resolver.
func (b *Builder) Resolver(r IdentityResolver) *Builder {
	if r != nil {
		b.resolver = r
	}
	return b
}

// Connector replaces the session constructor.
func (b *Builder) Connector(c Connector) *Builder {
	if c != nil {
		b.connector = c
	}
	return b
}

// Build resolves the application ID when none was set (one lookup), then
// constructs the session with the registry installed as its dispatch target.
// On failure no Client is returned and nothing is retried; call Build again
// to retry.
//
// Build panics if no token was set.
func (b *Builder) Build(ctx context.Context) (*Client, error) {
	if b.token == "" {
		panic("client: missing token")
	}

	appID := b.appID
	if appID == "" {
		log.Debug("resolving application id")
		id, err := b.resolver.ResolveApplicationID(ctx, b.token)
		if err == nil && id == "" {
			err = errors.New("empty application id")
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIdentityLookup, err)
		}
		appID = id
	}

	bot, err := b.connector.Connect(ctx, ConnectConfig{
		Token:         b.token,
		ApplicationID: appID,
		Intents:       b.intents,
		SyncEvents:    b.syncEvents,
	})
	if err == nil && bot == nil {
		err = errors.New("connector returned no session")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}

	c := newClient(bot, b.handler, appID, b.shards, b.recoverPanics)
	log.Info("client built app=%s shards=%d", appID, b.shards)
	return c, nil
}

type discordResolver struct{}

func (discordResolver) ResolveApplicationID(ctx context.Context, token string) (string, error) {
	bot, err := discord.NewBot(token, "")
	if err != nil {
		return "", err
	}

	type result struct {
		app *discordgo.Application
		err error
	}
	done := make(chan result, 1)
	go func() {
		app, err := bot.CurrentApplication()
		done <- result{app, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			return "", r.err
		}
		return r.app.ID, nil
	}
}

type discordConnector struct{}

func (discordConnector) Connect(_ context.Context, cfg ConnectConfig) (*discord.Bot, error) {
	bot, err := discord.NewBot(cfg.Token, cfg.ApplicationID)
	if err != nil {
		return nil, err
	}
	bot.SetIntents(cfg.Intents)
	bot.SetSyncEvents(cfg.SyncEvents)
	return bot, nil
}
