package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/yaoapp/jumia/integrations/discord"
	"github.com/yaoapp/jumia/logger"
)

var log = logger.New("client")

// Client is a constructed gateway client with an EventHandler installed as
// its dispatch target. Create one with a Builder.
type Client struct {
	handler       EventHandler
	appID         string
	bot           *discord.Bot
	shardCount    int
	recoverPanics bool

	// base is the parent context of every delivery. Set by Start before any
	// session is opened.
	base context.Context

	mu      sync.Mutex
	started bool
	shards  []*discord.Bot
}

func newClient(bot *discord.Bot, handler EventHandler, appID string, shards int, recoverPanics bool) *Client {
	c := &Client{
		handler:       handler,
		appID:         appID,
		bot:           bot,
		shardCount:    shards,
		recoverPanics: recoverPanics,
		base:          context.Background(),
	}
	bot.OnEvent(c.bridge(bot))
	return c
}

// ApplicationID returns the application the client runs as.
func (c *Client) ApplicationID() string { return c.appID }

// Bot returns the primary (shard 0) session.
func (c *Client) Bot() *discord.Bot { return c.bot }

// Start opens every shard and blocks until ctx is done, then closes them.
// With a shard count of 0 the gateway's recommendation is used. Reconnects
// after a drop are handled by discordgo.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.started = true
	c.base = ctx
	c.mu.Unlock()

	shards, err := c.prepareShards()
	if err != nil {
		return err
	}

	for _, shard := range shards {
		if err := shard.Open(); err != nil {
			if cerr := c.Close(); cerr != nil {
				log.Warn("close after failed open: %v", cerr)
			}
			return err
		}
		log.Info("shard %d/%d connected app=%s", shard.ShardID(), shard.ShardCount(), c.appID)
	}

	<-ctx.Done()
	log.Info("stopping client app=%s", c.appID)
	return c.Close()
}

// Close disconnects every open shard. Errors from all shards are collected.
func (c *Client) Close() error {
	c.mu.Lock()
	shards := c.shards
	c.shards = nil
	c.mu.Unlock()

	var result *multierror.Error
	for _, shard := range shards {
		if err := shard.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close shard %d: %w", shard.ShardID(), err))
		}
	}
	return result.ErrorOrNil()
}

func (c *Client) prepareShards() ([]*discord.Bot, error) {
	count := c.shardCount
	if count == 0 {
		n, err := c.bot.RecommendedShards()
		if err != nil {
			return nil, err
		}
		count = n
		log.Debug("gateway recommends %d shards", count)
	}
	if count < 1 {
		return nil, ErrNoShards
	}

	shards := make([]*discord.Bot, 0, count)
	for id := 0; id < count; id++ {
		shard, err := c.bot.Shard(id, count)
		if err != nil {
			return nil, err
		}
		if shard != c.bot {
			shard.OnEvent(c.bridge(shard))
		}
		shards = append(shards, shard)
	}

	c.mu.Lock()
	c.shards = shards
	c.mu.Unlock()
	return shards, nil
}
