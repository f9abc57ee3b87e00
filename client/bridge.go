package client

import (
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"github.com/yaoapp/jumia/integrations/discord"
)

// bridge returns the catch-all discordgo handler for one shard. discordgo
// calls it with every typed event and then again with the raw *Event.
func (c *Client) bridge(bot *discord.Bot) func(*discordgo.Session, interface{}) {
	return func(s *discordgo.Session, ev interface{}) {
		ctx := NewContext(c.base, s, bot)
		ctx.Shard = bot.ShardID()
		c.deliver(ctx, ev)
	}
}

// deliver routes one gateway payload into the registry. Typed payloads go to
// their kind; raw events go to OnUnknown callbacks when their payload is not
// in the catalogue. The fault policy for callbacks lives here.
func (c *Client) deliver(ctx *Context, ev any) {
	if c.recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				log.Error("callback panic event=%s shard=%d payload=%T: %v\n%s", ctx.EventID, ctx.Shard, ev, r, debug.Stack())
			}
		}()
	}

	if raw, ok := ev.(*discordgo.Event); ok {
		if _, known := KindOf(raw.Struct); known {
			return
		}
		if c.handler.dispatchRaw(ctx, raw.Type, raw.RawData) {
			log.Trace("dispatched unknown=%s event=%s shard=%d", raw.Type, ctx.EventID, ctx.Shard)
		}
		return
	}

	if kind, ok := c.handler.Dispatch(ctx, ev); ok {
		log.Trace("dispatched kind=%s event=%s shard=%d", kind, ctx.EventID, ctx.Shard)
	}
}
