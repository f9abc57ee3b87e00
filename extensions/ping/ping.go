// Package ping replies to a fixed chat command. It is the smallest useful
// extension: one MessageCreate callback.
package ping

import (
	"github.com/bwmarrin/discordgo"
	"github.com/yaoapp/jumia/client"
	"github.com/yaoapp/jumia/logger"
)

var log = logger.New("ping")

// Defaults used when no option overrides them.
const (
	DefaultTrigger = "!extension"
	DefaultReply   = "Hey!"
)

// Option configures a Ping.
type Option func(*Ping)

// Trigger sets the message content that triggers a reply. Empty is ignored.
func Trigger(s string) Option {
	return func(p *Ping) {
		if s != "" {
			p.trigger = s
		}
	}
}

// Reply sets the reply text. Empty is ignored.
func Reply(s string) Option {
	return func(p *Ping) {
		if s != "" {
			p.reply = s
		}
	}
}

// Ping replies to messages whose content equals the trigger exactly.
// Messages from bots, including itself, are ignored.
type Ping struct {
	trigger string
	reply   string
}

// New returns a Ping with the defaults and opts applied.
func New(opts ...Option) *Ping {
	p := &Ping{trigger: DefaultTrigger, reply: DefaultReply}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements the optional extension name.
func (p *Ping) Name() string { return "ping" }

// EventHandler implements client.Extension.
func (p *Ping) EventHandler(h client.EventHandler) client.EventHandler {
	return h.OnMessageCreate(p.onMessage)
}

func (p *Ping) onMessage(ctx *client.Context, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}
	if m.Content != p.trigger {
		return
	}

	if _, err := ctx.Reply(m.Message, p.reply); err != nil {
		log.Error("reply failed channel=%s msg=%s event=%s: %v", m.ChannelID, m.ID, ctx.EventID, err)
		return
	}
	log.Debug("replied channel=%s msg=%s", m.ChannelID, m.ID)
}
