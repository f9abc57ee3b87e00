package client

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/yaoapp/jumia/integrations/discord"
)

// ErrNoSender is returned by Context helpers when the context cannot send.
var ErrNoSender = errors.New("client: context has no sender")

// Sender posts messages on behalf of the bot. *discord.Bot implements it.
type Sender interface {
	SendMessage(channelID, text string) (*discordgo.Message, error)
	SendMessageReply(channelID, text, replyToID string) (*discordgo.Message, error)
}

// Context is passed to every callback of one delivered event. All callbacks
// of that event share the same Context.
type Context struct {
	context.Context

	// Session is the gateway session that received the event. Nil when the
	// event was dispatched by hand.
	Session *discordgo.Session

	// EventID identifies this delivery in logs.
	EventID string

	// Shard is the shard that received the event.
	Shard int

	sender Sender
}

// NewContext builds the Context for one delivery. parent may be nil.
func NewContext(parent context.Context, session *discordgo.Session, sender Sender) *Context {
	if parent == nil {
		parent = context.Background()
	}
	return &Context{
		Context: parent,
		Session: session,
		EventID: uuid.NewString(),
		sender:  sender,
	}
}

// Send posts text to channelID. Markdown is adapted for Discord and long
// text is split across several messages; the first message is returned.
func (c *Context) Send(channelID, text string) (*discordgo.Message, error) {
	return c.post(channelID, "", text)
}

// Reply posts text as a reply to m. Overflow beyond the first message is
// sent as plain follow-ups.
func (c *Context) Reply(m *discordgo.Message, text string) (*discordgo.Message, error) {
	if m == nil {
		return nil, errors.New("client: reply to nil message")
	}
	return c.post(m.ChannelID, m.ID, text)
}

func (c *Context) post(channelID, replyToID, text string) (*discordgo.Message, error) {
	if c.sender == nil {
		return nil, ErrNoSender
	}

	var first *discordgo.Message
	for i, chunk := range discord.SplitMessage(discord.FormatMarkdown(text)) {
		var (
			sent *discordgo.Message
			err  error
		)
		if i == 0 && replyToID != "" {
			sent, err = c.sender.SendMessageReply(channelID, chunk, replyToID)
		} else {
			sent, err = c.sender.SendMessage(channelID, chunk)
		}
		if err != nil {
			return first, err
		}
		if first == nil {
			first = sent
		}
	}
	return first, nil
}
