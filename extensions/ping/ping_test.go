package ping

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/jumia/client"
)

type reply struct {
	channelID string
	text      string
	replyTo   string
}

type fakeSender struct {
	replies []reply
	err     error
}

func (f *fakeSender) SendMessage(channelID, text string) (*discordgo.Message, error) {
	return f.SendMessageReply(channelID, text, "")
}

func (f *fakeSender) SendMessageReply(channelID, text, replyToID string) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.replies = append(f.replies, reply{channelID, text, replyToID})
	return &discordgo.Message{ChannelID: channelID, Content: text}, nil
}

func message(content string, bot bool) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "m1",
		ChannelID: "c1",
		Content:   content,
		Author:    &discordgo.User{ID: "u1", Bot: bot},
	}}
}

func dispatch(h client.EventHandler, sender client.Sender, ev *discordgo.MessageCreate) {
	h.Dispatch(client.NewContext(context.Background(), nil, sender), ev)
}

func TestPing_RepliesToTrigger(t *testing.T) {
	sender := &fakeSender{}
	h := client.Apply(client.NewEventHandler(), New())

	dispatch(h, sender, message("!extension", false))
	require.Len(t, sender.replies, 1)
	assert.Equal(t, reply{"c1", "Hey!", "m1"}, sender.replies[0])

	dispatch(h, sender, message("hello", false))
	assert.Len(t, sender.replies, 1)
}

func TestPing_ExactMatchOnly(t *testing.T) {
	sender := &fakeSender{}
	h := client.Apply(client.NewEventHandler(), New())

	for _, content := range []string{"!extension ", " !extension", "!Extension", "!extension please", ""} {
		dispatch(h, sender, message(content, false))
	}
	assert.Empty(t, sender.replies)
}

func TestPing_IgnoresBots(t *testing.T) {
	sender := &fakeSender{}
	h := client.Apply(client.NewEventHandler(), New())

	dispatch(h, sender, message("!extension", true))
	dispatch(h, sender, &discordgo.MessageCreate{Message: &discordgo.Message{Content: "!extension"}})
	dispatch(h, sender, &discordgo.MessageCreate{})
	assert.Empty(t, sender.replies)
}

func TestPing_Options(t *testing.T) {
	sender := &fakeSender{}
	p := New(Trigger("!ping"), Reply("pong"), Trigger(""), Reply(""))
	h := client.Apply(client.NewEventHandler(), p)

	dispatch(h, sender, message("!extension", false))
	dispatch(h, sender, message("!ping", false))
	require.Len(t, sender.replies, 1)
	assert.Equal(t, "pong", sender.replies[0].text)
	assert.Equal(t, "ping", client.ExtensionName(p))
}

func TestPing_ReplyErrorIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("missing permissions")}
	h := client.Apply(client.NewEventHandler(), New())

	assert.NotPanics(t, func() { dispatch(h, sender, message("!extension", false)) })
}
