package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/jumia/integrations/discord"
)

type sent struct {
	channelID string
	text      string
	replyTo   string
}

// fakeSender records outgoing messages instead of calling Discord.
type fakeSender struct {
	mu   sync.Mutex
	msgs []sent
	err  error
}

func (f *fakeSender) SendMessage(channelID, text string) (*discordgo.Message, error) {
	return f.record(channelID, text, "")
}

func (f *fakeSender) SendMessageReply(channelID, text, replyToID string) (*discordgo.Message, error) {
	return f.record(channelID, text, replyToID)
}

func (f *fakeSender) record(channelID, text, replyTo string) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.msgs = append(f.msgs, sent{channelID, text, replyTo})
	return &discordgo.Message{ChannelID: channelID, Content: text}, nil
}

func (f *fakeSender) all() []sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sent(nil), f.msgs...)
}

func buildClient(t *testing.T, recoverPanics bool, fn func(EventHandler) EventHandler) *Client {
	t.Helper()
	c, err := NewBuilder().
		Token("T").
		ApplicationID("1").
		RecoverPanics(recoverPanics).
		Connector(offlineConnector(nil)).
		EventHandler(fn).
		Build(context.Background())
	require.NoError(t, err)
	return c
}

func TestDeliver_RecoversPanics(t *testing.T) {
	r := &recorder{}
	c := buildClient(t, true, func(h EventHandler) EventHandler {
		return h.
			OnReady(func(*Context, *discordgo.Ready) { panic("broken extension") }).
			OnMessageCreate(onMessage(r, "message"))
	})

	assert.NotPanics(t, func() { c.deliver(testContext(), &discordgo.Ready{}) })

	c.deliver(testContext(), messageEvent("x"))
	assert.Equal(t, []string{"message"}, r.got())
}

func TestDeliver_PropagatesPanicsWhenDisabled(t *testing.T) {
	c := buildClient(t, false, func(h EventHandler) EventHandler {
		return h.OnReady(func(*Context, *discordgo.Ready) { panic("broken extension") })
	})

	assert.PanicsWithValue(t, "broken extension", func() {
		c.deliver(testContext(), &discordgo.Ready{})
	})
}

func TestDeliver_UnknownRawEvent(t *testing.T) {
	var got []any
	c := buildClient(t, true, func(h EventHandler) EventHandler {
		return h.OnUnknown("SOUNDBOARD_SOUND_CREATE", func(_ *Context, raw any) { got = append(got, raw) })
	})

	c.deliver(testContext(), &discordgo.Event{
		Type:    "SOUNDBOARD_SOUND_CREATE",
		RawData: []byte(`{"sound_id":"9","volume":0.5}`),
	})

	require.Len(t, got, 1)
	assert.Equal(t, map[string]any{"sound_id": "9", "volume": 0.5}, got[0])
}

func TestDeliver_UndecodedStructIsUnknown(t *testing.T) {
	var got []any
	c := buildClient(t, true, func(h EventHandler) EventHandler {
		return h.OnUnknown("ODD", func(_ *Context, raw any) { got = append(got, raw) })
	})

	c.deliver(testContext(), &discordgo.Event{Type: "ODD", RawData: []byte(`[1]`), Struct: &struct{}{}})
	require.Len(t, got, 1)
	assert.Equal(t, []any{float64(1)}, got[0])
}

func TestDeliver_CatalogueRawEventNotRoutedAsUnknown(t *testing.T) {
	r := &recorder{}
	c := buildClient(t, true, func(h EventHandler) EventHandler {
		return h.
			OnUnknown("MESSAGE_CREATE", func(*Context, any) { r.add("unknown") }).
			OnMessageCreate(onMessage(r, "typed"))
	})

	ev := messageEvent("x")
	c.deliver(testContext(), ev)
	c.deliver(testContext(), &discordgo.Event{Type: "MESSAGE_CREATE", RawData: []byte(`{}`), Struct: ev})

	assert.Equal(t, []string{"typed"}, r.got())
}

func TestDeliver_UnregisteredUnknownIsNoop(t *testing.T) {
	c := buildClient(t, true, nil)
	assert.NotPanics(t, func() {
		c.deliver(testContext(), &discordgo.Event{Type: "NOPE", RawData: []byte(`{}`)})
		c.deliver(testContext(), &discordgo.Event{Type: "NOPE"})
	})
}

func TestBridge_BuildsContextPerEvent(t *testing.T) {
	var ctxs []*Context
	c := buildClient(t, true, func(h EventHandler) EventHandler {
		cb := func(ctx *Context, _ *discordgo.Ready) { ctxs = append(ctxs, ctx) }
		return h.OnReady(cb).OnReady(cb)
	})

	shard, err := c.Bot().Shard(1, 2)
	require.NoError(t, err)
	fn := c.bridge(shard)
	fn(shard.Session(), &discordgo.Ready{})
	fn(shard.Session(), &discordgo.Ready{})

	require.Len(t, ctxs, 4)
	assert.Same(t, ctxs[0], ctxs[1], "callbacks of one event share a context")
	assert.NotEqual(t, ctxs[0].EventID, ctxs[2].EventID)
	assert.Equal(t, 1, ctxs[0].Shard)
	assert.Same(t, shard.Session(), ctxs[0].Session)
}

// A command extension replies once to its trigger and ignores other text.
func TestCommandReply(t *testing.T) {
	sender := &fakeSender{}
	command := ExtensionFunc(func(h EventHandler) EventHandler {
		return h.OnMessageCreate(func(ctx *Context, m *discordgo.MessageCreate) {
			if m.Content == "!extension" {
				_, err := ctx.Reply(m.Message, "Hey!")
				assert.NoError(t, err)
			}
		})
	})
	h := Apply(NewEventHandler(), command)

	h.Dispatch(NewContext(context.Background(), nil, sender), messageEvent("!extension"))
	require.Len(t, sender.all(), 1)
	assert.Equal(t, sent{"ch-1", "Hey!", "msg-1"}, sender.all()[0])

	h.Dispatch(NewContext(context.Background(), nil, sender), messageEvent("hello"))
	assert.Len(t, sender.all(), 1)
}

func TestContext_SendSplitsLongText(t *testing.T) {
	sender := &fakeSender{}
	ctx := NewContext(context.Background(), nil, sender)

	text := strings.Repeat("a", discord.MaxMessageLength) + strings.Repeat("b", 10)
	first, err := ctx.Reply(&discordgo.Message{ID: "m", ChannelID: "c"}, text)
	require.NoError(t, err)

	msgs := sender.all()
	require.Len(t, msgs, 2)
	assert.Equal(t, "m", msgs[0].replyTo)
	assert.Empty(t, msgs[1].replyTo)
	assert.Equal(t, strings.Repeat("b", 10), msgs[1].text)
	assert.Equal(t, msgs[0].text, first.Content)

	_, err = ctx.Send("c2", "plain")
	require.NoError(t, err)
	assert.Equal(t, sent{"c2", "plain", ""}, sender.all()[2])
}

func TestContext_SendErrors(t *testing.T) {
	_, err := testContext().Send("c", "x")
	assert.ErrorIs(t, err, ErrNoSender)

	_, err = NewContext(context.Background(), nil, &fakeSender{}).Reply(nil, "x")
	assert.Error(t, err)

	cause := errors.New("missing access")
	_, err = NewContext(context.Background(), nil, &fakeSender{err: cause}).Send("c", "x")
	assert.ErrorIs(t, err, cause)
}

func TestNewContext_NilParent(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	assert.NotNil(t, ctx.Context)
	assert.NoError(t, ctx.Err())
	assert.NotEmpty(t, ctx.EventID)
}

type namedExtension struct{ tag string }

func (n namedExtension) Name() string { return n.tag }

func (n namedExtension) EventHandler(h EventHandler) EventHandler { return h }

func TestExtensionName(t *testing.T) {
	assert.Equal(t, "greeter", ExtensionName(namedExtension{"greeter"}))
	assert.Equal(t, "client.ExtensionFunc", ExtensionName(ExtensionFunc(func(h EventHandler) EventHandler { return h })))
}

func TestApply_SkipsNil(t *testing.T) {
	r := &recorder{}
	e1 := ExtensionFunc(func(h EventHandler) EventHandler { return h.OnReady(onReady(r, "e1")) })
	e2 := ExtensionFunc(func(h EventHandler) EventHandler { return h.OnReady(onReady(r, "e2")) })

	h := Apply(NewEventHandler(), e1, nil, e2)
	h.Dispatch(testContext(), &discordgo.Ready{})
	assert.Equal(t, []string{"e1", "e2"}, r.got())
}
