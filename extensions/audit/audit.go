// Package audit writes a trail of message creates, edits and deletes.
//
// Records are produced from gateway events and handed to a Sink on a small
// worker pool, so a slow sink does not hold up other callbacks. Messages
// replayed by the gateway after a resume are recorded once.
package audit

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/yaoapp/jumia/client"
	"github.com/yaoapp/jumia/integrations/discord"
	"github.com/yaoapp/jumia/logger"
)

var log = logger.New("audit")

// Action is what happened to a message.
type Action string

// Audited actions.
const (
	Created Action = "created"
	Updated Action = "updated"
	Deleted Action = "deleted"
)

// Record is one audit entry.
type Record struct {
	Action  Action           `json:"action"`
	At      time.Time        `json:"at"`
	Shard   int              `json:"shard"`
	EventID string           `json:"event_id"`
	Message *discord.Summary `json:"message"`
}

// Sink receives records. Writes may run concurrently.
type Sink interface {
	Write(rec Record) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(rec Record) error

// Write calls f.
func (f SinkFunc) Write(rec Record) error { return f(rec) }

// LogSink writes records through the audit logger at info level.
var LogSink Sink = SinkFunc(func(rec Record) error {
	log.Info("%s shard=%d %s", rec.Action, rec.Shard, rec.Message)
	return nil
})

// Option configures an Audit.
type Option func(*Audit)

// WithSink replaces the default LogSink.
func WithSink(s Sink) Option {
	return func(a *Audit) {
		if s != nil {
			a.sink = s
		}
	}
}

// MaxWorkers caps concurrent sink writes. Default is 4.
func MaxWorkers(n int) Option {
	return func(a *Audit) {
		a.workers = n
	}
}

// TTL sets how long a message key is remembered for de-duplication.
// Default is 24h.
func TTL(d time.Duration) Option {
	return func(a *Audit) {
		if d > 0 {
			a.ttl = d
		}
	}
}

// Audit is the message audit extension.
type Audit struct {
	sink    Sink
	workers int
	ttl     time.Duration
	now     func() time.Time

	seen   *seenStore
	writer *writer
}

// New returns an Audit writing to LogSink unless configured otherwise.
func New(opts ...Option) *Audit {
	a := &Audit{
		sink:    LogSink,
		workers: 4,
		ttl:     defaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.seen = newSeenStore(a.now)
	a.writer = newWriter(a.sink, a.workers)
	return a
}

// Name implements the optional extension name.
func (a *Audit) Name() string { return "audit" }

// EventHandler implements client.Extension.
func (a *Audit) EventHandler(h client.EventHandler) client.EventHandler {
	return h.
		OnMessageCreate(a.onCreate).
		OnMessageUpdate(a.onUpdate).
		OnMessageDelete(a.onDelete).
		OnMessageDeleteBulk(a.onDeleteBulk)
}

// Clean expires de-duplication keys older than the TTL once an hour until
// ctx is done. Run it in its own goroutine.
func (a *Audit) Clean(ctx context.Context) {
	a.seen.cleaner(ctx, a.ttl, dedupCleanInterval)
}

// Wait blocks until every record handed to the sink has been written.
func (a *Audit) Wait() {
	a.writer.wait()
}

func (a *Audit) onCreate(ctx *client.Context, m *discordgo.MessageCreate) {
	if m.Message == nil {
		return
	}
	a.record(ctx, Created, "c:"+m.ID, discord.Summarize(m.Message))
}

func (a *Audit) onUpdate(ctx *client.Context, m *discordgo.MessageUpdate) {
	if m.Message == nil {
		return
	}
	key := "u:" + m.ID
	if m.EditedTimestamp != nil {
		key += ":" + m.EditedTimestamp.Format(time.RFC3339Nano)
	}
	a.record(ctx, Updated, key, discord.Summarize(m.Message))
}

func (a *Audit) onDelete(ctx *client.Context, m *discordgo.MessageDelete) {
	if m.Message == nil {
		return
	}
	summary := discord.Summarize(m.Message)
	if m.BeforeDelete != nil {
		summary = discord.Summarize(m.BeforeDelete)
	}
	a.record(ctx, Deleted, "d:"+m.ID, summary)
}

func (a *Audit) onDeleteBulk(ctx *client.Context, m *discordgo.MessageDeleteBulk) {
	for _, id := range m.Messages {
		a.record(ctx, Deleted, "d:"+id, &discord.Summary{
			MessageID: id,
			ChannelID: m.ChannelID,
			GuildID:   m.GuildID,
			IsDM:      m.GuildID == "",
		})
	}
}

func (a *Audit) record(ctx *client.Context, action Action, key string, summary *discord.Summary) {
	if !a.seen.markSeen(key) {
		log.Trace("skip replay key=%s event=%s", key, ctx.EventID)
		return
	}

	rec := Record{
		Action:  action,
		At:      a.now(),
		Shard:   ctx.Shard,
		EventID: ctx.EventID,
		Message: summary,
	}
	if err := a.writer.submit(ctx, rec); err != nil {
		log.Warn("dropped record action=%s msg=%s: %v", action, summary.MessageID, err)
	}
}
