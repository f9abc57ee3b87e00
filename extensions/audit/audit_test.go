package audit

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/jumia/client"
)

type memorySink struct {
	mu   sync.Mutex
	recs []Record
}

func (s *memorySink) Write(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = append(s.recs, rec)
	return nil
}

// records returns what was written, ordered by message ID then action.
func (s *memorySink) records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]Record(nil), s.recs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Message.MessageID != out[j].Message.MessageID {
			return out[i].Message.MessageID < out[j].Message.MessageID
		}
		return out[i].Action < out[j].Action
	})
	return out
}

func setup(opts ...Option) (*Audit, *memorySink, client.EventHandler) {
	sink := &memorySink{}
	a := New(append([]Option{WithSink(sink)}, opts...)...)
	return a, sink, client.Apply(client.NewEventHandler(), a)
}

func ctx() *client.Context {
	return client.NewContext(context.Background(), nil, nil)
}

func msg(id, content string) *discordgo.Message {
	return &discordgo.Message{
		ID:        id,
		ChannelID: "c1",
		GuildID:   "g1",
		Content:   content,
		Author:    &discordgo.User{ID: "u1", Username: "alice"},
	}
}

func TestAudit_RecordsLifecycle(t *testing.T) {
	a, sink, h := setup()

	c := ctx()
	c.Shard = 2
	h.Dispatch(c, &discordgo.MessageCreate{Message: msg("1", "hello")})
	edited := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	updated := msg("1", "hello, world")
	updated.EditedTimestamp = &edited
	h.Dispatch(ctx(), &discordgo.MessageUpdate{Message: updated})
	h.Dispatch(ctx(), &discordgo.MessageDelete{Message: &discordgo.Message{ID: "1", ChannelID: "c1"}})
	a.Wait()

	recs := sink.records()
	require.Len(t, recs, 3)
	assert.Equal(t, Created, recs[0].Action)
	assert.Equal(t, "hello", recs[0].Message.Text)
	assert.Equal(t, 2, recs[0].Shard)
	assert.Equal(t, c.EventID, recs[0].EventID)
	assert.Equal(t, Deleted, recs[1].Action)
	assert.Equal(t, "c1", recs[1].Message.ChannelID)
	assert.Equal(t, Updated, recs[2].Action)
	assert.Equal(t, "hello, world", recs[2].Message.Text)
}

func TestAudit_DeduplicatesReplays(t *testing.T) {
	a, sink, h := setup()

	for i := 0; i < 3; i++ {
		h.Dispatch(ctx(), &discordgo.MessageCreate{Message: msg("7", "once")})
	}
	a.Wait()
	assert.Len(t, sink.records(), 1)
}

func TestAudit_EachEditIsRecorded(t *testing.T) {
	a, sink, h := setup()

	first := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)
	for _, ts := range []time.Time{first, first, second} {
		m := msg("9", "edit")
		m.EditedTimestamp = &ts
		h.Dispatch(ctx(), &discordgo.MessageUpdate{Message: m})
	}
	a.Wait()
	assert.Len(t, sink.records(), 2)
}

func TestAudit_DeleteUsesCachedMessage(t *testing.T) {
	a, sink, h := setup()

	h.Dispatch(ctx(), &discordgo.MessageDelete{
		Message:      &discordgo.Message{ID: "5", ChannelID: "c1"},
		BeforeDelete: msg("5", "gone"),
	})
	a.Wait()

	recs := sink.records()
	require.Len(t, recs, 1)
	assert.Equal(t, "gone", recs[0].Message.Text)
	assert.Equal(t, "u1", recs[0].Message.AuthorID)
}

func TestAudit_DeleteBulk(t *testing.T) {
	a, sink, h := setup()

	h.Dispatch(ctx(), &discordgo.MessageDelete{Message: &discordgo.Message{ID: "a"}})
	h.Dispatch(ctx(), &discordgo.MessageDeleteBulk{Messages: []string{"a", "b", "c"}, ChannelID: "c1", GuildID: "g1"})
	a.Wait()

	recs := sink.records()
	require.Len(t, recs, 3, "a was already recorded by the single delete")
	for i, id := range []string{"a", "b", "c"} {
		assert.Equal(t, id, recs[i].Message.MessageID)
		assert.Equal(t, Deleted, recs[i].Action)
	}
	assert.Equal(t, "g1", recs[1].Message.GuildID)
}

func TestAudit_IgnoresEmptyPayloads(t *testing.T) {
	a, sink, h := setup()
	h.Dispatch(ctx(), &discordgo.MessageCreate{})
	h.Dispatch(ctx(), &discordgo.MessageUpdate{})
	h.Dispatch(ctx(), &discordgo.MessageDelete{})
	a.Wait()
	assert.Empty(t, sink.records())
}

func TestAudit_SinkFailuresAreContained(t *testing.T) {
	var calls sync.WaitGroup
	calls.Add(2)
	failing := SinkFunc(func(rec Record) error {
		defer calls.Done()
		if rec.Message.MessageID == "p" {
			panic("sink exploded")
		}
		return errors.New("disk full")
	})

	a := New(WithSink(failing), MaxWorkers(1))
	h := client.Apply(client.NewEventHandler(), a)

	assert.NotPanics(t, func() {
		h.Dispatch(ctx(), &discordgo.MessageCreate{Message: msg("e", "x")})
		h.Dispatch(ctx(), &discordgo.MessageCreate{Message: msg("p", "x")})
	})
	calls.Wait()
	a.Wait()
}

func TestAudit_DropsWhenContextDone(t *testing.T) {
	block := make(chan struct{})
	var writes sync.WaitGroup
	writes.Add(1)
	slow := SinkFunc(func(Record) error {
		writes.Done()
		<-block
		return nil
	})
	a := New(WithSink(slow), MaxWorkers(1))
	h := client.Apply(client.NewEventHandler(), a)

	h.Dispatch(ctx(), &discordgo.MessageCreate{Message: msg("1", "x")})
	writes.Wait()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	h.Dispatch(client.NewContext(cancelled, nil, nil), &discordgo.MessageCreate{Message: msg("2", "x")})

	close(block)
	a.Wait()
}

func TestSeenStore_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := newSeenStore(func() time.Time { return now })

	assert.True(t, store.markSeen("old"))
	assert.False(t, store.markSeen("old"))

	now = now.Add(2 * time.Hour)
	assert.True(t, store.markSeen("new"))

	assert.Equal(t, 1, store.sweep(now.Add(-time.Hour)))
	assert.True(t, store.markSeen("old"), "expired keys can be recorded again")
	assert.False(t, store.markSeen("new"))
}

func TestAudit_CleanStopsWithContext(t *testing.T) {
	a := New(TTL(time.Minute))
	c, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Clean(c)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Clean did not return after cancel")
	}
	assert.Equal(t, time.Minute, a.ttl)
}
