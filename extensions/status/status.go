// Package status tracks gateway health from lifecycle events and serves it
// over HTTP.
package status

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/yaoapp/jumia/client"
	"github.com/yaoapp/jumia/logger"
)

var log = logger.New("status")

// Status records connection state per shard, the guilds the bot is in and a
// few counters. Safe for concurrent use.
type Status struct {
	now     func() time.Time
	started time.Time

	mu        sync.RWMutex
	shards    map[int]*shardState
	guilds    map[string]string
	user      string
	lastEvent time.Time

	messages    atomic.Uint64
	connects    atomic.Uint64
	disconnects atomic.Uint64
	resumes     atomic.Uint64
}

type shardState struct {
	connected bool
	ready     bool
	sessionID string
	since     time.Time
}

// Snapshot is a point-in-time copy of Status, as served on /status.
type Snapshot struct {
	Ready       bool            `json:"ready"`
	User        string          `json:"user,omitempty"`
	Uptime      string          `json:"uptime"`
	LastEvent   *time.Time      `json:"last_event,omitempty"`
	Shards      []ShardSnapshot `json:"shards"`
	Guilds      int             `json:"guilds"`
	Messages    uint64          `json:"messages"`
	Connects    uint64          `json:"connects"`
	Disconnects uint64          `json:"disconnects"`
	Resumes     uint64          `json:"resumes"`
}

// ShardSnapshot is the state of one shard.
type ShardSnapshot struct {
	ID        int       `json:"id"`
	Connected bool      `json:"connected"`
	Ready     bool      `json:"ready"`
	SessionID string    `json:"session_id,omitempty"`
	Since     time.Time `json:"since"`
}

// New returns an empty Status.
func New() *Status {
	return newStatus(time.Now)
}

func newStatus(now func() time.Time) *Status {
	return &Status{
		now:     now,
		started: now(),
		shards:  make(map[int]*shardState),
		guilds:  make(map[string]string),
	}
}

// Name implements the optional extension name.
func (s *Status) Name() string { return "status" }

// EventHandler implements client.Extension.
func (s *Status) EventHandler(h client.EventHandler) client.EventHandler {
	return h.
		OnConnect(s.onConnect).
		OnDisconnect(s.onDisconnect).
		OnReady(s.onReady).
		OnResumed(s.onResumed).
		OnGuildCreate(s.onGuildCreate).
		OnGuildDelete(s.onGuildDelete).
		OnMessageCreate(s.onMessageCreate)
}

// Ready reports whether at least one shard is known and every known shard
// is connected and has completed its handshake.
func (s *Status) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readyLocked()
}

func (s *Status) readyLocked() bool {
	if len(s.shards) == 0 {
		return false
	}
	for _, sh := range s.shards {
		if !sh.connected || !sh.ready {
			return false
		}
	}
	return true
}

// Snapshot copies the current state.
func (s *Status) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Ready:       s.readyLocked(),
		User:        s.user,
		Uptime:      s.now().Sub(s.started).Truncate(time.Second).String(),
		Guilds:      len(s.guilds),
		Messages:    s.messages.Load(),
		Connects:    s.connects.Load(),
		Disconnects: s.disconnects.Load(),
		Resumes:     s.resumes.Load(),
		Shards:      make([]ShardSnapshot, 0, len(s.shards)),
	}
	if !s.lastEvent.IsZero() {
		last := s.lastEvent
		snap.LastEvent = &last
	}
	for _, id := range slices.Sorted(maps.Keys(s.shards)) {
		sh := s.shards[id]
		snap.Shards = append(snap.Shards, ShardSnapshot{
			ID:        id,
			Connected: sh.connected,
			Ready:     sh.ready,
			SessionID: sh.sessionID,
			Since:     sh.since,
		})
	}
	return snap
}

// shard returns the state for id, creating it. Callers hold mu.
func (s *Status) shard(id int) *shardState {
	sh, ok := s.shards[id]
	if !ok {
		sh = &shardState{}
		s.shards[id] = sh
	}
	return sh
}

func (s *Status) touch() time.Time {
	now := s.now()
	s.lastEvent = now
	return now
}

func (s *Status) onConnect(ctx *client.Context, _ *discordgo.Connect) {
	s.connects.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	sh := s.shard(ctx.Shard)
	sh.connected = true
	sh.since = s.touch()
}

func (s *Status) onDisconnect(ctx *client.Context, _ *discordgo.Disconnect) {
	s.disconnects.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	sh := s.shard(ctx.Shard)
	sh.connected = false
	sh.ready = false
	sh.since = s.touch()
	log.Warn("shard %d disconnected", ctx.Shard)
}

func (s *Status) onReady(ctx *client.Context, r *discordgo.Ready) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh := s.shard(ctx.Shard)
	sh.connected = true
	sh.ready = true
	sh.sessionID = r.SessionID
	sh.since = s.touch()
	if r.User != nil {
		s.user = r.User.Username
	}
	for _, g := range r.Guilds {
		if g != nil {
			s.guilds[g.ID] = g.Name
		}
	}
	log.Info("shard %d ready user=%s guilds=%d", ctx.Shard, s.user, len(r.Guilds))
}

func (s *Status) onResumed(ctx *client.Context, _ *discordgo.Resumed) {
	s.resumes.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	sh := s.shard(ctx.Shard)
	sh.connected = true
	sh.ready = true
	sh.since = s.touch()
}

func (s *Status) onGuildCreate(_ *client.Context, g *discordgo.GuildCreate) {
	if g.Guild == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guilds[g.ID] = g.Name
	s.touch()
}

func (s *Status) onGuildDelete(_ *client.Context, g *discordgo.GuildDelete) {
	if g.Guild == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// An unavailable guild is an outage, not a removal.
	if !g.Unavailable {
		delete(s.guilds, g.ID)
	}
	s.touch()
}

func (s *Status) onMessageCreate(_ *client.Context, _ *discordgo.MessageCreate) {
	s.messages.Add(1)
	s.mu.Lock()
	s.touch()
	s.mu.Unlock()
}
