// Command eventgen renders client/events.go from the gateway event table
// below. Run it through go generate in the client package:
//
//	go generate ./client
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

// event is one catalogue entry: the discordgo payload type (delivered as
// *discordgo.<Type>), its gateway name, and a phrase for the doc comment.
type event struct {
	Type    string
	Gateway string
	When    string
}

// events is the catalogue. Order is the order of Catalogue().
var events = []event{
	{"Connect", "__CONNECT__", "the gateway websocket connects"},
	{"Disconnect", "__DISCONNECT__", "the gateway websocket disconnects"},
	{"RateLimit", "__RATE_LIMIT__", "a REST request is rate limited"},
	{"Ready", "READY", "the session finished the identify handshake"},
	{"Resumed", "RESUMED", "a dropped session is resumed"},
	{"ChannelCreate", "CHANNEL_CREATE", "a channel or category is created"},
	{"ChannelUpdate", "CHANNEL_UPDATE", "a channel or category is updated"},
	{"ChannelDelete", "CHANNEL_DELETE", "a channel or category is deleted"},
	{"ChannelPinsUpdate", "CHANNEL_PINS_UPDATE", "a message is pinned or unpinned"},
	{"ThreadCreate", "THREAD_CREATE", "a thread is created or the bot is added to one"},
	{"ThreadUpdate", "THREAD_UPDATE", "a thread is updated"},
	{"ThreadDelete", "THREAD_DELETE", "a thread is deleted"},
	{"ThreadListSync", "THREAD_LIST_SYNC", "the bot gains access to a channel's threads"},
	{"ThreadMemberUpdate", "THREAD_MEMBER_UPDATE", "the bot's thread membership changes"},
	{"ThreadMembersUpdate", "THREAD_MEMBERS_UPDATE", "members join or leave a thread"},
	{"GuildCreate", "GUILD_CREATE", "a guild becomes available or the bot joins one"},
	{"GuildUpdate", "GUILD_UPDATE", "a guild is updated"},
	{"GuildDelete", "GUILD_DELETE", "a guild becomes unavailable or the bot leaves it"},
	{"GuildBanAdd", "GUILD_BAN_ADD", "a user is banned"},
	{"GuildBanRemove", "GUILD_BAN_REMOVE", "a user is unbanned"},
	{"GuildMemberAdd", "GUILD_MEMBER_ADD", "a user joins a guild"},
	{"GuildMemberUpdate", "GUILD_MEMBER_UPDATE", "a guild member is updated"},
	{"GuildMemberRemove", "GUILD_MEMBER_REMOVE", "a user leaves or is removed from a guild"},
	{"GuildMembersChunk", "GUILD_MEMBERS_CHUNK", "a requested chunk of guild members arrives"},
	{"GuildRoleCreate", "GUILD_ROLE_CREATE", "a role is created"},
	{"GuildRoleUpdate", "GUILD_ROLE_UPDATE", "a role is updated"},
	{"GuildRoleDelete", "GUILD_ROLE_DELETE", "a role is deleted"},
	{"GuildEmojisUpdate", "GUILD_EMOJIS_UPDATE", "a guild's emojis change"},
	{"GuildIntegrationsUpdate", "GUILD_INTEGRATIONS_UPDATE", "a guild's integrations change"},
	{"StageInstanceEventCreate", "STAGE_INSTANCE_CREATE", "a stage instance is created"},
	{"StageInstanceEventUpdate", "STAGE_INSTANCE_UPDATE", "a stage instance is updated"},
	{"StageInstanceEventDelete", "STAGE_INSTANCE_DELETE", "a stage instance is deleted"},
	{"IntegrationCreate", "INTEGRATION_CREATE", "an integration is created"},
	{"IntegrationUpdate", "INTEGRATION_UPDATE", "an integration is updated"},
	{"IntegrationDelete", "INTEGRATION_DELETE", "an integration is deleted"},
	{"InteractionCreate", "INTERACTION_CREATE", "a user invokes a command or component"},
	{"InviteCreate", "INVITE_CREATE", "an invite is created"},
	{"InviteDelete", "INVITE_DELETE", "an invite is deleted"},
	{"MessageCreate", "MESSAGE_CREATE", "a message is sent"},
	{"MessageUpdate", "MESSAGE_UPDATE", "a message is edited"},
	{"MessageDelete", "MESSAGE_DELETE", "a message is deleted"},
	{"MessageDeleteBulk", "MESSAGE_DELETE_BULK", "messages are deleted in bulk"},
	{"MessageReactionAdd", "MESSAGE_REACTION_ADD", "a reaction is added"},
	{"MessageReactionRemove", "MESSAGE_REACTION_REMOVE", "a reaction is removed"},
	{"MessageReactionRemoveAll", "MESSAGE_REACTION_REMOVE_ALL", "all reactions are removed from a message"},
	{"PresenceUpdate", "PRESENCE_UPDATE", "a user's presence changes"},
	{"PresencesReplace", "PRESENCES_REPLACE", "the presence list is replaced"},
	{"TypingStart", "TYPING_START", "a user starts typing"},
	{"UserUpdate", "USER_UPDATE", "the bot user is updated"},
	{"VoiceServerUpdate", "VOICE_SERVER_UPDATE", "a guild's voice server changes"},
	{"VoiceStateUpdate", "VOICE_STATE_UPDATE", "a user's voice state changes"},
	{"WebhooksUpdate", "WEBHOOKS_UPDATE", "a channel's webhooks change"},
}

func (e event) Field() string {
	return strings.ToLower(e.Type[:1]) + e.Type[1:]
}

var tmpl = template.Must(template.New("events").Parse(`// Code generated by eventgen; DO NOT EDIT.

package client

import "github.com/bwmarrin/discordgo"

// Catalogue kinds. The value is the gateway event name.
const (
{{- range .}}
	Kind{{.Type}} Kind = "{{.Gateway}}"
{{- end}}
)

var catalogue = [...]Kind{
{{- range .}}
	Kind{{.Type}},
{{- end}}
}

// handlerTable holds one ordered callback list per catalogue kind.
type handlerTable struct {
{{- range .}}
	{{.Field}} callbacks[*discordgo.{{.Type}}]
{{- end}}
}
{{range .}}
// On{{.Type}} registers cb to run when {{.When}} ({{.Gateway}}).
func (h EventHandler) On{{.Type}}(cb Callback[*discordgo.{{.Type}}]) EventHandler {
	h.table.{{.Field}} = h.table.{{.Field}}.add(cb)
	return h
}
{{end}}
// KindOf reports the catalogue kind of a gateway payload. Payloads outside
// the catalogue, including nil, report false.
func KindOf(ev any) (Kind, bool) {
	switch ev.(type) {
{{- range .}}
	case *discordgo.{{.Type}}:
		return Kind{{.Type}}, true
{{- end}}
	}
	return "", false
}

func (t *handlerTable) dispatch(ctx *Context, ev any) (Kind, bool) {
	switch ev := ev.(type) {
{{- range .}}
	case *discordgo.{{.Type}}:
		t.{{.Field}}.fire(ctx, ev)
		return Kind{{.Type}}, true
{{- end}}
	}
	return "", false
}
`))

func main() {
	out := flag.String("o", "events.go", "output file")
	flag.Parse()

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, events); err != nil {
		fmt.Fprintf(os.Stderr, "eventgen: render: %v\n", err)
		os.Exit(1)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "eventgen: format: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "eventgen: write %s: %v\n", *out, err)
		os.Exit(1)
	}
}
