package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Summary is a flat, loggable view of a Discord message.
type Summary struct {
	MessageID   string       `json:"message_id"`
	ChannelID   string       `json:"channel_id"`
	GuildID     string       `json:"guild_id,omitempty"`
	AuthorID    string       `json:"author_id,omitempty"`
	AuthorName  string       `json:"author_name,omitempty"`
	IsBot       bool         `json:"is_bot"`
	IsDM        bool         `json:"is_dm"`
	Text        string       `json:"text,omitempty"`
	ReplyTo     string       `json:"reply_to,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment describes one file attached to a message.
type Attachment struct {
	Kind        AttachmentKind `json:"kind"`
	URL         string         `json:"url"`
	FileName    string         `json:"file_name"`
	ContentType string         `json:"content_type,omitempty"`
	Size        int            `json:"size,omitempty"`
}

// AttachmentKind classifies an attachment by its MIME type.
type AttachmentKind string

const (
	AttachmentImage    AttachmentKind = "image"
	AttachmentVideo    AttachmentKind = "video"
	AttachmentAudio    AttachmentKind = "audio"
	AttachmentDocument AttachmentKind = "document"
)

// Summarize flattens m. Messages only known by ID (e.g. from a delete event)
// produce a Summary with just the IDs set. Returns nil for nil input.
func Summarize(m *discordgo.Message) *Summary {
	if m == nil {
		return nil
	}

	s := &Summary{
		MessageID: m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Text:      m.Content,
		IsDM:      m.GuildID == "",
	}
	if m.Author != nil {
		s.AuthorID = m.Author.ID
		s.AuthorName = m.Author.Username
		s.IsBot = m.Author.Bot
	}
	if m.MessageReference != nil {
		s.ReplyTo = m.MessageReference.MessageID
	}
	for _, att := range m.Attachments {
		if att == nil {
			continue
		}
		s.Attachments = append(s.Attachments, Attachment{
			Kind:        attachmentKind(att.ContentType),
			URL:         att.URL,
			FileName:    att.Filename,
			ContentType: att.ContentType,
			Size:        att.Size,
		})
	}
	return s
}

// String renders the summary on one line for logs.
func (s *Summary) String() string {
	if s == nil {
		return "<nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "msg=%s channel=%s", s.MessageID, s.ChannelID)
	if s.GuildID != "" {
		fmt.Fprintf(&b, " guild=%s", s.GuildID)
	}
	if s.AuthorID != "" {
		fmt.Fprintf(&b, " author=%s(%s)", s.AuthorName, s.AuthorID)
	}
	if s.ReplyTo != "" {
		fmt.Fprintf(&b, " reply_to=%s", s.ReplyTo)
	}
	if len(s.Attachments) > 0 {
		fmt.Fprintf(&b, " files=%d", len(s.Attachments))
	}
	if s.Text != "" {
		fmt.Fprintf(&b, " text=%q", s.Text)
	}
	return b.String()
}

func attachmentKind(contentType string) AttachmentKind {
	major, _, _ := strings.Cut(contentType, "/")
	switch major {
	case "image":
		return AttachmentImage
	case "video":
		return AttachmentVideo
	case "audio":
		return AttachmentAudio
	}
	return AttachmentDocument
}
