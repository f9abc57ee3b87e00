package discord

import (
	"github.com/bwmarrin/discordgo"
)

// MaxMessageLength is Discord's limit for a message body, in characters.
const MaxMessageLength = 2000

// SendMessage sends a text message to a channel.
func (b *Bot) SendMessage(channelID, text string) (*discordgo.Message, error) {
	return b.session.ChannelMessageSend(channelID, text)
}

// SendMessageReply sends a text message as a reply to another message.
func (b *Bot) SendMessageReply(channelID, text, replyToID string) (*discordgo.Message, error) {
	return b.session.ChannelMessageSendReply(channelID, text, &discordgo.MessageReference{
		MessageID: replyToID,
		ChannelID: channelID,
	})
}

// SplitMessage cuts text into chunks of at most MaxMessageLength runes,
// preferring to break after a newline.
func SplitMessage(text string) []string {
	runes := []rune(text)
	if len(runes) <= MaxMessageLength {
		return []string{text}
	}

	var chunks []string
	for len(runes) > MaxMessageLength {
		cut := MaxMessageLength
		for i := MaxMessageLength - 1; i > MaxMessageLength/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
