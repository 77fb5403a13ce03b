// Package render projects chat state onto display models. Every function is a
// pure read of the state and produces the full content of its region.
package render

import (
	"time"
	"unicode/utf8"

	"github.com/hirotachi/rizz-cli-chat/pkg/chat"
	"github.com/samber/lo"
)

const (
	EmptyMessages = "Nenhuma mensagem ainda — seja o primeiro a escrever."
	NoChannel     = "Sem canal"
)

// Entry is one row of the servers or channels panel.
type Entry struct {
	ID     string
	Label  string
	Title  string
	Color  string
	Active bool
}

type Header struct {
	Title string
	Topic string
}

// Line is one rendered message. Fields hold raw text, encoders escape them.
type Line struct {
	ID     string
	User   string
	Avatar string
	Text   string
	Time   string
}

func Servers(state *chat.State) []Entry {
	return lo.Map(state.Data.Servers, func(server chat.Server, _ int) Entry {
		label := server.Short
		if label == "" {
			label = initial(server.Name, "")
		}
		return Entry{
			ID:     server.ID,
			Label:  label,
			Title:  server.Name,
			Color:  server.Color,
			Active: server.ID == state.Selection.ServerID,
		}
	})
}

// Channels returns the channel list of the current server and the chat header.
func Channels(state *chat.State) ([]Entry, Header) {
	channels := state.Channels()
	entries := lo.Map(channels, func(channel chat.Channel, _ int) Entry {
		return Entry{
			ID:     channel.ID,
			Label:  channel.Name,
			Title:  channel.Topic,
			Active: channel.ID == state.Selection.ChannelID,
		}
	})

	current, ok := state.CurrentChannel()
	if !ok && len(channels) > 0 {
		current, ok = channels[0], true
	}
	if !ok {
		return entries, Header{Title: "#" + NoChannel}
	}
	return entries, Header{Title: "#" + current.Name, Topic: current.Topic}
}

// Messages returns nil when the current channel has nothing to show; callers
// render EmptyMessages in that case.
func Messages(state *chat.State) []Line {
	messages := state.Messages()
	if len(messages) == 0 {
		return nil
	}
	return lo.Map(messages, func(message chat.Message, _ int) Line {
		avatar := message.Avatar
		if avatar == "" {
			avatar = initial(message.User, "U")
		}
		return Line{
			ID:     message.ID,
			User:   message.User,
			Avatar: avatar,
			Text:   message.Text,
			Time:   FormatTime(message.Created),
		}
	})
}

// FormatTime shows the local hour and minute, or nothing for seed messages.
func FormatTime(created *time.Time) string {
	if created == nil || created.IsZero() {
		return ""
	}
	return created.Local().Format("15:04")
}

func initial(s, fallback string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return fallback
	}
	return string(r)
}
