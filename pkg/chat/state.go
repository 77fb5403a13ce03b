package chat

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/xid"
	"github.com/samber/lo"
)

const (
	DefaultChannelName  = "geral"
	DefaultChannelTopic = "Canal geral"
)

// Palette holds the accent colors handed out to new servers.
var Palette = []string{"#6ee7b7", "#9ad3f5", "#f6c179", "#d6b3ff", "#f7a6b2"}

// Selection is the active server and channel. An empty id means none.
type Selection struct {
	ServerID  string
	ChannelID string
}

// State owns the chat data and the current selection. It is not safe for
// concurrent use; callers run one action at a time.
type State struct {
	Data      Data
	Selection Selection

	now   func() time.Time
	newID func(prefix string) string
	color func() string
}

func NewState(data Data) *State {
	data.Repair()
	state := &State{
		Data:  data,
		now:   time.Now,
		newID: func(prefix string) string { return prefix + xid.New().String() },
		color: func() string { return lo.Sample(Palette) },
	}
	if len(data.Servers) > 0 {
		state.SelectServer(data.Servers[0].ID)
	}
	return state
}

// SelectServer makes id the current server and moves to its first channel,
// or to no channel when the server has none.
func (s *State) SelectServer(id string) {
	s.Selection.ServerID = id
	s.Selection.ChannelID = ""
	if channels := s.Data.Channels[id]; len(channels) > 0 {
		s.Selection.ChannelID = channels[0].ID
	}
}

// SelectChannel does not check that id belongs to the current server.
func (s *State) SelectChannel(id string) {
	s.Selection.ChannelID = id
}

func (s *State) AppendMessage(channelID, text string, author Author) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyText
	}
	if channelID == "" {
		return Message{}, ErrNoChannel
	}
	avatar := author.Avatar
	if avatar == "" {
		avatar = firstRune(author.Name)
	}
	created := s.now().UTC()
	message := Message{
		ID:      s.newID("m"),
		User:    author.Name,
		Avatar:  avatar,
		Text:    text,
		Created: &created,
	}
	if s.Data.Messages == nil {
		s.Data.Messages = make(map[string][]Message)
	}
	s.Data.Messages[channelID] = append(s.Data.Messages[channelID], message)
	return message, nil
}

// AddServer creates a server with a single default channel and selects both.
func (s *State) AddServer(name string) (Server, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Server{}, ErrEmptyName
	}
	server := Server{
		ID:    s.newID("s"),
		Name:  name,
		Short: Badge(name),
		Color: s.color(),
	}
	channel := Channel{ID: s.newID("c"), Name: DefaultChannelName, Topic: DefaultChannelTopic}

	s.Data.Repair()
	s.Data.Servers = append(s.Data.Servers, server)
	s.Data.Channels[server.ID] = []Channel{channel}
	s.Data.Messages[channel.ID] = []Message{}
	s.SelectServer(server.ID)
	return server, nil
}

func (s *State) CurrentServer() (Server, bool) {
	return lo.Find(s.Data.Servers, func(server Server) bool {
		return server.ID == s.Selection.ServerID
	})
}

// Channels lists the channels of the current server.
func (s *State) Channels() []Channel {
	return s.Data.Channels[s.Selection.ServerID]
}

func (s *State) CurrentChannel() (Channel, bool) {
	if s.Selection.ChannelID == "" {
		return Channel{}, false
	}
	return lo.Find(s.Channels(), func(channel Channel) bool {
		return channel.ID == s.Selection.ChannelID
	})
}

// Messages returns the current channel's messages, oldest first.
func (s *State) Messages() []Message {
	if s.Selection.ChannelID == "" {
		return nil
	}
	return s.Data.Messages[s.Selection.ChannelID]
}

// Badge builds a server badge from the initials of the first two words.
func Badge(name string) string {
	words := lo.Slice(strings.Fields(name), 0, 2)
	initials := lo.Map(words, func(word string, _ int) string {
		return firstRune(word)
	})
	return strings.Map(unicode.ToUpper, strings.Join(initials, ""))
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}
