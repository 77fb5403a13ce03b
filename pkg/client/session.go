package client

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hirotachi/rizz-cli-chat/pkg/chat"
)

// View redraws the regions of the chat screen from the session state.
type View interface {
	RefreshServers()
	RefreshChannels()
	RefreshMessages()
}

type Saver interface {
	Save(ctx context.Context, data chat.Data) error
}

// Session binds user actions to state mutations, persistence and redraws.
// Every action runs to completion before the next one starts.
type Session struct {
	State  *chat.State
	store  Saver
	view   View
	author chat.Author
	log    *slog.Logger
}

func NewSession(state *chat.State, store Saver, author chat.Author, log *slog.Logger) *Session {
	return &Session{
		State:  state,
		store:  store,
		view:   nopView{},
		author: author,
		log:    log.With("component", "session"),
	}
}

func (s *Session) SetView(view View) {
	s.view = view
}

func (s *Session) Author() chat.Author {
	return s.author
}

// Refresh redraws everything.
func (s *Session) Refresh() {
	s.view.RefreshServers()
	s.view.RefreshChannels()
	s.view.RefreshMessages()
}

func (s *Session) SelectServer(id string) {
	s.State.SelectServer(id)
	s.log.Debug("server selected", "server", id, "channel", s.State.Selection.ChannelID)
	s.Refresh()
}

func (s *Session) SelectChannel(id string) {
	s.State.SelectChannel(id)
	s.log.Debug("channel selected", "channel", id)
	s.view.RefreshChannels()
	s.view.RefreshMessages()
}

// Submit appends text to the current channel. It reports false without
// touching anything when the text is blank or no channel is selected.
func (s *Session) Submit(ctx context.Context, text string) (bool, error) {
	message, err := s.State.AppendMessage(s.State.Selection.ChannelID, text, s.author)
	if errors.Is(err, chat.ErrEmptyText) || errors.Is(err, chat.ErrNoChannel) {
		s.log.Debug("submission ignored", "reason", err)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := s.store.Save(ctx, s.State.Data); err != nil {
		return true, err
	}
	s.log.Debug("message sent", "channel", s.State.Selection.ChannelID, "message", message.ID)
	s.view.RefreshMessages()
	return true, nil
}

// AddServer creates and selects a new server. A blank name is ignored.
func (s *Session) AddServer(ctx context.Context, name string) (bool, error) {
	server, err := s.State.AddServer(name)
	if errors.Is(err, chat.ErrEmptyName) {
		s.log.Debug("server creation ignored", "reason", err)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := s.store.Save(ctx, s.State.Data); err != nil {
		return true, err
	}
	s.log.Info("server created", "server", server.ID, "name", server.Name)
	s.Refresh()
	return true, nil
}

type nopView struct{}

func (nopView) RefreshServers()  {}
func (nopView) RefreshChannels() {}
func (nopView) RefreshMessages() {}
