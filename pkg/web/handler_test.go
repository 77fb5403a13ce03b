package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hirotachi/rizz-cli-chat/pkg/chat"
	"github.com/hirotachi/rizz-cli-chat/pkg/client"
	"github.com/hirotachi/rizz-cli-chat/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type memorySaver struct {
	saves int
	err   error
}

func (s *memorySaver) Save(context.Context, chat.Data) error {
	if s.err != nil {
		return s.err
	}
	s.saves++
	return nil
}

func newTestHandler() (*Handler, *client.Session, *memorySaver) {
	saver := &memorySaver{}
	session := client.NewSession(chat.NewState(chat.Seed()), saver, chat.DefaultAuthor, discard)
	return NewHandler(session, discard), session, saver
}

func post(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	return rec.Body.String()
}

func TestHandler_Page(t *testing.T) {
	h, _, _ := newTestHandler()
	body := get(t, h)
	assert.Contains(t, body, "Bem-vind@s ao canal geral do Rizz!")
	assert.Contains(t, body, "#geral")
}

func TestHandler_SelectServerAndChannel(t *testing.T) {
	h, session, saver := newTestHandler()

	rec := post(t, h, "/servers/s2", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#end", rec.Header().Get("Location"))
	assert.Equal(t, chat.Selection{ServerID: "s2", ChannelID: "c4"}, session.State.Selection)
	assert.Contains(t, get(t, h), "A aula começa às 19h.")

	post(t, h, "/channels/c5", nil)
	assert.Equal(t, "c5", session.State.Selection.ChannelID)
	assert.Contains(t, get(t, h), render.EmptyMessages)
	assert.Zero(t, saver.saves)
}

func TestHandler_Submit(t *testing.T) {
	h, session, saver := newTestHandler()

	rec := post(t, h, "/messages", url.Values{"text": {"<script>alert(1)</script>"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, saver.saves)
	assert.Len(t, session.State.Data.Messages["c1"], 3)

	body := get(t, h)
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt;")

	post(t, h, "/messages", url.Values{"text": {"   "}})
	assert.Equal(t, 1, saver.saves)
	assert.Len(t, session.State.Data.Messages["c1"], 3)
}

func TestHandler_AddServer(t *testing.T) {
	h, session, saver := newTestHandler()

	rec := post(t, h, "/servers", url.Values{"name": {"Clube do Livro"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, saver.saves)
	server, ok := session.State.CurrentServer()
	require.True(t, ok)
	assert.Equal(t, "CD", server.Short)
	assert.Contains(t, get(t, h), render.EmptyMessages)

	post(t, h, "/servers", url.Values{"name": {""}})
	assert.Len(t, session.State.Data.Servers, 4)
}

func TestHandler_SaveFailure(t *testing.T) {
	h, _, saver := newTestHandler()
	saver.err = errors.New("disk full")

	rec := post(t, h, "/messages", url.Values{"text": {"oi"}})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_UnknownRoute(t *testing.T) {
	h, _, _ := newTestHandler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
