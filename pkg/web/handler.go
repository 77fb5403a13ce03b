package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/hirotachi/rizz-cli-chat/pkg/client"
	"github.com/hirotachi/rizz-cli-chat/pkg/render"
)

// Handler serves the chat as a single HTML page. Requests are handled one at
// a time since they all share the session state.
type Handler struct {
	mu      sync.Mutex
	session *client.Session
	log     *slog.Logger
	mux     *http.ServeMux
}

func NewHandler(session *client.Session, log *slog.Logger) *Handler {
	h := &Handler{session: session, log: log.With("component", "web"), mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /{$}", h.page)
	h.mux.HandleFunc("POST /servers", h.addServer)
	h.mux.HandleFunc("POST /servers/{id}", h.selectServer)
	h.mux.HandleFunc("POST /channels/{id}", h.selectChannel)
	h.mux.HandleFunc("POST /messages", h.submit)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) page(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := render.Page(&buf, h.session.State); err != nil {
		h.log.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) selectServer(w http.ResponseWriter, r *http.Request) {
	h.session.SelectServer(r.PathValue("id"))
	redirect(w, r)
}

func (h *Handler) selectChannel(w http.ResponseWriter, r *http.Request) {
	h.session.SelectChannel(r.PathValue("id"))
	redirect(w, r)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if _, err := h.session.Submit(r.Context(), r.FormValue("text")); err != nil {
		h.fail(w, err)
		return
	}
	redirect(w, r)
}

func (h *Handler) addServer(w http.ResponseWriter, r *http.Request) {
	if _, err := h.session.AddServer(r.Context(), r.FormValue("name")); err != nil {
		h.fail(w, err)
		return
	}
	redirect(w, r)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	h.log.Error("action failed", "error", err)
	http.Error(w, "could not save state", http.StatusInternalServerError)
}

// redirect sends the browser back to the page, scrolled to the newest message.
func redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/#end", http.StatusSeeOther)
}

// ListenAndServe runs the HTTP front end until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) error {
	server := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	errChan := make(chan error, 1)
	go func() {
		log.Info("starting http server", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down http server")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
