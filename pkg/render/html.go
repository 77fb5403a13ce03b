package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/hirotachi/rizz-cli-chat/pkg/chat"
)

//go:embed templates/page.html
var templatesFS embed.FS

var page = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

type PageData struct {
	Servers  []Entry
	Channels []Entry
	Header   Header
	Messages []Line
	Empty    string
	Channel  string
}

func NewPageData(state *chat.State) PageData {
	channels, header := Channels(state)
	return PageData{
		Servers:  Servers(state),
		Channels: channels,
		Header:   header,
		Messages: Messages(state),
		Empty:    EmptyMessages,
		Channel:  state.Selection.ChannelID,
	}
}

// Page writes the whole HTML page. User text is escaped by html/template.
func Page(w io.Writer, state *chat.State) error {
	return page.Execute(w, NewPageData(state))
}
