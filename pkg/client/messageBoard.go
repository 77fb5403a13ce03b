package client

import (
	"fmt"

	"github.com/hirotachi/rizz-cli-chat/pkg/render"
	"github.com/rivo/tview"
)

type MessageBoard struct {
	View    *tview.TextView
	Frame   *tview.Frame
	Session *Session
}

func NewMessageBoard(session *Session) *MessageBoard {
	messageView := tview.NewTextView()
	messageView.SetDynamicColors(true).SetScrollable(true).SetWrap(true).SetWordWrap(true)

	messageFrame := tview.NewFrame(messageView).SetBorders(0, 0, 0, 0, 1, 1)
	messageFrame.SetBorder(true).SetTitleAlign(tview.AlignLeft)

	return &MessageBoard{
		View:    messageView,
		Frame:   messageFrame,
		Session: session,
	}
}

// Refresh replaces the board with the current channel and scrolls to the
// newest message.
func (board *MessageBoard) Refresh() {
	_, header := render.Channels(board.Session.State)
	board.Frame.SetTitle(" " + render.FrameTitle(header) + " ")
	board.View.SetText(render.MessageBoard(render.Messages(board.Session.State)))
	board.View.ScrollToEnd()
}

type Option struct {
	Action      string
	Description string
	Prefix      string
}

// ListCommands appends the key and command help below the messages.
func (board *MessageBoard) ListCommands() {
	commandsOptionsList := []Option{
		{Prefix: "/", Action: "help", Description: "Shows this commands list."},
	}
	keysOptionsList := []Option{
		{Prefix: "ENTER", Description: "Sends the message, or opens the selected server or channel."},
		{Prefix: "TAB", Description: "Moves focus between servers, channels and the composer."},
		{Prefix: "CTRL-N", Description: "Creates a new server."},
		{Prefix: "CTRL-C", Description: "Quits."},
	}

	commands := BuildOptionsList("Commands", commandsOptionsList)
	keys := BuildOptionsList("Keys", keysOptionsList)
	author := board.Session.Author()
	identity := fmt.Sprintf("[lightgrey::b]Posting as[::-] %s\n", tview.Escape(author.Name))
	fmt.Fprint(board.View, commands, "\n", keys, "\n", identity)
	board.View.ScrollToEnd()
}

func BuildOptionsList(title string, optionsList []Option) string {
	result := fmt.Sprintf("[lightgrey::b]%s[::-]\n", title)
	for _, option := range optionsList {
		result += fmt.Sprintf("  [blue]%s[-][white::b]%s[::-] [lightgrey]%s[-]\n", option.Prefix, option.Action, option.Description)
	}
	return result
}
