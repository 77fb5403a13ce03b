package render

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// ServerLabel is the tview markup for a servers panel row.
func ServerLabel(entry Entry) string {
	badge := fmt.Sprintf("[::b]%s[::-]", tview.Escape(entry.Label))
	if entry.Color != "" {
		badge = fmt.Sprintf("[%s::b]%s[-::-]", entry.Color, tview.Escape(entry.Label))
	}
	return badge + " " + tview.Escape(entry.Title)
}

func ChannelLabel(entry Entry) string {
	return "[grey]#[-] " + tview.Escape(entry.Label)
}

// FrameTitle is the header shown on top of the message board.
func FrameTitle(header Header) string {
	if header.Topic == "" {
		return tview.Escape(header.Title)
	}
	return fmt.Sprintf("%s [grey]%s[-]", tview.Escape(header.Title), tview.Escape(header.Topic))
}

// MessageBoard renders the message list, or the placeholder when there is
// nothing to show.
func MessageBoard(lines []Line) string {
	if len(lines) == 0 {
		return fmt.Sprintf("[grey]%s[-]\n", EmptyMessages)
	}
	var b strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&b, "[black:lightgrey:b] %s [-:-:-] [white::b]%s[::-]", tview.Escape(line.Avatar), tview.Escape(line.User))
		if line.Time != "" {
			fmt.Fprintf(&b, " [grey]%s[-]", line.Time)
		}
		fmt.Fprintf(&b, "\n  %s\n\n", tview.Escape(line.Text))
	}
	return b.String()
}
