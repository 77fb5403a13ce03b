package client

import (
	"github.com/gdamore/tcell/v2"
	"github.com/hirotachi/rizz-cli-chat/pkg/render"
	"github.com/rivo/tview"
)

const addServerLabel = "[grey]+[-] Novo servidor"

func newPanelList(title string) *tview.List {
	list := tview.NewList().ShowSecondaryText(false).SetHighlightFullLine(true).
		SetSelectedBackgroundColor(tcell.ColorDarkSlateGray)
	list.SetBorder(true).SetTitle(title).SetTitleAlign(tview.AlignLeft)
	return list
}

type ServersPanel struct {
	View      *tview.List
	Session   *Session
	AddServer func()
}

func NewServersPanel(session *Session, addServer func()) *ServersPanel {
	return &ServersPanel{View: newPanelList(" Servidores "), Session: session, AddServer: addServer}
}

func (panel *ServersPanel) Refresh() {
	panel.View.Clear()
	current := 0
	for i, entry := range render.Servers(panel.Session.State) {
		id := entry.ID
		panel.View.AddItem(render.ServerLabel(entry), entry.Title, 0, func() {
			panel.Session.SelectServer(id)
		})
		if entry.Active {
			current = i
		}
	}
	panel.View.AddItem(addServerLabel, "", 0, panel.AddServer)
	panel.View.SetCurrentItem(current)
}

type ChannelsPanel struct {
	View    *tview.List
	Session *Session
}

func NewChannelsPanel(session *Session) *ChannelsPanel {
	return &ChannelsPanel{View: newPanelList(" Canais "), Session: session}
}

func (panel *ChannelsPanel) Refresh() {
	panel.View.Clear()
	entries, _ := render.Channels(panel.Session.State)
	current := 0
	for i, entry := range entries {
		id := entry.ID
		panel.View.AddItem(render.ChannelLabel(entry), entry.Title, 0, func() {
			panel.Session.SelectChannel(id)
		})
		if entry.Active {
			current = i
		}
	}
	panel.View.SetCurrentItem(current)
}
