package client

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	mainPage      = "main"
	addServerPage = "add-server"
)

// App is the terminal front end. It implements View for its Session.
type App struct {
	Application *tview.Application
	Session     *Session
	Pages       *tview.Pages
	Servers     *ServersPanel
	Channels    *ChannelsPanel
	Board       *MessageBoard
	Input       *InputSection

	AddServerForm *tview.Form

	ctx   context.Context
	focus []tview.Primitive
	err   error
}

func NewApp(ctx context.Context, session *Session) *App {
	app := &App{
		Application: tview.NewApplication(),
		Session:     session,
		Pages:       tview.NewPages(),
		ctx:         ctx,
	}
	app.Servers = NewServersPanel(session, app.ShowAddServer)
	app.Channels = NewChannelsPanel(session)
	app.Board = NewMessageBoard(session)
	app.Input = NewInputSection(app.submit, app.Board.ListCommands)
	app.focus = []tview.Primitive{app.Servers.View, app.Channels.View, app.Input.View}

	chatColumn := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(app.Board.Frame, 0, 1, false).
		AddItem(app.Input.View, 1, 0, true)
	layout := tview.NewFlex().
		AddItem(app.Servers.View, 24, 0, false).
		AddItem(app.Channels.View, 24, 0, false).
		AddItem(chatColumn, 0, 1, true)

	app.Pages.AddPage(mainPage, layout, true, true)
	app.Application.SetRoot(app.Pages, true).SetFocus(app.Input.View).EnableMouse(true)
	app.Application.SetInputCapture(app.captureKeys)

	session.SetView(app)
	session.Refresh()
	return app
}

// Run blocks until the user quits or an action fails to persist.
func (app *App) Run() error {
	if err := app.Application.Run(); err != nil {
		return err
	}
	return app.err
}

func (app *App) RefreshServers()  { app.Servers.Refresh() }
func (app *App) RefreshChannels() { app.Channels.Refresh() }
func (app *App) RefreshMessages() { app.Board.Refresh() }

func (app *App) submit(text string) bool {
	sent, err := app.Session.Submit(app.ctx, text)
	if err != nil {
		app.fail(err)
	}
	return sent
}

// ShowAddServer asks for the name of a new server in a modal form.
func (app *App) ShowAddServer() {
	if app.Pages.HasPage(addServerPage) {
		return
	}
	form := tview.NewForm()
	form.AddInputField("Nome", "", 32, nil, nil)
	closeForm := func() {
		app.AddServerForm = nil
		app.Pages.RemovePage(addServerPage)
		app.Application.SetFocus(app.Input.View)
	}
	create := func() {
		name := form.GetFormItem(0).(*tview.InputField).GetText()
		closeForm()
		if _, err := app.Session.AddServer(app.ctx, name); err != nil {
			app.fail(err)
		}
	}
	form.AddButton("Criar", create).AddButton("Cancelar", closeForm)
	form.SetCancelFunc(closeForm)
	form.GetFormItem(0).(*tview.InputField).SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEnter {
			create()
			return nil
		}
		return event
	})
	form.SetBorder(true).SetTitle(" Nome do novo servidor (ex: Meu Grupo) ")

	modal := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(form, 7, 0, true).
			AddItem(nil, 0, 1, false), 50, 0, true).
		AddItem(nil, 0, 1, false)
	app.AddServerForm = form
	app.Pages.AddPage(addServerPage, modal, true, true)
	app.Application.SetFocus(form)
}

func (app *App) captureKeys(event *tcell.EventKey) *tcell.EventKey {
	if app.Pages.HasPage(addServerPage) {
		return event
	}
	switch event.Key() {
	case tcell.KeyCtrlN:
		app.ShowAddServer()
		return nil
	case tcell.KeyTab:
		app.cycleFocus(1)
		return nil
	case tcell.KeyBacktab:
		app.cycleFocus(-1)
		return nil
	}
	return event
}

func (app *App) cycleFocus(step int) {
	current := app.Application.GetFocus()
	next := 0
	for i, primitive := range app.focus {
		if primitive == current {
			next = (i + step + len(app.focus)) % len(app.focus)
		}
	}
	app.Application.SetFocus(app.focus[next])
}

func (app *App) fail(err error) {
	app.err = err
	app.Session.log.Error("action failed", "error", err)
	app.Application.Stop()
}
