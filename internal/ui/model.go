package ui

import (
	"fmt"
	"reflect"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/pipemind/internal/logging/events"
	"github.com/atomicstack/pipemind/internal/menu"
	"github.com/atomicstack/pipemind/internal/theme"
	uistate "github.com/atomicstack/pipemind/internal/ui/state"
)

const defaultTitle = "Pipemind Console"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Title      string
	Width      int
	Height     int
	ShowFooter bool
	Items      []menu.Item
	Previews   *menu.Previews
}

// Model implements the Bubble Tea model for the console. It owns the
// application state exclusively; every message is applied in full before the
// next frame is rendered.
type Model struct {
	app         *uistate.App
	title       string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	keys        keyMap
	help        help.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with the catalog and display options.
func NewModel(opts Options) (*Model, error) {
	items := opts.Items
	if items == nil {
		items = menu.RootItems()
	}
	previews := menu.DefaultPreviews()
	if opts.Previews != nil {
		previews = *opts.Previews
	}
	app, err := uistate.NewApp(items, previews)
	if err != nil {
		return nil, fmt.Errorf("build console state: %w", err)
	}
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	m := &Model{
		app:        app,
		title:      title,
		showFooter: opts.ShowFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m, nil
}

// State exposes the application state for reading.
func (m *Model) State() *uistate.App {
	return m.app
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.PasteMsg{}):      m.handlePasteMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.SetWidth(m.width)
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	var press tea.KeyPressMsg
	switch k := msg.(type) {
	case tea.KeyPressMsg:
		press = k
	case *tea.KeyPressMsg:
		press = *k
	default:
		return nil
	}

	focus := m.app.Focus()
	evs := m.translateKey(press)
	handled := false
	var quit bool
	for _, ev := range evs {
		res := m.apply(ev)
		handled = handled || res.Handled
		if res.Quit {
			quit = true
			break
		}
	}
	events.UI.Key(press.String(), focus.String(), handled)
	if quit {
		events.App.Quit("confirmed")
		return tea.Quit
	}
	return nil
}

// apply routes one event to the state and traces what changed.
func (m *Model) apply(ev uistate.Event) uistate.Result {
	before := m.app.Focus()
	res := m.app.Apply(ev)
	if !res.Handled {
		return res
	}
	switch ev.Kind {
	case uistate.EventRequestQuit:
		events.Quit.Request(before.String())
	case uistate.EventCancelQuit:
		events.Quit.Cancel()
	}
	if res.FocusChanged {
		events.UI.Focus(before.String(), m.app.Focus().String())
	}
	if res.SelectionChanged {
		events.UI.MenuCursor(m.app.NavState().String(), m.app.Selection())
	}
	if res.NavigationMoved {
		m.traceNavigation(ev.Kind)
	}
	if res.InputChanged && res.Submitted == nil {
		events.Input.Edit(ev.Kind.String(), m.app.Input(), m.app.InputCursor(), m.app.CommandMode())
	}
	if sub := res.Submitted; sub != nil {
		events.Input.Submit(sub.Text, sub.Logged)
		if sub.Command {
			events.Command.Run(sub.Text, sub.Response)
		}
	}
	return res
}

func (m *Model) traceNavigation(kind uistate.EventKind) {
	nav := m.app.Navigation()
	switch kind {
	case uistate.EventEnterSubmenu:
		if parent, ok := nav.Parent(); ok {
			label := ""
			if item, ok := nav.SelectedItem(); ok {
				label = item.Label
			}
			events.UI.MenuEnter(parent.ID, label)
		}
	case uistate.EventExitSubmenu:
		if item, ok := nav.SelectedItem(); ok {
			events.UI.MenuExit(item.ID, nav.Selection())
		}
	}
}
