package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/constant"
	"github.com/tintscan/tintscan/internal/ui"
	"github.com/tintscan/tintscan/key"
	"github.com/tintscan/tintscan/style"
	"github.com/tintscan/tintscan/util"
	"github.com/tintscan/tintscan/workspace"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	spinnerC   spinner.Model
	variablesC list.Model
	modesC     list.Model
	breakdownC list.Model
	helpC      help.Model

	workspace *workspace.Workspace
	mode      string
	modes     []string
	selected  string
	result    workspace.Result

	rebuiltChannel chan rebuiltMsg

	lastError error

	width, height int
	notifier      *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the current state unless it is transient.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range []*list.Model{&b.variablesC, &b.modesC, &b.breakdownC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	return tea.Batch(b.variablesC.StartSpinner(), b.spinnerC.Tick)
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.variablesC.StopSpinner()
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory:  util.Stack[state]{},
		keymap:         keymap,
		workspace:      options.Workspace,
		mode:           lo.Ternary(options.Mode == "", constant.ModeAuto, options.Mode),
		rebuiltChannel: make(chan rebuiltMsg, 1),
		notifier:       &ui.Model{},
		options:        options,
	}

	makeList := func(title string, background lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(background).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.variablesC = makeList("Variables", style.AccentColor)
	bubble.variablesC.SetStatusBarItemName("variable", "variables")

	bubble.modesC = makeList("Resolution Mode", style.Lavender)
	bubble.modesC.SetStatusBarItemName("mode", "modes")
	bubble.modesC.SetFilteringEnabled(false)

	bubble.breakdownC = makeList("Contexts", style.Peach)
	bubble.breakdownC.SetStatusBarItemName("context", "contexts")
	bubble.breakdownC.SetFilteringEnabled(false)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
