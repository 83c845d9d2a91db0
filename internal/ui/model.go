package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"flashfind/internal/actions"
	"flashfind/internal/config"
	"flashfind/internal/domain"
	"flashfind/internal/finder"
	"flashfind/internal/results"
	"flashfind/internal/ui/input"
	inputtypes "flashfind/internal/ui/input/types"
	"flashfind/internal/ui/logic"
	"flashfind/internal/ui/views"
)

// Rows taken by everything except the result list
const chromeHeight = 11

const statusTimeout = 3 * time.Second

// Options wires the model to the rest of the application
type Options struct {
	Config        *config.Config
	ConfigService config.ConfigService // used to persist settings on quit, may be nil
	Searcher      finder.Searcher
	Actions       *actions.Service
	Logger        zerolog.Logger
	InitialQuery  string
	Context       context.Context
}

// Model represents the UI state
type Model struct {
	ctx       context.Context
	config    *config.Config
	configSvc config.ConfigService
	searcher  finder.Searcher
	actions   *actions.Service
	store     *results.Store
	log       zerolog.Logger

	width        int
	height       int
	help         help.Model
	spinner      spinner.Model
	keys         inputtypes.KeyMap
	inputHandler *input.Handler
	navigator    *logic.Navigator
	renderer     *views.Renderer
	pager        *Pager

	regex        bool
	searching    bool
	cancelSearch context.CancelFunc
	searchSeq    int
	initialQuery string

	countLabel      string
	statusMessage   string
	statusID        int
	notice          *domain.Notice
	noticeReturn    inputtypes.Mode
	pendingSavePath string
	inPagerMode     bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	keys := inputtypes.DefaultKeyMap()
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:          ctx,
		config:       cfg,
		configSvc:    opts.ConfigService,
		searcher:     opts.Searcher,
		actions:      opts.Actions,
		store:        opts.Actions.Store(),
		log:          opts.Logger,
		help:         help.New(),
		spinner:      sp,
		keys:         keys,
		inputHandler: input.New(keys),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		pager:        NewPager(nil),
		regex:        cfg.Regex,
		initialQuery: strings.TrimSpace(opts.InitialQuery),
	}
	m.inputHandler.SetQuery(m.initialQuery)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.initialQuery != "" {
		return m.startSearch(m.initialQuery)
	}
	return m.inputHandler.ChangeMode(inputtypes.ModeQuery, "")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{Store: m.store, Busy: m.searching}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			_, other := m.handleNonKeyboardMsg(msg)
			return m, tea.Batch(cmd, other)
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		QueryView:      m.inputHandler.QueryInput().View(),
		QueryFocused:   m.inputHandler.CurrentMode() == inputtypes.ModeQuery,
		Regex:          m.regex,
		Searching:      m.searching,
		Spinner:        m.spinner.View(),
		SearchDir:      m.config.SearchDir,
		Items:          m.store.Items(),
		SelectedIndex:  m.store.SelectedIndex(),
		ViewportOffset: m.navigator.ViewportOffset(),
		ViewportHeight: m.navigator.ViewportHeight(),
		CountLabel:     m.countLabel,
		StatusMessage:  m.statusMessage,
		Notice:         m.notice,
		HelpView:       m.helpView(),
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSavePath:
		state.PromptView = m.inputHandler.PromptInput().View()
	case inputtypes.ModeConfirmOverwrite:
		state.ConfirmPath = m.pendingSavePath
	}

	return m.renderer.Render(state)
}

func (m *Model) helpView() string {
	if m.inputHandler.CurrentMode() == inputtypes.ModeQuery {
		return m.help.ShortHelpView(m.keys.QueryHelp())
	}
	return m.help.View(m.keys)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug().Str("action", action.Type()).Str("mode", m.inputHandler.ModeName()).Msg("processAction")

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.DeselectAction:
		m.store.ClearSelection()

	case inputtypes.UpdateTextAction:
		// Text inputs render themselves; nothing to mirror

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeQuery:
			return m.startSearch(a.Text)
		case inputtypes.ModeSavePath:
			return m.submitSavePath(a.Text)
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeSavePath {
			m.log.Debug().Msg("save cancelled")
		}

	case inputtypes.ToggleRegexAction:
		m.regex = !m.regex
		state := "off"
		if m.regex {
			state = "on"
		}
		return m.setStatus(fmt.Sprintf("Regex %s", state))

	case inputtypes.CancelSearchAction:
		if m.cancelSearch != nil {
			m.cancelSearch()
		}

	case inputtypes.OpenAction:
		if err := m.actions.OpenSelected(); err != nil {
			return m.showError(err)
		}
		path, _ := m.store.Selected()
		return m.setStatus("Opened " + path)

	case inputtypes.CopyPathAction:
		if _, err := m.actions.CopySelectedPath(); err != nil {
			return m.showError(err)
		}
		return m.showNotice(domain.NoticeCopied)

	case inputtypes.OpenFolderAction:
		if err := m.actions.OpenContainingFolder(); err != nil {
			return m.showError(err)
		}
		path, _ := m.store.Selected()
		return m.setStatus("Opened " + filepath.Dir(path))

	case inputtypes.PreviewAction:
		path, err := m.actions.PreviewTarget()
		if err != nil {
			return m.showError(err)
		}
		return m.previewPager(path)

	case inputtypes.ClearResultsAction:
		m.clearResults()
		return m.setStatus("Results cleared")

	case inputtypes.SaveResultsAction:
		if err := m.actions.CheckSave(); err != nil {
			return m.showError(err)
		}
		return m.inputHandler.ChangeMode(inputtypes.ModeSavePath, m.config.DefaultSavePath())

	case inputtypes.ConfirmOverwriteAction:
		path := m.pendingSavePath
		m.pendingSavePath = ""
		if a.Confirmed && path != "" {
			return m.saveResults(path)
		}

	case inputtypes.DismissNoticeAction:
		m.notice = nil
		return m.inputHandler.ChangeMode(m.noticeReturn, "")

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		m.updateViewportHeight()

	case inputtypes.QuitAction:
		m.stopSearch()
		return func() tea.Msg {
			return quitMsg{saveConfig: m.config.UI.AutosaveOnExit}
		}
	}

	return nil
}

// startSearch validates the query, cancels any running search, clears the
// list, then runs fd in the background.
func (m *Model) startSearch(text string) tea.Cmd {
	q := domain.NewQuery(text, m.regex)
	if q.IsEmpty() {
		return m.showError(domain.ErrEmptyQuery)
	}

	m.stopSearch()
	m.clearResults()

	m.searchSeq++
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelSearch = cancel
	m.searching = true
	m.statusMessage = fmt.Sprintf("Searching for %q...", q.Pattern)
	m.log.Info().Str("query", q.Pattern).Bool("regex", q.Regex).Int("seq", m.searchSeq).Msg("search started")

	seq := m.searchSeq
	searcher := m.searcher
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		rs, err := searcher.Search(ctx, q)
		return searchResultMsg{seq: seq, query: q, results: rs, err: err}
	})
}

// stopSearch cancels the running search; its result will be dropped
func (m *Model) stopSearch() {
	if m.cancelSearch != nil {
		m.cancelSearch()
		m.cancelSearch = nil
	}
	m.searching = false
}

func (m *Model) handleSearchResult(msg searchResultMsg) tea.Cmd {
	if msg.seq != m.searchSeq {
		m.log.Debug().Int("seq", msg.seq).Int("current", m.searchSeq).Msg("dropping stale search result")
		return nil
	}

	if m.cancelSearch != nil {
		m.cancelSearch()
		m.cancelSearch = nil
	}
	m.searching = false
	m.statusMessage = ""

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			m.log.Info().Str("query", msg.query.Pattern).Msg("search cancelled")
			return m.setStatus("Search cancelled")
		}
		m.log.Error().Err(msg.err).Str("query", msg.query.Pattern).Msg("search failed")
		return m.showError(msg.err)
	}

	if msg.results.Len() == 0 {
		return m.showNotice(domain.NoticeNoResults)
	}

	m.store.Replace(msg.results)
	m.navigator.Reset(m.store.Len())
	m.countLabel = fmt.Sprintf("Results Found: %d", m.store.Len())
	m.log.Info().Str("query", msg.query.Pattern).Int("results", m.store.Len()).Msg("search finished")

	if m.inputHandler.CurrentMode() == inputtypes.ModeQuery {
		return m.inputHandler.ChangeMode(inputtypes.ModeNormal, "")
	}
	return nil
}

func (m *Model) clearResults() {
	m.actions.Clear()
	m.countLabel = ""
	m.navigator.Reset(0)
}

func (m *Model) submitSavePath(text string) tea.Cmd {
	path := expandHome(strings.TrimSpace(text))
	if path == "" {
		return nil
	}

	if m.config.Save.ConfirmOverwrite {
		if _, err := os.Stat(path); err == nil {
			m.pendingSavePath = path
			return m.inputHandler.ChangeMode(inputtypes.ModeConfirmOverwrite, "")
		}
	}
	return m.saveResults(path)
}

func (m *Model) saveResults(path string) tea.Cmd {
	if err := m.actions.Save(path); err != nil {
		return m.showError(err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		m.config.Save.Dir = filepath.Dir(abs)
	}
	return m.showNotice(domain.NoticeSaved(path))
}

func (m *Model) navigate(direction string) {
	n := m.store.Len()
	if n == 0 {
		return
	}

	switch direction {
	case "up":
		m.store.Move(-1)
	case "down":
		m.store.Move(1)
	case "pageup":
		m.store.Move(-m.navigator.PageSize())
	case "pagedown":
		m.store.Move(m.navigator.PageSize())
	case "home":
		m.store.Select(0)
	case "end":
		m.store.Select(n - 1)
	}
	m.ensureSelectedVisible()
}

// ensureSelectedVisible ensures the selected item is visible in the viewport
func (m *Model) ensureSelectedVisible() {
	m.navigator.UpdateState(m.navigator.ViewportOffset(), m.navigator.ViewportHeight(), m.store.Len())
	m.navigator.Follow(m.store.SelectedIndex())
}

func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		return
	}
	reserved := chromeHeight
	if m.help.ShowAll {
		reserved += lipgloss.Height(m.help.View(m.keys)) - 1
	}
	m.navigator.SetViewportHeight(m.height - reserved)
	m.ensureSelectedVisible()
}

// showNotice opens the modal; the current mode is restored when it is dismissed
func (m *Model) showNotice(n domain.Notice) tea.Cmd {
	if mode := m.inputHandler.CurrentMode(); mode != inputtypes.ModeNotice {
		m.noticeReturn = mode
	}
	m.notice = &n
	return m.inputHandler.ChangeMode(inputtypes.ModeNotice, "")
}

func (m *Model) showError(err error) tea.Cmd {
	return m.showNotice(domain.NoticeFor(err))
}

// setStatus shows a transient message on the status line
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusMessage = text
	m.statusID++
	id := m.statusID
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}

// previewPager returns a command that shows a file using the ov pager
func (m *Model) previewPager(path string) tea.Cmd {
	if m.program == nil {
		return m.showError(errors.New("preview is unavailable"))
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(path)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return previewPagerMsg{path: path, err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultMsg:
		return m, m.handleSearchResult(msg)

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case previewPagerMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("path", msg.path).Msg("preview pager failed")
			return m, m.showError(msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.statusMessage = ""
		}
		return m, nil

	case quitMsg:
		if msg.saveConfig {
			m.persistConfig()
		}
		return m, tea.Quit
	}

	return m, nil
}

// persistConfig writes back the settings changed during the session.
// Flag overrides stay out of the file, so the stored config is reloaded first.
func (m *Model) persistConfig() {
	if m.configSvc == nil {
		return
	}
	stored, err := m.configSvc.Load()
	if err != nil {
		m.log.Error().Err(err).Str("path", m.configSvc.Path()).Msg("failed to reload config")
		return
	}
	stored.Regex = m.regex
	stored.Save.Dir = m.config.Save.Dir
	if err := m.configSvc.Save(stored); err != nil {
		m.log.Error().Err(err).Str("path", m.configSvc.Path()).Msg("failed to save config")
		return
	}
	m.log.Debug().Str("path", m.configSvc.Path()).Msg("config saved")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
