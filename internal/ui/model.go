package ui

import (
	"fmt"

	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"diagnostic-canvas/internal/answers"
	"diagnostic-canvas/internal/catalog"
	"diagnostic-canvas/internal/navigation"
	"diagnostic-canvas/internal/report"
)

// Layout defaults used until the first WindowSizeMsg arrives.
const (
	DefaultWidth   = 80
	DefaultHeight  = 30
	EditorHeight   = 4
	MinCardWidth   = 30
	MinViewportRow = 3
)

// Options configures a canvas Model.
type Options struct {
	Store     *answers.Store
	ExportDir string
	Logger    *zap.Logger
	DarkMode  bool
	Bindings  []navigation.Binding
}

// Model is the bubbletea model of the canvas screen.
type Model struct {
	store      *answers.Store
	blocks     []catalog.Block
	title      string
	dispatcher *navigation.Dispatcher
	focus      navigation.Focus
	exportDir  string
	logger     *zap.Logger
	styles     Styles

	editor   textarea.Model
	viewport viewport.Model
	bar      bprogress.Model

	width  int
	height int

	// line offset and height of every rendered card inside the viewport
	cardOffsets []int
	cardHeights []int

	status    string
	statusErr bool
	quitting  bool
}

// New builds the canvas model around a loaded store.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	bindings := opts.Bindings
	if bindings == nil {
		bindings = navigation.DefaultBindings
	}

	blocks := catalog.Blocks()
	ids := make([]string, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}

	styles := DefaultStyles(opts.DarkMode)

	ed := textarea.New()
	ed.Placeholder = "Escribe tu respuesta..."
	ed.CharLimit = 0
	ed.ShowLineNumbers = false
	ed.SetHeight(EditorHeight)
	ed.Focus()

	bar := bprogress.New(
		bprogress.WithSolidFill(string(styles.Theme.Success)),
		bprogress.WithoutPercentage(),
	)

	m := Model{
		store:      opts.Store,
		blocks:     blocks,
		title:      catalog.Title(),
		dispatcher: navigation.NewDispatcher(bindings),
		focus:      navigation.NewFocus(ids),
		exportDir:  opts.ExportDir,
		logger:     logger,
		styles:     styles,
		editor:     ed,
		viewport:   viewport.New(DefaultWidth, DefaultHeight),
		bar:        bar,
	}
	m.editor.SetValue(m.store.Answer(m.focus.ID()))
	m.resize(DefaultWidth, DefaultHeight)
	return m
}

// FocusedID returns the id of the focused block.
func (m Model) FocusedID() string {
	return m.focus.ID()
}

// Status returns the last status line shown in the footer.
func (m Model) Status() string {
	return m.status
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok := m.dispatcher.Resolve(msg.String())
	if !ok {
		return m.forwardToEditor(msg)
	}

	switch action {
	case navigation.ActionMoveDown:
		// the editor keeps the arrow while its cursor can still move down
		if m.editor.Line() < m.editor.LineCount()-1 {
			return m.forwardToEditor(msg)
		}
		m.setFocus(m.focus.Next())

	case navigation.ActionMoveUp:
		if m.editor.Line() > 0 {
			return m.forwardToEditor(msg)
		}
		m.setFocus(m.focus.Prev())

	case navigation.ActionToggleComplete:
		if err := m.store.ToggleComplete(m.focus.ID()); err != nil {
			m.logger.Error("toggle complete", zap.String("block_id", m.focus.ID()), zap.Error(err))
		}

	case navigation.ActionClearAnswer:
		if err := m.store.ClearAnswer(m.focus.ID()); err != nil {
			m.logger.Error("clear answer", zap.String("block_id", m.focus.ID()), zap.Error(err))
		}
		m.editor.Reset()

	case navigation.ActionExport:
		m.export()

	case navigation.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	m.refresh()
	return m, nil
}

func (m Model) forwardToEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	id := m.focus.ID()
	if value := m.editor.Value(); value != m.store.Answer(id) {
		if err := m.store.SetAnswer(id, value); err != nil {
			m.logger.Error("set answer", zap.String("block_id", id), zap.Error(err))
		}
	}
	m.refresh()
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		row := msg.Y - lipgloss.Height(m.headerView()) + m.viewport.YOffset
		if idx := m.cardAt(row); idx >= 0 {
			m.setFocus(m.focus.Set(m.blocks[idx].ID))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// cardAt returns the index of the card covering content row, or -1.
func (m Model) cardAt(row int) int {
	for i, off := range m.cardOffsets {
		if row >= off && row < off+m.cardHeights[i] {
			return i
		}
	}
	return -1
}

// setFocus moves the editor to another block and scrolls it into view.
func (m *Model) setFocus(next navigation.Focus) {
	if next.ID() != m.focus.ID() {
		m.focus = next
		m.editor.SetValue(m.store.Answer(next.ID()))
	}
	m.refresh()
	m.scrollToFocused()
}

func (m *Model) export() {
	path, err := report.Export(m.exportDir, m.store.Answers())
	if err != nil {
		m.logger.Error("export report", zap.Error(err))
		m.status = fmt.Sprintf("No se pudo exportar: %v", err)
		m.statusErr = true
		return
	}
	m.store.Metrics().IncrementExports()
	m.logger.Info("report exported", zap.String("path", path))
	m.status = fmt.Sprintf("Exportado a %s", path)
	m.statusErr = false
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	cardWidth := width - 2
	if cardWidth < MinCardWidth {
		cardWidth = MinCardWidth
	}
	// border and padding take four columns
	m.editor.SetWidth(cardWidth - 4)
	m.bar.Width = width / 2

	m.refresh()
	m.scrollToFocused()
}

// refresh re-renders the cards into the viewport and re-measures layout.
func (m *Model) refresh() {
	vpHeight := m.height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
	if vpHeight < MinViewportRow {
		vpHeight = MinViewportRow
	}
	m.viewport.Width = m.width
	m.viewport.Height = vpHeight

	content, offsets, heights := m.renderCards()
	m.cardOffsets = offsets
	m.cardHeights = heights
	m.viewport.SetContent(content)
}

// scrollToFocused centres the focused card. Missing cards are ignored.
func (m *Model) scrollToFocused() {
	idx := m.focus.Index()
	if idx < 0 || idx >= len(m.cardOffsets) {
		return
	}
	center := m.cardOffsets[idx] + m.cardHeights[idx]/2
	offset := center - m.viewport.Height/2

	maxOffset := m.viewport.TotalLineCount() - m.viewport.Height
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	m.viewport.SetYOffset(offset)
}

// Run starts the full-screen canvas and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run canvas ui: %w", err)
	}
	return nil
}
