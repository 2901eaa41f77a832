package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
	"github.com/vovakirdan/canvas-arcade/internal/theme"
)

// MenuItem is one game in the picker with its record so far.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
	BestLevel int
	Runs      int
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	theme          *theme.Settings
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered games with their stored records.
func NewMenuModel(store *storage.Store, settings *theme.Settings, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if st, ok := stats[g.ID]; ok {
			items[i].HighScore = st.HighScore
			items[i].BestLevel = st.BestLevel
			items[i].Runs = st.GamesCount
		}
	}

	if settings == nil {
		settings, _ = theme.Load(nil)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		theme:     settings,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard

	case MenuActionTheme:
		//nolint:errcheck // Best-effort save, the toggle still applies
		m.theme.Toggle()
	}

	return m, nil
}

// View renders the game list in a framed panel.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	p := m.theme.Palette()
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	item := lipgloss.NewStyle().Foreground(p.Foreground)
	active := item.Bold(true).Foreground(p.Accent)
	muted := lipgloss.NewStyle().Foreground(p.Muted)
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(1, 3)

	rows := make([]string, 0, len(m.items)*2)
	for i, it := range m.items {
		cursor, style := "  ", item
		if i == m.cursor {
			cursor, style = "▸ ", active
		}
		rows = append(rows, style.Render(cursor+it.Title), muted.Render("    "+it.record()))
	}
	if len(rows) == 0 {
		rows = append(rows, muted.Render("no games registered"))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(title.Render("C A N V A S   A R C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(panel.Render(strings.Join(rows, "\n")), m.width))
	b.WriteString("\n\n")
	controls := fmt.Sprintf("↑/↓ move · enter play · tab scores · t theme (%s) · q quit", m.theme.Mode())
	b.WriteString(centerText(muted.Render(controls), m.width))
	b.WriteString("\n")

	return lipgloss.NewStyle().Background(p.Background).Render(b.String())
}

// record summarizes the stored runs of a game.
func (it MenuItem) record() string {
	if it.Runs == 0 {
		return "not played yet"
	}
	s := fmt.Sprintf("best %d", it.HighScore)
	if it.BestLevel > 0 {
		s += fmt.Sprintf(" · lv %d", it.BestLevel)
	}
	return s + fmt.Sprintf(" · %d runs", it.Runs)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers a single line within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// centerBlock centers a multi-line block as a whole.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, settings *theme.Settings, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, settings, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
