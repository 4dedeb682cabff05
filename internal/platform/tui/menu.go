package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// MenuItem is one selectable disk count.
type MenuItem struct {
	Disks   int
	Optimal int
	Best    *storage.Result // Nil when nothing recorded yet
}

// MenuModel is the Bubble Tea model for the disk count picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user picks a disk count
	auto           bool      // Picked with the auto-solve key
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model with the cursor on initialDisks.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, initialDisks int) MenuModel {
	items := make([]MenuItem, 0, config.MaxDisks-config.MinDisks+1)
	for n := config.MinDisks; n <= config.MaxDisks; n++ {
		item := MenuItem{Disks: n, Optimal: hanoi.OptimalMoves(n)}
		if store != nil {
			if best, err := store.BestResult(n); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		cursor:    config.ClampDisks(initialDisks) - config.MinDisks,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
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
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
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

	case MenuActionSelect, MenuActionAuto:
		selected := m.items[m.cursor]
		m.selected = &selected
		m.auto = msg.String() == "a"
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// visibleRange returns the slice of items that fits on screen around the cursor.
func (m MenuModel) visibleRange() (int, int) {
	rows := m.height - 9 // Title, subtitle, footer and spacing
	if rows <= 0 || rows >= len(m.items) {
		return 0, len(m.items)
	}
	start := m.cursor - rows/2
	start = core.Clamp(start, 0, len(m.items)-rows)
	return start, start + rows
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  T O W E R   O F   H A N O I  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("How many disks?", m.width))
	b.WriteString("\n\n")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		item := m.items[i]

		best := "-"
		if item.Best != nil {
			best = fmt.Sprintf("%d", item.Best.Moves)
		}
		line := fmt.Sprintf("%2d disks   optimal %5d   best %5s", item.Disks, item.Optimal, best)

		switch {
		case i == m.cursor:
			line = selectedStyle.Render("> " + line + " ")
		case item.Best != nil && item.Best.Perfect():
			line = "  " + perfectStyle.Render(line) + " "
		default:
			line = "  " + line + " "
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Choose  |  Enter: Play  |  A: Watch solve  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// AutoSolve reports whether the selection asked for auto-solve.
func (m MenuModel) AutoSolve() bool {
	return m.auto
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

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Disks           int
	Auto            bool
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, initialDisks int) (MenuResult, error) {
	model := NewMenuModel(store, cfg, initialDisks)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

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

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Disks = m.Selected().Disks
	result.Auto = m.AutoSolve()
	return result, nil
}
