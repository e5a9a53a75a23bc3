package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/storage"
)

// SessionOptions configures a picker session.
type SessionOptions struct {
	Config *config.Config
	Store  *storage.Store
	Logger *log.Logger
	Player string
	Seed   int64

	Width, Height int
}

type sessionMode int

const (
	modePicker sessionMode = iota
	modeGame
	modeScores
)

// Messages the children send when they are done.
type (
	gameDoneMsg   struct{}
	scoresDoneMsg struct{}
)

// SessionModel manages the full session flow: picker -> demo -> picker.
// This is the top-level model of the menu command and of SSH sessions.
type SessionModel struct {
	opts   SessionOptions
	mode   sessionMode
	picker PickerModel
	board  ScoreboardModel
	game   *Model
	played int
}

// NewSessionModel creates a session starting at the picker.
func NewSessionModel(opts SessionOptions) *SessionModel {
	return &SessionModel{
		opts:   opts,
		picker: NewPickerModel(opts.Store, opts.Width, opts.Height),
	}
}

// Init initializes the session.
func (m *SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update routes messages to the active child.
func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch msg.(type) {
	case gameDoneMsg:
		m.game = nil
		m.openPicker()
		return m, nil
	case scoresDoneMsg:
		if m.board.IsQuitting() {
			return m, tea.Quit
		}
		m.openPicker()
		return m, nil
	}

	switch m.mode {
	case modeGame:
		_, cmd := m.game.Update(msg)
		return m, cmd
	case modeScores:
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd
	default:
		return m.updatePicker(msg)
	}
}

func (m *SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	switch {
	case m.picker.IsQuitting():
		return m, tea.Quit

	case m.picker.WantsScores():
		m.board = NewScoreboardModel(m.opts.Store, "", m.opts.Width, m.opts.Height)
		m.board.onExit = func() tea.Msg { return scoresDoneMsg{} }
		m.mode = modeScores
		return m, nil

	case m.picker.Selected() != nil:
		demo := *m.picker.Selected()
		m.played++
		seed := m.opts.Seed
		if seed != 0 {
			seed += int64(m.played)
		}

		m.game = NewModel(Options{
			Demo:   demo,
			Config: m.opts.Config,
			Store:  m.opts.Store,
			Logger: m.opts.Logger,
			Player: m.opts.Player,
			Seed:   seed,
			Width:  m.opts.Width,
			Height: m.opts.Height,
		})
		m.game.onExit = func() tea.Msg { return gameDoneMsg{} }
		m.mode = modeGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m *SessionModel) openPicker() {
	m.picker = NewPickerModel(m.opts.Store, m.opts.Width, m.opts.Height)
	m.mode = modePicker
}

// View renders the active child.
func (m *SessionModel) View() string {
	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeScores:
		return m.board.View()
	default:
		return m.picker.View()
	}
}

// Finish closes a running demo so its score and session are recorded.
func (m *SessionModel) Finish() {
	if m.game != nil {
		m.game.finish()
	}
}

// RunSession runs the picker session in the local terminal.
func RunSession(ctx context.Context, opts SessionOptions) error {
	m := NewSessionModel(opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	m.Finish()
	return err
}
