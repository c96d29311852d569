// Package tui implements the three-screen Secret Santa flow: a welcome
// screen, the entrant collection screen and the results screen.
package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kriskringle/santadraw/internal/config"
	"github.com/kriskringle/santadraw/internal/draw"
)

type screen string

const (
	screenWelcome screen = "welcome"
	screenCollect screen = "collect"
	screenResults screen = "results"
)

// App is the Bubble Tea model for the whole application.
type App struct {
	cfg    config.Config
	rng    *rand.Rand
	roster *draw.Roster

	screen     screen
	input      textinput.Model
	cursor     int
	matches    []draw.Assignment
	generating bool
	status     string
	statusErr  bool
	width      int
	height     int
	keys       keyMap
	theme      theme
}

// New builds the application model. Pass a seeded rng for deterministic
// draws; nil uses the global source.
func New(cfg config.Config, rng *rand.Rand) *App {
	ti := textinput.New()
	ti.Placeholder = "Type a name..."
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()

	scr := screenWelcome
	if !cfg.UI.ShowWelcome {
		scr = screenCollect
	}

	return &App{
		cfg:    cfg,
		rng:    rng,
		roster: draw.NewRoster(),
		screen: scr,
		input:  ti,
		keys:   newKeyMap(),
		theme:  newTheme(cfg.UI.Accent),
		width:  80,
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil
	case matchesMsg:
		a.matches = []draw.Assignment(m)
		a.generating = false
		return a, nil
	case errMsg:
		a.generating = false
		a.screen = screenCollect
		a.setError("error: " + m.Error())
		return a, nil
	case tea.KeyMsg:
		switch a.screen {
		case screenWelcome:
			return a.handleWelcomeKey(m)
		case screenResults:
			return a.handleResultsKey(m)
		default:
			return a.handleCollectKey(m)
		}
	}
	return a, nil
}

func (a *App) handleWelcomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "esc", "ctrl+c":
		return a, tea.Quit
	case "enter", " ", "s":
		a.screen = screenCollect
	}
	return a, nil
}

func (a *App) handleCollectKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit
	case "enter":
		a.submitName()
		return a, nil
	case "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down":
		if a.cursor < a.roster.Len()-1 {
			a.cursor++
		}
		return a, nil
	case "ctrl+x":
		a.removeUnderCursor()
		return a, nil
	case "ctrl+g":
		return a.startDraw()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	return a, cmd
}

func (a *App) handleResultsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "esc", "ctrl+c":
		return a, tea.Quit
	case "r", "enter":
		if a.generating {
			return a, nil
		}
		a.reset()
	}
	return a, nil
}

// submitName validates the current input and adds it to the roster.
// Rejections land on the status bar and change no state.
func (a *App) submitName() {
	name := strings.TrimSpace(a.input.Value())
	if err := a.roster.Add(name); err != nil {
		switch {
		case errors.Is(err, draw.ErrEmptyName):
			a.setError("name cannot be empty")
		case errors.Is(err, draw.ErrDuplicateName):
			a.setError(fmt.Sprintf("%s is already entered", name))
		default:
			a.setError(err.Error())
		}
		return
	}

	a.input.Reset()
	status := "added " + name
	if hint, ok := a.roster.Closest(name); ok {
		status += fmt.Sprintf(" (looks close to %s)", hint)
	}
	a.setStatus(status)
}

func (a *App) removeUnderCursor() {
	names := a.roster.Names()
	if len(names) == 0 {
		return
	}
	if a.cursor >= len(names) {
		a.cursor = len(names) - 1
	}
	removed := names[a.cursor]
	a.roster.Remove(removed)
	if a.cursor >= a.roster.Len() && a.cursor > 0 {
		a.cursor--
	}
	a.setStatus("removed " + removed)
}

// startDraw moves to the results screen and kicks off match generation.
// The roster is consumed by the draw; reset starts a fresh collection.
func (a *App) startDraw() (tea.Model, tea.Cmd) {
	if a.roster.Len() < 2 {
		a.setError("need at least 2 entrants to draw")
		return a, nil
	}

	people := a.roster.Names()
	a.roster.Clear()
	a.input.Reset()
	a.cursor = 0
	a.screen = screenResults
	a.generating = true
	a.setStatus("")
	return a, a.generateCmd(people)
}

func (a *App) reset() {
	a.matches = nil
	a.screen = screenCollect
	a.input.Reset()
	a.cursor = 0
	a.setStatus("")
}

// generateCmd produces the matching off the update loop. The short sleep
// is purely cosmetic so the "Generating matchings..." line is visible.
func (a *App) generateCmd(people []string) tea.Cmd {
	delay := time.Duration(a.cfg.UI.RevealDelayMS) * time.Millisecond
	rng := a.rng
	return func() tea.Msg {
		if delay > 0 {
			time.Sleep(delay)
		}
		pairs, err := draw.Generate(people, rng)
		if err != nil {
			return errMsg{err}
		}
		return matchesMsg(pairs)
	}
}

func (a *App) setStatus(text string) {
	a.status = text
	a.statusErr = false
}

func (a *App) setError(text string) {
	a.status = text
	a.statusErr = true
}

// messages
type matchesMsg []draw.Assignment

type errMsg struct{ error }
