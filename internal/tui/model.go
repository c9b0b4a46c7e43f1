// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/wordrush/internal/feedback"
	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/model"
	statsPkg "github.com/verte-zerg/wordrush/internal/stats"
	"github.com/verte-zerg/wordrush/internal/wordlist"
)

const rocketWidth = 40

// HistoryStore persists finished games.
type HistoryStore interface {
	InsertGame(ctx context.Context, rec model.GameRecord) (int64, error)
	ListGames(ctx context.Context, cfg model.HistoryConfig) ([]model.GameAggregate, error)
}

// Model implements the Bubble Tea game UI. Update is the only writer of the session.
type Model struct {
	config  model.Config
	session *game.Session
	store   HistoryStore
	beeper  feedback.Beeper
	clock   clockwork.Clock
	log     zerolog.Logger

	keys   keyMap
	help   help.Model
	rocket progress.Model

	width  int
	height int

	// generation increments on every start; ticks from older games are dropped.
	generation int
	startedAt  time.Time

	lastScore int
	bestScore int
	hasLast   bool
}

// NewModel constructs a game TUI model. st may be nil to disable history.
func NewModel(cfg model.Config, session *game.Session, st HistoryStore, beeper feedback.Beeper, clock clockwork.Clock, logger zerolog.Logger) *Model {
	if beeper == nil {
		beeper = feedback.Nop{}
	}
	m := &Model{
		config:  cfg,
		session: session,
		store:   st,
		beeper:  beeper,
		clock:   clock,
		log:     logger,
		keys:    newKeyMap(),
		help:    help.New(),
		rocket: progress.New(
			progress.WithSolidFill("#C89A3A"),
			progress.WithoutPercentage(),
			progress.WithWidth(rocketWidth),
		),
	}
	m.loadFooterStats()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rocket.Width = min(rocketWidth, max(msg.Width-4, 1))
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.generation != m.generation || !m.session.Active() {
		return nil
	}
	if m.session.Tick() {
		m.finishGame()
		return nil
	}
	return tickCmd(m.generation)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	if key.Matches(msg, m.keys.Start) {
		return m.startGame()
	}
	if key.Matches(msg, m.keys.Backspace) {
		m.session.OnBackspace()
		return nil
	}
	if msg.Type != tea.KeyRunes || msg.Paste || msg.Alt || len(msg.Runes) != 1 {
		return nil
	}
	r := unicode.ToLower(msg.Runes[0])
	if !wordlist.IsKey(r) {
		return nil
	}
	m.handleChar(r)
	return nil
}

func (m *Model) startGame() tea.Cmd {
	m.generation++
	m.session.Start()
	m.startedAt = m.clock.Now()
	m.keys.setActive(true)
	m.log.Debug().Int("generation", m.generation).Str("target", m.session.Target()).Msg("game started")
	return tickCmd(m.generation)
}

func (m *Model) handleChar(r rune) {
	var tone feedback.Tone
	switch m.session.OnChar(r) {
	case game.Correct, game.Completed:
		tone = feedback.CorrectTone
	case game.Incorrect:
		tone = feedback.IncorrectTone
	default:
		return
	}
	if !m.config.Sound {
		return
	}
	if err := m.beeper.Play(tone); err != nil {
		m.log.Debug().Err(err).Str("tone", tone.Name).Msg("failed to play tone")
	}
}

func (m *Model) finishGame() {
	m.keys.setActive(false)
	endedAt := m.clock.Now()
	rec := model.GameRecord{
		StartedAt:  m.startedAt,
		EndedAt:    endedAt,
		Score:      m.session.Score(),
		Correct:    m.session.Correct(),
		Incorrect:  m.session.Incorrect(),
		DurationMs: endedAt.Sub(m.startedAt).Milliseconds(),
	}
	m.lastScore = rec.Score
	m.hasLast = true
	if rec.Score > m.bestScore {
		m.bestScore = rec.Score
	}
	m.log.Debug().Int("score", rec.Score).Int("correct", rec.Correct).Int("incorrect", rec.Incorrect).Msg("game over")

	if m.store == nil {
		return
	}
	if _, err := m.store.InsertGame(context.Background(), rec); err != nil {
		m.log.Error().Err(err).Msg("failed to save game")
	}
}

func (m *Model) loadFooterStats() {
	if m.store == nil {
		return
	}
	games, err := m.store.ListGames(context.Background(), model.HistoryConfig{})
	if err != nil {
		m.log.Error().Err(err).Msg("failed to load game history")
		return
	}
	if len(games) == 0 {
		return
	}
	m.lastScore = games[len(games)-1].Score
	m.bestScore = statsPkg.Summarize(games).BestScore
	m.hasLast = true
}
