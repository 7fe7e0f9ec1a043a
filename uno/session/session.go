package session

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/hotseat/config"
	"github.com/ratel-online/hotseat/consts"
	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/event"
	"github.com/ratel-online/hotseat/uno/game"
	"github.com/ratel-online/hotseat/uno/player"
	"github.com/ratel-online/hotseat/uno/ui"
)

// ErrAborted ends a session that a player quit or whose console went away.
var ErrAborted = consts.ErrorsGameAborted

type Option func(*Session)

func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithDeck deals cards in order instead of a shuffled deck.
func WithDeck(cards []card.Card) Option {
	return func(s *Session) {
		s.deck = cards
	}
}

// WithName labels the session, for example with the remote terminal's name.
func WithName(name string) Option {
	return func(s *Session) {
		s.Name = name
	}
}

func WithIDGenerator(generator IDGenerator) Option {
	return func(s *Session) {
		s.ID = generator.NewUUID()
	}
}

// Session is one game played on one console, from asking for the number of
// players to announcing the winner.
type Session struct {
	ID        string
	Name      string
	Engine    *game.Engine
	Console   ui.Console
	CreatedAt time.Time

	config  config.Game
	console ui.Console
	rng     *rand.Rand
	deck    []card.Card
	players []game.Player
	humans  int
}

func New(cfg config.Game, console ui.Console, opts ...Option) *Session {
	s := &Session{
		Console:   console,
		CreatedAt: time.Now(),
		config:    cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ID == "" {
		s.ID = uuidGenerator{}.NewUUID()
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	return s
}

// Players returns who sits at each seat once the game has started.
func (s *Session) Players() []game.Player {
	return s.players
}

// Run plays the session until someone wins. Cancelling ctx releases a
// waiting prompt and ends the session with ErrAborted.
func (s *Session) Run(ctx context.Context) error {
	s.console = ui.WithContext(ctx, s.Console)
	if err := s.console.Display(ui.Message.Welcome()); err != nil {
		return s.abort(err)
	}

	playerCount := s.config.Players
	if playerCount == 0 {
		var err error
		playerCount, err = ui.PromptIntegerInRange(s.console, game.MinPlayers, game.MaxPlayers, ui.Message.PlayerCount())
		if err != nil {
			return s.abort(err)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.start(playerCount); err != nil {
		return err
	}
	if err := s.chooseStartingColor(); err != nil {
		return s.abort(err)
	}
	if err := s.loop(ctx); err != nil {
		return err
	}

	winner, _ := s.Engine.Winner()
	log.Infof("session %s over, %s won after %d turns\n", s.ID, s.Engine.PlayerName(winner), s.Engine.State().Turns)
	return nil
}

func (s *Session) start(playerCount int) error {
	strategy, err := player.ParseStrategy(s.config.BotStrategy)
	if err != nil {
		return err
	}
	bots := s.config.Bots
	if bots > playerCount {
		bots = playerCount
	}
	s.humans = playerCount - bots

	names := make([]string, 0, playerCount)
	for seat := 0; seat < s.humans; seat++ {
		names = append(names, "")
	}
	names = append(names, player.BotNames(bots, s.rng)...)

	bus := event.NewBus()
	bus.Subscribe(announcer{console: s.console})
	opts := []game.Option{
		game.WithRand(s.rng),
		game.WithBus(bus),
		game.WithNames(names...),
	}
	if s.deck != nil {
		opts = append(opts, game.WithDeck(s.deck))
	}

	s.Engine, err = game.New(game.Config{
		Players:     playerCount,
		HandSize:    s.config.HandSize,
		Variant:     game.Variant(s.config.Variant),
		ActionRules: s.config.ActionRules,
	}, opts...)
	if err != nil {
		return err
	}

	s.players = make([]game.Player, playerCount)
	for seat := range s.players {
		name := s.Engine.PlayerName(seat)
		if seat < s.humans {
			s.players[seat] = player.NewHumanPlayer(name, s.console)
		} else {
			s.players[seat] = player.NewBot(strategy, name, s.rng)
		}
	}
	log.Infof("session %s started with %d players (%d bots)\n", s.ID, playerCount, bots)
	return nil
}

func (s *Session) chooseStartingColor() error {
	if !s.Engine.NeedsColor() {
		return nil
	}
	seat := s.Engine.Current()
	if err := s.console.Display(ui.Message.StartingColor(s.Engine.PlayerName(seat))); err != nil {
		return err
	}
	chosen, err := s.players[seat].PickColor(s.Engine.View(seat))
	if err != nil {
		return err
	}
	return s.Engine.ChooseStartingColor(chosen)
}

func (s *Session) loop(ctx context.Context) error {
	lastSeat := -1
	for !s.Engine.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}

		seat := s.Engine.Current()
		if seat != lastSeat && s.needsHandoff(seat) {
			if err := s.handoff(seat); err != nil {
				return s.abort(err)
			}
		}
		lastSeat = seat

		decision, err := s.players[seat].Decide(s.Engine.View(seat))
		if err != nil {
			return s.abort(err)
		}
		if err := s.apply(seat, decision); err != nil {
			return err
		}
	}
	return nil
}

// needsHandoff is true when a human takes over the console from another
// human, whose hand must not be seen.
func (s *Session) needsHandoff(seat int) bool {
	return !s.config.SkipHandoff && s.humans > 1 && seat < s.humans
}

func (s *Session) handoff(seat int) error {
	if err := ui.ClearScreen(s.console); err != nil {
		return err
	}
	return ui.WaitForEnter(s.console, ui.Message.HandOff(s.Engine.PlayerName(seat)))
}

func (s *Session) apply(seat int, decision game.Decision) error {
	current := s.players[seat]
	switch decision.Kind {
	case game.DecisionQuit:
		log.Infof("session %s: %s quit\n", s.ID, current.Name())
		return ErrAborted
	case game.DecisionDraw:
		drawn, err := s.Engine.Draw()
		if err == nil && seat < s.humans {
			return s.abort(s.console.Display(ui.Message.HumanPlayerDrewCards([]card.Card{drawn})))
		}
		if game.IsNoCards(err) && s.Engine.Pass() == nil {
			return nil
		}
		return s.reject(current, decision, err)
	case game.DecisionPass:
		return s.reject(current, decision, s.Engine.Pass())
	default:
		_, err := s.Engine.Play(decision.Move)
		return s.reject(current, decision, err)
	}
}

// reject hands recoverable errors back to the player, who then decides again.
func (s *Session) reject(current game.Player, decision game.Decision, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, game.ErrGameOver) {
		return err
	}
	current.Rejected(decision, err)
	return nil
}

func (s *Session) abort(err error) error {
	if errors.Is(err, ui.ErrCancelled) || errors.Is(err, consts.ErrorsExist) || errors.Is(err, consts.ErrorsChanClosed) {
		log.Infof("session %s aborted: %v\n", s.ID, err)
		return ErrAborted
	}
	return err
}
