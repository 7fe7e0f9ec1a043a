package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/action"
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/event"
)

const NoWinner = -1

type Config struct {
	Players  int
	HandSize int
	Variant  Variant
	// ActionRules enables skip, reverse and draw penalties. Without them turns
	// always rotate one seat forward.
	ActionRules bool
}

type options struct {
	rng   *rand.Rand
	deck  []card.Card
	bus   *event.Bus
	names []string
}

type Option func(*options)

// WithRand makes shuffling deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithDeck replaces the shuffled variant deck with cards, dealt in order.
func WithDeck(cards []card.Card) Option {
	return func(o *options) {
		o.deck = cards
	}
}

// WithBus lets listeners subscribe before the first card is turned.
func WithBus(bus *event.Bus) Option {
	return func(o *options) {
		o.bus = bus
	}
}

// WithNames names the seats in order. Seats without a name are called
// "Player N".
func WithNames(names ...string) Option {
	return func(o *options) {
		o.names = names
	}
}

// Outcome describes an accepted play.
type Outcome struct {
	Seat           int
	Top            card.Card
	Won            bool
	ThreeCardsLeft bool
	Next           int
}

type Engine struct {
	config Config
	rng    *rand.Rand
	bus    *event.Bus
	state  *State
	names  []string
	total  int
}

func New(config Config, opts ...Option) (*Engine, error) {
	if config.Players < MinPlayers || config.Players > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrPlayerCount, config.Players)
	}
	if config.HandSize == 0 {
		config.HandSize = DefaultHandSize
	}
	variant, err := ParseVariant(string(config.Variant))
	if err != nil {
		return nil, err
	}
	config.Variant = variant

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.bus == nil {
		o.bus = event.NewBus()
	}

	cards := o.deck
	if cards == nil {
		cards = BuildDeck(config.Variant, o.rng)
	}
	deck := NewDeck(cards)

	hands, err := Deal(deck, config.Players, config.HandSize)
	if err != nil {
		return nil, err
	}
	firstCard, err := deck.DrawOne()
	if err != nil {
		return nil, fmt.Errorf("turning first card: %w", err)
	}
	pile := NewPile()
	pile.Add(firstCard)

	names := make([]string, config.Players)
	for seat := range names {
		if seat < len(o.names) && o.names[seat] != "" {
			names[seat] = o.names[seat]
			continue
		}
		names[seat] = fmt.Sprintf("Player %d", seat+1)
	}

	e := &Engine{
		config: config,
		rng:    o.rng,
		bus:    o.bus,
		names:  names,
		total:  len(cards),
		state: &State{
			Draw:    deck,
			Discard: pile,
			Hands:   hands,
			Order:   NewCycler(config.Players),
			Winner:  NoWinner,
		},
	}
	e.bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
	log.Infof("game started: %d players, %d cards, first card %s\n", config.Players, e.total, firstCard.Code())
	return e, nil
}

func (e *Engine) Config() Config {
	return e.config
}

func (e *Engine) Bus() *event.Bus {
	return e.bus
}

func (e *Engine) State() *State {
	return e.state
}

func (e *Engine) Current() int {
	return e.state.Current()
}

func (e *Engine) Top() card.Card {
	return e.state.Top()
}

func (e *Engine) PlayerName(seat int) string {
	return e.names[seat]
}

func (e *Engine) Over() bool {
	return e.state.Over
}

func (e *Engine) Winner() (int, bool) {
	return e.state.Winner, e.state.Over
}

// Total is the size of the multiset the game was created with.
func (e *Engine) Total() int {
	return e.total
}

// NeedsColor reports whether the first card turned was a wild that still
// waits for its colour.
func (e *Engine) NeedsColor() bool {
	top := e.state.Top()
	return !e.state.Over && top.IsWild() && top.Chosen == color.None
}

// ChooseStartingColor lets the current player colour a wild first card.
func (e *Engine) ChooseStartingColor(chosen color.Color) error {
	if !e.NeedsColor() {
		return ErrColorNotNeeded
	}
	if chosen == color.None {
		return ErrColorRequired
	}
	e.state.Discard.ReplaceTop(e.state.Top().WithColor(chosen))
	e.bus.ColorPicked.Emit(event.ColorPickedPayload{
		PlayerName: e.names[e.state.Current()],
		Color:      chosen,
	})
	return nil
}

func (e *Engine) View(seat int) View {
	handCounts := make([]int, len(e.state.Hands))
	for i, hand := range e.state.Hands {
		handCounts[i] = hand.Size()
	}
	top := e.state.Top()
	names := make([]string, len(e.names))
	copy(names, e.names)

	return View{
		Seat:          seat,
		PlayerNames:   names,
		Current:       e.state.Current(),
		Top:           top,
		ActiveColor:   top.ActiveColor(),
		Hand:          e.state.Hands[seat].Cards(),
		PlayableCards: e.state.Hands[seat].PlayableCards(top),
		HandCounts:    handCounts,
		DrawPileSize:  e.state.Draw.Size(),
		Over:          e.state.Over,
		Winner:        e.state.Winner,
	}
}

// Draw moves one card into the current player's hand. The turn stays with
// that player.
func (e *Engine) Draw() (card.Card, error) {
	if e.state.Over {
		return card.Card{}, ErrGameOver
	}
	drawn, err := e.drawCards(e.state.Current(), 1)
	if err != nil {
		return card.Card{}, err
	}
	return drawn[0], nil
}

// Pass hands the turn on. It is only accepted when the current player can
// neither play nor draw.
func (e *Engine) Pass() error {
	if e.state.Over {
		return ErrGameOver
	}
	seat := e.state.Current()
	if e.canDraw() || len(e.state.Hands[seat].PlayableCards(e.state.Top())) > 0 {
		return ErrPassNotAllowed
	}
	e.bus.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: e.names[seat]})
	e.state.Order.Next()
	e.state.Turns++
	return nil
}

func (e *Engine) Play(move Move) (Outcome, error) {
	if e.state.Over {
		return Outcome{}, ErrGameOver
	}
	if e.NeedsColor() {
		return Outcome{}, fmt.Errorf("%w for the first card", ErrColorRequired)
	}

	seat := e.state.Current()
	hand := e.state.Hands[seat]
	played := move.Card.Plain()
	if !hand.Contains(played) {
		return Outcome{}, fmt.Errorf("%w: %s", ErrCardNotInHand, played.Code())
	}

	top := e.state.Top()
	if played.IsWild() && move.Color == color.None {
		return Outcome{}, ErrColorRequired
	}
	valid, newTop := IsValid(played, top, move.Color)
	if !valid {
		return Outcome{}, &IllegalPlayError{Card: played, Top: top}
	}

	hand.RemoveCard(played)
	e.state.Discard.Add(newTop)
	e.state.Turns++
	e.bus.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: e.names[seat], Card: newTop})
	if newTop.IsWild() {
		e.bus.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: e.names[seat], Color: newTop.Chosen})
	}

	outcome := Outcome{Seat: seat, Top: newTop, Next: NoWinner}
	if hand.Empty() {
		e.state.Over = true
		e.state.Winner = seat
		outcome.Won = true
		e.bus.WinnerFound.Emit(event.WinnerFoundPayload{PlayerName: e.names[seat]})
		log.Infof("%s won after %d turns\n", e.names[seat], e.state.Turns)
		return outcome, nil
	}
	if hand.Size() == 3 {
		outcome.ThreeCardsLeft = true
		e.bus.ThreeCardsLeft.Emit(event.ThreeCardsLeftPayload{PlayerName: e.names[seat]})
	}

	if e.config.ActionRules {
		e.performCardActions(newTop)
	} else {
		e.state.Order.Next()
	}
	outcome.Next = e.state.Current()
	return outcome, nil
}

func (e *Engine) performCardActions(played card.Card) {
	skip := false
	for _, cardAction := range played.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			victim := e.state.Order.Peek()
			if _, err := e.drawCards(victim, cardAction.Amount()); err != nil {
				log.Errorf("%s could not draw %d penalty cards: %v\n", e.names[victim], cardAction.Amount(), err)
			}
		case action.ReverseTurnsAction:
			e.state.Order.Reverse()
			e.bus.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{PlayerName: e.names[e.state.Current()]})
			if e.config.Players == 2 {
				skip = true
			}
		case action.SkipTurnAction:
			skip = true
		case action.PickColorAction:
			// chosen with the move
		}
	}

	e.state.Order.Next()
	if skip {
		e.bus.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: e.names[e.state.Current()]})
		e.state.Order.Next()
	}
}

func (e *Engine) canDraw() bool {
	return e.state.Draw.Size() > 0 || e.state.Discard.Size() > 1
}

// drawCards moves up to amount cards into seat's hand, reshuffling the
// discard pile into the draw pile when it runs dry.
func (e *Engine) drawCards(seat int, amount int) ([]card.Card, error) {
	drawn := make([]card.Card, 0, amount)
	for len(drawn) < amount {
		if e.state.Draw.Size() == 0 && !e.reshuffle() {
			break
		}
		c, err := e.state.Draw.DrawOne()
		if err != nil {
			break
		}
		drawn = append(drawn, c)
	}

	if len(drawn) > 0 {
		e.state.Hands[seat].AddCards(drawn)
		e.bus.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerName: e.names[seat], Cards: drawn})
	}
	if len(drawn) < amount {
		err := fmt.Errorf("%w: %s got %d of %d", ErrNoCardsAvailable, e.names[seat], len(drawn), amount)
		log.Error(err)
		return drawn, err
	}
	return drawn, nil
}

func (e *Engine) reshuffle() bool {
	cards := e.state.Discard.TakeAllButTop()
	if len(cards) == 0 {
		return false
	}
	e.state.Draw.Refill(cards, e.rng)
	e.bus.Reshuffled.Emit(event.ReshuffledPayload{Cards: e.state.Draw.Size()})
	log.Infof("draw pile exhausted, reshuffled %d discarded cards\n", len(cards))
	return true
}

// IsNoCards reports whether err means nothing was left to draw.
func IsNoCards(err error) bool {
	return errors.Is(err, ErrNoCardsAvailable)
}
