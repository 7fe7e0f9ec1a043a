package game_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/event"
	"github.com/ratel-online/hotseat/uno/game"
	"github.com/stretchr/testify/require"
)

var (
	r1 = card.NewNumberCard(color.Red, 1)
	r2 = card.NewNumberCard(color.Red, 2)
	r3 = card.NewNumberCard(color.Red, 3)
	r4 = card.NewNumberCard(color.Red, 4)
	r5 = card.NewNumberCard(color.Red, 5)
	r6 = card.NewNumberCard(color.Red, 6)
	r7 = card.NewNumberCard(color.Red, 7)
	g1 = card.NewNumberCard(color.Green, 1)
	g2 = card.NewNumberCard(color.Green, 2)
	g3 = card.NewNumberCard(color.Green, 3)
	g4 = card.NewNumberCard(color.Green, 4)
	b9 = card.NewNumberCard(color.Blue, 9)
)

func newToyGame(t *testing.T, players int, handSize int, deck []card.Card, actionRules bool) (*game.Engine, *event.DummyListener) {
	t.Helper()
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.Subscribe(listener)

	engine, err := game.New(
		game.Config{Players: players, HandSize: handSize, ActionRules: actionRules},
		game.WithDeck(deck),
		game.WithBus(bus),
		game.WithRand(rand.New(rand.NewSource(1))),
	)
	require.NoError(t, err)
	return engine, listener
}

func requireConserved(t *testing.T, engine *game.Engine) {
	t.Helper()
	require.Equal(t, engine.Total(), engine.State().CardCount())
}

func TestNew(t *testing.T) {
	t.Run("deals_seven_cards_to_every_player", func(t *testing.T) {
		for players := 2; players <= 4; players++ {
			engine, err := game.New(game.Config{Players: players}, game.WithRand(rand.New(rand.NewSource(3))))
			require.NoError(t, err)
			for _, hand := range engine.State().Hands {
				require.Equal(t, 7, hand.Size())
			}
			require.Equal(t, 96, engine.Total())
			require.Equal(t, 96-players*7-1, engine.State().Draw.Size())
			require.Equal(t, 1, engine.State().Discard.Size())
			require.Equal(t, 0, engine.Current())
			requireConserved(t, engine)
		}
	})

	t.Run("uses_the_standard_variant", func(t *testing.T) {
		engine, err := game.New(game.Config{Players: 2, Variant: game.VariantStandard})
		require.NoError(t, err)
		require.Equal(t, 108, engine.Total())
	})

	t.Run("rejects_invalid_configuration", func(t *testing.T) {
		_, err := game.New(game.Config{Players: 5})
		require.True(t, errors.Is(err, game.ErrPlayerCount))

		_, err = game.New(game.Config{Players: 2, Variant: "jumbo"})
		require.True(t, errors.Is(err, game.ErrUnknownVariant))

		_, err = game.New(game.Config{Players: 2, HandSize: 2}, game.WithDeck([]card.Card{r1, r2, r3, r4}))
		require.True(t, errors.Is(err, game.ErrDeckEmpty))
	})

	t.Run("announces_the_first_card", func(t *testing.T) {
		_, listener := newToyGame(t, 2, 2, []card.Card{r1, g1, r1, g1, r7}, false)
		require.Equal(t, []interface{}{event.FirstCardPlayedPayload{Card: r7}}, listener.ReceivedPayloads())
	})
}

func TestToyGame(t *testing.T) {
	engine, listener := newToyGame(t, 2, 2, []card.Card{r1, g1, r1, g1, r7}, false)
	state := engine.State()

	require.Equal(t, []card.Card{r1, g1}, state.Hands[0].Cards())
	require.Equal(t, []card.Card{r1, g1}, state.Hands[1].Cards())
	require.Equal(t, 0, state.Draw.Size())
	require.Equal(t, r7, engine.Top())

	_, err := engine.Play(game.Move{Card: g1})
	var illegal *game.IllegalPlayError
	require.True(t, errors.As(err, &illegal))
	require.Equal(t, g1, illegal.Card)
	require.Equal(t, r7, illegal.Top)
	require.Equal(t, []card.Card{r1, g1}, state.Hands[0].Cards())
	require.Equal(t, 0, engine.Current())
	requireConserved(t, engine)

	outcome, err := engine.Play(game.Move{Card: r1})
	require.NoError(t, err)
	require.Equal(t, game.Outcome{Seat: 0, Top: r1, Next: 1}, outcome)
	require.Equal(t, []card.Card{g1}, state.Hands[0].Cards())
	require.Equal(t, r1, engine.Top())
	requireConserved(t, engine)

	outcome, err = engine.Play(game.Move{Card: g1})
	require.NoError(t, err)
	require.Equal(t, 0, outcome.Next)
	require.Equal(t, g1, engine.Top())

	outcome, err = engine.Play(game.Move{Card: g1})
	require.NoError(t, err)
	require.True(t, outcome.Won)
	require.True(t, engine.Over())
	winner, over := engine.Winner()
	require.True(t, over)
	require.Equal(t, 0, winner)
	requireConserved(t, engine)

	_, err = engine.Play(game.Move{Card: r1})
	require.True(t, errors.Is(err, game.ErrGameOver))
	_, err = engine.Draw()
	require.True(t, errors.Is(err, game.ErrGameOver))
	require.True(t, errors.Is(engine.Pass(), game.ErrGameOver))

	payloads := listener.ReceivedPayloads()
	require.Equal(t, event.WinnerFoundPayload{PlayerName: "Player 1"}, payloads[len(payloads)-1])
}

func TestPlay(t *testing.T) {
	t.Run("rejects_cards_not_in_hand", func(t *testing.T) {
		engine, _ := newToyGame(t, 2, 2, []card.Card{r1, g1, r2, g2, r7}, false)
		_, err := engine.Play(game.Move{Card: b9})
		require.True(t, errors.Is(err, game.ErrCardNotInHand))
		require.Equal(t, 0, engine.Current())
	})

	t.Run("wild_needs_a_color", func(t *testing.T) {
		wild := card.NewWildCard()
		engine, listener := newToyGame(t, 2, 2, []card.Card{wild, r2, g1, g2, r7}, false)

		_, err := engine.Play(game.Move{Card: wild})
		require.True(t, errors.Is(err, game.ErrColorRequired))
		require.Equal(t, 2, engine.State().Hands[0].Size())

		outcome, err := engine.Play(game.Move{Card: wild, Color: color.Blue})
		require.NoError(t, err)
		require.Equal(t, wild.WithColor(color.Blue), outcome.Top)
		require.Equal(t, color.Blue, engine.Top().ActiveColor())
		require.Contains(t, listener.ReceivedPayloads(), event.ColorPickedPayload{PlayerName: "Player 1", Color: color.Blue})

		_, err = engine.Play(game.Move{Card: g1})
		var illegal *game.IllegalPlayError
		require.True(t, errors.As(err, &illegal))
		requireConserved(t, engine)
	})

	t.Run("fires_three_cards_left", func(t *testing.T) {
		engine, listener := newToyGame(t, 2, 4, []card.Card{r1, r2, r3, r4, r6, g2, g3, g4, r5}, false)
		outcome, err := engine.Play(game.Move{Card: r1})
		require.NoError(t, err)
		require.True(t, outcome.ThreeCardsLeft)
		require.Contains(t, listener.ReceivedPayloads(), event.ThreeCardsLeftPayload{PlayerName: "Player 1"})

		outcome, err = engine.Play(game.Move{Card: r6})
		require.NoError(t, err)
		require.True(t, outcome.ThreeCardsLeft)

		outcome, err = engine.Play(game.Move{Card: r2})
		require.NoError(t, err)
		require.False(t, outcome.ThreeCardsLeft)
	})

	t.Run("rotates_through_all_players", func(t *testing.T) {
		engine, _ := newToyGame(t, 4, 2, []card.Card{r1, r2, r3, r4, r5, r6, r6, g1, r7}, false)
		for _, expected := range []int{1, 2, 3, 0} {
			seat := engine.Current()
			hand := engine.State().Hands[seat].Cards()
			outcome, err := engine.Play(game.Move{Card: hand[0]})
			require.NoError(t, err, "seat %d", seat)
			require.Equal(t, expected, outcome.Next)
		}
	})
}

func TestStartingWild(t *testing.T) {
	engine, _ := newToyGame(t, 2, 2, []card.Card{r1, r2, g1, g2, card.NewWildCard()}, false)
	require.True(t, engine.NeedsColor())

	_, err := engine.Play(game.Move{Card: r1})
	require.True(t, errors.Is(err, game.ErrColorRequired))

	require.True(t, errors.Is(engine.ChooseStartingColor(color.None), game.ErrColorRequired))
	require.NoError(t, engine.ChooseStartingColor(color.Green))
	require.False(t, engine.NeedsColor())
	require.Equal(t, color.Green, engine.Top().ActiveColor())
	require.True(t, errors.Is(engine.ChooseStartingColor(color.Red), game.ErrColorNotNeeded))

	_, err = engine.Play(game.Move{Card: r1})
	var illegal *game.IllegalPlayError
	require.True(t, errors.As(err, &illegal))
}

func TestDrawAndReshuffle(t *testing.T) {
	engine, listener := newToyGame(t, 2, 2, []card.Card{r1, r2, g1, g2, r5, b9}, false)
	state := engine.State()

	_, err := engine.Play(game.Move{Card: r1})
	require.NoError(t, err)
	_, err = engine.Play(game.Move{Card: g1})
	require.NoError(t, err)

	drawn, err := engine.Draw()
	require.NoError(t, err)
	require.Equal(t, b9, drawn)
	require.Equal(t, 0, engine.Current())
	require.Equal(t, 0, state.Draw.Size())
	requireConserved(t, engine)

	drawn, err = engine.Draw()
	require.NoError(t, err)
	require.Contains(t, []card.Card{r5, r1}, drawn)
	require.Equal(t, []card.Card{g1}, state.Discard.Cards())
	require.Equal(t, 1, state.Draw.Size())
	require.Equal(t, 0, engine.Current())
	require.Contains(t, listener.ReceivedPayloads(), event.ReshuffledPayload{Cards: 2})
	requireConserved(t, engine)
}

func TestReshuffleClearsWildColors(t *testing.T) {
	wild := card.NewWildCard()
	engine, _ := newToyGame(t, 2, 2, []card.Card{wild, r2, g1, g2, r5}, false)
	_, err := engine.Play(game.Move{Card: wild, Color: color.Green})
	require.NoError(t, err)
	_, err = engine.Play(game.Move{Card: g1})
	require.NoError(t, err)

	_, err = engine.Draw()
	require.NoError(t, err)
	cards := append(engine.State().Draw.Cards(), engine.State().Hands[0].Cards()...)
	require.Contains(t, cards, wild)
	require.NotContains(t, cards, wild.WithColor(color.Green))
	requireConserved(t, engine)
}

func TestNoCardsAvailable(t *testing.T) {
	engine, listener := newToyGame(t, 2, 2, []card.Card{g3, g4, g1, g2, r5}, false)

	_, err := engine.Draw()
	require.True(t, errors.Is(err, game.ErrNoCardsAvailable))
	require.True(t, game.IsNoCards(err))
	require.Equal(t, 2, engine.State().Hands[0].Size())
	requireConserved(t, engine)

	require.NoError(t, engine.Pass())
	require.Equal(t, 1, engine.Current())
	require.Contains(t, listener.ReceivedPayloads(), event.PlayerPassedPayload{PlayerName: "Player 1"})
}

func TestPassNotAllowed(t *testing.T) {
	t.Run("while_cards_can_be_drawn", func(t *testing.T) {
		engine, _ := newToyGame(t, 2, 2, []card.Card{g3, g4, g1, g2, r5, b9}, false)
		require.True(t, errors.Is(engine.Pass(), game.ErrPassNotAllowed))
	})

	t.Run("while_a_card_can_be_played", func(t *testing.T) {
		engine, _ := newToyGame(t, 2, 2, []card.Card{r1, g4, g1, g2, r5}, false)
		require.True(t, errors.Is(engine.Pass(), game.ErrPassNotAllowed))
	})
}

func TestView(t *testing.T) {
	engine, _ := newToyGame(t, 3, 2, []card.Card{r1, g4, g1, g2, b9, r2, r5, r6}, false)
	view := engine.View(1)

	require.Equal(t, 1, view.Seat)
	require.Equal(t, 0, view.Current)
	require.Equal(t, []card.Card{g1, g2}, view.Hand)
	require.Empty(t, view.PlayableCards)
	require.Equal(t, []int{2, 2, 2}, view.HandCounts)
	require.Equal(t, []string{"Player 1", "Player 2", "Player 3"}, view.PlayerNames)
	require.Equal(t, r5, view.Top)
	require.Equal(t, color.Red, view.ActiveColor)
	require.Equal(t, 1, view.DrawPileSize)
	require.Contains(t, view.String(), "Player 3 (2 card(s))")
}

func TestActionRules(t *testing.T) {
	skip := card.NewSkipCard(color.Red)
	reverse := card.NewReverseCard(color.Red)
	drawTwo := card.NewDrawTwoCard(color.Red)
	wildDrawFour := card.NewWildDrawFourCard()

	t.Run("skip_jumps_a_seat", func(t *testing.T) {
		engine, listener := newToyGame(t, 3, 2, []card.Card{skip, r2, r3, r4, r6, r7, r5}, true)
		outcome, err := engine.Play(game.Move{Card: skip})
		require.NoError(t, err)
		require.Equal(t, 2, outcome.Next)
		require.Contains(t, listener.ReceivedPayloads(), event.TurnSkippedPayload{PlayerName: "Player 2"})
	})

	t.Run("reverse_changes_direction", func(t *testing.T) {
		engine, _ := newToyGame(t, 3, 2, []card.Card{reverse, r2, r3, r4, r6, r7, r5}, true)
		outcome, err := engine.Play(game.Move{Card: reverse})
		require.NoError(t, err)
		require.Equal(t, 2, outcome.Next)

		outcome, err = engine.Play(game.Move{Card: r6})
		require.NoError(t, err)
		require.Equal(t, 1, outcome.Next)
	})

	t.Run("reverse_with_two_players_acts_as_skip", func(t *testing.T) {
		engine, _ := newToyGame(t, 2, 2, []card.Card{reverse, r2, r3, r4, r5}, true)
		outcome, err := engine.Play(game.Move{Card: reverse})
		require.NoError(t, err)
		require.Equal(t, 0, outcome.Next)
	})

	t.Run("draw_two_penalizes_the_next_seat", func(t *testing.T) {
		engine, _ := newToyGame(t, 3, 2, []card.Card{drawTwo, r2, r3, r4, r6, r7, r5, g1, g2}, true)
		outcome, err := engine.Play(game.Move{Card: drawTwo})
		require.NoError(t, err)
		require.Equal(t, 2, outcome.Next)
		require.Equal(t, []card.Card{r3, r4, g1, g2}, engine.State().Hands[1].Cards())
		requireConserved(t, engine)
	})

	t.Run("wild_draw_four_with_short_pile_draws_what_is_left", func(t *testing.T) {
		engine, _ := newToyGame(t, 2, 2, []card.Card{wildDrawFour, r2, r3, r4, r5, g1}, true)
		outcome, err := engine.Play(game.Move{Card: wildDrawFour, Color: color.Green})
		require.NoError(t, err)
		require.Equal(t, 0, outcome.Next)
		require.Equal(t, 4, engine.State().Hands[1].Size())
		require.Equal(t, 1, engine.State().Discard.Size())
		requireConserved(t, engine)
	})
}

// Plays whole games with a first-playable strategy and checks that no card is
// created or lost along the way.
func TestRandomGamesConserveCards(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		for _, actionRules := range []bool{false, true} {
			config := game.Config{
				Players:     int(seed%3) + 2,
				ActionRules: actionRules,
			}
			if seed%2 == 0 {
				config.Variant = game.VariantStandard
			}
			engine, err := game.New(config, game.WithRand(rand.New(rand.NewSource(seed))))
			require.NoError(t, err)

			for step := 0; step < 5000 && !engine.Over(); step++ {
				if engine.NeedsColor() {
					require.NoError(t, engine.ChooseStartingColor(color.Red))
				}
				view := engine.View(engine.Current())
				if len(view.PlayableCards) > 0 {
					_, err := engine.Play(game.Move{Card: view.PlayableCards[0], Color: color.Blue})
					require.NoError(t, err)
				} else if _, err := engine.Draw(); err != nil {
					require.True(t, game.IsNoCards(err))
					require.NoError(t, engine.Pass())
				}
				requireConserved(t, engine)
			}
		}
	}
}

func TestWithNames(t *testing.T) {
	engine, err := game.New(
		game.Config{Players: 3},
		game.WithNames("Ann", "", "Bob"),
		game.WithRand(rand.New(rand.NewSource(1))),
	)
	require.NoError(t, err)
	require.Equal(t, "Ann", engine.PlayerName(0))
	require.Equal(t, "Player 2", engine.PlayerName(1))
	require.Equal(t, "Bob", engine.PlayerName(2))
}
