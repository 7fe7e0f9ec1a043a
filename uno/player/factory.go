package player

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ratel-online/hotseat/uno/game"
)

type Strategy string

const (
	StrategyGood  Strategy = "good"
	StrategyNaive Strategy = "naive"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case StrategyGood, "":
		return StrategyGood, nil
	case StrategyNaive:
		return StrategyNaive, nil
	default:
		return "", fmt.Errorf("unknown bot strategy '%s'", name)
	}
}

// BotNames returns amount distinct names in random order.
func BotNames(amount int, rng *rand.Rand) []string {
	names := make([]string, len(botNames))
	copy(names, botNames)
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	return names[:amount]
}

func NewBot(strategy Strategy, name string, rng *rand.Rand) game.Player {
	if strategy == StrategyNaive {
		return NewNaivePlayer(name, rng)
	}
	return NewGoodPlayer(name)
}
