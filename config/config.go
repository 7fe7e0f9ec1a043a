package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/ratel-online/hotseat/consts"
	"github.com/ratel-online/hotseat/uno/game"
	"github.com/ratel-online/hotseat/uno/player"
)

type Config struct {
	Game   Game   `yaml:"game"`
	Server Server `yaml:"server"`
}

type Game struct {
	// Players is asked for at the start of every session when 0.
	Players     int    `yaml:"players" env:"HOTSEAT_PLAYERS" env-default:"0"`
	Bots        int    `yaml:"bots" env:"HOTSEAT_BOTS" env-default:"0"`
	BotStrategy string `yaml:"bot-strategy" env:"HOTSEAT_BOT_STRATEGY" env-default:"good"`
	HandSize    int    `yaml:"hand-size" env:"HOTSEAT_HAND_SIZE" env-default:"7"`
	Variant     string `yaml:"variant" env:"HOTSEAT_VARIANT" env-default:"compact"`
	ActionRules bool   `yaml:"action-rules" env:"HOTSEAT_ACTION_RULES" env-default:"false"`
	// Seed fixes the shuffle; 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"HOTSEAT_SEED" env-default:"0"`
	// SkipHandoff drops the "pass the device" screen between human turns.
	SkipHandoff bool `yaml:"skip-handoff" env:"HOTSEAT_SKIP_HANDOFF" env-default:"false"`
}

type Server struct {
	TcpAddr      string        `yaml:"tcp-addr" env:"HOTSEAT_TCP_ADDR" env-default:":9999"`
	WsAddr       string        `yaml:"ws-addr" env:"HOTSEAT_WS_ADDR" env-default:":9998"`
	InputTimeout time.Duration `yaml:"input-timeout" env:"HOTSEAT_INPUT_TIMEOUT" env-default:"0s"`
}

// Load reads path when given and applies the environment on top of it.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}
	if err := config.Game.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (g Game) Validate() error {
	if g.Players != 0 && (g.Players < game.MinPlayers || g.Players > game.MaxPlayers) {
		return invalid("players must be 0 or between %d and %d, got %d", game.MinPlayers, game.MaxPlayers, g.Players)
	}
	maxBots := g.Players
	if maxBots == 0 {
		maxBots = game.MaxPlayers
	}
	if g.Bots < 0 || g.Bots > maxBots {
		return invalid("bots must be between 0 and %d, got %d", maxBots, g.Bots)
	}
	if g.HandSize <= 0 {
		return invalid("hand size must be positive, got %d", g.HandSize)
	}
	if _, err := game.ParseVariant(g.Variant); err != nil {
		return invalid("%v", err)
	}
	if _, err := player.ParseStrategy(g.BotStrategy); err != nil {
		return invalid("%v", err)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w%s", consts.ErrorsConfigInvalid, fmt.Sprintf(format, args...))
}
