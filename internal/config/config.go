package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	cerr "github.com/saeidalz13/battleship-cli/internal/error"
	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	FirstPlayerHuman    = "human"
	FirstPlayerComputer = "computer"

	DefaultPath = "battleship.yaml"
)

const envPrefix = "BATTLESHIP_"

type Config struct {
	Stage           string `yaml:"stage"`
	BoardSize       int    `yaml:"board_size"`
	Fleet           []int  `yaml:"fleet"`
	MaxAttempts     int    `yaml:"max_attempts"`
	MaxBoardRetries int    `yaml:"max_board_retries"`
	FirstPlayer     string `yaml:"first_player"`
	Seed            uint64 `yaml:"seed"`
	LogLevel        string `yaml:"log_level"`
	LogFile         string `yaml:"log_file"`
}

func DefaultConfig() *Config {
	fleet := make([]int, len(mb.DefaultFleet))
	copy(fleet, mb.DefaultFleet)

	return &Config{
		Stage:           StageDev,
		BoardSize:       mb.DefaultGridSize,
		Fleet:           fleet,
		MaxAttempts:     mb.DefaultMaxAttempts,
		MaxBoardRetries: mb.DefaultMaxBoardRetries,
		FirstPlayer:     FirstPlayerHuman,
		LogLevel:        "warn",
		LogFile:         "stderr",
	}
}

// Loads configuration from a YAML file. A missing file yields the
// defaults. Environment variables override the file either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v, ok := lookupEnv("STAGE"); ok {
		c.Stage = v
	}
	if v, ok := lookupEnv("FIRST_PLAYER"); ok {
		c.FirstPlayer = strings.ToLower(v)
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookupEnv("LOG_FILE"); ok {
		c.LogFile = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"BOARD_SIZE", &c.BoardSize},
		{"MAX_ATTEMPTS", &c.MaxAttempts},
		{"MAX_BOARD_RETRIES", &c.MaxBoardRetries},
	}
	for _, i := range ints {
		v, ok := lookupEnv(i.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cerr.ErrConfigField(envPrefix+i.key, v)
		}
		*i.dst = n
	}

	if v, ok := lookupEnv("SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cerr.ErrConfigField(envPrefix+"SEED", v)
		}
		c.Seed = seed
	}

	if v, ok := lookupEnv("FLEET"); ok {
		fleet, err := ParseFleet(v)
		if err != nil {
			return err
		}
		c.Fleet = fleet
	}

	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Parses a comma separated list of ship lengths, e.g. "3,2,2,1".
func ParseFleet(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	fleet := make([]int, 0, len(parts))

	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, cerr.ErrConfigField("fleet", s)
		}
		fleet = append(fleet, n)
	}
	return fleet, nil
}

func (c *Config) Validate() error {
	if c.Stage != StageProd && c.Stage != StageDev {
		return cerr.ErrConfigField("stage", c.Stage)
	}
	if c.BoardSize < 1 || c.BoardSize > mb.MaxGridSize {
		return cerr.ErrConfigField("board_size", c.BoardSize)
	}
	if len(c.Fleet) == 0 {
		return cerr.ErrConfigField("fleet", c.Fleet)
	}
	for _, length := range c.Fleet {
		if length < mb.MinShipLength || length > mb.MaxShipLength || length > c.BoardSize {
			return cerr.ErrConfigField("fleet", c.Fleet)
		}
	}
	if c.MaxAttempts < len(c.Fleet) {
		return cerr.ErrConfigField("max_attempts", c.MaxAttempts)
	}
	if c.MaxBoardRetries < 1 {
		return cerr.ErrConfigField("max_board_retries", c.MaxBoardRetries)
	}
	if c.FirstPlayer != FirstPlayerHuman && c.FirstPlayer != FirstPlayerComputer {
		return cerr.ErrConfigField("first_player", c.FirstPlayer)
	}

	return nil
}

// The human is always player A.
func (c *Config) StartingState() mb.GameState {
	if c.FirstPlayer == FirstPlayerComputer {
		return mb.GameStatePlayerBTurn
	}
	return mb.GameStatePlayerATurn
}
