package bot

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"go.mau.fi/util/ptr"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
	"maunium.net/go/mautrix/id"

	"github.com/corvid-labs/corpusbot/pkg/vectara"
)

//go:embed example-config.yaml
var ExampleConfig string

// Config is the top-level bot configuration.
type Config struct {
	Matrix  MatrixConfig      `yaml:"matrix"`
	Vectara vectara.Config    `yaml:"vectara"`
	Logging zeroconfig.Config `yaml:"logging"`
}

// MatrixConfig controls the chat-side behaviour of the bot.
type MatrixConfig struct {
	HomeserverURL string    `yaml:"homeserver_url"`
	UserID        id.UserID `yaml:"user_id"`
	AccessToken   string    `yaml:"access_token"`

	CommandPrefix       string `yaml:"command_prefix"`
	AutojoinInvites     *bool  `yaml:"autojoin_invites"`
	TypingNotifications *bool  `yaml:"typing_notifications"`
}

const DefaultCommandPrefix = "!ask"

// LoadConfig reads and parses the config file, fills defaults field by
// field, and validates the required credentials.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Matrix.CommandPrefix == "" {
		cfg.Matrix.CommandPrefix = DefaultCommandPrefix
	}
	if cfg.Matrix.AutojoinInvites == nil {
		cfg.Matrix.AutojoinInvites = ptr.Ptr(true)
	}
	if cfg.Matrix.TypingNotifications == nil {
		cfg.Matrix.TypingNotifications = ptr.Ptr(true)
	}
	cfg.Vectara = cfg.Vectara.WithDefaults()
	if len(cfg.Logging.Writers) == 0 {
		cfg.Logging.Writers = []zeroconfig.WriterConfig{{
			Type:   zeroconfig.WriterTypeStdout,
			Format: zeroconfig.LogFormatPrettyColored,
		}}
	}
	if cfg.Logging.MinLevel == nil {
		cfg.Logging.MinLevel = ptr.Ptr(zerolog.InfoLevel)
	}
}

func (cfg *Config) validate() error {
	switch {
	case cfg.Matrix.HomeserverURL == "":
		return fmt.Errorf("matrix.homeserver_url is required")
	case cfg.Matrix.UserID == "":
		return fmt.Errorf("matrix.user_id is required")
	case cfg.Matrix.AccessToken == "":
		return fmt.Errorf("matrix.access_token is required")
	case cfg.Vectara.APIKey == "":
		return fmt.Errorf("vectara.api_key is required")
	case cfg.Vectara.CorpusKey == "":
		return fmt.Errorf("vectara.corpus_key is required")
	}
	return nil
}

// redactKey hides a credential for logging, keeping the last four
// characters so operators can tell keys apart.
func redactKey(key string) string {
	if key == "" {
		return "(unset)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
