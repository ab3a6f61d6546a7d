package bot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalConfig = `
matrix:
    homeserver_url: https://matrix.example.com
    user_id: "@bot:example.com"
    access_token: token
vectara:
    api_key: key
    corpus_key: docs
`

func TestLoadConfigAppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Matrix.CommandPrefix != DefaultCommandPrefix {
		t.Fatalf("expected default prefix, got %q", cfg.Matrix.CommandPrefix)
	}
	if cfg.Matrix.AutojoinInvites == nil || !*cfg.Matrix.AutojoinInvites {
		t.Fatalf("expected autojoin default true, got %v", cfg.Matrix.AutojoinInvites)
	}
	if cfg.Vectara.SearchLimit == 0 {
		t.Fatalf("expected vectara defaults to be applied")
	}
	if len(cfg.Logging.Writers) == 0 || cfg.Logging.MinLevel == nil {
		t.Fatalf("expected logging defaults to be applied")
	}
}

func TestLoadConfigExplicitFalseSurvives(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
matrix:
    homeserver_url: https://matrix.example.com
    user_id: "@bot:example.com"
    access_token: token
    autojoin_invites: false
vectara:
    api_key: key
    corpus_key: docs
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Matrix.AutojoinInvites == nil || *cfg.Matrix.AutojoinInvites {
		t.Fatalf("explicit false must survive defaulting, got %v", cfg.Matrix.AutojoinInvites)
	}
}

func TestLoadConfigMissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		drop    string
		wantErr string
	}{
		{"no homeserver", "homeserver_url", "matrix.homeserver_url is required"},
		{"no access token", "access_token", "matrix.access_token is required"},
		{"no api key", "api_key", "vectara.api_key is required"},
		{"no corpus key", "corpus_key", "vectara.corpus_key is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var lines []string
			for _, line := range strings.Split(minimalConfig, "\n") {
				if !strings.Contains(line, tc.drop) {
					lines = append(lines, line)
				}
			}
			_, err := LoadConfig(writeConfig(t, strings.Join(lines, "\n")))
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("expected %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestExampleConfigParsesAndValidates(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(ExampleConfig), &cfg); err != nil {
		t.Fatalf("example config must parse: %v", err)
	}
	cfg.applyDefaults()
	// Credentials are intentionally blank in the example.
	if err := cfg.validate(); err == nil {
		t.Fatalf("example config must not validate with blank credentials")
	}
	if cfg.Matrix.CommandPrefix != DefaultCommandPrefix {
		t.Fatalf("example prefix should match default, got %q", cfg.Matrix.CommandPrefix)
	}
}
