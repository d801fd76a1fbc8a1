package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Environment variables supplying the remote backend credentials.
const (
	EnvSupabaseURL = "ARGUS_SUPABASE_URL"
	EnvSupabaseKey = "ARGUS_SUPABASE_KEY"
)

const (
	settingsFile    = "config.yaml"
	credentialsFile = "supabase.json"
)

// DefaultDir returns the per-user argus directory (~/.argus).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".argus"), nil
}

// LoadSettings loads the bridge settings from dir/config.yaml.
// A missing file yields defaults; a malformed file is an error.
func LoadSettings(dir string) (*Settings, error) {
	content, err := os.ReadFile(filepath.Join(dir, settingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Settings{}
			applyDefaults(cfg, dir)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Interpolate environment variables
	content = []byte(interpolateEnv(string(content)))

	var cfg Settings
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg, dir)

	return &cfg, nil
}

func applyDefaults(cfg *Settings, dir string) {
	if cfg.Memory.DBPath == "" {
		cfg.Memory.DBPath = filepath.Join(dir, "memory.db")
	}
	if cfg.Memory.Collection == "" {
		cfg.Memory.Collection = "argus_memories"
	}
	if cfg.Memory.Driver == "" {
		cfg.Memory.Driver = "sqlite"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// ResolveCredentials produces the Supabase credentials, or the zero value
// when the remote backend is not configured. Resolution order: environment
// variables first, then dir/supabase.json. Credential format is not
// validated; a failing remote call is the only feedback.
func ResolveCredentials(dir string) Credentials {
	url := os.Getenv(EnvSupabaseURL)
	key := os.Getenv(EnvSupabaseKey)
	if url != "" && key != "" {
		return Credentials{URL: url, Key: key}
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, credentialsFile))
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		// Absent or unreadable file means the remote backend is unavailable,
		// never a program failure.
		return Credentials{}
	}

	creds := Credentials{URL: v.GetString("url"), Key: v.GetString("key")}
	if !creds.Configured() {
		return Credentials{}
	}
	return creds
}

// interpolateEnv replaces ${VAR} references with environment values.
func interpolateEnv(content string) string {
	varPattern := regexp.MustCompile(`\$\{([^}]+)\}`)
	return varPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := varPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // keep original if not found
	})
}
