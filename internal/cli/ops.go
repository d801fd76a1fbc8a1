package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/HeyBatlle1/Argus1/internal/config"
	bridgeErrors "github.com/HeyBatlle1/Argus1/internal/errors"
	"github.com/HeyBatlle1/Argus1/internal/memory"
	"github.com/HeyBatlle1/Argus1/internal/telemetry"
)

// result is the single JSON object an invocation prints to stdout.
type result map[string]interface{}

func emit(out io.Writer, r result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func failure(code, message string) result {
	return result{"success": false, "error": message, "code": code}
}

// parseArgs decodes the optional positional JSON argument into v.
// A missing argument leaves v at its zero value.
func parseArgs(args []string, v interface{}) error {
	if len(args) == 0 || args[0] == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(args[0]), v); err != nil {
		return bridgeErrors.Wrap(bridgeErrors.CodeInvalidArgs, "invalid JSON arguments", err)
	}
	return nil
}

// opEnv holds everything a storage operation needs for one invocation.
type opEnv struct {
	cfg    *config.Settings
	log    *telemetry.Logger
	bridge *memory.Bridge
}

// newOpEnv loads configuration, resolves credentials, and builds the backend
// attempt list. Called once per invocation; Close releases the backends
// unconditionally.
func newOpEnv() (*opEnv, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return nil, bridgeErrors.Wrap(bridgeErrors.CodeConfigInvalid, "cannot resolve config directory", err)
	}

	cfg, err := config.LoadSettings(dir)
	if err != nil {
		return nil, bridgeErrors.Wrap(bridgeErrors.CodeConfigInvalid, "invalid bridge settings", err).
			WithSuggestion("check " + dir + "/config.yaml")
	}

	log := telemetry.NewLogger(cfg.Log.Level)
	if cfg.Log.File != "" {
		if err := log.WithFile(cfg.Log.File); err != nil {
			log.Warn("log file unavailable", "path", cfg.Log.File, "error", err)
		}
	}

	creds := config.ResolveCredentials(dir)
	bridge, err := memory.Resolve(memory.Options{
		Driver:      cfg.Memory.Driver,
		DBPath:      cfg.Memory.DBPath,
		Collection:  cfg.Memory.Collection,
		SupabaseURL: creds.URL,
		SupabaseKey: creds.Key,
	}, log)
	if err != nil {
		log.Close()
		return nil, bridgeErrors.Wrap(bridgeErrors.CodeBackendError, "failed to initialize memory backend", err)
	}

	return &opEnv{cfg: cfg, log: log, bridge: bridge}, nil
}

func (e *opEnv) Close() {
	e.bridge.Close()
	e.log.Close()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
