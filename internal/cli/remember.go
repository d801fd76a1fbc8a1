package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	bridgeErrors "github.com/HeyBatlle1/Argus1/internal/errors"
	"github.com/HeyBatlle1/Argus1/internal/memory"
)

var rememberCmd = &cobra.Command{
	Use:   "remember [json-args]",
	Short: "Store a memory",
	Long: `Store a memory record.

Examples:
  argus-memory remember '{"content": "user prefers dark roast", "type": "preference"}'
  argus-memory remember '{"content": "buy milk", "type": "task", "importance": 8}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemember,
}

type rememberArgs struct {
	Content    string          `json:"content"`
	Type       string          `json:"type"`
	Importance *float64        `json:"importance"`
	Reasoning  string          `json:"reasoning"`
	Tags       json.RawMessage `json:"tags"`
}

func runRemember(cmd *cobra.Command, args []string) error {
	var a rememberArgs
	if err := parseArgs(args, &a); err != nil {
		return err
	}

	// Validation failure, not a program failure: nothing is written and the
	// process still exits 0.
	if a.Content == "" {
		return emit(cmd.OutOrStdout(), failure(bridgeErrors.CodeEmptyContent, "no content provided"))
	}

	env, err := newOpEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	rec := memory.NewRecord(a.Content)
	if a.Type != "" {
		rec.Type = a.Type
	}
	if a.Importance != nil {
		rec.Importance = *a.Importance
	}
	rec.Reasoning = a.Reasoning
	rec.Tags = a.Tags

	backend, err := env.bridge.Insert(cmd.Context(), rec)
	if err != nil {
		return bridgeErrors.Wrap(bridgeErrors.CodeBackendError, "failed to store memory", err)
	}

	env.log.Debug("memory stored", "backend", backend, "type", rec.Type)

	return emit(cmd.OutOrStdout(), result{
		"success": true,
		"message": fmt.Sprintf("Remembered: %s...", truncate(a.Content, 50)),
		"backend": backend,
	})
}
