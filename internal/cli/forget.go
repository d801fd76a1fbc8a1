package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	bridgeErrors "github.com/HeyBatlle1/Argus1/internal/errors"
)

var forgetCmd = &cobra.Command{
	Use:   "forget [json-args]",
	Short: "Delete memories matching a content substring",
	Long: `Delete every memory whose content contains the given substring.

Examples:
  argus-memory forget '{"content_match": "old project"}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runForget,
}

type forgetArgs struct {
	ContentMatch string `json:"content_match"`
}

func runForget(cmd *cobra.Command, args []string) error {
	var a forgetArgs
	if err := parseArgs(args, &a); err != nil {
		return err
	}

	if a.ContentMatch == "" {
		return emit(cmd.OutOrStdout(), failure(bridgeErrors.CodeEmptyMatch, "no content_match provided"))
	}

	env, err := newOpEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	deleted, backend, err := env.bridge.Delete(cmd.Context(), a.ContentMatch)
	if err != nil {
		return bridgeErrors.Wrap(bridgeErrors.CodeBackendError, "failed to delete memories", err)
	}

	env.log.Debug("memories forgotten", "backend", backend, "deleted", deleted)

	return emit(cmd.OutOrStdout(), result{
		"success": true,
		"message": fmt.Sprintf("Forgot %d memories matching: %s", deleted, a.ContentMatch),
		"deleted": deleted,
		"backend": backend,
	})
}
