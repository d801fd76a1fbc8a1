package cli

import (
	"github.com/spf13/cobra"

	bridgeErrors "github.com/HeyBatlle1/Argus1/internal/errors"
	"github.com/HeyBatlle1/Argus1/internal/memory"
)

const defaultRecallLimit = 10

var recallCmd = &cobra.Command{
	Use:   "recall [json-args]",
	Short: "Search stored memories",
	Long: `Search memories by content substring and/or type, most important first.

Examples:
  argus-memory recall '{"query": "coffee"}'
  argus-memory recall '{"type": "task", "limit": 5}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecall,
}

type recallArgs struct {
	Query string `json:"query"`
	Type  string `json:"type"`
	Limit int    `json:"limit"`
}

func runRecall(cmd *cobra.Command, args []string) error {
	var a recallArgs
	if err := parseArgs(args, &a); err != nil {
		return err
	}
	if a.Limit <= 0 {
		a.Limit = defaultRecallLimit
	}

	env, err := newOpEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	return searchAndEmit(cmd, env, memory.Query{Text: a.Query, Type: a.Type, Limit: a.Limit})
}

// searchAndEmit runs the query and prints the result line; shared with list.
func searchAndEmit(cmd *cobra.Command, env *opEnv, q memory.Query) error {
	recs, backend, err := env.bridge.Search(cmd.Context(), q)
	if err != nil {
		return bridgeErrors.Wrap(bridgeErrors.CodeBackendError, "failed to search memories", err)
	}
	if recs == nil {
		recs = []memory.Record{}
	}

	env.log.Debug("memories recalled", "backend", backend, "count", len(recs))

	return emit(cmd.OutOrStdout(), result{
		"success":  true,
		"memories": recs,
		"count":    len(recs),
		"backend":  backend,
	})
}
