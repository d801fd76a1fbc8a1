package cli

import (
	"github.com/spf13/cobra"

	"github.com/HeyBatlle1/Argus1/internal/memory"
)

const defaultListLimit = 50

var listCmd = &cobra.Command{
	Use:   "list [json-args]",
	Short: "List stored memories",
	Long: `List memories with no filters, most important first.

Examples:
  argus-memory list
  argus-memory list '{"limit": 100}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

type listArgs struct {
	Limit int `json:"limit"`
}

func runList(cmd *cobra.Command, args []string) error {
	var a listArgs
	if err := parseArgs(args, &a); err != nil {
		return err
	}
	if a.Limit <= 0 {
		a.Limit = defaultListLimit
	}

	env, err := newOpEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	return searchAndEmit(cmd, env, memory.Query{Limit: a.Limit})
}
