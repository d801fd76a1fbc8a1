package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	bridgeErrors "github.com/HeyBatlle1/Argus1/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "argus-memory <operation> [json-args]",
	Short: "Persistent memory bridge",
	Long: `argus-memory - persistent memory for the Argus agent.

Stores short textual memory records in Supabase when credentials are
configured, falling back to a local SQLite database otherwise. Invoked as a
subprocess: one operation per process, one JSON result line on stdout.

Operations: remember, recall, forget, list, status`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return bridgeErrors.New(bridgeErrors.CodeInvalidArgs,
				"usage: argus-memory <operation> [json-args]")
		}
		return bridgeErrors.New(bridgeErrors.CodeUnknownOperation,
			fmt.Sprintf("unknown operation: %s", args[0]))
	},
}

// Execute runs the dispatcher. Every error reaching this boundary is printed
// as a single JSON failure line on stdout; the caller maps a non-nil return
// to a non-zero exit status.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fail := result{"success": false, "error": err.Error()}
		if code := bridgeErrors.AsCode(err); code != "" {
			fail["code"] = code
		}
		emit(os.Stdout, fail)
	}
	return err
}

func init() {
	rootCmd.AddCommand(rememberCmd)
	rootCmd.AddCommand(recallCmd)
	rootCmd.AddCommand(forgetCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}
