package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/HeyBatlle1/Argus1/internal/config"
	bridgeErrors "github.com/HeyBatlle1/Argus1/internal/errors"
	"github.com/HeyBatlle1/Argus1/internal/memory"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report memory backend availability",
	Long: `Report whether Supabase credentials resolved, whether a remote client
could be constructed, and where the local database lives. Performs no writes.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	dir, err := config.DefaultDir()
	if err != nil {
		return bridgeErrors.Wrap(bridgeErrors.CodeConfigInvalid, "cannot resolve config directory", err)
	}

	cfg, err := config.LoadSettings(dir)
	if err != nil {
		return bridgeErrors.Wrap(bridgeErrors.CodeConfigInvalid, "invalid bridge settings", err)
	}

	creds := config.ResolveCredentials(dir)
	available := false
	if creds.Configured() {
		if _, err := memory.NewSupabaseStore(creds.URL, creds.Key, cfg.Memory.Collection); err == nil {
			available = true
		}
	}

	// Stat only; status must not create the database.
	_, statErr := os.Stat(cfg.Memory.DBPath)

	return emit(cmd.OutOrStdout(), result{
		"success":             true,
		"supabase_configured": creds.Configured(),
		"supabase_available":  available,
		"sqlite_path":         cfg.Memory.DBPath,
		"sqlite_exists":       statErr == nil,
	})
}
