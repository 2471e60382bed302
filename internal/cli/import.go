package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crimewebhq/crimeweb-go/internal/snapshot"
)

var importCmd = &cobra.Command{
	Use:   "import <snapshot.json>",
	Short: "Import an episode snapshot into the catalog",
	Long: `Import episodes from a JSON snapshot exported by the web app.

The file is either a bare array of episodes or an object with an
"episodes" key. Existing episodes with the same id are updated in place;
records without an id get one assigned.

Examples:
  crimeweb import episodes.json
  crimeweb import --project staging episodes.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	episodes, err := snapshot.Load(args[0])
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if err := svc.ImportEpisodes(ctx, project, episodes); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Printf("Imported %d episodes into project %q.\n", len(episodes), project)
	return nil
}
