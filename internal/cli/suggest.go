package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var suggestMax int

var suggestCmd = &cobra.Command{
	Use:   "suggest <episode-id>",
	Short: "Suggest case matches from the title alone",
	Long: `Run the reduced title-only matcher, for episodes whose overview has
not been written yet.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestMax, "max", "n", 5, "max suggestions")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	source, matches, err := svc.SuggestCases(ctx, project, args[0], suggestMax)
	if err != nil {
		return fmt.Errorf("suggest: %w", err)
	}

	printMatches(*source, matches)
	return nil
}
