package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crimewebhq/crimeweb-go/pkg/crimeweb"
)

var (
	relatedMax      int
	relatedMinScore float64
	relatedCrossTV  bool
)

var relatedCmd = &cobra.Command{
	Use:   "related <episode-id>",
	Short: "Find episodes covering the same case",
	Long: `Rank the catalog against one episode and print scored matches with
the shared people, places and years that produced each score.

Examples:
  crimeweb related ep-42
  crimeweb related ep-42 --min-score 0.5 --max 10
  crimeweb related ep-42 --other-shows`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

func init() {
	relatedCmd.Flags().IntVarP(&relatedMax, "max", "n", 5, "max matches")
	relatedCmd.Flags().Float64Var(&relatedMinScore, "min-score", 0.3, "minimum confidence score")
	relatedCmd.Flags().BoolVar(&relatedCrossTV, "other-shows", false, "skip candidates from the source episode's own show")
}

func runRelated(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	source, matches, err := svc.FindRelatedByID(ctx, project, args[0], crimeweb.MatchOptions{
		MaxResults:      relatedMax,
		MinScore:        relatedMinScore,
		ExcludeSameShow: relatedCrossTV,
	})
	if err != nil {
		return fmt.Errorf("find related: %w", err)
	}

	printMatches(*source, matches)
	return nil
}

func printMatches(source crimeweb.Episode, matches []crimeweb.MatchResult) {
	if len(matches) == 0 {
		fmt.Printf("No matches for %q.\n", source.Title)
		return
	}

	fmt.Printf("Matches for %q (%s):\n\n", source.Title, source.ShowName)
	for i, m := range matches {
		fmt.Printf("%d. [%.2f] %s (%s S%02dE%02d)\n", i+1, m.Score, m.Title, m.ShowName, m.SeasonNumber, m.EpisodeNumber)
		fmt.Printf("   %s\n", m.Reason)
		if verbose {
			fmt.Printf("   id: %s\n", m.EpisodeID)
		}
	}
}
