package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search episode titles and overviews",
	Long: `Search the catalog by text.

Examples:
  crimeweb search "Golden State"
  crimeweb search smith --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "max results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	episodes, err := svc.SearchEpisodes(ctx, project, args[0], searchLimit, 0)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if len(episodes) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Printf("Found %d episodes:\n\n", len(episodes))
	for i, ep := range episodes {
		fmt.Printf("%d. %s [%s S%02dE%02d]\n", i+1, ep.Title, ep.ShowName, ep.SeasonNumber, ep.EpisodeNumber)
		if ep.Overview != "" {
			overview := ep.Overview
			if !verbose && len(overview) > 100 {
				overview = overview[:100] + "..."
			}
			fmt.Printf("   %s\n", overview)
		}
	}
	return nil
}
