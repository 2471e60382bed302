package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listShowID string
	listLimit  int
	listOffset int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List episodes in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listShowID, "show", "s", "", "restrict to one show id")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 50, "max episodes")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "episodes to skip")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	episodes, err := svc.ListEpisodes(ctx, project, listShowID, listLimit, listOffset)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if len(episodes) == 0 {
		fmt.Println("No episodes found.")
		return nil
	}

	for _, ep := range episodes {
		fmt.Printf("%s  %s S%02dE%02d  %s\n", ep.ID, ep.ShowName, ep.SeasonNumber, ep.EpisodeNumber, ep.Title)
		if verbose && ep.Overview != "" {
			fmt.Printf("    %s\n", ep.Overview)
		}
	}
	return nil
}
