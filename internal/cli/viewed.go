package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var viewedClear bool

var viewedCmd = &cobra.Command{
	Use:   "viewed <episode-id>",
	Short: "Flag an episode and its confirmed cluster as viewed",
	Long: `Set the viewed flag on an episode. The flag propagates across every
episode linked to it through confirmed matches, so one command marks the
whole telling of a case.`,
	Args: cobra.ExactArgs(1),
	RunE: runViewed,
}

func init() {
	viewedCmd.Flags().BoolVar(&viewedClear, "clear", false, "clear the flag instead of setting it")
}

func runViewed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	changed, err := svc.MarkViewed(ctx, project, args[0], !viewedClear)
	if err != nil {
		return fmt.Errorf("mark viewed: %w", err)
	}

	if len(changed) == 0 {
		fmt.Println("No flags changed.")
		return nil
	}
	verb := "Flagged"
	if viewedClear {
		verb = "Unflagged"
	}
	fmt.Printf("%s %d episodes: %s\n", verb, len(changed), strings.Join(changed, ", "))
	return nil
}
