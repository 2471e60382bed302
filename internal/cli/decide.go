package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	decideScore  float64
	decideReason string
)

var confirmCmd = &cobra.Command{
	Use:   "confirm <episode-a> <episode-b>",
	Short: "Record that two episodes cover the same case",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := svc.ConfirmMatch(ctx, project, args[0], args[1], decideScore, decideReason); err != nil {
			return fmt.Errorf("confirm: %w", err)
		}
		fmt.Printf("Confirmed match between %s and %s.\n", args[0], args[1])
		return nil
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject <episode-a> <episode-b>",
	Short: "Record that a suggested pair is not the same case",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := svc.RejectMatch(ctx, project, args[0], args[1], decideScore, decideReason); err != nil {
			return fmt.Errorf("reject: %w", err)
		}
		fmt.Printf("Rejected match between %s and %s.\n", args[0], args[1])
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{confirmCmd, rejectCmd} {
		cmd.Flags().Float64Var(&decideScore, "score", 0, "score of the suggestion being decided")
		cmd.Flags().StringVar(&decideReason, "reason", "", "reason string of the suggestion being decided")
	}
}
