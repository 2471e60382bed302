// Package cli provides the command-line interface for the CrimeWeb matcher.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crimewebhq/crimeweb-go/internal/buildinfo"
	"github.com/crimewebhq/crimeweb-go/pkg/crimeweb"
)

var (
	// Global flags
	dbURL       string
	projectsDir string
	project     string
	verbose     bool

	// Global service handle
	svc *crimeweb.Service
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "crimeweb",
	Short: "Episode relatedness engine for true-crime catalogs",
	Long: `Crimeweb maintains a catalog of true-crime TV episodes and finds
episodes that cover the same real-world case across different shows.

Episodes are matched on the people, places and years their descriptions
mention; curators can confirm or reject suggested pairs and flag whole
case clusters as viewed.`,
	Version: buildinfo.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg := &crimeweb.Config{URL: dbURL}
		if projectsDir != "" {
			cfg.ProjectsDir = projectsDir
			cfg.MultiProjectMode = true
		}
		if cfg.URL == "" && projectsDir == "" {
			cfg = nil
		}

		var err error
		svc, err = crimeweb.NewService(cfg)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if svc != nil {
			if err := svc.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close catalog: %v\n", err)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "libSQL database URL (default: file:./crimeweb.db)")
	rootCmd.PersistentFlags().StringVar(&projectsDir, "projects-dir", "", "base directory for projects, enables multi-project mode")
	rootCmd.PersistentFlags().StringVarP(&project, "project", "p", "default", "project catalog to operate on")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(relatedCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(viewedCmd)
}
