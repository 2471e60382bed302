package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <text>",
	Short: "Extract names, locations and years from text",
	Long: `Run the entity extractor over free text and print what the matcher
would see.

Examples:
  crimeweb extract "The murder of John Smith in Austin, Texas in 1994"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	names, locations, years := svc.ExtractTerms(strings.Join(args, " "))

	printTerms("Names", names)
	printTerms("Locations", locations)
	printTerms("Years", years)
	return nil
}

func printTerms(label string, terms []string) {
	if len(terms) == 0 {
		fmt.Printf("%s: (none)\n", label)
		return
	}
	fmt.Printf("%s: %s\n", label, strings.Join(terms, ", "))
}
