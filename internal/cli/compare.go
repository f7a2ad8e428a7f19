package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"appliancefit/internal/compat"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <existing-model> <replacement-model>",
	Short: "Check whether a replacement fits where an existing appliance is installed",
	Long: `Resolve both models from the configured catalogs, scraping the product
page for any model no catalog knows, and print the comparison as JSON.

Example:
  applfit compare KODC304ESS HBL8451UC`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd.Context(), cfg)
		defer a.Close()

		svc := compat.NewService(a.catalogs, a.scraper)
		result := svc.Compare(cmd.Context(), compat.Request{OldModel: args[0], NewModel: args[1]})

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
