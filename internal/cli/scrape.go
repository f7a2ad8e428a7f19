package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"appliancefit/internal/api"
	"appliancefit/internal/crawler"
)

var (
	scrapeFormat  string
	scrapeBaseURL string
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape <model>",
	Short: "Extract one model's specification from its product page",
	Long: `Fetch the retailer product page for a model number and print the
extracted specification.

Example:
  applfit scrape KODC304ESS
  applfit scrape kodc304ess --format tsv
  applfit scrape KODC304ESS --format text`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&scrapeFormat, "format", "json", "output format (json, text, tsv)")
	scrapeCmd.Flags().StringVar(&scrapeBaseURL, "base-url", "", "product page base URL (default: SOURCE_BASE_URL or the retailer)")
}

func runScrape(cmd *cobra.Command, args []string) error {
	baseURL := cfg.SourceBaseURL
	if scrapeBaseURL != "" {
		baseURL = scrapeBaseURL
	}
	scraper := crawler.NewScraper(crawler.NewFetcher(cfg.FetchTimeout, cfg.UserAgent), baseURL)

	out := scraper.Scrape(cmd.Context(), args[0])
	if out.Err != nil {
		return fmt.Errorf("scrape %s: %w", args[0], out.Err)
	}

	w := cmd.OutOrStdout()
	switch scrapeFormat {
	case "tsv":
		_, err := fmt.Fprintln(w, out.Spec.TSVRow())
		return err
	case "text":
		_, err := fmt.Fprint(w, crawler.SpecToText(out.Spec))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(api.ScrapeResponse{
			OK:     true,
			Source: crawler.SourceName,
			URL:    out.URL,
			Data:   out.Spec,
			TSVRow: out.Spec.TSVRow(),
		})
	default:
		return fmt.Errorf("unknown format %q", scrapeFormat)
	}
}
