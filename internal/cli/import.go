package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"appliancefit/internal/catalog"
	"appliancefit/internal/importer"
	"appliancefit/internal/model"
)

var (
	importFile      string
	importXLSX      string
	importWorkers   int
	importRate      float64
	importReprocess bool
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [model...]",
	Short: "Scrape many models into the catalogs",
	Long: `Import scrapes every given model with a pool of workers, stores each
spec in the configured Postgres and Redis catalogs, keeps the raw page, and
prints one TSV row per imported model.

Example:
  applfit import KODC304ESS HBL8451UC
  applfit import --file models.txt --workers 4 --rate 0.5 --xlsx ovens.xlsx
  applfit import --reprocess`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importFile, "file", "", "file with one model number per line")
	importCmd.Flags().StringVar(&importXLSX, "xlsx", "", "also write the imported specs to this workbook")
	importCmd.Flags().IntVar(&importWorkers, "workers", 0, "number of concurrent workers (default: WORKER_COUNT)")
	importCmd.Flags().Float64Var(&importRate, "rate", 0, "page fetches per second (default: IMPORT_RATE)")
	importCmd.Flags().BoolVar(&importReprocess, "reprocess", false, "re-extract stored raw pages instead of fetching")
}

func runImport(cmd *cobra.Command, args []string) error {
	a := newApp(cmd.Context(), cfg)
	defer a.Close()

	im := &importer.Importer{
		Scraper: a.scraper,
		Stores:  a.stores,
		Raw:     a.rawStore(),
		Workers: cfg.WorkerCount,
		Rate:    cfg.ImportRate,
	}
	if importWorkers > 0 {
		im.Workers = importWorkers
	}
	if importRate > 0 {
		im.Rate = importRate
	}

	var report *importer.Report
	var err error
	if importReprocess {
		if im.Raw == nil {
			return errors.New("reprocess needs DATABASE_URL")
		}
		report, err = im.Reprocess(cmd.Context())
	} else {
		models := args
		if importFile != "" {
			fromFile, ferr := readModels(importFile)
			if ferr != nil {
				return ferr
			}
			models = append(models, fromFile...)
		}
		if len(models) == 0 {
			return errors.New("no models given")
		}
		report, err = im.Run(cmd.Context(), models)
	}
	if report == nil {
		return err
	}

	if werr := writeReport(cmd.OutOrStdout(), report); werr != nil {
		return werr
	}
	if importXLSX != "" && report.Imported() > 0 {
		if werr := catalog.WriteSheet(importXLSX, cfg.CatalogSheet, report.Specs); werr != nil {
			return werr
		}
	}
	if err != nil {
		return err
	}
	if len(report.Failures) > 0 {
		return fmt.Errorf("%d of %d models failed", len(report.Failures), len(report.Failures)+report.Imported())
	}
	return nil
}

func writeReport(w io.Writer, report *importer.Report) error {
	if _, err := fmt.Fprintln(w, strings.Join(model.Columns(), "\t")); err != nil {
		return err
	}
	for _, s := range report.Specs {
		if _, err := fmt.Fprintln(w, s.TSVRow()); err != nil {
			return err
		}
	}
	return nil
}

// readModels reads one model per line, skipping blanks and # comments.
func readModels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model list: %w", err)
	}
	defer f.Close()

	var models []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		models = append(models, line)
	}
	return models, sc.Err()
}
