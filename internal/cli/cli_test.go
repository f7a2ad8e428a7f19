package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appliancefit/internal/catalog"
	"appliancefit/internal/model"
)

const ovenPage = `<html><body>
<div>Brand: KitchenAid</div>
<div>Model: %s</div>
<div>Cutout Height: 28 1/2"</div>
<div>Amps: 20</div>
</body></html>`

func newRetailer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".html")
		if strings.HasPrefix(name, "MISSING") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = fmt.Fprintf(w, ovenPage, name)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// run executes the root command with a clean environment and fresh flags.
func run(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"DATABASE_URL", "REDIS_URL", "CATALOG_XLSX", "GVIZ_SHEET_ID", "METRICS_PORT"} {
		t.Setenv(k, "")
	}
	t.Setenv("SOURCE_BASE_URL", baseURL)
	t.Setenv("LOG_LEVEL", "off")
	t.Setenv("IMPORT_RATE", "1000")

	scrapeFormat, scrapeBaseURL = "json", ""
	importFile, importXLSX, importWorkers, importRate, importReprocess = "", "", 0, 0, false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScrapeCommand_JSON(t *testing.T) {
	srv := newRetailer(t)
	out, err := run(t, srv.URL, "scrape", "kodc-304ess")
	require.NoError(t, err)

	var body struct {
		OK   bool           `json:"ok"`
		URL  string         `json:"url"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.True(t, body.OK)
	assert.Equal(t, srv.URL+"/KODC304ESS.html", body.URL)
	assert.Equal(t, "KODC304ESS", body.Data["Model Number"])
	assert.Equal(t, "28.5", body.Data["Cutout Height Max (in)"])
}

func TestScrapeCommand_Formats(t *testing.T) {
	srv := newRetailer(t)

	out, err := run(t, srv.URL, "scrape", "KODC304ESS", "--format", "tsv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "KitchenAid\tKitchenAid\tKODC304ESS\t"))
	assert.Equal(t, 1, strings.Count(out, "\n"))

	out, err = run(t, srv.URL, "scrape", "KODC304ESS", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Amperage (A): 20\n")

	_, err = run(t, srv.URL, "scrape", "KODC304ESS", "--format", "yaml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestScrapeCommand_Errors(t *testing.T) {
	srv := newRetailer(t)

	_, err := run(t, srv.URL, "scrape", "MISSING1")
	assert.ErrorContains(t, err, "unexpected status: 404")

	_, err = run(t, srv.URL, "scrape", "--")
	assert.Error(t, err)
}

func TestImportCommand(t *testing.T) {
	srv := newRetailer(t)
	dir := t.TempDir()
	list := filepath.Join(dir, "models.txt")
	require.NoError(t, os.WriteFile(list, []byte("# wall ovens\nKOSE500ESS\n\nkodc304ess\n"), 0o644))
	xlsx := filepath.Join(dir, "ovens.xlsx")

	out, err := run(t, srv.URL, "import", "HBL8451UC", "--file", list, "--xlsx", xlsx, "--workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(model.Columns(), "\t"), lines[0])
	assert.Contains(t, lines[1], "\tHBL8451UC\t")
	assert.Contains(t, lines[2], "\tKODC304ESS\t")
	assert.Contains(t, lines[3], "\tKOSE500ESS\t")

	models, err := catalog.NewSheet(xlsx, "").Models()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"HBL8451UC", "KODC304ESS", "KOSE500ESS"}, models)
}

func TestImportCommand_Failures(t *testing.T) {
	srv := newRetailer(t)

	out, err := run(t, srv.URL, "import", "KODC304ESS", "MISSING1")
	assert.ErrorContains(t, err, "1 of 2 models failed")
	assert.Contains(t, out, "\tKODC304ESS\t")

	_, err = run(t, srv.URL, "import")
	assert.ErrorContains(t, err, "no models given")

	_, err = run(t, srv.URL, "import", "--reprocess")
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestCompareCommand_ScrapesBothSides(t *testing.T) {
	srv := newRetailer(t)

	out, err := run(t, srv.URL, "compare", "KODC304ESS", "KOSE500ESS")
	require.NoError(t, err)

	var res model.ComparisonResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, model.DirectReplacement, res.Verdict)
	assert.Equal(t, []string{"No installation modifications are required."}, res.InstallImpact)
}

func TestReadModels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("  A1 \n#skip\n\nB2\n"), 0o644))

	models, err := readModels(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, models)

	_, err = readModels(filepath.Join(t.TempDir(), "none.txt"))
	assert.Error(t, err)
}
