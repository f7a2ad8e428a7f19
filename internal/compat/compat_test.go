package compat

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appliancefit/internal/crawler"
	"appliancefit/internal/model"
)

func oven(modelNumber string, heightMin, heightMax, depthMin float64, amps string) *model.Spec {
	return &model.Spec{
		Manufacturer:    model.Str("KitchenAid"),
		ModelNumber:     model.Str(modelNumber),
		CutoutHeightMin: model.Dec(heightMin),
		CutoutHeightMax: model.Dec(heightMax),
		CutoutDepthMin:  model.Dec(depthMin),
		Amperage:        model.Str(amps),
		SourceURL:       model.Str("https://example.com/" + modelNumber),
	}
}

func findChart(t *testing.T, res model.ComparisonResult, id string) model.Chart {
	t.Helper()
	for _, c := range res.Charts {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("chart %q not found", id)
	return model.Chart{}
}

func findRow(t *testing.T, c model.Chart, label string) model.ChartRow {
	t.Helper()
	for _, r := range c.Rows {
		if r.Label == label {
			return r
		}
	}
	t.Fatalf("row %q not found in %s", label, c.ID)
	return model.ChartRow{}
}

func TestCompare_HeightAndAmperage(t *testing.T) {
	existing := oven("OLD1", 28, 28.5, 23.5, "20")
	replacement := oven("NEW1", 29, 29.5, 23.5, "30")

	res := Compare(existing, replacement)

	assert.Equal(t, model.NotCompatible, res.Verdict)
	assert.Equal(t, SummaryCompared, res.Summary)
	assert.Equal(t, []string{
		"Cabinet cut-out height must increase by 0.5 inches.",
		"Electrical circuit upgrade required: 20A to 30A.",
	}, res.Modifications)
	assert.Equal(t, res.Modifications, res.InstallImpact)
	assert.Equal(t, []string{"https://example.com/OLD1", "https://example.com/NEW1"}, res.Sources)

	row := findRow(t, findChart(t, res, ChartCutout), "Cut-Out Height Min (in)")
	assert.Equal(t, "28", row.Old)
	assert.Equal(t, "29", row.New)
	assert.Equal(t, "1", row.Diff)

	row = findRow(t, findChart(t, res, ChartElectrical), "Amperage (A)")
	assert.Equal(t, "10", row.Diff)
}

func TestCompare_DirectReplacement(t *testing.T) {
	a := oven("SAME", 28, 28.5, 23.5, "20")
	b := oven("SAME", 28, 28.5, 23.5, "20")

	res := Compare(a, b)

	assert.Equal(t, model.DirectReplacement, res.Verdict)
	assert.Empty(t, res.Modifications)
	assert.NotNil(t, res.Modifications)
	assert.Equal(t, []string{NoModifications}, res.InstallImpact)
	assert.Equal(t, []string{"https://example.com/SAME"}, res.Sources)
	assert.Len(t, res.Charts, 5)
}

func TestCompare_DepthOnly(t *testing.T) {
	res := Compare(oven("A", 28, 28.5, 23.5, "30"), oven("B", 28, 28.5, 24, "20"))

	assert.Equal(t, model.ModificationsRequired, res.Verdict)
	assert.Equal(t, []string{
		"Cabinet depth or rear clearance adjustment required: cut-out depth must increase by 0.5 inches.",
	}, res.Modifications)
}

func TestCompare_UnknownValuesNeverFire(t *testing.T) {
	existing := oven("A", 28, 28.5, 23.5, "20")
	replacement := oven("B", 29, 29.5, 24, "30 A dedicated")
	existing.CutoutHeightMax = model.UnknownDecimal
	existing.CutoutDepthMin = model.UnknownDecimal

	res := Compare(existing, replacement)

	assert.Equal(t, model.DirectReplacement, res.Verdict)
	row := findRow(t, findChart(t, res, ChartElectrical), "Amperage (A)")
	assert.Equal(t, "20", row.Old)
	assert.Equal(t, "30 A dedicated", row.New)
	assert.Equal(t, model.NA, row.Diff)

	row = findRow(t, findChart(t, res, ChartCutout), "Cut-Out Depth Min (in)")
	assert.Equal(t, model.NA, row.Old)
	assert.Equal(t, model.NA, row.Diff)
}

func TestCompare_Insufficient(t *testing.T) {
	for name, pair := range map[string][2]*model.Spec{
		"nil existing":    {nil, oven("B", 1, 1, 1, "1")},
		"nil replacement": {oven("A", 1, 1, 1, "1"), nil},
		"unresolved":      {&model.Spec{}, oven("B", 1, 1, 1, "1")},
	} {
		t.Run(name, func(t *testing.T) {
			res := Compare(pair[0], pair[1])
			assert.Equal(t, model.InsufficientData, res.Verdict)
			assert.Equal(t, SummaryInsufficient, res.Summary)
			assert.NotNil(t, res.Modifications)
			assert.Empty(t, res.Modifications)
			assert.Empty(t, res.InstallImpact)
			assert.Empty(t, res.Charts)
			assert.Empty(t, res.Sources)
		})
	}
}

type fakeCatalog struct {
	specs map[string]*model.Spec
	err   error
}

func (f *fakeCatalog) Name() string { return "fake" }

func (f *fakeCatalog) Lookup(_ context.Context, m string) (model.Spec, bool, error) {
	if f.err != nil {
		return model.Spec{}, false, f.err
	}
	s, ok := f.specs[model.CatalogKey(m)]
	if !ok {
		return model.Spec{}, false, nil
	}
	return *s, true, nil
}

type fakeScraper struct {
	specs map[string]*model.Spec
	panic bool
}

func (f *fakeScraper) Scrape(_ context.Context, raw string) crawler.Outcome {
	if f.panic {
		panic("extractor exploded")
	}
	m := model.NormalizeModel(raw)
	s, ok := f.specs[m]
	if !ok {
		return crawler.Outcome{Model: m, Status: http.StatusNotFound, Err: &crawler.StatusError{StatusCode: http.StatusNotFound}}
	}
	return crawler.Outcome{OK: true, Model: m, Spec: *s, Status: http.StatusOK}
}

func TestService_CatalogThenScrape(t *testing.T) {
	svc := NewService(
		&fakeCatalog{specs: map[string]*model.Spec{"OLD1": oven("OLD1", 28, 28.5, 23.5, "20")}},
		&fakeScraper{specs: map[string]*model.Spec{"NEW1": oven("NEW1", 29, 29.5, 23.5, "30")}},
	)

	res := svc.Compare(context.Background(), Request{OldModel: "old1", NewModel: "new-1"})
	assert.Equal(t, model.NotCompatible, res.Verdict)
	assert.Contains(t, res.Modifications, "Electrical circuit upgrade required: 20A to 30A.")
}

func TestService_InlineReplacement(t *testing.T) {
	svc := NewService(&fakeCatalog{specs: map[string]*model.Spec{"OLD1": oven("OLD1", 28, 28.5, 23.5, "20")}}, nil)

	res := svc.Compare(context.Background(), Request{OldModel: "OLD1", Replacement: oven("X", 28, 28.5, 23.5, "20")})
	assert.Equal(t, model.DirectReplacement, res.Verdict)
}

func TestService_BothMissing(t *testing.T) {
	svc := NewService(&fakeCatalog{}, &fakeScraper{})

	res := svc.Compare(context.Background(), Request{OldModel: "NOPE1", NewModel: "NOPE2"})
	assert.Equal(t, model.InsufficientData, res.Verdict)
	assert.Equal(t, SummaryInsufficient, res.Summary)
	assert.Empty(t, res.Modifications)
	assert.Empty(t, res.Sources)
}

func TestService_PanicBecomesErrorVerdict(t *testing.T) {
	svc := NewService(nil, &fakeScraper{panic: true})

	res := svc.Compare(context.Background(), Request{OldModel: "A", NewModel: "B"})
	assert.Equal(t, model.Error, res.Verdict)
	assert.Contains(t, res.Summary, "extractor exploded")
	assert.NotNil(t, res.Charts)
}

func TestService_CatalogError(t *testing.T) {
	svc := NewService(&fakeCatalog{err: errors.New("connection refused")}, nil)

	res := svc.Compare(context.Background(), Request{OldModel: "A", NewModel: "B"})
	require.Equal(t, model.Error, res.Verdict)
	assert.Contains(t, res.Summary, "connection refused")
}
