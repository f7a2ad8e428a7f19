package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const specTabPage = `<html><body>
<div class="tab-pane" id="hbl8451uc-specs-tab-pane">
  <div class="bold">Dimensions</div>
  <div class="spec-bar"><div class="col">Width</div><div class="col">23 3/4"</div></div>
  <div class="spec-bar"><div class="col">Height</div><div class="col">28 7/8"</div></div>
  <div class="spec-bar"><div class="col">Depth</div><div class="col">24"</div></div>
  <div class="bold">Cut Out Dimensions</div>
  <div class="spec-bar"><div class="col">Width</div><div class="col">15"</div></div>
  <div class="spec-bar"><div class="col">Height</div><div class="col">28 5/8"</div></div>
  <div class="spec-bar"><div class="col">Depth</div><div class="col">23 1/2"</div></div>
</div>
</body></html>`

func TestExtractFamily_ScopedToSection(t *testing.T) {
	doc := parse(t, specTabPage)

	cutout := ExtractFamily(doc, cutoutSectionTitles, cutoutFamily)
	assert.Equal(t, `15"`, cutout.Width.Value)
	assert.Equal(t, `28 5/8"`, cutout.Height.Value)
	assert.Equal(t, `23 1/2"`, cutout.Depth.Value)

	overall := ExtractFamily(doc, overallSectionTitles, overallFamily)
	assert.Equal(t, `23 3/4"`, overall.Width.Value)
	assert.Equal(t, `28 7/8"`, overall.Height.Value)
	assert.Equal(t, `24"`, overall.Depth.Value)
}

func TestExtractFamily_MissingSection(t *testing.T) {
	doc := parse(t, `<html><body><div class="bold">Features</div>
<div class="spec-bar"><div class="col">Width</div><div class="col">30"</div></div></body></html>`)

	d := ExtractFamily(doc, cutoutSectionTitles, cutoutFamily)
	assert.False(t, d.Width.Known)
	assert.False(t, d.Height.Known)
	assert.False(t, d.Depth.Known)
}

func TestExtractFamily_CombinedValue(t *testing.T) {
	doc := parse(t, `<html><body>
<div class="bold">Product Dimensions</div>
<div class="spec-bar"><div class="col">Product Dimensions</div><div class="col">29 1/8" x 29 3/4" x 23 3/4"</div></div>
</body></html>`)

	d := ExtractFamily(doc, overallSectionTitles, overallFamily)
	assert.Equal(t, `29 1/8"`, d.Height.Value)
	assert.Equal(t, `29 3/4"`, d.Width.Value)
	assert.Equal(t, `23 3/4"`, d.Depth.Value)

	doc = parse(t, `<html><body>
<div class="bold">Cutout Dimensions</div>
<div class="spec-bar"><div class="col">Cutout Dimensions (H x W x D)</div><div class="col">28 5/8" - 28 1/2" - 23 1/2"</div></div>
</body></html>`)

	d = ExtractFamily(doc, cutoutSectionTitles, cutoutFamily)
	assert.Equal(t, `28 5/8"`, d.Height.Value)
	assert.Equal(t, `28 1/2"`, d.Width.Value)
	assert.Equal(t, `23 1/2"`, d.Depth.Value)
}

func TestExtractFamily_FirstRowWins(t *testing.T) {
	doc := parse(t, `<html><body>
<div class="bold">Cutout Dimensions</div>
<table>
  <tr><td>Cutout Width</td><td>28 1/2"</td></tr>
  <tr><td>Width</td><td>30"</td></tr>
</table>
</body></html>`)

	d := ExtractFamily(doc, cutoutSectionTitles, cutoutFamily)
	assert.Equal(t, `28 1/2"`, d.Width.Value)
}

func TestExtractMainFamily_SkipsCutoutRows(t *testing.T) {
	doc := parse(t, `<html><body>
<h3>Dimensions</h3>
<ul>
  <li>Cutout Width: 28 1/2"</li>
  <li>Cabinet Opening Height: 28"</li>
  <li>Width: 29 3/4"</li>
  <li>Height: 29 1/8"</li>
  <li>Depth: 23 3/4"</li>
</ul>
<h3>Features</h3>
<ul><li>Width: 99"</li></ul>
<div class="tab-pane" id="x-specs-tab-pane">
  <div class="bold">Dimensions</div>
  <div class="spec-bar"><div class="col">Width</div><div class="col">1"</div></div>
</div>
</body></html>`)

	d := ExtractMainFamily(doc, mainSectionTitles, mainFamily)
	assert.Equal(t, `29 3/4"`, d.Width.Value)
	assert.Equal(t, `29 1/8"`, d.Height.Value)
	assert.Equal(t, `23 3/4"`, d.Depth.Value)
}

func TestExtractMainFamily_StopsAtNextHeader(t *testing.T) {
	doc := parse(t, `<html><body>
<h2>Product Dimensions</h2>
<p>Width: 30"</p>
<h2>Accessories</h2>
<p>Height: 99"</p>
</body></html>`)

	d := ExtractMainFamily(doc, mainSectionTitles, mainFamily)
	assert.Equal(t, `30"`, d.Width.Value)
	assert.False(t, d.Height.Known)
}

func TestScanSection(t *testing.T) {
	doc := parse(t, `<html><body>
<div class="tab-pane" id="p-specs-tab-pane">
  <div class="bold">Ventilation</div>
  <div class="spec-bar"><div class="col">Venting Type</div><div class="col">Front</div></div>
  <div class="spec-bar"><div class="col">Minimum CFM</div><div class="col">300 CFM</div></div>
  <div class="spec-bar"><div class="col">Duct Size</div><div class="col">6" Round</div></div>
  <div class="bold">Gas</div>
  <div class="spec-bar"><div class="col">Gas Type</div><div class="col">Natural Gas</div></div>
</div>
</body></html>`)

	vent := ScanSection(doc, ventilationSectionTitles, ventilationFields)
	require.True(t, vent.Found)
	assert.Equal(t, "Front", vent.Get("type").Value)
	assert.Equal(t, "300 CFM", vent.Get("min_cfm").Value)
	assert.Equal(t, `6" Round`, vent.Get("duct_diameter").Value)
	assert.False(t, vent.Get("required").Known)

	gas := ScanSection(doc, gasSectionTitles, gasFields)
	assert.Equal(t, "Natural Gas", gas.Get("type").Value)

	plumbing := ScanSection(doc, plumbingSectionTitles, plumbingFields)
	assert.False(t, plumbing.Found)
	assert.False(t, plumbing.Get("drain_size").Known)
}

func TestSplitHxWxD(t *testing.T) {
	h, w, d, ok := splitHxWxD(`29 1/8" × 29 3/4" X 23 3/4"`)
	require.True(t, ok)
	assert.Equal(t, `29 1/8"`, h)
	assert.Equal(t, `29 3/4"`, w)
	assert.Equal(t, `23 3/4"`, d)

	_, _, _, ok = splitHxWxD(`29 1/8" x 29 3/4"`)
	assert.False(t, ok)

	h, w, d, ok = splitHxWxD(`28 5/8" - 28 1/2" – 23 1/2"`)
	require.True(t, ok)
	assert.Equal(t, `28 5/8"`, h)
	assert.Equal(t, `28 1/2"`, w)
	assert.Equal(t, `23 1/2"`, d)

	_, _, _, ok = splitHxWxD(`27 7/8" - 28 1/8"`)
	assert.False(t, ok, "a range is not a triple")
	_, _, _, ok = splitHxWxD(`28" - see manual - 23"`)
	assert.False(t, ok)
}
