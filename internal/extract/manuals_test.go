package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDocument(t *testing.T) {
	tests := []struct {
		title string
		href  string
		want  string
	}{
		{"Installation Instructions", "/docs/a.pdf", KindInstallation},
		{"Planning Guide", "/docs/a.pdf", KindInstallation},
		{"Product Document", "/files/installation.pdf", KindInstallation},
		{"Spec Sheet", "/docs/a.pdf", KindSpecification},
		{"Dimension Guide", "/docs/a.pdf", KindSpecification},
		{"Product Specifications", "/docs/a.pdf", KindSpecification},
		{"Quick Start Guide", "/docs/install.pdf", ""},
		{"Owner's Manual", "/docs/a.pdf", ""},
		{"Use & Care Guide", "/docs/a.pdf", ""},
		{"Warranty", "/docs/spec.pdf", ""},
		{"Energy Guide", "/docs/spec.pdf", ""},
		{"Operating Instructions", "/docs/install.pdf", ""},
		{"Home Connect Setup", "/docs/install.pdf", ""},
		{"Brochure", "/docs/brochure.pdf", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDocument(tt.title, tt.href))
		})
	}
}

const manualsPage = `<html><body>
<div class="bg-gray-10">
  <h3>Manuals &amp; Guides</h3>
  <ul>
    <li><a href="/docs/quick.pdf">Quick Start Guide</a></li>
    <li><a href="/docs/care.pdf">Use and Care Manual</a></li>
    <li><a href="/docs/install.pdf">Installation Instructions</a></li>
    <li><a href="https://cdn.example.com/spec.pdf">Spec Sheet</a></li>
    <li><a href="/docs/install-2.pdf">Installation Guide</a></li>
  </ul>
</div>
</body></html>`

func TestClassifyManuals(t *testing.T) {
	doc := parse(t, manualsPage)

	refs := ClassifyManuals(doc, "https://www.ajmadison.com/cgi-bin/ajmadison/HBL8451UC.html")
	require.True(t, refs.Known())

	require.NotNil(t, refs.Primary)
	assert.Equal(t, KindInstallation, refs.Primary.Kind)
	assert.Equal(t, "installation instructions", refs.Primary.Title)
	assert.Equal(t, "https://www.ajmadison.com/docs/install.pdf", refs.Primary.URL)

	require.NotNil(t, refs.Installation)
	assert.Equal(t, refs.Primary.URL, refs.Installation.URL)

	require.NotNil(t, refs.Specification)
	assert.Equal(t, "https://cdn.example.com/spec.pdf", refs.Specification.URL)
}

func TestClassifyManuals_SpecificationFirst(t *testing.T) {
	doc := parse(t, `<html><body><div class="bg-gray-10">
<div class="bold">Manuals</div>
<a href="spec.pdf">Specifications</a>
<a href="install.pdf">Installation Manual</a>
</div></body></html>`)

	refs := ClassifyManuals(doc, "")
	require.NotNil(t, refs.Primary)
	assert.Equal(t, KindSpecification, refs.Primary.Kind)
	assert.Equal(t, "spec.pdf", refs.Primary.URL)
	require.NotNil(t, refs.Installation)
	assert.Equal(t, "install.pdf", refs.Installation.URL)
}

func TestClassifyManuals_None(t *testing.T) {
	doc := parse(t, `<html><body><h3>Manuals &amp; Guides</h3>
<div><a href="/q.pdf">Quick Reference</a></div></body></html>`)
	assert.False(t, ClassifyManuals(doc, "").Known())

	doc = parse(t, `<html><body><a href="/install.pdf">Installation</a></body></html>`)
	refs := ClassifyManuals(doc, "")
	assert.False(t, refs.Known())
	assert.Nil(t, refs.Installation)
}
