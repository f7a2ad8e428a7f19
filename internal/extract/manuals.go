package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"appliancefit/internal/model"
)

// Document kinds.
const (
	KindInstallation  = "installation"
	KindSpecification = "specification"
)

const (
	manualsHeaderSelector = "h2,h3,h4,div.bold"
	manualsBlockSelector  = "div.bg-gray-10"
)

var manualsTitles = []string{"Manuals & Guides", "Manuals and Guides", "Manuals", "Documents & Guides"}

// Titles carrying any of these are operational documents and never count,
// whatever else they mention.
var (
	excludedDocPhrases  = []string{"home connect"}
	excludedDocPrefixes = []string{"quick", "owner", "warrant", "energy", "operat"}
	excludedDocWords    = []string{"use", "user", "care"}
)

var (
	installationDocWords  = []string{"install", "planning"}
	specificationDocWords = []string{"spec", "dimension"}
)

// ClassifyDocument returns the kind of a linked document, judged from its
// title and URL, or "" when it is excluded or not relevant.
func ClassifyDocument(title, href string) string {
	t := NormalizeLabel(title)
	u := strings.ToLower(href)

	if containsAny(t, excludedDocPhrases) {
		return ""
	}
	for _, w := range strings.Fields(t) {
		for _, p := range excludedDocPrefixes {
			if strings.HasPrefix(w, p) {
				return ""
			}
		}
		for _, x := range excludedDocWords {
			if w == x {
				return ""
			}
		}
	}

	if containsAny(t, installationDocWords) || containsAny(u, installationDocWords) {
		return KindInstallation
	}
	if containsAny(t, specificationDocWords) || containsAny(u, specificationDocWords) {
		return KindSpecification
	}
	return ""
}

// ClassifyManuals scans the "Manuals & Guides" block in document order. The
// first classified link becomes Primary and is never replaced; the first link
// of each kind is kept as well. Relative links resolve against pageURL.
func ClassifyManuals(doc *goquery.Document, pageURL string) model.ManualReferences {
	var refs model.ManualReferences

	header := findHeader(doc.Selection, manualsHeaderSelector, manualsTitles)
	if header == nil {
		return refs
	}
	block := header.Closest(manualsBlockSelector)
	if block.Length() == 0 {
		block = header.Parent()
	}

	base, _ := url.Parse(pageURL)
	block.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		title := a.Text()
		if strings.TrimSpace(href) == "" || strings.TrimSpace(title) == "" {
			return
		}
		kind := ClassifyDocument(title, href)
		if kind == "" {
			return
		}

		ref := &model.ManualRef{Kind: kind, Title: NormalizeText(title), URL: resolveHref(base, href)}
		if refs.Primary == nil {
			refs.Primary = ref
		}
		switch {
		case kind == KindInstallation && refs.Installation == nil:
			refs.Installation = ref
		case kind == KindSpecification && refs.Specification == nil:
			refs.Specification = ref
		}
	})
	return refs
}

func resolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if base == nil || base.Host == "" {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
