package crawler

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"appliancefit/internal/extract"
	"appliancefit/internal/model"
)

// ParseProduct extracts a spec from a product page. requestedModel is used
// when the page does not print its own model number.
func ParseProduct(html, sourceURL, requestedModel string) (model.Spec, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return model.Spec{}, fmt.Errorf("%w: %v", extract.ErrParse, err)
	}
	return extract.Extract(doc, extract.PageText(doc), sourceURL, requestedModel), nil
}
