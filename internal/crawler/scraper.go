package crawler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"appliancefit/internal/model"
	"appliancefit/internal/observability"
)

// DefaultBaseURL is where retailer product pages live, one per model.
const DefaultBaseURL = "https://www.ajmadison.com/cgi-bin/ajmadison"

// SourceName labels specs scraped from DefaultBaseURL.
const SourceName = "AJ Madison"

// ErrMissingModel is returned for an empty or punctuation-only model number.
var ErrMissingModel = errors.New("missing model")

// Outcome is the result of scraping one model. OK is false when Err is set.
type Outcome struct {
	OK     bool
	Model  string
	URL    string
	Spec   model.Spec
	HTML   string
	Status int
	Err    error
}

// Scraper fetches a model's product page and extracts its spec.
type Scraper struct {
	fetcher *Fetcher
	baseURL string
}

// NewScraper returns a Scraper reading pages under baseURL, or
// DefaultBaseURL when empty.
func NewScraper(f *Fetcher, baseURL string) *Scraper {
	if f == nil {
		f = NewFetcher(0, "")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Scraper{fetcher: f, baseURL: strings.TrimRight(baseURL, "/")}
}

// URLFor returns the product page address for an already normalized model.
func (s *Scraper) URLFor(modelNumber string) string {
	return fmt.Sprintf("%s/%s.html", s.baseURL, url.PathEscape(modelNumber))
}

// Scrape fetches and extracts one model. It never retries.
func (s *Scraper) Scrape(ctx context.Context, rawModel string) Outcome {
	m := model.NormalizeModel(rawModel)
	if m == "" {
		observability.ScrapesTotal.WithLabelValues("invalid").Inc()
		return Outcome{Err: ErrMissingModel}
	}

	out := Outcome{Model: m, URL: s.URLFor(m)}
	html, err := s.fetcher.Fetch(ctx, out.URL)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			out.Status = se.StatusCode
		}
		out.Err = err
		observability.ScrapesTotal.WithLabelValues("fetch_error").Inc()
		log.Warn().Err(err).Str("model", m).Str("url", out.URL).Msg("[Crawler] fetch failed")
		return out
	}

	spec, err := ParseProduct(html, out.URL, m)
	if err != nil {
		out.Err = err
		observability.ScrapesTotal.WithLabelValues("parse_error").Inc()
		return out
	}

	out.OK = true
	out.Status = http.StatusOK
	out.HTML = html
	out.Spec = spec
	observability.ScrapesTotal.WithLabelValues("ok").Inc()
	log.Info().Str("model", m).Str("url", out.URL).Msg("[Crawler] model scraped")
	return out
}
