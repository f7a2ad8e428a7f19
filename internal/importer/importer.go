// Package importer scrapes model lists into the catalogs and keeps a raw
// snapshot of every page it fetched.
package importer

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"appliancefit/internal/crawler"
	"appliancefit/internal/model"
)

// SpecSaver persists an imported spec (catalog.Postgres, catalog.Redis).
type SpecSaver interface {
	Name() string
	Save(ctx context.Context, s model.Spec) error
}

// RawStore is satisfied by *repository.RawRepository.
type RawStore interface {
	Save(p model.RawPage) error
	List() ([]model.RawPage, error)
	MarkAsProcessed(modelNumber string) error
}

// BatchScraper is satisfied by *crawler.Scraper.
type BatchScraper interface {
	ScrapeBatch(ctx context.Context, models []string, workers int, limiter *rate.Limiter, handler func(crawler.Outcome))
}

// Importer fans models out to a worker pool. Stores and Raw are optional.
type Importer struct {
	Scraper BatchScraper
	Stores  []SpecSaver
	Raw     RawStore
	Workers int
	// Rate is fetches per second; zero or less means unlimited.
	Rate float64
}

// Report lists what an import run produced. Specs are sorted by model number.
type Report struct {
	Specs    []model.Spec
	Failures map[string]error
}

func newReport() *Report {
	return &Report{Failures: map[string]error{}}
}

// Imported is the number of specs stored.
func (r *Report) Imported() int { return len(r.Specs) }

func (r *Report) sort() {
	sort.Slice(r.Specs, func(i, j int) bool {
		return r.Specs[i].ModelNumber.Value < r.Specs[j].ModelNumber.Value
	})
}

func (im *Importer) limiter() *rate.Limiter {
	if im.Rate <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(im.Rate), 1)
}

// Run scrapes every model. Per-model failures are collected in the report;
// only a cancelled context is returned as an error.
func (im *Importer) Run(ctx context.Context, models []string) (*Report, error) {
	report := newReport()
	var mu sync.Mutex

	im.Scraper.ScrapeBatch(ctx, dedupe(models), im.Workers, im.limiter(), func(out crawler.Outcome) {
		err := im.store(ctx, out)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			report.Failures[out.Model] = err
			log.Warn().Err(err).Str("model", out.Model).Msg("[Importer] model failed")
			return
		}
		report.Specs = append(report.Specs, out.Spec)
		log.Info().Str("model", out.Model).Msg("[Importer] model imported")
	})

	report.sort()
	log.Info().Int("imported", report.Imported()).Int("failed", len(report.Failures)).Msg("[Importer] finished")
	return report, ctx.Err()
}

func (im *Importer) store(ctx context.Context, out crawler.Outcome) error {
	if out.Err != nil {
		return out.Err
	}
	if im.Raw != nil {
		err := im.Raw.Save(model.RawPage{
			ID:          uuid.New().String(),
			ModelNumber: out.Model,
			SourceURL:   out.URL,
			Content:     out.HTML,
		})
		if err != nil {
			return err
		}
	}
	if err := im.save(ctx, out.Spec); err != nil {
		return err
	}
	if im.Raw != nil {
		return im.Raw.MarkAsProcessed(out.Model)
	}
	return nil
}

// save writes to every store and joins their errors.
func (im *Importer) save(ctx context.Context, s model.Spec) error {
	var errs []error
	for _, st := range im.Stores {
		if err := st.Save(ctx, s); err != nil {
			log.Error().Err(err).Str("store", st.Name()).Str("model", s.ModelNumber.Value).Msg("[Importer] save failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// dedupe normalizes model numbers and drops blanks and repeats, keeping order.
func dedupe(models []string) []string {
	seen := make(map[string]bool, len(models))
	out := make([]string, 0, len(models))
	for _, m := range models {
		n := model.NormalizeModel(m)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
