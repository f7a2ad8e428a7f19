package importer

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"appliancefit/internal/extract"
	"appliancefit/internal/model"
)

const maxReprocessWorkers = 8

// Reprocess re-extracts every pending raw page without fetching anything and
// marks each one processed once all stores accepted it.
func (im *Importer) Reprocess(ctx context.Context) (*Report, error) {
	pages, err := im.Raw.List()
	if err != nil {
		return nil, err
	}

	workers := im.Workers
	if workers <= 0 || workers > maxReprocessWorkers {
		workers = maxReprocessWorkers
	}

	report := newReport()
	var mu sync.Mutex
	jobs := make(chan model.RawPage)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				spec, err := im.reprocess(ctx, p)
				mu.Lock()
				if err != nil {
					report.Failures[p.ModelNumber] = err
					log.Warn().Err(err).Str("model", p.ModelNumber).Msg("[Importer] reprocess failed")
				} else {
					report.Specs = append(report.Specs, spec)
				}
				mu.Unlock()
			}
		}()
	}

	for _, p := range pages {
		if ctx.Err() != nil {
			break
		}
		jobs <- p
	}
	close(jobs)
	wg.Wait()

	report.sort()
	log.Info().Int("pages", len(pages)).Int("imported", report.Imported()).Msg("[Importer] reprocess finished")
	return report, ctx.Err()
}

func (im *Importer) reprocess(ctx context.Context, p model.RawPage) (model.Spec, error) {
	spec, err := extract.ExtractHTML(p.Content, p.SourceURL, p.ModelNumber)
	if err != nil {
		return model.Spec{}, err
	}
	if err := im.save(ctx, spec); err != nil {
		return model.Spec{}, err
	}
	return spec, im.Raw.MarkAsProcessed(p.ModelNumber)
}
