package compat

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"appliancefit/internal/catalog"
	"appliancefit/internal/crawler"
	"appliancefit/internal/model"
	"appliancefit/internal/observability"
)

// Scraper resolves a model that no catalog knows.
type Scraper interface {
	Scrape(ctx context.Context, rawModel string) crawler.Outcome
}

// Request names the two appliances. Replacement, when set, is used instead
// of resolving NewModel.
type Request struct {
	OldModel    string      `json:"oldModel"`
	NewModel    string      `json:"newModel"`
	Replacement *model.Spec `json:"replacement,omitempty"`
}

// Service resolves both sides of a request and runs the rules.
type Service struct {
	Catalog catalog.Catalog
	Scraper Scraper
}

// NewService returns a Service. Either collaborator may be nil.
func NewService(c catalog.Catalog, s Scraper) *Service {
	return &Service{Catalog: c, Scraper: s}
}

// Compare never returns an error: unresolved sides give InsufficientData and
// internal faults give the Error verdict.
func (s *Service) Compare(ctx context.Context, req Request) (result model.ComparisonResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("component", "Compare").Msg("[Compare] recovered")
			result = Failed(fmt.Errorf("comparison failed: %v", r))
		}
		observability.ComparisonsTotal.WithLabelValues(result.Verdict.String()).Inc()
	}()

	existing, replacement, err := s.resolvePair(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("old", req.OldModel).Str("new", req.NewModel).Msg("[Compare] resolve failed")
		return Failed(err)
	}
	return Compare(existing, replacement)
}

func (s *Service) resolvePair(ctx context.Context, req Request) (*model.Spec, *model.Spec, error) {
	var existing, replacement *model.Spec
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		spec, err := s.resolve(gCtx, req.OldModel)
		existing = spec
		return err
	})

	if req.Replacement != nil {
		replacement = req.Replacement
	} else {
		g.Go(func() error {
			spec, err := s.resolve(gCtx, req.NewModel)
			replacement = spec
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return existing, replacement, nil
}

// resolve looks a model up in the catalog, then scrapes it. A model neither
// can produce resolves to nil without error.
func (s *Service) resolve(ctx context.Context, rawModel string) (spec *model.Spec, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resolve %q: %v", rawModel, r)
		}
	}()

	if s.Catalog != nil {
		found, ok, err := s.Catalog.Lookup(ctx, rawModel)
		if err != nil {
			return nil, fmt.Errorf("catalog lookup %q: %w", rawModel, err)
		}
		if ok {
			return &found, nil
		}
	}

	if s.Scraper == nil {
		return nil, nil
	}
	out := s.Scraper.Scrape(ctx, rawModel)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if !out.OK {
		log.Info().Err(out.Err).Str("model", rawModel).Int("status", out.Status).Msg("[Compare] model not resolved")
		return nil, nil
	}
	return &out.Spec, nil
}
