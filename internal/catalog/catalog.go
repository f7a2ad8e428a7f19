// Package catalog looks up verified appliance specs by model number. A
// missing model is a normal outcome (found == false), not an error.
package catalog

import (
	"context"

	"github.com/rs/zerolog/log"

	"appliancefit/internal/model"
)

// Catalog is a keyed dataset of verified specs. Keys are case-insensitive and
// trimmed.
type Catalog interface {
	Name() string
	Lookup(ctx context.Context, modelNumber string) (model.Spec, bool, error)
}

// Chain asks each catalog in order and returns the first hit. A catalog that
// fails is logged and skipped.
type Chain []Catalog

func (c Chain) Name() string { return "chain" }

func (c Chain) Lookup(ctx context.Context, modelNumber string) (model.Spec, bool, error) {
	for _, cat := range c {
		if cat == nil {
			continue
		}
		spec, ok, err := cat.Lookup(ctx, modelNumber)
		if err != nil {
			if ctx.Err() != nil {
				return model.Spec{}, false, ctx.Err()
			}
			log.Warn().Err(err).Str("catalog", cat.Name()).Str("model", modelNumber).Msg("[Catalog] lookup failed, skipping")
			continue
		}
		if ok {
			log.Debug().Str("catalog", cat.Name()).Str("model", modelNumber).Msg("[Catalog] hit")
			return spec, true, nil
		}
	}
	return model.Spec{}, false, nil
}

// findRow returns the first data row whose "Model Number" cell matches key.
func findRow(headers []string, rows [][]string, modelNumber string) (model.Spec, bool) {
	key := model.CatalogKey(modelNumber)
	if key == "" {
		return model.Spec{}, false
	}
	col := -1
	for i, h := range headers {
		if model.CatalogKey(h) == "MODEL NUMBER" {
			col = i
			break
		}
	}
	if col < 0 {
		return model.Spec{}, false
	}
	for _, row := range rows {
		if col < len(row) && model.CatalogKey(row[col]) == key {
			return model.SpecFromRow(headers, row), true
		}
	}
	return model.Spec{}, false
}
