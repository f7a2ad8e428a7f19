package catalog

import (
	"context"

	"appliancefit/internal/model"
)

// specStore is the slice of repository.CatalogRepository the catalog needs.
type specStore interface {
	Find(ctx context.Context, modelNumber string) (model.Spec, bool, error)
	Upsert(ctx context.Context, s model.Spec) error
}

// Postgres serves specs imported into the appliance_specs table.
type Postgres struct {
	store specStore
}

// NewPostgres wraps a catalog repository.
func NewPostgres(store specStore) *Postgres {
	return &Postgres{store: store}
}

func (p *Postgres) Name() string { return "postgres" }

func (p *Postgres) Lookup(ctx context.Context, modelNumber string) (model.Spec, bool, error) {
	key := model.NormalizeModel(modelNumber)
	if key == "" {
		return model.Spec{}, false, nil
	}
	return p.store.Find(ctx, key)
}

// Save stores a spec, replacing any previous one for the same model.
func (p *Postgres) Save(ctx context.Context, s model.Spec) error {
	return p.store.Upsert(ctx, s)
}
