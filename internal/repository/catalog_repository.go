package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"appliancefit/internal/model"
)

// CatalogRepository stores verified specs as JSON documents keyed by the
// catalog key of their model number.
type CatalogRepository struct {
	DB *pgxpool.Pool
}

const catalogSchema = `
CREATE TABLE IF NOT EXISTS appliance_specs (
	model_key   TEXT PRIMARY KEY,
	manufacturer TEXT,
	source_url  TEXT,
	spec        JSONB NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates the catalog table when missing.
func (r *CatalogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.Exec(ctx, catalogSchema); err != nil {
		return fmt.Errorf("create appliance_specs: %w", err)
	}
	return nil
}

// Find returns the spec stored for modelNumber, if any.
func (r *CatalogRepository) Find(ctx context.Context, modelNumber string) (model.Spec, bool, error) {
	var raw []byte
	err := r.DB.QueryRow(ctx, `
		SELECT spec FROM appliance_specs WHERE model_key = $1
	`, model.NormalizeModel(modelNumber)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Spec{}, false, nil
	}
	if err != nil {
		return model.Spec{}, false, fmt.Errorf("query appliance_specs: %w", err)
	}

	var s model.Spec
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.Spec{}, false, fmt.Errorf("decode spec %s: %w", modelNumber, err)
	}
	return s, true, nil
}

// Upsert inserts or replaces the spec for its model number.
func (r *CatalogRepository) Upsert(ctx context.Context, s model.Spec) error {
	if !s.ModelNumber.Known {
		return errors.New("upsert spec: model number is unknown")
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode spec: %w", err)
	}
	_, err = r.DB.Exec(ctx, `
		INSERT INTO appliance_specs (model_key, manufacturer, source_url, spec, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (model_key) DO UPDATE
		SET manufacturer = EXCLUDED.manufacturer,
		    source_url = EXCLUDED.source_url,
		    spec = EXCLUDED.spec,
		    updated_at = now()
	`, model.NormalizeModel(s.ModelNumber.Value), s.Manufacturer.String(), s.SourceURL.String(), raw)
	if err != nil {
		return fmt.Errorf("upsert spec %s: %w", s.ModelNumber.Value, err)
	}
	return nil
}

// ModelNumbers lists every stored model key.
func (r *CatalogRepository) ModelNumbers(ctx context.Context) ([]string, error) {
	rows, err := r.DB.Query(ctx, `SELECT model_key FROM appliance_specs ORDER BY model_key`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
