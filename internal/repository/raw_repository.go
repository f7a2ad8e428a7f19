package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"appliancefit/internal/model"
)

// RawRepository keeps the last fetched product page per model so specs can be
// re-extracted without hitting the retailer again. Rows marked 'S' are
// pending extraction; 'N' rows have been processed.
type RawRepository struct {
	DB *sql.DB
}

const rawSchema = `
CREATE TABLE IF NOT EXISTS appliance_raw_pages (
	id           UUID PRIMARY KEY,
	model_number TEXT NOT NULL UNIQUE,
	source_url   TEXT NOT NULL,
	raw_content  TEXT NOT NULL,
	sync_status  CHAR(1) NOT NULL DEFAULT 'S',
	fetched_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates the raw page table when missing.
func (r *RawRepository) EnsureSchema() error {
	if _, err := r.DB.Exec(rawSchema); err != nil {
		return fmt.Errorf("create appliance_raw_pages: %w", err)
	}
	return nil
}

func (r *RawRepository) Save(p model.RawPage) error {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM appliance_raw_pages WHERE model_number = $1)", p.ModelNumber).Scan(&exists)
	if err != nil {
		return err
	}

	content := strings.ToValidUTF8(p.Content, "")
	if exists {
		_, err = r.DB.Exec(`
			UPDATE appliance_raw_pages
			SET source_url = $1, raw_content = $2, sync_status = 'S', fetched_at = now()
			WHERE model_number = $3
		`, p.SourceURL, content, p.ModelNumber)
	} else {
		_, err = r.DB.Exec(`
			INSERT INTO appliance_raw_pages
			(id, model_number, source_url, raw_content, sync_status)
			VALUES ($1, $2, $3, $4, 'S')
		`, p.ID, p.ModelNumber, p.SourceURL, content)
	}
	return err
}

// List returns the pages still waiting for extraction.
func (r *RawRepository) List() ([]model.RawPage, error) {
	rows, err := r.DB.Query(`
		SELECT id, model_number, source_url, raw_content
		FROM appliance_raw_pages
		WHERE sync_status = 'S'
		ORDER BY fetched_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.RawPage
	for rows.Next() {
		var p model.RawPage
		if err := rows.Scan(&p.ID, &p.ModelNumber, &p.SourceURL, &p.Content); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *RawRepository) MarkAsProcessed(modelNumber string) error {
	_, err := r.DB.Exec(`
		UPDATE appliance_raw_pages
		SET sync_status = 'N'
		WHERE model_number = $1
	`, modelNumber)
	return err
}
