package catalog

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"appliancefit/internal/model"
)

// DefaultSheet is the worksheet holding wall oven specs.
const DefaultSheet = "Wall Ovens"

// Sheet reads specs from an xlsx workbook laid out like the catalog
// spreadsheet: one header row, one spec per row. The file is read on every
// lookup so edits show up without a restart.
type Sheet struct {
	Path  string
	Sheet string
}

// NewSheet returns a Sheet over path. An empty sheet name means DefaultSheet.
func NewSheet(path, sheet string) *Sheet {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &Sheet{Path: path, Sheet: sheet}
}

func (s *Sheet) Name() string { return "sheet" }

func (s *Sheet) rows() ([]string, [][]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening XLSX: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(s.Sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("reading sheet %q: %w", s.Sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	return rows[0], rows[1:], nil
}

func (s *Sheet) Lookup(ctx context.Context, modelNumber string) (model.Spec, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Spec{}, false, err
	}
	headers, rows, err := s.rows()
	if err != nil {
		return model.Spec{}, false, err
	}
	spec, ok := findRow(headers, rows, modelNumber)
	return spec, ok, nil
}

// Models lists every model number in the sheet, in row order.
func (s *Sheet) Models() ([]string, error) {
	headers, rows, err := s.rows()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, row := range rows {
		spec := model.SpecFromRow(headers, row)
		if spec.ModelNumber.Known {
			out = append(out, spec.ModelNumber.Value)
		}
	}
	return out, nil
}

// WriteSheet saves specs to a new workbook at path, header row first.
func WriteSheet(path, sheet string, specs []model.Spec) error {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", toCells(model.Columns())); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, s := range specs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, toCells(s.Row())); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving XLSX: %w", err)
	}
	return nil
}

func toCells(values []string) *[]interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return &cells
}
