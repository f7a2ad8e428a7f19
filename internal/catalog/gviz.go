package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"appliancefit/internal/model"
)

// DefaultGVizBaseURL serves published Google Sheets.
const DefaultGVizBaseURL = "https://docs.google.com/spreadsheets/d"

var errGVizPayload = errors.New("gviz: malformed payload")

// GViz reads the catalog from a Google Sheets visualization feed. Like Sheet
// it fetches on every lookup.
type GViz struct {
	BaseURL string
	SheetID string
	Sheet   string
	Client  *http.Client
}

// NewGViz returns a feed reader for the given spreadsheet id.
func NewGViz(sheetID, sheet string) *GViz {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &GViz{
		BaseURL: DefaultGVizBaseURL,
		SheetID: sheetID,
		Sheet:   sheet,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *GViz) Name() string { return "gviz" }

type gvizResponse struct {
	Table struct {
		Cols []struct {
			Label string `json:"label"`
		} `json:"cols"`
		Rows []struct {
			C []*struct {
				V any `json:"v"`
			} `json:"c"`
		} `json:"rows"`
	} `json:"table"`
}

func (g *GViz) feedURL() string {
	return fmt.Sprintf("%s/%s/gviz/tq?tqx=out:json&sheet=%s", g.BaseURL, g.SheetID, url.QueryEscape(g.Sheet))
}

func (g *GViz) table(ctx context.Context) ([]string, [][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.feedURL(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch gviz feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("gviz status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read gviz feed: %w", err)
	}
	return parseGViz(body)
}

// parseGViz unwraps the JSONP envelope
// "/*O_o*/\ngoogle.visualization.Query.setResponse({...});" and flattens
// the table into header and string rows.
func parseGViz(body []byte) ([]string, [][]string, error) {
	start := bytes.IndexByte(body, '{')
	end := bytes.LastIndexByte(body, '}')
	if start < 0 || end < start {
		return nil, nil, errGVizPayload
	}

	var r gvizResponse
	if err := json.Unmarshal(body[start:end+1], &r); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errGVizPayload, err)
	}

	headers := make([]string, len(r.Table.Cols))
	for i, c := range r.Table.Cols {
		headers[i] = c.Label
	}
	rows := make([][]string, 0, len(r.Table.Rows))
	for _, row := range r.Table.Rows {
		cells := make([]string, len(row.C))
		for i, c := range row.C {
			if c != nil {
				cells[i] = cellString(c.V)
			}
		}
		rows = append(rows, cells)
	}
	return headers, rows, nil
}

func cellString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return model.FormatDecimal(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

func (g *GViz) Lookup(ctx context.Context, modelNumber string) (model.Spec, bool, error) {
	headers, rows, err := g.table(ctx)
	if err != nil {
		return model.Spec{}, false, err
	}
	spec, ok := findRow(headers, rows, modelNumber)
	return spec, ok, nil
}
