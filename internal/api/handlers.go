package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"appliancefit/internal/compat"
	"appliancefit/internal/crawler"
	"appliancefit/internal/model"
)

// Comparer runs one compare request.
type Comparer interface {
	Compare(ctx context.Context, req compat.Request) model.ComparisonResult
}

type ScrapeRequest struct {
	Model string `json:"model"`
}

type ScrapeResponse struct {
	OK     bool       `json:"ok"`
	Source string     `json:"source"`
	URL    string     `json:"url"`
	Data   model.Spec `json:"data"`
	TSVRow string     `json:"tsvRow"`
}

type fetchFailure struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
	URL    string `json:"url"`
}

func CompareHandler(svc Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req compat.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result := svc.Compare(r.Context(), req)
		log.Info().
			Str("old", req.OldModel).
			Str("new", req.NewModel).
			Str("verdict", result.Verdict.String()).
			Msg("[API] compare")
		writeJSON(w, http.StatusOK, result)
	}
}

func ScrapeHandler(s compat.Scraper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScrapeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		out := s.Scrape(r.Context(), req.Model)
		if errors.Is(out.Err, crawler.ErrMissingModel) {
			writeError(w, http.StatusBadRequest, "Missing model")
			return
		}

		var se *crawler.StatusError
		if errors.As(out.Err, &se) {
			writeJSON(w, http.StatusBadGateway, fetchFailure{
				Error:  crawler.SourceName + " fetch failed",
				Status: se.StatusCode,
				URL:    out.URL,
			})
			return
		}
		if out.Err != nil {
			writeError(w, http.StatusInternalServerError, out.Err.Error())
			return
		}

		writeJSON(w, http.StatusOK, ScrapeResponse{
			OK:     true,
			Source: crawler.SourceName,
			URL:    out.URL,
			Data:   out.Spec,
			TSVRow: out.Spec.TSVRow(),
		})
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("[API] encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
