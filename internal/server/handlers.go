package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tintlab/dyeseq/pkg/dye"
	"github.com/tintlab/dyeseq/pkg/errors"
	"github.com/tintlab/dyeseq/pkg/search"
	"github.com/tintlab/dyeseq/pkg/store"
)

// colorPayload is an RGB triple as received from or sent to clients.
// Channels are plain ints so range violations surface as validation
// errors instead of JSON decoding artifacts.
type colorPayload struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (c colorPayload) validate() error {
	return errors.ValidateColor(c.R, c.G, c.B)
}

func (c colorPayload) toColor() dye.Color {
	return dye.Color{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B)}
}

// searchRequest is the body of POST /api/v1/search and POST /api/v1/saved.
// Omitted optional fields fall back to the server's configuration.
type searchRequest struct {
	Target   colorPayload  `json:"target"`
	Base     *colorPayload `json:"base,omitempty"`
	Add      *int          `json:"add,omitempty"`
	Sub      *int          `json:"sub,omitempty"`
	MaxDepth *int          `json:"max_depth,omitempty"`
}

// searchResponse is the result of a search run through the API.
type searchResponse struct {
	Sequence []dye.Dye `json:"sequence"`
	Runs     string    `json:"runs"`
	Mask     dye.Mask  `json:"mask"`
	Color    dye.Color `json:"color"`
	Target   dye.Color `json:"target"`
	Distance int       `json:"distance"`
}

// presetRequest is the body of POST /api/v1/presets.
type presetRequest struct {
	Name  string       `json:"name"`
	Color colorPayload `json:"color"`
}

// resolveParams validates a search request and merges it with the
// configured defaults into explicit search parameters.
func (s *Server) resolveParams(req searchRequest) (search.Params, error) {
	if err := req.Target.validate(); err != nil {
		return search.Params{}, err
	}

	p := search.Params{
		Base:     s.cfg.BaseColor(),
		Target:   req.Target.toColor(),
		Add:      s.cfg.Steps.Add,
		Sub:      s.cfg.Steps.Sub,
		MaxDepth: s.cfg.Search.MaxDepth,
	}
	if req.Base != nil {
		if err := req.Base.validate(); err != nil {
			return search.Params{}, err
		}
		p.Base = req.Base.toColor()
	}
	if req.Add != nil {
		p.Add = *req.Add
	}
	if req.Sub != nil {
		p.Sub = *req.Sub
	}
	if req.MaxDepth != nil {
		if err := errors.ValidateDepth(*req.MaxDepth); err != nil {
			return search.Params{}, err
		}
		p.MaxDepth = *req.MaxDepth
	}
	return p, nil
}

// runSearch decodes a search request, runs the engine and appends the
// outcome to history. Used by both the search and saved endpoints.
func (s *Server) runSearch(w http.ResponseWriter, r *http.Request) (store.Record, bool) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body"))
		return store.Record{}, false
	}

	params, err := s.resolveParams(req)
	if err != nil {
		writeError(w, err)
		return store.Record{}, false
	}

	res, err := search.Search(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return store.Record{}, false
	}

	rec := store.NewRecord(params.Target, res)
	if err := s.store.AddHistory(r.Context(), rec); err != nil {
		s.logger.Error("append history", "err", err)
	}
	return rec, true
}

func recordResponse(rec store.Record) searchResponse {
	return searchResponse{
		Sequence: rec.Steps,
		Runs:     search.FormatRuns(rec.Steps),
		Mask:     rec.Mask,
		Color:    rec.Color,
		Target:   rec.Target,
		Distance: rec.Distance,
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.runSearch(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, recordResponse(rec))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.History(r.Context(), store.HistoryLimit)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "list history"))
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleSavedList(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.SavedResults(r.Context())
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "list saved results"))
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleSavedCreate(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.runSearch(w, r)
	if !ok {
		return
	}
	if err := s.store.SaveResult(r.Context(), rec); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "save result"))
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleSavedDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteSaved(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePresetList(w http.ResponseWriter, r *http.Request) {
	ps, err := s.store.Presets(r.Context())
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "list presets"))
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (s *Server) handlePresetCreate(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}
	if err := errors.ValidatePresetName(req.Name); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Color.validate(); err != nil {
		writeError(w, err)
		return
	}

	p := store.NewPreset(req.Name, req.Color.toColor())
	if err := s.store.SavePreset(r.Context(), p); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "save preset"))
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handlePresetDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePreset(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
