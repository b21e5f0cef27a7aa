package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/zonegen/pkg/buildinfo"
	"github.com/matzehuels/zonegen/pkg/config"
	"github.com/matzehuels/zonegen/pkg/dsl"
	"github.com/matzehuels/zonegen/pkg/errors"
	"github.com/matzehuels/zonegen/pkg/layout"
	"github.com/matzehuels/zonegen/pkg/pipeline"
	"github.com/matzehuels/zonegen/pkg/render/sink"
	"github.com/matzehuels/zonegen/pkg/zone"
)

// CacheHeader reports whether a rendered artifact came from the cache.
const CacheHeader = "X-Cache"

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type layoutRequest struct {
	Layout string     `json:"layout"`
	Root   *zone.Zone `json:"root,omitempty"`
}

type parseResponse struct {
	Canonical string       `json:"canonical"`
	Tree      layout.Tree  `json:"tree"`
	Stats     layout.Stats `json:"stats"`
}

type zonesResponse struct {
	Root  zone.Zone   `json:"root"`
	Zones []zone.Zone `json:"zones"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	instr, err := parseLayout(req.Layout)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{
		Canonical: layout.Format(instr),
		Tree:      layout.ToTree(instr),
		Stats:     layout.StatsOf(instr),
	})
}

func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	root := zone.Full()
	if req.Root != nil {
		root = *req.Root
	}
	if err := root.Validate(); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid root"))
		return
	}
	instr, err := parseLayout(req.Layout)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	zones, err := layout.Zones(instr, root)
	if err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidLayout, err, "partition layout"))
		return
	}
	writeJSON(w, http.StatusOK, zonesResponse{Root: root, Zones: zones})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.fail(w, r, err)
		return
	}

	opts := pipeline.Options{Formats: []string{format}}
	if q := r.URL.Query().Get("root"); q != "" {
		root, err := zone.Parse(q)
		if err != nil {
			s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid root"))
			return
		}
		opts.Root = root
	}
	if q := r.URL.Query().Get("refresh"); q != "" {
		refresh, err := strconv.ParseBool(q)
		if err != nil {
			s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid refresh value %q", q))
			return
		}
		opts.Refresh = refresh
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.fail(w, r, bodyError(errors.Wrap(errors.ErrCodeInvalidInput, err, "read request")))
		return
	}
	doc, err := config.Parse(bytes.NewReader(body), "json")
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out, err := s.runner.Execute(r.Context(), doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	cached := "miss"
	if out.CacheInfo.AllHit() {
		cached = "hit"
	}
	data := out.Artifacts[format]
	w.Header().Set("Content-Type", sink.ContentType(format))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set(CacheHeader, cached)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// fail writes err and logs it when it carries no code.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.GetCode(err) == "" {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", RequestIDFrom(r.Context()))
	}
	writeError(w, r, err)
}

func parseLayout(text string) (layout.Instruction, error) {
	if text == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout is required")
	}
	instr, err := dsl.Parse(text)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "parse layout")
	}
	return instr, nil
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return bodyError(errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
	}
	return nil
}

// bodyError reports oversized bodies distinctly from malformed ones.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
	}
	return err
}
