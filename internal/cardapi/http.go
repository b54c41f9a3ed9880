// Package cardapi serves rendered card faces and the active pip
// layout over HTTP for the table UI.
package cardapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"cardtable/card"
	"cardtable/facecard"
	"cardtable/internal/layoutstore"
)

type HTTPHandler struct {
	store layoutstore.Service
	log   *zap.SugaredLogger
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPHandler(store layoutstore.Service, log *zap.SugaredLogger) *HTTPHandler {
	return &HTTPHandler{store: store, log: log}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/cards/", h.handleCard)
	mux.HandleFunc("/api/layout", h.handleLayout)
}

// handleCard renders GET /api/cards/{suit}/{rank}.svg with the active
// stored layout, falling back to the built-in default when none is
// stored yet.
func (h *HTTPHandler) handleCard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/cards/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		writeError(w, http.StatusNotFound, "expected /api/cards/{suit}/{rank}.svg")
		return
	}
	suit := parts[0]
	rank := strings.TrimSuffix(parts[1], ".svg")

	layout, err := h.store.Load(r.Context(), layoutstore.ActiveLayoutName)
	if err != nil && !errors.Is(err, layoutstore.ErrLayoutNotFound) {
		h.log.Errorf("cardapi: load layout: %v", err)
		writeError(w, http.StatusInternalServerError, "layout store unavailable")
		return
	}

	svg, err := facecard.Render(suit, rank, layout)
	if err != nil {
		var spec *card.InvalidCardSpecError
		if errors.As(err, &spec) {
			writeError(w, http.StatusBadRequest, spec.Error())
			return
		}
		h.log.Errorf("cardapi: render %s/%s: %v", suit, rank, err)
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, svg)
}

// handleLayout reads or replaces the active layout document.
func (h *HTTPHandler) handleLayout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		layout, err := h.store.Load(r.Context(), layoutstore.ActiveLayoutName)
		if err != nil {
			if errors.Is(err, layoutstore.ErrLayoutNotFound) {
				writeError(w, http.StatusNotFound, "no layout stored")
				return
			}
			h.log.Errorf("cardapi: load layout: %v", err)
			writeError(w, http.StatusInternalServerError, "layout store unavailable")
			return
		}
		doc, err := facecard.MarshalLayout(layout)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "marshal failed")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc)

	case http.MethodPut, http.MethodPost:
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable body")
			return
		}
		layout, err := facecard.ParseLayout(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := h.store.Save(r.Context(), layoutstore.ActiveLayoutName, layout); err != nil {
			h.log.Errorf("cardapi: save layout: %v", err)
			writeError(w, http.StatusInternalServerError, "save failed")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
