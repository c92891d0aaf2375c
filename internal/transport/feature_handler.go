// Package transport exposes the feature registry over HTTP and gRPC.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/featuregate/internal/feature"
	"github.com/goodnatureofminers/featuregate/internal/model"
	"github.com/goodnatureofminers/featuregate/internal/service/recorder"
	"github.com/goodnatureofminers/featuregate/internal/service/replay"
)

const (
	maxActivationsBody = 1 << 20
	// recordTimeout bounds how long a request waits while the recorder is
	// backed up by failing flushes.
	recordTimeout = 5 * time.Second
)

// FeatureHandlerConfig wires a FeatureHandler. Recorder and Schedule are
// optional; the routes that need them answer 501 when they are missing.
type FeatureHandlerConfig struct {
	Catalog   *feature.Catalog
	Network   model.Network
	Snapshots SnapshotSource
	Recorder  ActivationRecorder
	Schedule  feature.EpochSchedule
	// Composites are served under /v1/composite/{name}.
	Composites map[string]*feature.Resolver
	// EpochFeatures are served under /v1/epochs/{name}.
	EpochFeatures map[string]feature.ID
	Logger        *zap.Logger
}

// FeatureHandler serves the REST view of the live feature set.
type FeatureHandler struct {
	cfg    FeatureHandlerConfig
	logger *zap.Logger
}

type featureView struct {
	ID          feature.ID `json:"id"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	Slot        *uint64    `json:"slot,omitempty"`
}

type compositeView struct {
	Name     string       `json:"name"`
	Outcomes []feature.ID `json:"outcomes"`
	Slot     uint64       `json:"slot"`
}

type epochView struct {
	Name    string     `json:"name"`
	Feature feature.ID `json:"feature"`
	Epoch   *uint64    `json:"epoch"`
}

type recordedView struct {
	Accepted int `json:"accepted"`
}

type errorView struct {
	Error string `json:"error"`
}

// NewFeatureHandler returns a FeatureHandler.
func NewFeatureHandler(cfg FeatureHandlerConfig) (*FeatureHandler, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("feature catalog is required")
	}
	if cfg.Snapshots == nil {
		return nil, errors.New("snapshot source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeatureHandler{cfg: cfg, logger: logger.Named("feature_handler")}, nil
}

// Register adds the handler's routes to mux.
func (h *FeatureHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/identity", h.identity)
	mux.HandleFunc("GET /v1/features", h.features)
	mux.HandleFunc("GET /v1/features/{id}", h.feature)
	mux.HandleFunc("GET /v1/composite/{name}", h.composite)
	mux.HandleFunc("GET /v1/epochs/{name}", h.epoch)
	mux.HandleFunc("POST /v1/activations", h.record)
}

func (h *FeatureHandler) identity(w http.ResponseWriter, _ *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, model.Identity{
		Network: h.cfg.Network,
		Catalog: h.cfg.Catalog.Identity(),
		Active:  snap.Set.Identity(),
		Slot:    snap.Head,
	})
}

func (h *FeatureHandler) features(w http.ResponseWriter, _ *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}
	entries := h.cfg.Catalog.Entries()
	views := make([]featureView, 0, len(entries))
	for _, e := range entries {
		views = append(views, newFeatureView(e, snap))
	}
	h.writeJSON(w, http.StatusOK, views)
}

func (h *FeatureHandler) feature(w http.ResponseWriter, r *http.Request) {
	id, err := feature.ParseID(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	description, err := h.cfg.Catalog.Description(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, newFeatureView(feature.Entry{ID: id, Description: description}, snap))
}

func (h *FeatureHandler) composite(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	resolver, ok := h.cfg.Composites[name]
	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Errorf("unknown composite %q", name))
		return
	}
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, compositeView{
		Name:     name,
		Outcomes: feature.SortedIDs(resolver.Resolve(snap.Set)),
		Slot:     snap.Head,
	})
}

func (h *FeatureHandler) epoch(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	id, ok := h.cfg.EpochFeatures[name]
	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Errorf("unknown epoch feature %q", name))
		return
	}
	if h.cfg.Schedule == nil {
		h.writeError(w, http.StatusNotImplemented, errors.New("epoch schedule is not configured"))
		return
	}
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}
	view := epochView{Name: name, Feature: id}
	if epoch, active := snap.Set.EpochOverride(id, h.cfg.Schedule); active {
		view.Epoch = &epoch
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *FeatureHandler) record(w http.ResponseWriter, r *http.Request) {
	if h.cfg.Recorder == nil {
		h.writeError(w, http.StatusNotImplemented, errors.New("activation recording is disabled"))
		return
	}

	var activations []model.Activation
	if err := json.NewDecoder(io.LimitReader(r.Body, maxActivationsBody)).Decode(&activations); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("decode activations: %w", err))
		return
	}
	for i := range activations {
		if activations[i].Network == "" {
			activations[i].Network = h.cfg.Network
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), recordTimeout)
	defer cancel()
	if err := h.cfg.Recorder.Record(ctx, activations...); err != nil {
		status := http.StatusServiceUnavailable
		if errors.Is(err, recorder.ErrMissingNetwork) {
			status = http.StatusBadRequest
		}
		h.writeError(w, status, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, recordedView{Accepted: len(activations)})
}

func (h *FeatureHandler) snapshot(w http.ResponseWriter) (replay.Snapshot, bool) {
	snap, ok := h.cfg.Snapshots.Snapshot()
	if !ok {
		h.writeError(w, http.StatusServiceUnavailable, errors.New("feature set not replayed yet"))
		return replay.Snapshot{}, false
	}
	return snap, true
}

func newFeatureView(e feature.Entry, snap replay.Snapshot) featureView {
	view := featureView{ID: e.ID, Description: e.Description}
	if slot, ok := snap.Set.ActivatedSlot(e.ID); ok {
		view.Active = true
		view.Slot = &slot
	}
	return view
}

func (h *FeatureHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func (h *FeatureHandler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorView{Error: err.Error()})
}
