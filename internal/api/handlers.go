package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"FiscalSim/internal/calculator"
	"FiscalSim/internal/log"
	"FiscalSim/internal/model"
	"FiscalSim/internal/simulator"
)

// maxStaffingWorkers bounds ?workers= so one request cannot allocate
// arbitrarily large curves.
const maxStaffingWorkers = 1000

// Handler serves simulations of a fixed parameter set. Every request builds
// its own simulator, so concurrent requests never share a random stream.
type Handler struct {
	Params model.Params
	Plan   model.CapacityPlan
}

// NewHandler creates a handler after validating p.
func NewHandler(p model.Params, plan model.CapacityPlan) (*Handler, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Handler{Params: p, Plan: plan}, nil
}

// SeriesResponse is the raw simulated year.
type SeriesResponse struct {
	Seed   uint64       `json:"seed"`
	Layout model.Layout `json:"layout"`
	Series []float64    `json:"series"`
	Total  string       `json:"total"`
}

// SummaryResponse carries the descriptive statistics of one year.
type SummaryResponse struct {
	Seed    uint64        `json:"seed"`
	Total   string        `json:"total"`
	Summary model.Summary `json:"summary"`
}

// CapacityResponse pairs the series with its capacity comparison.
type CapacityResponse struct {
	Seed   uint64               `json:"seed"`
	Plan   model.CapacityPlan   `json:"plan"`
	Series []float64            `json:"series"`
	Report model.CapacityReport `json:"report"`
}

// StaffingResponse holds the diminishing-return curves for seasonal workers.
type StaffingResponse struct {
	Workers     int       `json:"workers"`
	Marginal    []float64 `json:"marginal"`
	Accumulated []float64 `json:"accumulated"`
	Decaying    []float64 `json:"decaying"`
}

// ErrorResponse is returned for all failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// GetParams returns the configured parameter set.
func (h *Handler) GetParams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Params)
}

// GetSeries simulates one year, optionally with ?seed= overriding the seed.
func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	p, series, ok := h.simulate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, SeriesResponse{
		Seed:   p.Seed,
		Layout: model.NewLayout(p),
		Series: series,
		Total:  calculator.TotalRevenue(series).StringFixed(2),
	})
}

// GetSummary returns describe() statistics for one simulated year.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	p, series, ok := h.simulate(w, r)
	if !ok {
		return
	}
	sum, err := calculator.Describe(series)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "describe failed", err)
		return
	}
	writeJSON(w, http.StatusOK, SummaryResponse{
		Seed:    p.Seed,
		Total:   calculator.TotalRevenue(series).StringFixed(2),
		Summary: sum,
	})
}

// GetCapacity compares a simulated year against the capacity plan. ?base=
// and ?seasonal= override the configured capacities.
func (h *Handler) GetCapacity(w http.ResponseWriter, r *http.Request) {
	plan := h.Plan
	var err error
	if plan.Base, err = floatParam(r, "base", plan.Base); err != nil {
		writeError(w, http.StatusBadRequest, "invalid base", err)
		return
	}
	if plan.Seasonal, err = floatParam(r, "seasonal", plan.Seasonal); err != nil {
		writeError(w, http.StatusBadRequest, "invalid seasonal", err)
		return
	}

	p, series, ok := h.simulate(w, r)
	if !ok {
		return
	}
	rep, err := calculator.CompareCapacity(series, plan)
	if err != nil {
		writeError(w, http.StatusBadRequest, "capacity comparison failed", err)
		return
	}
	writeJSON(w, http.StatusOK, CapacityResponse{Seed: p.Seed, Plan: plan, Series: series, Report: rep})
}

// GetStaffing returns marginal, accumulated and decaying returns for
// ?workers= extra seasonal workers (default 12) and decay rate ?decay=
// (default 0.6).
func (h *Handler) GetStaffing(w http.ResponseWriter, r *http.Request) {
	workers := 12
	if v := r.URL.Query().Get("workers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid workers", err)
			return
		}
		if n > maxStaffingWorkers {
			writeError(w, http.StatusBadRequest, "invalid workers",
				fmt.Errorf("at most %d workers, got %d", maxStaffingWorkers, n))
			return
		}
		workers = n
	}
	k, err := floatParam(r, "decay", 0.6)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid decay", err)
		return
	}
	acc, err := calculator.AccumulatedOutput(workers)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid workers", err)
		return
	}

	resp := StaffingResponse{
		Workers:     workers,
		Marginal:    make([]float64, workers),
		Accumulated: acc,
		Decaying:    make([]float64, workers),
	}
	for x := range workers {
		resp.Marginal[x] = calculator.MarginalOutput(float64(x))
		resp.Decaying[x] = calculator.DecayingReturn(float64(x), k)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) simulate(w http.ResponseWriter, r *http.Request) (model.Params, model.Series, bool) {
	p := h.Params
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid seed", err)
			return p, nil, false
		}
		p = p.WithSeed(seed)
	}
	series, err := simulator.Simulate(p)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvalidConfiguration) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "simulation failed", err)
		return p, nil, false
	}
	return p, series, true
}

func floatParam(r *http.Request, name string, def float64) (float64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s must be finite, got %s", name, v)
	}
	return f, nil
}

// writeJSON encodes before writing the header so an encoding failure can
// still be reported as a 500.
func writeJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		log.Errorw("encode response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"encode response failed"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	if status >= http.StatusInternalServerError {
		log.Errorw(message, "status", status, "error", err)
	} else {
		log.Debugw(message, "status", status, "error", err)
	}
	writeJSON(w, status, resp)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
