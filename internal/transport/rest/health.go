package rest

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

// Check probes one dependency. A nil error means healthy.
type Check func(ctx context.Context) error

// Probe is a named Check. A failing optional probe degrades the service
// without taking it out of rotation.
type Probe struct {
	Name     string
	Check    Check
	Optional bool
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	version  string
	probes   []Probe
	features map[string]bool
}

// NewHealthHandler takes the dependency probes and the optional
// collaborators reported as enabled or disabled.
func NewHealthHandler(version string, probes []Probe, features map[string]bool) *HealthHandler {
	return &HealthHandler{version: version, probes: probes, features: features}
}

// Overall and per-probe states.
const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

type HealthResponse struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version,omitempty"`
	Checks    map[string]ProbeResult `json:"checks,omitempty"`
	Features  map[string]bool        `json:"features,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

type ProbeResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latencyMs"`
	Optional  bool   `json:"optional,omitempty"`
}

// Live answers 200 while the process can serve HTTP at all.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now().UTC()})
}

// Ready answers 503 only when a required dependency is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.run(r.Context())
	writeJSON(w, statusCode(status), HealthResponse{Status: status, Timestamp: time.Now().UTC()})
}

// Health reports every probe with its latency, the feature flags and the
// build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, results := h.run(r.Context())
	writeJSON(w, statusCode(status), HealthResponse{
		Status:    status,
		Version:   h.version,
		Checks:    results,
		Features:  h.features,
		Timestamp: time.Now().UTC(),
	})
}

func statusCode(status string) int {
	if status == statusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// run executes all probes concurrently under one deadline.
func (h *HealthHandler) run(ctx context.Context) (string, map[string]ProbeResult) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	results := make([]ProbeResult, len(h.probes))
	var g errgroup.Group
	for i, p := range h.probes {
		g.Go(func() error {
			start := time.Now()
			res := ProbeResult{Status: statusOK, Optional: p.Optional}
			if err := p.Check(ctx); err != nil {
				res.Status = statusDown
			}
			res.LatencyMS = time.Since(start).Milliseconds()
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	overall := statusOK
	byName := make(map[string]ProbeResult, len(results))
	for i, res := range results {
		byName[h.probes[i].Name] = res
		if res.Status == statusOK {
			continue
		}
		if !res.Optional {
			overall = statusDown
		} else if overall == statusOK {
			overall = statusDegraded
		}
	}
	return overall, byName
}
