package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger reports whether a backing store is reachable. The in-memory
// repository passes a nil Pinger; only the DB check is conditional.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks"`
	Uptime    string                 `json:"uptime,omitempty"`
}

type CheckResult struct {
	Status       string `json:"status"` // "up" or "down"
	ResponseTime string `json:"response_time,omitempty"`
	Error        string `json:"error,omitempty"`
}

var startTime = time.Now()

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckResult)
	status := "healthy"

	dbCheck := h.checkDatabase(ctx)
	checks["database"] = dbCheck
	if dbCheck.Status != "up" {
		status = "unhealthy"
	}

	resp := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Uptime:    time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	code := http.StatusOK
	if status == "unhealthy" {
		code = http.StatusServiceUnavailable
	}
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckResult {
	start := time.Now()

	if h.db == nil {
		// In-memory store, nothing external to check.
		return CheckResult{Status: "up"}
	}

	if err := h.db.PingContext(ctx); err != nil {
		return CheckResult{
			Status:       "down",
			ResponseTime: time.Since(start).String(),
			Error:        err.Error(),
		}
	}

	return CheckResult{
		Status:       "up",
		ResponseTime: time.Since(start).String(),
	}
}
