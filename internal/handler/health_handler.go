package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"eastern-store/internal/domain"
)

// Health returns basic health check
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status    string                 `json:"status"`
	LatencyMs int64                  `json:"latency_ms,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// Ready returns readiness check with dependencies. db is nil in demo mode
// and reported as skipped.
func Ready(db *sql.DB, vault domain.SessionVault) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		vaultResult := make(chan HealthCheckResult, 1)
		dbResult := make(chan HealthCheckResult, 1)

		go func() {
			vaultResult <- checkVault(ctx, vault)
		}()
		go func() {
			dbResult <- checkDatabase(ctx, db)
		}()

		vaultCheck := <-vaultResult
		dbCheck := <-dbResult

		response := map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"checks": map[string]HealthCheckResult{
				"vault":    vaultCheck,
				"database": dbCheck,
			},
		}

		allHealthy := vaultCheck.Status == "up" &&
			(dbCheck.Status == "up" || dbCheck.Status == "skipped")

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			response["status"] = "ready"
			w.WriteHeader(http.StatusOK)
		} else {
			response["status"] = "not_ready"
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		json.NewEncoder(w).Encode(response)
	}
}

// checkVault verifies the session vault answers reads
func checkVault(ctx context.Context, vault domain.SessionVault) HealthCheckResult {
	start := time.Now()
	_, _, err := vault.Load(ctx)
	latency := time.Since(start)

	if err != nil {
		return HealthCheckResult{
			Status:    "down",
			LatencyMs: latency.Milliseconds(),
			Error:     err.Error(),
		}
	}
	return HealthCheckResult{
		Status:    "up",
		LatencyMs: latency.Milliseconds(),
	}
}

// checkDatabase verifies database connectivity
func checkDatabase(ctx context.Context, db *sql.DB) HealthCheckResult {
	if db == nil {
		return HealthCheckResult{Status: "skipped"}
	}

	start := time.Now()
	err := db.PingContext(ctx)
	latency := time.Since(start)

	if err != nil {
		return HealthCheckResult{
			Status:    "down",
			LatencyMs: latency.Milliseconds(),
			Error:     err.Error(),
		}
	}

	stats := db.Stats()
	return HealthCheckResult{
		Status:    "up",
		LatencyMs: latency.Milliseconds(),
		Metadata: map[string]interface{}{
			"connections_open":   stats.OpenConnections,
			"connections_in_use": stats.InUse,
			"connections_idle":   stats.Idle,
			"max_open":           stats.MaxOpenConnections,
		},
	}
}
