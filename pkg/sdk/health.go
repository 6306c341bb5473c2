package thriftfind

import (
	"context"
)

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status         string            // "ok", "degraded", "error"
	Checks         map[string]string // component → "ok"/"error"/"disabled"
	ActiveListings int64
}

// Health checks the database and the remote extractor. A custom Extractor
// set via WithExtractor is reported as disabled.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status:         string(report.Status),
		Checks:         checks,
		ActiveListings: report.ActiveListings,
	}
}
