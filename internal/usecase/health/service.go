package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates search works with reduced quality (local extraction only).
	Degraded Status = "degraded"
	// Unhealthy indicates search cannot return listings.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckDisabled indicates an optional component that is not configured.
	CheckDisabled CheckResult = "disabled"
)

// Report aggregates health check results.
type Report struct {
	Status         Status
	Checks         map[string]CheckResult
	ActiveListings int64
}

// Service coordinates health checks.
type Service struct {
	db        DBPinger
	extractor ExtractorChecker
	listings  ListingCounter
}

// New creates a Service. extractor and listings can be nil.
func New(db DBPinger, extractor ExtractorChecker, listings ListingCounter) *Service {
	return &Service{db: db, extractor: extractor, listings: listings}
}

// Check runs health checks against all components. A database failure makes
// the service unhealthy; an extractor failure only degrades it.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{Status: Healthy, Checks: make(map[string]CheckResult)}

	if err := s.db.Ping(ctx); err != nil {
		r.Checks["database"] = CheckError
		r.Status = Unhealthy
	} else {
		r.Checks["database"] = CheckOK
	}

	switch {
	case s.extractor == nil:
		r.Checks["extractor"] = CheckDisabled
	case s.extractor.HealthCheck(ctx) != nil:
		r.Checks["extractor"] = CheckError
		if r.Status == Healthy {
			r.Status = Degraded
		}
	default:
		r.Checks["extractor"] = CheckOK
	}

	if s.listings != nil && r.Checks["database"] == CheckOK {
		if n, err := s.listings.CountActive(ctx); err == nil {
			r.ActiveListings = n
		}
	}

	return r
}
