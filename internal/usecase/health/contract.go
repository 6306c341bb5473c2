package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// ExtractorChecker checks remote term extractor availability.
type ExtractorChecker interface {
	HealthCheck(ctx context.Context) error
}

// ListingCounter reports the size of the searchable catalog.
type ListingCounter interface {
	CountActive(ctx context.Context) (int64, error)
}
