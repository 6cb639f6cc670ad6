package postgres

import "context"

// HealthCheck implements ports.HealthChecker for PostgreSQL. It fails until
// the schema has been applied.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and that the account table is readable.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var n int64
	return h.pool.QueryRow(ctx, "SELECT COUNT(*) FROM accounts").Scan(&n)
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
