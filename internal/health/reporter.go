package health

import (
	"context"
	"log/slog"
	"time"

	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// DefaultInterval is how often the reporter re-probes when unset
const DefaultInterval = 10 * time.Second

// ReporterConfig configures a Reporter
type ReporterConfig struct {
	Checker Checker
	Server  *grpchealth.Server
	// Services are the named services whose status follows the checker.
	// The empty overall service is always included.
	Services []string
	Interval time.Duration
}

// Validate ensures required fields are set
func (c *ReporterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("reporter config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Checker == nil {
		vb.RequiredField("Checker")
	}
	if c.Server == nil {
		vb.RequiredField("Server")
	}
	if c.Interval < 0 {
		vb.Field("Interval", "must not be negative")
	}
	return vb.Build()
}

// Reporter keeps a grpc health server in step with a Checker
type Reporter struct {
	checker  Checker
	server   *grpchealth.Server
	services []string
	interval time.Duration
}

// NewReporter creates a Reporter
func NewReporter(cfg *ReporterConfig) (*Reporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = DefaultInterval
	}

	return &Reporter{
		checker:  cfg.Checker,
		server:   cfg.Server,
		services: append([]string{""}, cfg.Services...),
		interval: interval,
	}, nil
}

// Probe runs the checker once and publishes the resulting status
func (r *Reporter) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := r.checker.Check(ctx); err != nil {
		slog.WarnContext(ctx, "health probe failed", "error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	for _, svc := range r.services {
		r.server.SetServingStatus(svc, status)
	}
	return status
}

// Run probes on every interval until ctx is done, then marks every service
// NOT_SERVING.
func (r *Reporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			r.server.Shutdown()
			return nil
		case <-ticker.C:
			r.Probe(ctx)
		}
	}
}
