package health_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/health"
	"github.com/KirkDiggler/pokemon-api/internal/testutils"
)

func TestSQLiteChecker(t *testing.T) {
	db := testutils.CreateTestSQLiteDB(t)
	checker := health.SQLite(db)

	require.NoError(t, checker.Check(context.Background()))

	require.NoError(t, db.Close())
	err := checker.Check(context.Background())
	assert.True(t, errors.IsUnavailable(err))
}

func TestRedisChecker(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisClientWithServer(t, nil)
	defer cleanup()

	checker := health.Redis(client)
	require.NoError(t, checker.Check(context.Background()))

	mr.Close()
	err := checker.Check(context.Background())
	assert.True(t, errors.IsUnavailable(err))
}

type ReporterTestSuite struct {
	suite.Suite
	server   *grpchealth.Server
	checkErr error
	reporter *health.Reporter
}

func TestReporterSuite(t *testing.T) {
	suite.Run(t, new(ReporterTestSuite))
}

func (s *ReporterTestSuite) SetupTest() {
	s.server = grpchealth.NewServer()
	s.checkErr = nil

	var err error
	s.reporter, err = health.NewReporter(&health.ReporterConfig{
		Checker:  health.CheckFunc(func(context.Context) error { return s.checkErr }),
		Server:   s.server,
		Services: []string{"pokemon.api"},
		Interval: 10 * time.Millisecond,
	})
	s.Require().NoError(err)
}

func (s *ReporterTestSuite) status(service string) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := s.server.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	s.Require().NoError(err)
	return resp.GetStatus()
}

func (s *ReporterTestSuite) TestProbeFollowsChecker() {
	s.Equal(healthpb.HealthCheckResponse_SERVING, s.reporter.Probe(context.Background()))
	s.Equal(healthpb.HealthCheckResponse_SERVING, s.status(""))
	s.Equal(healthpb.HealthCheckResponse_SERVING, s.status("pokemon.api"))

	s.checkErr = errors.Unavailablef("store down")
	s.Equal(healthpb.HealthCheckResponse_NOT_SERVING, s.reporter.Probe(context.Background()))
	s.Equal(healthpb.HealthCheckResponse_NOT_SERVING, s.status(""))
	s.Equal(healthpb.HealthCheckResponse_NOT_SERVING, s.status("pokemon.api"))
}

func (s *ReporterTestSuite) TestRunStopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.reporter.Run(ctx) }()

	s.Eventually(func() bool {
		resp, err := s.server.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.Require().NoError(<-done)
	s.Equal(healthpb.HealthCheckResponse_NOT_SERVING, s.status(""))
}

func (s *ReporterTestSuite) TestConfigValidation() {
	_, err := health.NewReporter(&health.ReporterConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = health.NewReporter(nil)
	s.True(errors.IsInvalidArgument(err))
}
