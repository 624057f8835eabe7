package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokemon-api/internal/config"
)

type AppTestSuite struct {
	suite.Suite
	cfg *config.Config
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) SetupTest() {
	s.cfg = &config.Config{
		HTTPAddr:       "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
		Storage:        config.StorageSQLite,
		SQLitePath:     filepath.Join(s.T().TempDir(), "pokemon.db"),
		PokeAPIURL:     "http://127.0.0.1:1",
		PokeAPITimeout: time.Second,
		LogLevel:       "error",
		LogFormat:      "text",
	}
}

func (s *AppTestSuite) getJSON(a *app, target string, out any) int {
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func (s *AppTestSuite) TestSQLiteWiring() {
	a, err := newApp(context.Background(), s.cfg)
	s.Require().NoError(err)
	defer a.close()

	s.Equal(http.StatusOK, s.getJSON(a, "/health", nil))

	var trainers []map[string]any
	s.Equal(http.StatusOK, s.getJSON(a, "/trainers", &trainers))
	s.Empty(trainers)
}

func (s *AppTestSuite) TestSQLiteReopenIsIdempotent() {
	a, err := newApp(context.Background(), s.cfg)
	s.Require().NoError(err)
	a.close()

	a, err = newApp(context.Background(), s.cfg)
	s.Require().NoError(err)
	a.close()
}

func (s *AppTestSuite) TestRedisWiring() {
	mr := miniredis.RunT(s.T())
	s.cfg.Storage = config.StorageRedis
	s.cfg.RedisAddr = mr.Addr()
	s.cfg.PokeAPICacheTTL = time.Minute

	a, err := newApp(context.Background(), s.cfg)
	s.Require().NoError(err)
	defer a.close()

	s.Equal(http.StatusOK, s.getJSON(a, "/health", nil))

	mr.Close()
	s.Equal(http.StatusServiceUnavailable, s.getJSON(a, "/health", nil))
}

func (s *AppTestSuite) TestRunStopsOnCancel() {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.cfg.GRPCPort = lis.Addr().(*net.TCPAddr).Port
	s.Require().NoError(lis.Close())

	a, err := newApp(context.Background(), s.cfg)
	s.Require().NoError(err)
	defer a.close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("server did not stop")
	}
}
