package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	grpclogging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpcrecovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-api/internal/config"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	v1 "github.com/KirkDiggler/pokemon-api/internal/handlers/http/v1"
	"github.com/KirkDiggler/pokemon-api/internal/health"
	"github.com/KirkDiggler/pokemon-api/internal/logging"
	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/roster"
	redisclient "github.com/KirkDiggler/pokemon-api/internal/redis"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/item"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/pokemon"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/trainer"
	"github.com/KirkDiggler/pokemon-api/internal/sqlite"
)

const (
	shutdownTimeout   = 30 * time.Second
	readHeaderTimeout = 10 * time.Second

	// grpcServiceName is the named status reported next to the overall one
	grpcServiceName = "pokemon.api"
)

// repositories groups the store-specific implementations
type repositories struct {
	trainers trainer.Repository
	pokemons pokemon.Repository
	items    item.Repository
}

// app holds the wired dependencies of a running server
type app struct {
	cfg     *config.Config
	handler http.Handler
	checker health.Checker
	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	var rdb redisclient.Client
	if cfg.UsesRedis() {
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "create redis client")
		}
		rdb = client
		a.closers = append(a.closers, client.Close)
	}

	repos, err := a.openStore(ctx, rdb)
	if err != nil {
		a.close()
		return nil, err
	}

	pokeClient, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPIURL,
		HTTPTimeout: cfg.PokeAPITimeout,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	creatures, err := pokeapi.NewCached(&pokeapi.CachedConfig{
		Client: pokeClient,
		Cache:  rdb,
		TTL:    cfg.PokeAPICacheTTL,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	rosterSvc, err := roster.NewOrchestrator(&roster.Config{
		TrainerRepo: repos.trainers,
		PokemonRepo: repos.pokemons,
		ItemRepo:    repos.items,
		Creatures:   creatures,
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create roster orchestrator")
	}

	battleSvc, err := battle.NewOrchestrator(&battle.Config{StatProvider: creatures})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create battle orchestrator")
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		RosterService: rosterSvc,
		BattleService: battleSvc,
		Health:        a.checker,
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create handler")
	}

	a.handler = v1.NewRouter(&v1.RouterConfig{
		Handler:        handler,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	return a, nil
}

// openStore builds the repositories for the configured backend and sets the
// health checker to match.
func (a *app) openStore(ctx context.Context, rdb redisclient.Client) (*repositories, error) {
	switch a.cfg.Storage {
	case config.StorageRedis:
		a.checker = health.Redis(rdb)
		return redisRepositories(rdb)
	default:
		db, err := sqlite.Open(ctx, a.cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)

		if err := sqlite.Migrate(ctx, db); err != nil {
			return nil, err
		}

		a.checker = health.SQLite(db)
		return sqliteRepositories(db)
	}
}

// run serves until ctx is done or a server fails, then shuts everything down
func (a *app) run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if a.cfg.GRPCPort > 0 {
		if err := a.runGRPC(gctx, g); err != nil {
			return err
		}
	}

	httpServer := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           a.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g.Go(func() error {
		slog.InfoContext(gctx, "http server starting", "addr", a.cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "http server failed")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// runGRPC starts the grpc.health.v1 service on the errgroup
func (a *app) runGRPC(ctx context.Context, g *errgroup.Group) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", a.cfg.GRPCPort))
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to listen on grpc port %d", a.cfg.GRPCPort)
	}

	logger := logging.InterceptorLogger(slog.Default())
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpclogging.UnaryServerInterceptor(logger),
			grpcrecovery.UnaryServerInterceptor(),
			errors.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpclogging.StreamServerInterceptor(logger),
			grpcrecovery.StreamServerInterceptor(),
		),
	)

	healthServer := grpchealth.NewServer()
	healthpb.RegisterHealthServer(srv, healthServer)
	reflection.Register(srv)

	reporter, err := health.NewReporter(&health.ReporterConfig{
		Checker:  a.checker,
		Server:   healthServer,
		Services: []string{grpcServiceName},
	})
	if err != nil {
		_ = lis.Close()
		return err
	}

	g.Go(func() error {
		return reporter.Run(ctx)
	})

	g.Go(func() error {
		slog.InfoContext(ctx, "grpc server starting", "port", a.cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "grpc server failed")
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down grpc server")

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(shutdownTimeout):
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
		}
		return nil
	})

	return nil
}

// close releases store connections in reverse order of opening
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("failed to close resource", "error", err.Error())
		}
	}
	a.closers = nil
}

func sqliteRepositories(db *sql.DB) (*repositories, error) {
	trainers, err := trainer.NewSQLite(&trainer.SQLiteConfig{DB: db})
	if err != nil {
		return nil, err
	}
	pokemons, err := pokemon.NewSQLite(&pokemon.SQLiteConfig{DB: db})
	if err != nil {
		return nil, err
	}
	items, err := item.NewSQLite(&item.SQLiteConfig{DB: db})
	if err != nil {
		return nil, err
	}
	return &repositories{trainers: trainers, pokemons: pokemons, items: items}, nil
}

func redisRepositories(rdb redisclient.Client) (*repositories, error) {
	trainers, err := trainer.NewRedis(&trainer.RedisConfig{Client: rdb})
	if err != nil {
		return nil, err
	}
	pokemons, err := pokemon.NewRedis(&pokemon.RedisConfig{Client: rdb})
	if err != nil {
		return nil, err
	}
	items, err := item.NewRedis(&item.RedisConfig{Client: rdb})
	if err != nil {
		return nil, err
	}
	return &repositories{trainers: trainers, pokemons: pokemons, items: items}, nil
}
