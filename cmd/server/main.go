package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"caseflow/internal/jwtsession"
	"caseflow/internal/lead"
	"caseflow/internal/platform/audit"
	"caseflow/internal/platform/config"
	"caseflow/internal/platform/httpserver"
	"caseflow/internal/platform/logger"
	"caseflow/internal/platform/metrics"
	"caseflow/internal/platform/middleware"
	platformredis "caseflow/internal/platform/redis"
	"caseflow/internal/question"
	"caseflow/internal/valuation"
	"caseflow/internal/wizard/handler"
	"caseflow/internal/wizard/service"
	"caseflow/internal/wizard/store"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Snapshot store: Redis when configured, in-memory otherwise.
	var snapshots store.Store = store.NewInMemory()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		snapshots = store.NewRedis(redisClient.Client, cfg.SnapshotTTL)
		log.Info("snapshot store: redis")
	} else {
		log.Info("snapshot store: in-memory")
	}

	// Lead record store: Postgres when configured.
	var leadStore lead.Store = lead.NewInMemoryStore()
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres open failed", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("postgres ping failed", "error", err.Error())
			os.Exit(1)
		}
		pg := lead.NewPostgresStore(db)
		if err := pg.Migrate(ctx); err != nil {
			log.Error("postgres migration failed", "error", err.Error())
			os.Exit(1)
		}
		leadStore = pg
		log.Info("lead store: postgres")
	} else {
		log.Info("lead store: in-memory")
	}

	// Audit trail: Kafka when brokers are configured.
	var publisher audit.Publisher = audit.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPub, err := audit.NewKafkaPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Error("kafka connection failed", "error", err.Error())
			os.Exit(1)
		}
		defer kafkaPub.Close()
		publisher = kafkaPub
		log.Info("audit publisher: kafka", "topic", cfg.Kafka.Topic)
	}

	// Outbound lead delivery: HTTP when an endpoint is configured.
	var submitter lead.Submitter = lead.NoopSubmitter{}
	if cfg.Lead.Endpoint != "" {
		submitter = lead.NewHTTPSubmitter(cfg.Lead.Endpoint, cfg.Lead.RetryMax, log)
		log.Info("lead submitter: http", "endpoint", cfg.Lead.Endpoint)
	}

	svc := service.New(
		snapshots,
		question.NewCatalog(),
		valuation.NewFactorEngine(),
		submitter,
		leadStore,
		publisher,
		m,
		log,
	)
	tokens := jwtsession.NewService(cfg.JWTSigningKey, "caseflow", "caseflow-web")

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.Metrics(m))
	router.Use(middleware.Timeout(30 * time.Second))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				http.Error(w, "redis unhealthy", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		handler.New(svc, tokens, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting caseflow", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
