package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gymweights/internal/config"
	"github.com/2beens/gymweights/internal/kv"
	"github.com/2beens/gymweights/internal/middleware"
	"github.com/2beens/gymweights/internal/telemetry/metrics"
	"github.com/2beens/gymweights/internal/telemetry/tracing"
	"github.com/2beens/gymweights/internal/weights"
	weightsmcp "github.com/2beens/gymweights/internal/weights/mcp"
	"github.com/2beens/gymweights/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	backend     kv.Backend
	store       *weights.Store
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	s := &Server{
		config:       params.Config,
		versionInfo:  params.VersionInfo,
		otelShutdown: func() {},
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	if params.HoneycombTracingEnabled {
		otelShutdown, err := tracing.HoneycombSetup()
		if err != nil {
			return nil, err
		}
		s.otelShutdown = otelShutdown
	}

	var collectors []prometheus.Collector
	backends, err := OpenBackend(ctx, params.Config, BackendParams{
		RedisPassword:    params.RedisPassword,
		PostgresPassword: params.PostgresPassword,
		TracingEnabled:   params.HoneycombTracingEnabled,
	})
	if err != nil {
		s.otelShutdown()
		return nil, err
	}
	backend := backends.KV
	s.dbPool = backends.DBPool
	s.redisClient = backends.RedisClient
	if s.dbPool != nil {
		collectors = append(collectors, pgxpoolprometheus.NewCollector(
			s.dbPool,
			map[string]string{"db_name": params.Config.PostgresDBName},
		))
	}

	if params.Config.CacheSizeMB > 0 && backends.Remote() {
		cached := kv.NewCached(backend, params.Config.CacheSizeMB, params.Config.CacheTTLSeconds)
		collectors = append(collectors, prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "backend",
			Subsystem: "weights",
			Name:      "kv_cache_hit_rate",
			Help:      "Share of backend reads served from the in-process cache",
		}, cached.HitRate))
		backend = cached
		log.Debugf("kv cache enabled: %d MB, ttl %ds", params.Config.CacheSizeMB, params.Config.CacheTTLSeconds)
	}
	s.backend = backend

	s.promRegistry = metrics.SetupPrometheus(collectors...)
	s.metricsManager = metrics.NewManager("backend", "weights", s.promRegistry)
	s.metricsManager.GaugeLifeSignal.Set(0)

	s.store = weights.NewStore(
		backend,
		weights.WithNamespace(params.Config.Namespace),
		weights.WithMetrics(s.metricsManager),
	)
	if s.store.Migrate(ctx) {
		log.Infof("exercise list seeded under [%s]", s.store.Keys().Exercises)
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("weights-router"))

	weightsHandler := weights.NewHandler(s.store)
	weightsHandler.SetupRoutes(r)

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponse(w, pkg.ContentType.Text, s.versionInfo, http.StatusOK)
	}).Methods("GET", "OPTIONS").Name("version")

	if s.config.MCPEnabled {
		mcpServer := weightsmcp.NewServer(s.store, s.versionInfo)
		r.PathPrefix("/mcp").
			Handler(otelhttp.NewHandler(weightsmcp.NewHTTPHandler(mcpServer), "mcp")).
			Name("mcp")
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.RequestID())
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins...))
	if s.redisClient != nil && s.config.RateLimitAllowedPerMin > 0 {
		r.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"weights-router",
			s.config.RateLimitAllowedPerMin,
			s.metricsManager,
		))
	}
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	closeBackend(s.backend, s.dbPool)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
