package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/auth"
	"github.com/worldloom/worldloom/x/character"
	"github.com/worldloom/worldloom/x/item"
	"github.com/worldloom/worldloom/x/location"
	"github.com/worldloom/worldloom/x/userkv"
	"github.com/worldloom/worldloom/x/util"
	"github.com/worldloom/worldloom/x/world"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

const worldloomBanner = `
 _      __         __   ____
| | /| / /__  ____/ /__/ / /  ___  ___  __ _
| |/ |/ / _ \/ __/ / _  / /__/ _ \/ _ \/  ' \
|__/|__/\___/_/ /_/\_,_/____/\___/\___/_/_/_/
`

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

func main() {

	fmt.Fprint(os.Stderr, worldloomBanner)

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("Worldloom %s starting...", util.GetFullVersion()))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	config := util.Config{}
	configPath := os.Getenv("WORLDLOOM_CONFIG")
	if configPath == "" {
		configPath = "/etc/worldloom/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
	}

	slog.Info(fmt.Sprintf("Config loaded! I am: %s", config.Worldloom.FQDN))

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, config.Worldloom.FQDN+"/wlapi", util.GetFullVersion())
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "wlapi",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return "REDACTED"
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	db.AutoMigrate(
		&core.World{},
		&core.Character{},
		&core.Location{},
		&core.Item{},
	)

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "",
		DB:       0,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	authService := SetupAuthService(config)

	worldService := SetupWorldService(db, mc)
	worldHandler := world.NewHandler(worldService)

	characterService := SetupCharacterService(db, mc)
	characterHandler := character.NewHandler(characterService)

	locationService := SetupLocationService(db, mc)
	locationHandler := location.NewHandler(locationService)

	itemService := SetupItemService(db, mc)
	itemHandler := item.NewHandler(itemService)

	userKvService := SetupUserkvService(rdb)
	userkvHandler := userkv.NewHandler(userKvService)

	api := e.Group("/api", authService.Identify)

	// world
	api.GET("/worlds", worldHandler.List)
	api.GET("/worlds/user", worldHandler.ListMine, auth.Restrict(auth.ISKNOWN))
	api.GET("/worlds/:id", worldHandler.Get)
	api.POST("/worlds", worldHandler.Create, auth.Restrict(auth.ISKNOWN))
	api.PUT("/worlds/:id", worldHandler.Update, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/worlds/:id", worldHandler.Delete, auth.Restrict(auth.ISKNOWN))

	// character
	api.GET("/characters/world/:worldId", characterHandler.ListByWorld)
	api.GET("/characters/:id", characterHandler.Get)
	api.POST("/characters", characterHandler.Create, auth.Restrict(auth.ISKNOWN))
	api.PUT("/characters/:id", characterHandler.Update, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/characters/:id", characterHandler.Delete, auth.Restrict(auth.ISKNOWN))

	// location
	api.GET("/locations/world/:worldId", locationHandler.ListByWorld)
	api.GET("/locations/:id", locationHandler.Get)
	api.POST("/locations", locationHandler.Create, auth.Restrict(auth.ISKNOWN))
	api.PUT("/locations/:id", locationHandler.Update, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/locations/:id", locationHandler.Delete, auth.Restrict(auth.ISKNOWN))

	// item
	api.GET("/items/world/:worldId", itemHandler.ListByWorld)
	api.GET("/items/:id", itemHandler.Get)
	api.POST("/items", itemHandler.Create, auth.Restrict(auth.ISKNOWN))
	api.PUT("/items/:id", itemHandler.Update, auth.Restrict(auth.ISKNOWN))
	api.DELETE("/items/:id", itemHandler.Delete, auth.Restrict(auth.ISKNOWN))

	// userkv
	api.GET("/kv/:key", userkvHandler.Get, auth.Restrict(auth.ISKNOWN))
	api.PUT("/kv/:key", userkvHandler.Upsert, auth.Restrict(auth.ISKNOWN))

	// admin
	api.GET("/admin/stats", func(c echo.Context) error {
		ctx := c.Request().Context()
		stats := map[string]int64{}
		for name, count := range map[string]func(context.Context) (int64, error){
			"worlds":     worldService.Count,
			"characters": characterService.Count,
			"locations":  locationService.Count,
			"items":      itemService.Count,
		} {
			value, err := count(ctx)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, core.MessageResponse{Msg: "Server error"})
			}
			stats[name] = value
		}
		return c.JSON(http.StatusOK, stats)
	}, auth.Restrict(auth.ISADMIN))

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wl_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	go func() {
		counters := map[string]func(context.Context) (int64, error){
			"world":     worldService.Count,
			"character": characterService.Count,
			"location":  locationService.Count,
			"item":      itemService.Count,
		}
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			for kind, count := range counters {
				value, err := count(ctx)
				if err != nil {
					slog.Error(fmt.Sprintf("failed to count %ss: %v", kind, err))
					continue
				}
				resourceCountMetrics.WithLabelValues(kind).Set(float64(value))
			}
			cancel()
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	bind := config.Server.Bind
	if bind == "" {
		bind = ":8000"
	}
	e.Logger.Fatal(e.Start(bind))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
