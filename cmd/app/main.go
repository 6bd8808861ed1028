package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"activityroster/internal/app/config"
	httpapi "activityroster/internal/app/http"
	"activityroster/internal/app/http/handler"
	"activityroster/internal/domain/activity"
	"activityroster/internal/infrastructure/async"
	"activityroster/internal/infrastructure/logging"
	"activityroster/internal/infrastructure/memory"
	"activityroster/internal/infrastructure/metrics"
	"activityroster/internal/infrastructure/notify"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	seed := activity.SeedActivities()
	activityRepo := memory.NewActivityRepository(seed)
	reg.MustRegister(metrics.NewRosterCollector(activityRepo))

	sinks := []async.Sink{async.NewLogSink(log)}
	if cfg.Redis.Enabled() {
		pub := notify.NewRedisPublisher(notify.RedisConfig{
			Address:  cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Channel:  cfg.Redis.Channel,
		})
		defer pub.Close()

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		if err := pub.Ping(pingCtx); err != nil {
			log.Warn("redis ping failed, publishing anyway", zap.Error(err))
		}
		pingCancel()

		sinks = append(sinks, pub)
		log.Info("redis event publishing enabled",
			zap.String("addr", cfg.Redis.Addr),
			zap.String("channel", cfg.Redis.Channel),
		)
	}

	eventBus := async.NewAsyncEventBus(ctx, cfg.EventWorkers, cfg.EventQueue, log, sinks...)
	defer eventBus.Close()

	uow := memory.NewTxManager()
	activitySvc := activity.NewService(uow, activityRepo, eventBus, activity.Options{
		EnforceCapacity: cfg.EnforceCapacity,
	})

	h := handler.New(activitySvc, m, log)
	router := httpapi.NewRouter(h, log, m, reg)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", cfg.HTTPAddr),
			zap.Int("activities", len(seed)),
			zap.Bool("enforce_capacity", cfg.EnforceCapacity),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
