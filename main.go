package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ianschenck/envflag"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/automaxprocs/maxprocs"
	"k8s.io/klog/v2"

	"github.com/linode/snapshot-filestore/pkg/filesystem"
	"github.com/linode/snapshot-filestore/pkg/logger"
	"github.com/linode/snapshot-filestore/pkg/observability"
	"github.com/linode/snapshot-filestore/pkg/snapshotfs"
)

const serviceName = "snapshot-filestore"

var vendorVersion = "dev" // set by the linker

type configuration struct {
	// Address to serve Prometheus metrics on after printing the report.
	// Empty disables the metrics server.
	metricsAddr string

	// OTLP/HTTP collector endpoint (host:port). Empty disables tracing.
	tracingEndpoint string

	// Report format, "text" or "json".
	output string
}

var (
	metricsAddr     = envflag.String("SNAPSHOT_METRICS_ADDR", "", "Address to serve /metrics on, e.g. :9090")
	tracingEndpoint = envflag.String("SNAPSHOT_TRACING_ENDPOINT", "", "OTLP/HTTP collector endpoint")
	output          = envflag.String("SNAPSHOT_OUTPUT", string(formatText), "Report format: text or json")
)

func loadConfig() configuration {
	envflag.Parse()
	return configuration{
		metricsAddr:     *metricsAddr,
		tracingEndpoint: *tracingEndpoint,
		output:          *output,
	}
}

func main() {
	klog.InitFlags(nil)
	_ = flag.Set("logtostderr", "true")
	flag.Parse()

	log, ctx := logger.NewLogger(context.Background())
	undoMaxprocs, maxprocsError := maxprocs.Set(maxprocs.Logger(func(msg string, keysAndValues ...interface{}) {
		log.WithValues("component", "maxprocs", "version", maxprocs.Version).V(2).Info(fmt.Sprintf(msg, keysAndValues...))
	}))
	defer undoMaxprocs()

	if maxprocsError != nil {
		log.Error(maxprocsError, "Failed to set GOMAXPROCS")
	}

	if err := handle(ctx, flag.Args()); err != nil {
		log.Error(err, "Fatal error")
		klog.Flush()
		os.Exit(1)
	}

	klog.Flush()
}

func handle(ctx context.Context, paths []string) error {
	log, ctx := logger.GetLogger(ctx)
	log.V(4).Info("Snapshot filestore version", "version", vendorVersion)

	cfg := loadConfig()
	format, err := parseFormat(cfg.output)
	if err != nil {
		return err
	}

	if cfg.tracingEndpoint != "" {
		if err := observability.InitTracer(ctx, serviceName, vendorVersion, cfg.tracingEndpoint); err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := observability.ShutdownTracer(shutdownCtx); err != nil {
				log.Error(err, "Failed to flush traces")
			}
		}()
	}

	provider, err := snapshotfs.NewProvider(ctx, filesystem.NewOSProvider(filesystem.WithLogger(log)))
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		paths = []string{"/"}
	}
	reports, err := describe(provider, paths)
	if err != nil {
		return err
	}
	if err := writeReports(os.Stdout, format, reports); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.metricsAddr == "" {
		return nil
	}
	reg, err := newMetricsRegistry()
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	return serveMetrics(ctx, cfg.metricsAddr, reg)
}

func newMetricsRegistry() (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}
	if err := observability.RegisterMetrics(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return mux
}

// serveMetrics blocks until SIGINT or SIGTERM.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	log, _ := logger.GetLogger(ctx)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := metricsHandler(reg)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.V(2).Info("Serving metrics", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown metrics server: %w", err)
	}
	return nil
}
