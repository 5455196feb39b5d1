package main

import (
	"GaugeLedger/internal/config"
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/ingestion"
	"GaugeLedger/internal/observability"
	"GaugeLedger/internal/persistence"
	"GaugeLedger/internal/projection"
	"GaugeLedger/internal/query"
	"GaugeLedger/internal/server"
	"GaugeLedger/internal/sim"
	"GaugeLedger/migrations"
	"bytes"
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"sync"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: load config: %v", err)
	}
	level := observability.ParseLevel(cfg.Logging.Level)

	log.Printf("INFO: GaugeLedger starting (grpc=%s, http=%s, metrics=%s)",
		cfg.Server.GRPCAddr, cfg.Server.HTTPAddr, cfg.Server.MetricsAddr)

	ctx := context.Background()

	// --- Database ---
	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("FATAL: open postgres: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("FATAL: ping postgres: %v", err)
	}
	log.Println("INFO: PostgreSQL connected")

	var files fs.FS = migrations.FS
	if cfg.Postgres.MigrationsDir != "" {
		files = os.DirFS(cfg.Postgres.MigrationsDir)
	}
	if err := persistence.NewMigrator(db, files).Up(ctx); err != nil {
		log.Fatalf("FATAL: migrations: %v", err)
	}
	log.Println("INFO: migrations applied")

	// --- Observability ---
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	healthChecker := observability.NewHealthChecker()

	// --- Deterministic core ---
	g, world, err := sim.NewGaugeWorld(cfg.WorldConfig())
	if err != nil {
		log.Fatalf("FATAL: build gauge: %v", err)
	}
	coreLogger := observability.NewLoggerWithLevel("core", level)
	processor := core.NewProcessor(g, world, core.ProcessorConfig{
		LRUCapacity: cfg.Pipeline.LRUCapacity,
		Metrics:     metrics,
		Logger:      &coreLogger,
	})

	// --- Recovery ---
	reader := persistence.NewCommandLogReader(db)
	snapMgr := persistence.NewSnapshotManager(db, metrics)

	replayed, err := persistence.NewReplayer(reader, cfg.Pipeline.ReplayBatchSize, metrics).Replay(ctx, processor)
	if err != nil {
		log.Fatalf("FATAL: command log replay failed: %v", err)
	}
	log.Printf("INFO: recovery complete (next sequence %d, last timestamp %d)",
		processor.Sequence(), replayed.LastTimestamp)
	checkLatestSnapshot(ctx, snapMgr, processor)

	recent, err := reader.RecentCommandIDs(ctx, min(cfg.Pipeline.LRUCapacity, 100_000))
	if err != nil {
		log.Fatalf("FATAL: load recent command ids: %v", err)
	}
	processor.WarmIdempotency(recent)
	log.Printf("INFO: warmed idempotency cache with %d command ids", len(recent))

	// --- Pipeline channels ---
	persistChan := make(chan core.CoreOutput, cfg.Pipeline.PersistChanSize)
	projectionChan := make(chan core.CoreOutput, cfg.Pipeline.ProjectionChanSize)
	flushedChan := make(chan core.CoreOutput, cfg.Pipeline.PublishChanSize)
	publishChan := make(chan ingestion.PublishableEvent, cfg.Pipeline.PublishChanSize)

	processor.GoLive(persistChan, projectionChan, persistence.NewPostgresIdempotencyChecker(db))

	// --- NATS ---
	nc, js, err := ingestion.ConnectNATS(cfg.NATS.URL)
	if err != nil {
		log.Fatalf("FATAL: nats connect: %v", err)
	}
	defer nc.Close()
	log.Println("INFO: NATS connected")

	if err := ingestion.EnsureStreams(ctx, js); err != nil {
		log.Fatalf("FATAL: ensure NATS streams: %v", err)
	}
	if err := ingestion.EnsureOutboundStream(ctx, js); err != nil {
		log.Fatalf("FATAL: ensure outbound stream: %v", err)
	}

	sinks := []ingestion.EventSink{ingestion.NewNATSSink(js)}
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := ingestion.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ClientID)
		if err != nil {
			log.Fatalf("FATAL: kafka: %v", err)
		}
		defer kafka.Close()
		sinks = append(sinks, kafka)
		log.Printf("INFO: Kafka sink enabled (topic=%s)", cfg.Kafka.Topic)
	}

	// --- Workers and servers ---
	ingestCtx, stopIngest := context.WithCancel(ctx)
	defer stopIngest()
	pipelineCtx, stopPipeline := context.WithCancel(ctx)
	defer stopPipeline()

	rawChan := make(chan ingestion.RawCommand, 4096)
	subscriber := ingestion.NewNATSSubscriber(js, rawChan)
	if err := subscriber.Subscribe(ingestCtx, cfg.NATS.Durable); err != nil {
		log.Fatalf("FATAL: nats subscribe: %v", err)
	}
	dispatcher := ingestion.NewDispatcher(processor, rawChan, observability.NewLoggerWithLevel("dispatcher", level))

	svc := server.NewGaugeService(server.ServerDeps{
		Processor: processor,
		Ingest:    ingestion.NewGRPCIngestService(processor),
		Query:     query.NewQueryService(db),
		Snapshots: snapMgr,
		Rebuild: func(ctx context.Context) error {
			return projection.RebuildProjections(ctx, db)
		},
		RewardDecimals: cfg.Gauge.RewardDecimals,
	})
	grpcServer := server.NewGRPCServer(cfg.Server.GRPCAddr, cfg.Server.HTTPAddr, svc, metrics,
		healthChecker, observability.NewLoggerWithLevel("rpc", level))

	var group run.Group

	// Everything that submits commands stops before the pipeline drains, so
	// no applied command waits on a persistence worker that already exited.
	var submitters sync.WaitGroup
	submitter := func(execute func(ctx context.Context) error) {
		submitters.Add(1)
		group.Add(func() error {
			defer submitters.Done()
			return execute(ingestCtx)
		}, func(error) {
			stopIngest()
		})
	}
	drainer := func(execute func(ctx context.Context) error) {
		group.Add(func() error {
			return execute(pipelineCtx)
		}, func(error) {
			go func() {
				submitters.Wait()
				stopPipeline()
			}()
		})
	}

	group.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))

	submitter(func(ctx context.Context) error {
		defer subscriber.Stop()
		return dispatcher.Run(ctx)
	})
	submitter(grpcServer.StartGRPC)
	submitter(grpcServer.StartHTTPGateway)

	drainer(persistence.NewPersistenceWorker(
		persistence.NewCommandLogWriter(db), persistChan, flushedChan,
		cfg.Pipeline.PersistBatchSize, cfg.Pipeline.PersistFlushTimeout, metrics,
	).Run)
	drainer(func(ctx context.Context) error {
		return bridgeFlushed(ctx, flushedChan, publishChan, metrics)
	})
	drainer(ingestion.NewOutboundPublisher(publishChan, metrics, sinks...).Run)
	drainer(projection.NewProjectionWorker(db, projectionChan, metrics).Run)
	drainer(func(ctx context.Context) error {
		runPeriodicSnapshots(ctx, processor, snapMgr, healthChecker, cfg.Pipeline.SnapshotInterval)
		return nil
	})
	drainer(func(ctx context.Context) error {
		return serveMetrics(ctx, cfg.Server.MetricsAddr, healthChecker)
	})
	drainer(func(ctx context.Context) error {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				metrics.ChannelSize.WithLabelValues("raw").Set(float64(len(rawChan)))
				metrics.ChannelSize.WithLabelValues("persist").Set(float64(len(persistChan)))
				metrics.ChannelSize.WithLabelValues("projection").Set(float64(len(projectionChan)))
				metrics.ChannelSize.WithLabelValues("flushed").Set(float64(len(flushedChan)))
				metrics.ChannelSize.WithLabelValues("publish").Set(float64(len(publishChan)))
			}
		}
	})

	healthChecker.SetReady(true)
	grpcServer.SetServing(true)
	log.Printf("INFO: GaugeLedger ready (sequence=%d)", processor.Sequence())

	err = group.Run()
	var sigErr run.SignalError
	switch {
	case errors.As(err, &sigErr):
		log.Printf("INFO: received signal %s, shut down", sigErr.Signal)
	case err != nil && !errors.Is(err, context.Canceled):
		log.Printf("ERROR: component failed: %v", err)
	}
	healthChecker.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := takeSnapshot(shutdownCtx, processor, snapMgr); err != nil {
		log.Printf("ERROR: final snapshot failed: %v", err)
	} else {
		log.Println("INFO: final snapshot saved")
	}

	applied, rejected, duplicates, malformed := dispatcher.Stats()
	log.Printf("INFO: GaugeLedger shutdown complete (applied=%d rejected=%d duplicates=%d malformed=%d)",
		applied, rejected, duplicates, malformed)
}

// bridgeFlushed turns durable outputs into publishable events. Publishing
// only ever follows persistence.
func bridgeFlushed(
	ctx context.Context,
	in <-chan core.CoreOutput,
	out chan<- ingestion.PublishableEvent,
	metrics *observability.Metrics,
) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case co := <-in:
			evts, err := ingestion.PublishablesFrom(co)
			if err != nil {
				log.Printf("WARN: skip publishing seq=%d: %v", co.Sequence, err)
				continue
			}
			for _, evt := range evts {
				select {
				case out <- evt:
				default:
					metrics.PublishDrops.Inc()
				}
			}
		}
	}
}

func serveMetrics(ctx context.Context, addr string, health *observability.HealthChecker) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", health.LivenessHandler)
	mux.HandleFunc("/readyz", health.ReadinessHandler)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutCtx)
	}()

	log.Printf("INFO: Metrics server listening on %s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

// --- Snapshot helpers ---

// runPeriodicSnapshots saves an audit snapshot every interval applied
// commands and marks older ones verified once the log has caught up.
func runPeriodicSnapshots(
	ctx context.Context,
	processor *core.Processor,
	snapMgr *persistence.SnapshotManager,
	health *observability.HealthChecker,
	interval int64,
) {
	if interval <= 0 {
		interval = 10_000
	}

	lastSnapshot := processor.Sequence()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			applied := processor.Sequence()
			health.ObserveSequence(applied - 1)

			if applied-lastSnapshot >= interval {
				if err := takeSnapshot(ctx, processor, snapMgr); err != nil {
					log.Printf("WARN: periodic snapshot failed: %v", err)
				} else {
					lastSnapshot = applied
					log.Printf("INFO: periodic snapshot after %d commands", applied)
				}
			}
			if n, err := snapMgr.VerifyAgainstLog(ctx); err != nil {
				log.Printf("WARN: snapshot verification failed: %v", err)
			} else if n > 0 {
				log.Printf("INFO: verified %d snapshots against the command log", n)
			}
		}
	}
}

func takeSnapshot(ctx context.Context, processor *core.Processor, snapMgr *persistence.SnapshotManager) error {
	snap, err := persistence.TakeSnapshot(processor, time.Now())
	if err != nil {
		return fmt.Errorf("capture snapshot: %w", err)
	}
	if err := snapMgr.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// checkLatestSnapshot compares the newest verified snapshot with the
// replayed state. Recovery never reads snapshots, so a mismatch is logged.
func checkLatestSnapshot(ctx context.Context, snapMgr *persistence.SnapshotManager, processor *core.Processor) {
	snap, err := snapMgr.LoadLatestSnapshot(ctx)
	if err != nil {
		log.Printf("WARN: load latest snapshot: %v", err)
		return
	}
	if snap == nil || snap.Applied != processor.Sequence() {
		return
	}
	tip := processor.StateHash()
	if snap.StateHash != hex.EncodeToString(tip[:]) {
		log.Printf("WARN: snapshot at %d commands has hash %s, replay produced %x", snap.Applied, snap.StateHash, tip)
		return
	}

	restored, err := snap.GaugeDigest()
	if err != nil {
		log.Printf("WARN: snapshot at %d commands does not restore: %v", snap.Applied, err)
		return
	}
	var live []byte
	processor.Read(func(g *core.Gauge) error {
		live = g.StateDigest()
		return nil
	})
	if !bytes.Equal(restored, live) {
		log.Printf("WARN: snapshot at %d commands restores to a different gauge state", snap.Applied)
		return
	}
	log.Println("INFO: state matches latest snapshot")
}
