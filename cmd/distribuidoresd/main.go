package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	distpb "github.com/jmonzon-gt/distribuidores/gen/proto/distribuidores/v1"
	"github.com/jmonzon-gt/distribuidores/internal/common"
	"github.com/jmonzon-gt/distribuidores/internal/export"
	"github.com/jmonzon-gt/distribuidores/internal/extract"
	"github.com/jmonzon-gt/distribuidores/internal/graduation"
	"github.com/jmonzon-gt/distribuidores/internal/ocr"
	"github.com/jmonzon-gt/distribuidores/internal/pipeline"
	"github.com/jmonzon-gt/distribuidores/internal/registry"
	repo "github.com/jmonzon-gt/distribuidores/internal/repository"
	svc "github.com/jmonzon-gt/distribuidores/internal/server"
	"github.com/jmonzon-gt/distribuidores/internal/tasks"
	"github.com/jmonzon-gt/distribuidores/internal/workflow"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store := repo.NewStore(entc, logger)
	flow := workflow.NewService(repo.NewWorkflowStore(store), logger)
	grad := graduation.NewService(repo.NewGraduationStore(store), logger)

	extractor := ocr.NewExtractor(ocr.Config{
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)
	textExtractor := extract.NewOCRAdapter(extractor, logger)

	var cross pipeline.CrossChecker
	if cfg.Registry.Enabled {
		cross = registry.NewCrossValidator(cfg.Registry.HTTPTimeout, logger)
	}
	processor := pipeline.NewProcessor(textExtractor, cross, logger)

	coordinator := tasks.NewCoordinator(processor, store, logger,
		tasks.WithWorkers(cfg.Tasks.Workers),
		tasks.WithQueueSize(cfg.Tasks.QueueSize),
		tasks.WithScratchDir(cfg.Tasks.ScratchDir),
		tasks.WithPollInterval(cfg.Tasks.PollInterval),
		tasks.WithPollCeiling(cfg.Tasks.PollCeiling),
		tasks.WithMaxAttempts(cfg.Tasks.MaxAttempts),
	)
	coordinator.Start()

	exporter := export.NewService(store, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	distpb.RegisterRequestsServiceServer(grpcServer, svc.NewRequestsService(store, flow, logger))
	distpb.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentsService(coordinator, logger))
	distpb.RegisterReviewServiceServer(grpcServer, svc.NewReviewService(flow, logger))
	distpb.RegisterDistributorsServiceServer(grpcServer, svc.NewDistributorsService(grad, store, logger))
	distpb.RegisterTrackingServiceServer(grpcServer, svc.NewTrackingService(store, exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("distribuidores listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := coordinator.Shutdown(shutdownCtx); err != nil {
		logger.Error("coordinator shutdown", "error", err)
	}
	grpcServer.GracefulStop()
}
