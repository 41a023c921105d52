package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	v1 "github.com/arvind-krishnan/dealslip-tracker/gen/proto/dealslips/v1"
	"github.com/arvind-krishnan/dealslip-tracker/internal/async"
	"github.com/arvind-krishnan/dealslip-tracker/internal/common"
	"github.com/arvind-krishnan/dealslip-tracker/internal/docx"
	"github.com/arvind-krishnan/dealslip-tracker/internal/export"
	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
	"github.com/arvind-krishnan/dealslip-tracker/internal/ingest"
	"github.com/arvind-krishnan/dealslip-tracker/internal/ocr"
	"github.com/arvind-krishnan/dealslip-tracker/internal/pipeline"
	repo "github.com/arvind-krishnan/dealslip-tracker/internal/repository"
	"github.com/arvind-krishnan/dealslip-tracker/internal/server"
)

func main() {
	zl, _ := zap.NewProduction()
	defer func() { _ = zl.Sync() }()
	log := zl.Sugar()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dbResult, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		log.Fatalf("initializing database: %v", err)
	}
	defer dbResult.Cleanup()
	log.Infow("DB health OK")

	filesRepo := repo.NewSlipFileRepository(dbResult.Client, logger)
	jobsRepo := repo.NewExtractJobRepository(dbResult.Client, logger)

	engine, err := extract.NewEngine(extract.YieldMode(cfg.Extract.YieldMode), logger)
	if err != nil {
		log.Fatalf("loading rule sets: %v", err)
	}
	textExtractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)
	proc := pipeline.NewProcessor(textExtractor, textExtractor, docx.NewReader(logger), engine, cfg.Extract.DocTimeout, logger)
	runner := async.NewBatchRunner(proc, logger, async.WithWorkers(cfg.Extract.Workers))
	exporter := export.NewService(logger)
	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	svc := server.NewDealSlipService(runner, exporter, ingestor, filesRepo, jobsRepo, logger)
	v1.RegisterDealSlipServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}
