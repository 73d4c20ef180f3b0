package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/wealthflow-tracker/internal/adapter/grpc"
	"github.com/simaogato/wealthflow-tracker/internal/adapter/repository/memory"
	"github.com/simaogato/wealthflow-tracker/internal/config"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/simaogato/wealthflow-tracker/internal/log"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/dashboard"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/expense"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/health"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/investment"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/savings"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/seeder"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/settings"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wealthflow: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := cfg.Logger()
	log.SetDefault(logger)

	// 2. Dataset store
	store, err := openStore(cfg.DataFile)
	if err != nil {
		return err
	}
	storeLogger := logger.WithComponent(log.ComponentStore)
	store.Subscribe(func(data *domain.AppData) {
		if orphans := data.CheckReferences(); len(orphans) > 0 {
			storeLogger.Warn("dataset has dangling references", log.FieldRecords, len(orphans))
		}
		storeLogger.Debug("dataset replaced")
	})

	// Seed default settings (idempotent)
	settingsSeeder := seeder.NewSettingsSeeder(store)
	seeded, err := settingsSeeder.Seed(context.Background())
	if err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	if seeded {
		storeLogger.Info("installed default expense categories", log.FieldRecords, len(seeder.DefaultExpenseCategories))
	}

	// 3. Services (Use Cases)
	investmentService := investment.NewInvestmentService(store, store, store)
	expenseService := expense.NewExpenseService(store, store)
	dashboardService := dashboard.NewDashboardService(store)
	savingsService := savings.NewSavingsService(store)
	healthService := health.NewHealthService(store, store)
	settingsService := settings.NewSettingsService(store, store)

	// 4. gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.RecoveryInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)
	grpcadapter.RegisterInsightsServiceServer(grpcServer, grpcadapter.NewServer(
		investmentService,
		expenseService,
		dashboardService,
		savingsService,
		healthService,
		settingsService,
		cfg.Currency,
	))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	// 5. Serve until a signal arrives, then drain
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gRPC server listening", log.FieldAddr, lis.Addr().String(), log.FieldOperation, log.OpStartup)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
			return fmt.Errorf("failed to serve gRPC: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down gracefully", log.FieldOperation, log.OpShutdown)
		shutdown(grpcServer, cfg.ShutdownTimeout, logger)
		return nil
	})
	return g.Wait()
}

func openStore(path string) (*memory.Store, error) {
	if path == "" {
		return memory.NewStore(nil), nil
	}
	return memory.OpenFile(path)
}
