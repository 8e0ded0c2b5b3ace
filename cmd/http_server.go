package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/bank"
	bankPostgres "github.com/frahmantamala/payroll-management/internal/bank/postgres"
	"github.com/frahmantamala/payroll-management/internal/division"
	divisionPostgres "github.com/frahmantamala/payroll-management/internal/division/postgres"
	"github.com/frahmantamala/payroll-management/internal/employee"
	employeePostgres "github.com/frahmantamala/payroll-management/internal/employee/postgres"
	"github.com/frahmantamala/payroll-management/internal/job"
	jobPostgres "github.com/frahmantamala/payroll-management/internal/job/postgres"
	"github.com/frahmantamala/payroll-management/internal/organization"
	organizationPostgres "github.com/frahmantamala/payroll-management/internal/organization/postgres"
	"github.com/frahmantamala/payroll-management/internal/payroll"
	payrollPostgres "github.com/frahmantamala/payroll-management/internal/payroll/postgres"
	"github.com/frahmantamala/payroll-management/internal/transport"
	"github.com/frahmantamala/payroll-management/internal/transport/rest"
	"github.com/frahmantamala/payroll-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if sqlDB, err := deps.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("Database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) error {
	baseHandler := transport.NewBaseHandler(deps.Logger)

	organizationService := organization.NewService(organizationPostgres.NewOrganizationRepository(deps.DB), deps.Logger)
	payrollService := payroll.NewService(payrollPostgres.NewPayrollRepository(deps.DB), organizationService, deps.Logger)
	divisionService := division.NewService(divisionPostgres.NewDivisionRepository(deps.DB), payrollService, deps.Logger)
	jobService := job.NewService(jobPostgres.NewJobRepository(deps.DB), payrollService, deps.Logger)
	bankService := bank.NewService(bankPostgres.NewBankRepository(deps.DB), organizationService, deps.Logger)
	employeeService := employee.NewService(
		employeePostgres.NewEmployeeRepository(deps.DB),
		divisionService, jobService, bankService, deps.Logger,
	)

	handlers := rest.Handlers{
		Organization: organization.NewHandler(baseHandler, organizationService),
		Payroll:      payroll.NewHandler(baseHandler, payrollService),
		Division:     division.NewHandler(baseHandler, divisionService),
		Job:          job.NewHandler(baseHandler, jobService),
		Bank:         bank.NewHandler(baseHandler, bankService),
		Employee:     employee.NewHandler(baseHandler, employeeService),
	}

	sqlDB, err := deps.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to unwrap sql.DB: %w", err)
	}

	rest.RegisterAllRoutes(deps.Router, sqlDB, handlers, deps.Logger)
	return nil
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
