// Package app wires configuration, storage, and services into a single
// application core shared by the server binary and its tests.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/interfaces"
	"github.com/bobmcallan/landmark/internal/services/metrics"
	"github.com/bobmcallan/landmark/internal/services/property"
	"github.com/bobmcallan/landmark/internal/services/report"
	"github.com/bobmcallan/landmark/internal/services/snapshot"
	"github.com/bobmcallan/landmark/internal/services/transaction"
	"github.com/bobmcallan/landmark/internal/services/valuation"
	"github.com/bobmcallan/landmark/internal/storage"
)

// App holds all initialized services and storage.
type App struct {
	Config             *common.Config
	Logger             *common.Logger
	Storage            interfaces.StorageManager
	PropertyService    interfaces.PropertyService
	TransactionService interfaces.TransactionService
	SnapshotService    interfaces.SnapshotService
	MetricsService     interfaces.MetricsService
	ValuationService   interfaces.ValuationService
	ReportService      interfaces.ReportService
	StartupTime        time.Time

	scheduler *snapshotScheduler
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, and all services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	// Load configuration - check provided path, LANDMARK_CONFIG, then binary
	// dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("LANDMARK_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "landmark.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/landmark.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	storageManager, err := storage.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return newAppWithDeps(config, logger, storageManager, startupStart), nil
}

// newAppWithDeps wires services onto an already initialized storage manager.
// Split out so tests can inject a temp-dir store.
func newAppWithDeps(config *common.Config, logger *common.Logger, storageManager interfaces.StorageManager, startupStart time.Time) *App {
	propertyService := property.NewService(storageManager.PropertyStore(), logger)
	transactionService := transaction.NewService(storageManager.TransactionStore(), logger)
	snapshotService := snapshot.NewService(storageManager.BlobStore(), logger)
	metricsService := metrics.NewService(snapshotService, logger)
	valuationService := valuation.NewService(propertyService, config.Valuation, logger)
	reportService := report.NewService(propertyService, transactionService, metricsService, snapshotService, logger)

	a := &App{
		Config:             config,
		Logger:             logger,
		Storage:            storageManager,
		PropertyService:    propertyService,
		TransactionService: transactionService,
		SnapshotService:    snapshotService,
		MetricsService:     metricsService,
		ValuationService:   valuationService,
		ReportService:      reportService,
		StartupTime:        startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a
}

// Close releases all resources held by the App.
// Shutdown order: stop the scheduler, close storage.
func (a *App) Close() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		a.scheduler = nil
	}
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}
