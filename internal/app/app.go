package app

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/khrees2412/careerkit/internal/buildtrack"
	"github.com/khrees2412/careerkit/internal/catalog"
	"github.com/khrees2412/careerkit/internal/config"
	"github.com/khrees2412/careerkit/internal/database"
	"github.com/khrees2412/careerkit/internal/ingest"
	"github.com/khrees2412/careerkit/internal/logging"
	"github.com/khrees2412/careerkit/internal/placement"
	"github.com/khrees2412/careerkit/internal/readiness"
	"github.com/khrees2412/careerkit/internal/resume"
	"github.com/khrees2412/careerkit/internal/tracker"
	"github.com/sirupsen/logrus"
)

// DatabaseFile is the name of the sqlite file inside the data directory
const DatabaseFile = "careerkit.db"

// App is the dependency container for the CLI application
type App struct {
	DB         *database.DB
	Config     *config.Config
	HTTPClient *http.Client
	Log        *logrus.Logger

	Resume     *resume.Repository
	Tracker    *tracker.Service
	History    *placement.History
	Analyzer   *readiness.Analyzer
	BuildTrack *buildtrack.Tracker

	// Now is the clock used by commands
	Now func() time.Time
}

// NewApp initializes and returns a new App instance
func NewApp(ctx context.Context) (*App, error) {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg := config.AppConfig
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	return New(cfg, log)
}

// New wires the application from an already loaded configuration
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	db, err := database.Open(filepath.Join(cfg.DataDir, DatabaseFile), log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	jobs, err := catalog.Open(cfg.CatalogFile)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load job catalog: %w", err)
	}
	log.WithField("jobs", len(jobs)).Debug("catalog loaded")

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = ingest.DefaultTimeout
	}

	return &App{
		DB:         db,
		Config:     cfg,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        log,
		Resume:     resume.NewRepository(db.Namespace("resume"), log),
		Tracker:    tracker.NewService(tracker.NewRepository(db.Namespace("tracker"), log), jobs),
		History:    placement.NewHistory(db.Namespace("placement"), log),
		Analyzer:   readiness.NewAnalyzer(),
		BuildTrack: buildtrack.New(db.Namespace("buildtrack"), log, buildtrack.ResumeSteps),
		Now:        time.Now,
	}, nil
}

// IngestOptions returns the URL fetching options derived from configuration
func (a *App) IngestOptions() *ingest.Options {
	return &ingest.Options{
		UserAgent:  a.Config.UserAgent,
		Timeout:    a.Config.FetchTimeout,
		UseBrowser: a.Config.UseBrowser,
		Log:        a.Log,
	}
}

// Close closes all resources
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
