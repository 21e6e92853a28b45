package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"biomarker-insights/internal/alerting"
	"biomarker-insights/internal/config"
	"biomarker-insights/internal/scheduler"
	"biomarker-insights/internal/service"
	"biomarker-insights/internal/storage"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

func (a *App) newNotifier() alerting.Notifier {
	if a.Config.Alerting.Telegram.Enabled {
		cfg := a.Config.Alerting.Telegram
		return alerting.NewTelegramNotifier(cfg.BotToken, cfg.ChatID, cfg.APIBase, 10*time.Second, a.Logger)
	}
	return nil
}

func (a *App) openStore(ctx context.Context) (*storage.Store, func(), error) {
	if a.Config.Database.DSN == "" {
		return nil, nil, nil
	}

	pool, err := storage.NewPool(ctx, a.Config.Database)
	if err != nil {
		return nil, nil, err
	}

	store := storage.NewStore(pool)
	closer := func() {
		store.Close()
	}
	return store, closer, nil
}

func (a *App) newService(store *storage.Store, sched *scheduler.Scheduler) *service.Service {
	var points storage.MetricPointStore
	var learned storage.LearnedMarkerStore
	if store != nil {
		points = store
		learned = store
	}
	return service.New(a.Config, sched, points, learned, a.newNotifier(), a.Logger)
}

// Run executes the long-running staleness sweep service.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("database.dsn not configured; the sweep service needs storage")
	}
	if closeStore != nil {
		defer closeStore()
	}

	sched := scheduler.New(scheduler.Options{
		Interval:     a.Config.Sweep.Interval,
		AlignToStart: true,
		StartupDelay: a.Config.Sweep.StartupDelay,
	}, a.Logger)

	svc := a.newService(store, sched)

	a.Logger.Info().Dur("interval", a.Config.Sweep.Interval).Msg("starting staleness sweep service")
	err = svc.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error().Err(err).Msg("service terminated with error")
		return err
	}

	a.Logger.Info().Msg("staleness sweep service stopped")
	return nil
}

// AnalyzeOptions configure a one-shot interpretation.
type AnalyzeOptions struct {
	Marker  string
	Value   float64
	Date    string
	Unit    string
	RefMin  *float64
	RefMax  *float64
	Context bool
}

// ShowOptions configure the show command.
type ShowOptions struct {
	Marker string
	Limit  int
}

// ImportOptions configure the CSV import job.
type ImportOptions struct {
	CSVPath string
	DryRun  bool
}

// ExportOptions hold parameters for exporting a marker's history.
type ExportOptions struct {
	Marker    string
	PNGPath   string
	CSVPath   string
	MaxPoints int
}

// SimulateOptions configure the simulate-alert command.
type SimulateOptions struct {
	Marker string
	Value  float64
}
