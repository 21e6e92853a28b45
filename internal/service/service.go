package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"biomarker-insights/internal/alerting"
	"biomarker-insights/internal/config"
	"biomarker-insights/internal/engine"
	"biomarker-insights/internal/scheduler"
	"biomarker-insights/internal/storage"
)

// Service orchestrates history loading, interpretation, and alerting.
type Service struct {
	scheduler *scheduler.Scheduler
	points    storage.MetricPointStore
	learned   storage.LearnedMarkerStore
	notifier  alerting.Notifier
	logger    zerolog.Logger

	gender       engine.Gender
	channels     []string
	alertsOn     bool
	criticalOnly bool
	locker       storage.AdvisoryLocker
	lockKey      int64
}

// New constructs the interpretation service.
func New(cfg *config.Config, sched *scheduler.Scheduler, points storage.MetricPointStore, learned storage.LearnedMarkerStore, notifier alerting.Notifier, logger zerolog.Logger) *Service {
	var locker storage.AdvisoryLocker
	if l, ok := points.(storage.AdvisoryLocker); ok {
		locker = l
	}

	return &Service{
		scheduler:    sched,
		points:       points,
		learned:      learned,
		notifier:     notifier,
		logger:       logger.With().Str("component", "service").Logger(),
		gender:       engine.Gender(cfg.Profile.Gender),
		channels:     cfg.Alerting.Channels,
		alertsOn:     cfg.Alerting.Enabled,
		criticalOnly: cfg.Alerting.CriticalOnly,
		locker:       locker,
		lockKey:      cfg.Sweep.AdvisoryLockKey,
	}
}

// Run begins the periodic staleness sweep loop.
func (s *Service) Run(ctx context.Context) error {
	if s.scheduler == nil {
		return fmt.Errorf("scheduler not configured")
	}
	return s.scheduler.Run(ctx, s.SweepStaleness)
}

// AnalyzeRequest carries one interpretation query.
type AnalyzeRequest struct {
	Label  string
	Value  float64
	Date   string
	Unit   string
	RefMin *float64
	RefMax *float64
}

// Analysis pairs the engine result with the resolved descriptor.
type Analysis struct {
	Key        engine.Key
	Descriptor engine.Descriptor
	Result     engine.AnalysisResult
	Stale      *engine.StalenessResult
}

// Analyze interprets a value against the marker's stored history and the
// learned-marker set, dispatching an alert when the classification is
// critical and alerting is enabled.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (Analysis, error) {
	key := engine.Normalize(req.Label)

	history, err := s.loadHistory(ctx, key)
	if err != nil {
		return Analysis{}, err
	}

	learned, err := s.loadLearned(ctx)
	if err != nil {
		return Analysis{}, err
	}

	in := engine.Input{
		Label:   req.Label,
		Value:   req.Value,
		Date:    req.Date,
		Unit:    req.Unit,
		Gender:  s.gender,
		History: history,
		RefMin:  req.RefMin,
		RefMax:  req.RefMax,
		Learned: learned,
	}

	analysis := Analysis{
		Key:        key,
		Descriptor: engine.Resolve(key, req.Label, learned),
		Result:     engine.Analyze(in),
	}
	analysis.Stale = engine.CheckStale(engine.MetricPoint{Date: req.Date, Value: req.Value, Unit: req.Unit, Label: req.Label}, history)

	s.logger.Debug().
		Str("marker", string(key)).
		Str("status", string(analysis.Result.Status)).
		Str("trend", string(analysis.Result.Trend)).
		Msg("analysis computed")

	if s.alertsOn && analysis.Result.Status.Critical() {
		s.notifyCritical(ctx, req, analysis)
	}

	return analysis, nil
}

// ContextSummary builds the per-marker context lines handed to the
// conversational-AI collaborator: one line per marker, latest value each.
func (s *Service) ContextSummary(ctx context.Context) ([]string, error) {
	if s.points == nil {
		return nil, nil
	}
	keys, err := s.points.ListMarkerKeys(ctx)
	if err != nil {
		return nil, err
	}

	learned, err := s.loadLearned(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		history, err := s.loadHistory(ctx, engine.Key(key))
		if err != nil {
			return nil, err
		}
		latest, ok := engine.LatestPoint(history)
		if !ok {
			continue
		}
		lines = append(lines, engine.ContextLine(engine.Input{
			Label:   latest.Label,
			Value:   latest.Value,
			Date:    latest.Date,
			Unit:    latest.Unit,
			Gender:  s.gender,
			History: history,
			RefMin:  latest.RefMin,
			RefMax:  latest.RefMax,
			Learned: learned,
		}))
	}
	return lines, nil
}

// SweepStaleness walks every stored marker and notifies when the latest
// manually-entered value has been superseded by newer lab data.
func (s *Service) SweepStaleness(ctx context.Context, at time.Time) error {
	unlock, proceed, err := s.acquireLock(ctx)
	if err != nil {
		return err
	}
	if !proceed {
		s.logger.Debug().Time("at", at).Msg("skip sweep because advisory lock held elsewhere")
		return nil
	}
	if unlock != nil {
		defer unlock()
	}

	keys, err := s.points.ListMarkerKeys(ctx)
	if err != nil {
		return fmt.Errorf("list marker keys: %w", err)
	}

	flagged := 0
	for _, key := range keys {
		history, err := s.loadHistory(ctx, engine.Key(key))
		if err != nil {
			s.logger.Error().Err(err).Str("marker", key).Msg("failed to load history")
			continue
		}

		manual, ok := engine.LatestManualPoint(history)
		if !ok {
			continue
		}
		stale := engine.CheckStale(manual, history)
		if stale == nil {
			continue
		}

		flagged++
		s.logger.Info().
			Str("marker", key).
			Str("manual_date", manual.Date).
			Str("exam_date", stale.ExamDate).
			Msg("manual value superseded by newer lab data")

		if s.alertsOn && !s.criticalOnly && s.notifier != nil {
			note := alerting.Notification{
				Kind:        alerting.KindStale,
				MarkerKey:   key,
				MarkerLabel: manual.Label,
				Value:       decimal.NewFromFloat(manual.Value),
				Unit:        manual.Unit,
				Recorded:    manual.Date,
				ExamDate:    stale.ExamDate,
				ExamValue:   decimal.NewFromFloat(stale.ExamValue),
				Channels:    s.channels,
			}
			if err := s.notifier.Notify(ctx, note); err != nil {
				s.logger.Error().Err(err).Str("marker", key).Msg("failed to dispatch stale alert")
			}
		}
	}

	s.logger.Info().Time("at", at).Int("markers", len(keys)).Int("flagged", flagged).Msg("staleness sweep finished")
	return nil
}

func (s *Service) notifyCritical(ctx context.Context, req AnalyzeRequest, analysis Analysis) {
	if s.notifier == nil {
		return
	}
	note := alerting.Notification{
		Kind:        alerting.KindCritical,
		MarkerKey:   string(analysis.Key),
		MarkerLabel: analysis.Descriptor.Label,
		Value:       decimal.NewFromFloat(req.Value),
		Unit:        req.Unit,
		Recorded:    req.Date,
		Status:      string(analysis.Result.Status),
		Message:     analysis.Result.Message,
		Channels:    s.channels,
	}
	if err := s.notifier.Notify(ctx, note); err != nil {
		s.logger.Error().Err(err).Str("marker", string(analysis.Key)).Msg("failed to dispatch critical alert")
	}
}

func (s *Service) loadHistory(ctx context.Context, key engine.Key) ([]engine.MetricPoint, error) {
	if s.points == nil {
		return nil, nil
	}
	records, err := s.points.ListPointsByMarker(ctx, string(key))
	if err != nil {
		return nil, fmt.Errorf("list points for %s: %w", key, err)
	}
	points := make([]engine.MetricPoint, 0, len(records))
	for _, rec := range records {
		points = append(points, rec.ToPoint())
	}
	return points, nil
}

func (s *Service) loadLearned(ctx context.Context) (map[engine.Key]engine.LearnedMarker, error) {
	if s.learned == nil {
		return nil, nil
	}
	records, err := s.learned.ListLearnedMarkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learned markers: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	learned := make(map[engine.Key]engine.LearnedMarker, len(records))
	for _, rec := range records {
		learned[engine.Key(rec.MarkerKey)] = rec.ToLearned()
	}
	return learned, nil
}

func (s *Service) acquireLock(ctx context.Context) (func(), bool, error) {
	if s.lockKey == 0 || s.locker == nil {
		return nil, true, nil
	}
	unlock, acquired, err := s.locker.TryAdvisoryLock(ctx, s.lockKey)
	if err != nil {
		return nil, false, fmt.Errorf("acquire advisory lock: %w", err)
	}
	if !acquired {
		return nil, false, nil
	}
	return unlock, true, nil
}
