package app

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"biomarker-insights/internal/alerting"
	"biomarker-insights/internal/engine"
)

// SimulateAlert pushes a synthetic critical-value notification through the
// configured channel so the delivery path can be verified end to end.
func (a *App) SimulateAlert(ctx context.Context, opts SimulateOptions) error {
	if !a.Config.Alerting.Enabled {
		return errors.New("alerting is disabled")
	}

	notifier := a.newNotifier()
	if notifier == nil {
		return errors.New("no alert channel configured")
	}

	key := engine.Normalize(opts.Marker)
	desc := engine.Resolve(key, opts.Marker, nil)
	rng := engine.ResolveRange(nil, nil, desc, engine.Gender(a.Config.Profile.Gender))
	status, _ := engine.Classify(opts.Value, rng)
	message := engine.ComposeMessage(status, engine.TrendUnknown, 0, rng)

	notification := alerting.Notification{
		Kind:        alerting.KindCritical,
		MarkerKey:   string(key),
		MarkerLabel: desc.Label,
		Value:       decimal.NewFromFloat(opts.Value),
		Unit:        desc.Unit,
		Recorded:    time.Now().UTC().Format("02/01/2006"),
		Status:      string(status),
		Message:     message,
		Channels:    a.Config.Alerting.Channels,
	}

	a.Logger.Info().Str("marker", string(key)).Str("status", string(status)).Msg("dispatching simulated alert")
	return notifier.Notify(ctx, notification)
}
