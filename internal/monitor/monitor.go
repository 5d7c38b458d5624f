// Package monitor polls the device and notifies about power changes.
//
// A single goroutine runs cycles one after another: ensure token, fetch the
// online flag, feed it to the tracker and send a message if the state changed.
// Ticks arriving while a cycle is still running are dropped by time.Ticker.
package monitor

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pborman/uuid"
	"github.com/rs/zerolog"

	"github.com/ferux/powerwatch/internal/config"
	"github.com/ferux/powerwatch/internal/fcontext"
	"github.com/ferux/powerwatch/internal/state"
	"github.com/ferux/powerwatch/internal/telegram"
	ftime "github.com/ferux/powerwatch/internal/time"
	"github.com/ferux/powerwatch/internal/templates"
)

// TokenSource hands out access tokens.
type TokenSource interface {
	Ensure(ctx context.Context) (string, error)
	Invalidate()
}

// StatusFetcher reports the device connectivity.
type StatusFetcher interface {
	DeviceOnline(ctx context.Context, token string) (bool, error)
}

type Monitor struct {
	tokens   TokenSource
	devices  StatusFetcher
	tracker  *state.Tracker
	tgclient telegram.Client
	notifier *sentry.Client
	logger   zerolog.Logger

	notify   config.NotifyTelegram
	interval time.Duration
	timeout  time.Duration
	location *time.Location

	now func() time.Time
}

// New prepares monitor. It does nothing until Run is called.
func New(
	cfg config.Monitor,
	notify config.NotifyTelegram,
	tokens TokenSource,
	devices StatusFetcher,
	tracker *state.Tracker,
	tgclient telegram.Client,
	logger zerolog.Logger,
	nClient *sentry.Client,
) *Monitor {
	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	return &Monitor{
		tokens:   tokens,
		devices:  devices,
		tracker:  tracker,
		tgclient: tgclient,
		notifier: nClient,
		logger:   logger.With().Str("pkg", "monitor").Logger(),
		notify:   notify,
		interval: cfg.PollInterval.Std(),
		timeout:  cfg.RequestTimeout.Std(),
		location: location,
		now:      time.Now,
	}
}

// Run polls the device every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info().Str("interval", m.interval.String()).Msg("monitor started")

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Msg("monitor stopped")
			return
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

// tick runs a single cycle and handles its failure. Any error drops the
// token so the next cycle authenticates again.
func (m *Monitor) tick(ctx context.Context) {
	rid := uuid.New()
	logger := m.logger.With().Str("request_id", rid).Logger()

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	ctx = fcontext.WithRequestID(ctx, rid)
	ctx = logger.WithContext(ctx)

	start := time.Now()

	err := m.Cycle(ctx)
	if err != nil {
		m.tokens.Invalidate()

		logger.Error().Err(err).Msg("cycle failed")
		m.notifier.CaptureException(err, &sentry.EventHint{
			OriginalException: err,
			Data: map[string]interface{}{
				"request_id": rid,
			},
		}, sentry.NewScope())

		return
	}

	logger.Debug().Str("took", time.Since(start).String()).Msg("cycle done")
}

// Cycle polls the device once and sends a notification if its state changed.
func (m *Monitor) Cycle(ctx context.Context) error {
	token, err := m.tokens.Ensure(ctx)
	if err != nil {
		return err
	}

	online, err := m.devices.DeviceOnline(ctx, token)
	if err != nil {
		return err
	}

	change, changed := m.tracker.Observe(online, m.now())
	if !changed {
		zerolog.Ctx(ctx).Debug().Bool("online", online).Msg("no change")
		return nil
	}

	zerolog.Ctx(ctx).Info().
		Bool("online", change.Online).
		Str("lasted", change.Lasted.String()).
		Msg("power state changed")

	return m.tgclient.SendMessageViaHTTP(ctx, m.notify.API, m.notify.ChatID, m.message(change))
}

func (m *Monitor) message(change state.Change) string {
	at := ftime.FormatTimestamp(change.At.In(m.location))
	lasted := ftime.FormatDuration(change.Lasted)

	if change.Online {
		return templates.PowerOn(at, lasted)
	}

	return templates.PowerOff(at, lasted)
}
