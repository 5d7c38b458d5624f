package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"github.com/ferux/powerwatch/internal/config"
	"github.com/ferux/powerwatch/internal/model"
)

const (
	maxHeaderBytes = 256 * (1 << 10) // 256 KiB
	contentType    = "content-type"
	contentJSON    = "application/json"
)

// StateReader gives access to the tracked device state.
type StateReader interface {
	Snapshot() model.DeviceState
}

// HTTP is a read-only status API.
type HTTP struct {
	srv *http.Server

	tracker  StateReader
	logger   zerolog.Logger
	notifier *sentry.Client

	requestCount int64
	bootTime     time.Time
	now          func() time.Time
}

// NewHTTP prepares new http service
func NewHTTP(
	cfg config.HTTP,
	tracker StateReader,
	logger zerolog.Logger,
	nClient *sentry.Client,
	appInfo model.ApplicationInfo,
) *HTTP {
	to := cfg.Timeout.Std()
	srv := &http.Server{
		Addr:              cfg.Listen,
		ReadTimeout:       to,
		ReadHeaderTimeout: to,
		WriteTimeout:      to,
		IdleTimeout:       to,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	api := &HTTP{
		srv:      srv,
		tracker:  tracker,
		logger:   logger.With().Str("pkg", "api").Logger(),
		bootTime: time.Now(),
		notifier: nClient,
		now:      time.Now,
	}
	api.setupRoutes(appInfo)

	return api
}

// Serve connections
func (api *HTTP) Serve() {
	go func() {
		api.logger.Info().Str("listen", api.srv.Addr).Msg("serving http")
		err := api.srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			api.logger.Error().Err(err).Msg("interrupted")
			api.notifier.CaptureException(err, nil, sentry.NewScope())
		}
	}()
}

// Shutdown the server
func (api *HTTP) Shutdown(ctx context.Context) error {
	return api.srv.Shutdown(ctx)
}

func asJSON(ctx context.Context, w http.ResponseWriter, obj interface{}, code int) {
	w.Header().Set(contentType, contentJSON)
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(obj)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("encoding json")
	}
}
