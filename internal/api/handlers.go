package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/ferux/powerwatch/internal/fcontext"
	"github.com/ferux/powerwatch/internal/model"
)

type infoResponse struct {
	Revision     string  `json:"revision"`
	Branch       string  `json:"branch"`
	Environment  string  `json:"environment"`
	BootTime     string  `json:"boot_time"`
	Uptime       float64 `json:"uptime"`
	RequestCount int64   `json:"request_count"`
}

type stateResponse struct {
	Primed    bool       `json:"primed"`
	Online    bool       `json:"online"`
	ChangedAt *time.Time `json:"changed_at,omitempty"`
	// Since is how many seconds the device stays in the current state.
	Since     int64  `json:"since"`
	RequestID string `json:"request_id,omitempty"`
}

func (api *HTTP) handleInfo(info model.ApplicationInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asJSON(r.Context(), w, infoResponse{
			Revision:     info.Revision,
			Branch:       info.Branch,
			Environment:  info.Environment,
			BootTime:     api.bootTime.String(),
			Uptime:       float64(int64(api.now().Sub(api.bootTime).Seconds())),
			RequestCount: atomic.LoadInt64(&api.requestCount),
		}, http.StatusOK)
	}
}

func (api *HTTP) handleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		state := api.tracker.Snapshot()

		response := stateResponse{
			Primed:    state.Primed,
			Online:    state.Online,
			RequestID: fcontext.RequestID(ctx),
		}

		if state.Primed {
			changedAt := state.ChangedAt
			response.ChangedAt = &changedAt
			response.Since = int64(api.now().Sub(changedAt).Seconds())
		}

		asJSON(ctx, w, response, http.StatusOK)
	}
}

func (api *HTTP) handleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.serveError(r.Context(), w, r, model.ServiceError{
			Message: model.ErrNotFound.Error(),
			Code:    http.StatusNotFound,
		})
	}
}

func (api *HTTP) serveError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	var (
		logger = zerolog.Ctx(ctx)
		rid    = fcontext.RequestID(ctx)

		responseError model.ServiceError
	)

	switch terr := err.(type) {
	case model.ServiceError:
		responseError = terr
		if terr.Code == 0 {
			responseError.Code = http.StatusInternalServerError
		}

		if terr.RequestID == "" {
			responseError.RequestID = rid
		}
	default:
		responseError.Code = http.StatusInternalServerError
		responseError.Message = err.Error()
		responseError.RequestID = rid
	}

	logger.Error().Err(responseError).Str("request_uri", r.RequestURI).Msg("captured error")

	asJSON(ctx, w, responseError, responseError.Code)
}
