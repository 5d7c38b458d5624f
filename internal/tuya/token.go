package tuya

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// TokenRequester issues new access tokens.
type TokenRequester interface {
	RequestToken(ctx context.Context) (string, error)
}

// Tokens caches the access token in memory until it is invalidated.
type Tokens struct {
	r TokenRequester

	mu    sync.Mutex
	token string
}

func NewTokens(r TokenRequester) *Tokens {
	return &Tokens{r: r}
}

// Ensure returns the cached token or requests a new one. On failure the
// cache stays empty and nothing is retried.
func (t *Tokens) Ensure(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" {
		return t.token, nil
	}

	token, err := t.r.RequestToken(ctx)
	if err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Debug().Str("pkg", "tuya").Msg("obtained access token")
	t.token = token

	return token, nil
}

// Invalidate forgets the cached token.
func (t *Tokens) Invalidate() {
	t.mu.Lock()
	t.token = ""
	t.mu.Unlock()
}

// Cached reports whether a token is held.
func (t *Tokens) Cached() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.token != ""
}
