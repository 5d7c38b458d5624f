package tuya

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

type stubRequester struct {
	tokens []string
	err    error
	calls  int
}

func (s *stubRequester) RequestToken(context.Context) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}

	return s.tokens[s.calls-1], nil
}

func TestTokensCache(t *testing.T) {
	is := is.New(t)

	r := &stubRequester{tokens: []string{"first", "second"}}
	tokens := NewTokens(r)

	token, err := tokens.Ensure(context.Background())
	is.NoErr(err)
	is.Equal(token, "first")

	token, err = tokens.Ensure(context.Background())
	is.NoErr(err)
	is.Equal(token, "first")
	is.Equal(r.calls, 1) // cached token is reused

	tokens.Invalidate()
	is.True(!tokens.Cached())

	token, err = tokens.Ensure(context.Background())
	is.NoErr(err)
	is.Equal(token, "second")
	is.Equal(r.calls, 2)
}

func TestTokensFailure(t *testing.T) {
	is := is.New(t)

	r := &stubRequester{err: ErrAuth}
	tokens := NewTokens(r)

	token, err := tokens.Ensure(context.Background())
	is.True(errors.Is(err, ErrAuth))
	is.Equal(token, "")
	is.True(!tokens.Cached())
	is.Equal(r.calls, 1)
}
