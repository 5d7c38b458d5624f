package tuya

import "github.com/ferux/powerwatch/internal/model"

const (
	// ErrAuth is returned when a token can't be obtained.
	ErrAuth model.Error = "tuya authentication failed"
	// ErrFetch is returned when device details can't be fetched.
	ErrFetch model.Error = "tuya device fetch failed"
)
