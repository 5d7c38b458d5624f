package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	stdtime "time"

	"github.com/matryer/is"

	"github.com/ferux/powerwatch/internal/model"
)

func lookupMap(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

func requiredEnv() map[string]string {
	return map[string]string{
		"CLIENT_ID":     "client",
		"CLIENT_SECRET": "secret",
		"DEVICE_ID":     "bf0123",
		"BOT_TOKEN":     "123:abc",
		"CHAT_ID":       "-100500",
	}
}

func TestParseDefaults(t *testing.T) {
	is := is.New(t)

	app, err := Parse(lookupMap(requiredEnv()))
	is.NoErr(err)

	is.Equal(app.Tuya.BaseURL, "https://openapi.tuyaeu.com")
	is.Equal(app.Tuya.ClientID, "client")
	is.Equal(app.Tuya.ClientSecret, "secret")
	is.Equal(app.Tuya.DeviceID, "bf0123")
	is.Equal(app.NotifyTelegram.BaseURL, "https://api.telegram.org")
	is.Equal(app.NotifyTelegram.API, "123:abc")
	is.Equal(app.NotifyTelegram.ChatID, "-100500")
	is.Equal(app.Monitor.PollInterval.Std(), 30*stdtime.Second)
	is.Equal(app.Monitor.RequestTimeout.Std(), 10*stdtime.Second)
	is.Equal(app.Monitor.Location, stdtime.Local)
	is.Equal(app.HTTP.Listen, "")
	is.True(!app.Debug)
	is.True(!app.NotifyLifecycle)
}

func TestParseOverrides(t *testing.T) {
	is := is.New(t)

	env := requiredEnv()
	env["TUYA_BASE_URL"] = "https://openapi.tuyaus.com/"
	env["POLL_INTERVAL"] = "1m"
	env["REQUEST_TIMEOUT"] = "5s"
	env["TIMEZONE"] = "UTC"
	env["HTTP_LISTEN"] = ":8080"
	env["DEBUG"] = "true"
	env["NOTIFY_LIFECYCLE"] = "1"

	app, err := Parse(lookupMap(env))
	is.NoErr(err)

	is.Equal(app.Tuya.BaseURL, "https://openapi.tuyaus.com")
	is.Equal(app.Monitor.PollInterval.Std(), stdtime.Minute)
	is.Equal(app.Monitor.RequestTimeout.Std(), 5*stdtime.Second)
	is.Equal(app.Monitor.Location.String(), "UTC")
	is.Equal(app.HTTP.Listen, ":8080")
	is.True(app.Debug)
	is.True(app.NotifyLifecycle)
}

func TestParseMissing(t *testing.T) {
	is := is.New(t)

	env := requiredEnv()
	delete(env, "CLIENT_SECRET")
	env["CHAT_ID"] = "   "

	_, err := Parse(lookupMap(env))
	is.True(errors.Is(err, model.ErrMissingParameter))
	is.True(strings.Contains(err.Error(), "CLIENT_SECRET"))
	is.True(strings.Contains(err.Error(), "CHAT_ID"))
}

func TestParseInvalid(t *testing.T) {
	for key, val := range map[string]string{
		"POLL_INTERVAL":   "often",
		"REQUEST_TIMEOUT": "-1s",
		"TIMEZONE":        "Mars/Olympus",
		"DEBUG":           "maybe",
	} {
		key, val := key, val
		t.Run(key, func(t *testing.T) {
			is := is.New(t)

			env := requiredEnv()
			env[key] = val

			_, err := Parse(lookupMap(env))
			is.True(err != nil)
			is.True(strings.Contains(err.Error(), key))
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	is := is.New(t)

	for key := range requiredEnv() {
		t.Setenv(key, "")
		is.NoErr(os.Unsetenv(key))
	}

	t.Setenv("CHAT_ID", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	content := "CLIENT_ID=client\nCLIENT_SECRET=secret\nDEVICE_ID=bf0123\nBOT_TOKEN=123:abc\nCHAT_ID=from-file\n"
	is.NoErr(os.WriteFile(path, []byte(content), 0o600))

	app, err := Load(path)
	is.NoErr(err)
	is.Equal(app.Tuya.DeviceID, "bf0123")
	is.Equal(app.NotifyTelegram.ChatID, "from-env") // environment wins over .env
}

func TestLoadWithoutDotEnv(t *testing.T) {
	is := is.New(t)

	for key, val := range requiredEnv() {
		t.Setenv(key, val)
	}

	_, err := Load(filepath.Join(t.TempDir(), ".env"))
	is.NoErr(err)
}
