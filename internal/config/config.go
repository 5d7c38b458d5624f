package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	stdtime "time"

	"github.com/joho/godotenv"

	"github.com/ferux/powerwatch/internal/model"
	"github.com/ferux/powerwatch/internal/time"
)

const (
	defaultTuyaBaseURL     = "https://openapi.tuyaeu.com"
	defaultTelegramBaseURL = "https://api.telegram.org"
	defaultPollInterval    = time.Duration(30 * stdtime.Second)
	defaultRequestTimeout  = time.Duration(10 * stdtime.Second)
)

// Application settings.
type Application struct {
	Debug           bool           `json:"debug"`
	Tuya            Tuya           `json:"tuya"`
	NotifyTelegram  NotifyTelegram `json:"notify_telegram"`
	Monitor         Monitor        `json:"monitor"`
	HTTP            HTTP           `json:"http"`
	SentryDSN       string         `json:"sentry_dsn"`
	NotifyLifecycle bool           `json:"notify_lifecycle"`
}

// Tuya holds cloud project credentials and the monitored device.
type Tuya struct {
	BaseURL      string `json:"base_url"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"-"`
	DeviceID     string `json:"device_id"`
}

type NotifyTelegram struct {
	BaseURL string `json:"base_url"`
	API     string `json:"-"`
	ChatID  string `json:"chat_id"`
}

type Monitor struct {
	PollInterval   time.Duration `json:"poll_interval"`
	RequestTimeout time.Duration `json:"request_timeout"`
	// Location is used to render timestamps in notifications.
	Location *stdtime.Location `json:"-"`
}

// HTTP configures the status API. Empty Listen disables it.
type HTTP struct {
	Listen  string        `json:"listen"`
	Timeout time.Duration `json:"timeout"`
}

// LookupFunc resolves a single variable, os.LookupEnv fits.
type LookupFunc func(key string) (string, bool)

// Load reads .env from the working directory, if it exists, and parses the
// process environment. Variables already set in the environment win.
func Load(path string) (Application, error) {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Application{}, fmt.Errorf("loading %s: %w", path, err)
	}

	return Parse(os.LookupEnv)
}

// Parse builds settings from lookup. All missing required variables are
// reported in a single error.
func Parse(lookup LookupFunc) (app Application, err error) {
	get := func(key string) string {
		val, _ := lookup(key)
		return strings.TrimSpace(val)
	}

	var missing []string
	required := func(key string) string {
		val := get(key)
		if val == "" {
			missing = append(missing, key)
		}

		return val
	}

	app.Tuya = Tuya{
		BaseURL:      strings.TrimRight(fallback(get("TUYA_BASE_URL"), defaultTuyaBaseURL), "/"),
		ClientID:     required("CLIENT_ID"),
		ClientSecret: required("CLIENT_SECRET"),
		DeviceID:     required("DEVICE_ID"),
	}

	app.NotifyTelegram = NotifyTelegram{
		BaseURL: strings.TrimRight(fallback(get("TELEGRAM_BASE_URL"), defaultTelegramBaseURL), "/"),
		API:     required("BOT_TOKEN"),
		ChatID:  required("CHAT_ID"),
	}

	if len(missing) > 0 {
		return Application{}, fmt.Errorf("%s: %w", strings.Join(missing, ", "), model.ErrMissingParameter)
	}

	app.Monitor.PollInterval, err = duration(get("POLL_INTERVAL"), defaultPollInterval)
	if err != nil {
		return Application{}, fmt.Errorf("parsing POLL_INTERVAL: %w", err)
	}

	app.Monitor.RequestTimeout, err = duration(get("REQUEST_TIMEOUT"), defaultRequestTimeout)
	if err != nil {
		return Application{}, fmt.Errorf("parsing REQUEST_TIMEOUT: %w", err)
	}

	app.Monitor.Location = stdtime.Local
	if tz := get("TIMEZONE"); tz != "" {
		app.Monitor.Location, err = stdtime.LoadLocation(tz)
		if err != nil {
			return Application{}, fmt.Errorf("loading TIMEZONE: %w", err)
		}
	}

	app.HTTP = HTTP{Listen: get("HTTP_LISTEN"), Timeout: app.Monitor.RequestTimeout}
	app.SentryDSN = get("SENTRY_DSN")

	app.Debug, err = boolean(get("DEBUG"))
	if err != nil {
		return Application{}, fmt.Errorf("parsing DEBUG: %w", err)
	}

	app.NotifyLifecycle, err = boolean(get("NOTIFY_LIFECYCLE"))
	if err != nil {
		return Application{}, fmt.Errorf("parsing NOTIFY_LIFECYCLE: %w", err)
	}

	return app, nil
}

func fallback(val, def string) string {
	if val == "" {
		return def
	}

	return val
}

func duration(val string, def time.Duration) (d time.Duration, err error) {
	if val == "" {
		return def, nil
	}

	err = d.UnmarshalText([]byte(val))
	if err != nil {
		return 0, err
	}

	if d <= 0 {
		return 0, fmt.Errorf("%s should be positive", val)
	}

	return d, nil
}

func boolean(val string) (bool, error) {
	if val == "" {
		return false, nil
	}

	return strconv.ParseBool(val)
}
