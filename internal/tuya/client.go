package tuya

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ferux/powerwatch/internal/config"
	"github.com/ferux/powerwatch/internal/fcontext"
	"github.com/ferux/powerwatch/internal/model"
)

const (
	tokenPath         = "/v1.0/token?grant_type=1"
	devicePathPattern = "/v1.0/devices/%s"

	maxBodySize = 1 << 20
)

// Client talks to the tuya cloud API on behalf of a single device.
type Client struct {
	c       *http.Client
	baseURL string

	clientID string
	deviceID string
	signer   Signer
}

// New creates tuya client. Timeout bounds every single request.
func New(cfg config.Tuya, timeout time.Duration) *Client {
	return &Client{
		c:        &http.Client{Timeout: timeout},
		baseURL:  cfg.BaseURL,
		clientID: cfg.ClientID,
		deviceID: cfg.DeviceID,
		signer:   NewSigner(cfg.ClientID, cfg.ClientSecret),
	}
}

// RequestToken obtains a new access token.
func (c *Client) RequestToken(ctx context.Context) (token string, err error) {
	var resp response
	resp, err = c.performRequest(ctx, http.MethodGet, tokenPath, "")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuth, err)
	}

	if !resp.Success {
		return "", fmt.Errorf("%w: code=%d: %w", ErrAuth, resp.Code, model.Error(resp.Msg))
	}

	var result tokenResult
	if resp.hasResult() {
		err = json.Unmarshal(resp.Result, &result)
		if err != nil {
			return "", fmt.Errorf("%w: decoding result: %w", ErrAuth, err)
		}
	}

	if result.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access_token: %w", ErrAuth, model.ErrMalformedResponse)
	}

	return result.AccessToken, nil
}

// DeviceOnline reports whether the device is connected to the tuya cloud.
func (c *Client) DeviceOnline(ctx context.Context, token string) (online bool, err error) {
	ctx = fcontext.WithDeviceID(ctx, c.deviceID)
	path := fmt.Sprintf(devicePathPattern, c.deviceID)

	var resp response
	resp, err = c.performRequest(ctx, http.MethodGet, path, token)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	if !resp.hasResult() {
		if !resp.Success {
			return false, fmt.Errorf("%w: code=%d: %w", ErrFetch, resp.Code, model.Error(resp.Msg))
		}

		return false, fmt.Errorf("%w: no result: %w", ErrFetch, model.ErrMalformedResponse)
	}

	var result deviceResult
	err = json.Unmarshal(resp.Result, &result)
	if err != nil {
		return false, fmt.Errorf("%w: decoding result: %w", ErrFetch, err)
	}

	if result.Online == nil {
		return false, fmt.Errorf("%w: no online flag: %w", ErrFetch, model.ErrMalformedResponse)
	}

	return *result.Online, nil
}

func (c *Client) performRequest(ctx context.Context, method, path, token string) (resp response, err error) {
	logger := zerolog.Ctx(ctx).With().
		Str("pkg", "tuya").
		Str("request_id", fcontext.RequestID(ctx)).
		Str("device_id", fcontext.DeviceID(ctx)).
		Logger()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return resp, errors.Wrap(err, "making new request")
	}

	sig := c.signer.Sign(method, path, token, nil)

	req.Header.Set("client_id", c.clientID)
	if token != "" {
		req.Header.Set("access_token", token)
	}
	req.Header.Set("t", sig.Timestamp)
	req.Header.Set("sign", sig.Sign)
	req.Header.Set("sign_method", signMethod)

	logger.Debug().Str("method", method).Str("path", path).Msg("sending request")

	httpResp, err := c.c.Do(req)
	if err != nil {
		return resp, errors.Wrap(err, "sending request")
	}
	defer func() {
		errclose := httpResp.Body.Close()
		if errclose != nil {
			logger.Error().Err(errclose).Msg("closing response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodySize))
	if err != nil {
		return resp, errors.Wrap(err, "reading body")
	}

	if httpResp.StatusCode != http.StatusOK {
		return resp, errors.Wrapf(model.ErrWrongStatusCode, "expected status code 200 got %d", httpResp.StatusCode)
	}

	err = json.Unmarshal(body, &resp)
	if err != nil {
		return resp, errors.Wrap(err, "unmarshalling json")
	}

	logger.Debug().Bool("success", resp.Success).Int("code", resp.Code).Msg("got response")

	return resp, nil
}
