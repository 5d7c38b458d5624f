package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fastjson"

	"github.com/ferux/powerwatch/internal/fcontext"
	"github.com/ferux/powerwatch/internal/model"
)

// Client for interacting with telegram.
type Client interface {
	SendMessageViaHTTP(ctx context.Context, apiKey, chatID, text string) error
}

type client struct {
	c       *http.Client
	baseURL string
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// New creates new telegram client. baseURL is usually https://api.telegram.org.
func New(baseURL string, timeout time.Duration) Client {
	return &client{
		c:       &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

func (client *client) SendMessageViaHTTP(ctx context.Context, apiKey, chatID, text string) (err error) {
	logger := zerolog.Ctx(ctx).With().Str("pkg", "telegram").Logger()
	rid := fcontext.RequestID(ctx)

	if len(apiKey) == 0 {
		return model.ServiceError{Message: "api is empty", RequestID: rid, Code: http.StatusBadRequest}
	}

	if len(chatID) == 0 {
		return model.ServiceError{Message: "chat_id is empty", RequestID: rid, Code: http.StatusBadRequest}
	}

	if len(text) == 0 {
		return model.ServiceError{Message: "text is empty", RequestID: rid, Code: http.StatusBadRequest}
	}

	logger.Debug().Str("chat_id", chatID).Str("text", text).Msg("sending to telegram")

	payload, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("marshalling request: %w", err)
	}

	requestURL := fmt.Sprintf("%s/bot%s/sendMessage", client.baseURL, apiKey)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		return model.ServiceError{Message: err.Error(), RequestID: rid, Code: http.StatusInternalServerError}
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := client.c.Do(request)
	if err != nil {
		return model.ServiceError{Message: err.Error(), RequestID: rid, Code: http.StatusInternalServerError}
	}

	responseData, err := io.ReadAll(response.Body)
	// I don't care about error here
	_ = response.Body.Close()

	if err != nil {
		return model.ServiceError{Message: err.Error(), RequestID: rid, Code: http.StatusInternalServerError}
	}

	v, err := fastjson.ParseBytes(responseData)
	if err != nil {
		logger.Error().Err(err).Int("status", response.StatusCode).Msg("unable to parse response")

		return model.ServiceError{Message: err.Error(), RequestID: rid, Code: response.StatusCode}
	}

	logger.Debug().RawJSON("response", responseData).Msg("accepted message")

	if !v.GetBool("ok") || response.StatusCode != http.StatusOK {
		return model.ServiceError{
			Message:   fmt.Sprintf("telegram error %d: %s", v.GetInt("error_code"), v.GetStringBytes("description")),
			RequestID: rid,
			Code:      response.StatusCode,
		}
	}

	logger.Info().Int64("message_id", v.GetInt64("result", "message_id")).Msg("response from telegram")

	return nil
}
