package model

import "encoding/json"

// ServiceError is returned when a request can't be served. It renders as JSON
// so it can be written straight into a response body.
type ServiceError struct {
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`

	Code int `json:"-"`
}

func (err ServiceError) Error() string {
	data, _ := json.Marshal(&err)

	return string(data)
}

type Error string

func (err Error) Error() string {
	return string(err)
}

const (
	ErrNotFound          Error = "not found"
	ErrMissingParameter  Error = "missing parameter"
	ErrWrongStatusCode   Error = "wrong status code"
	ErrMalformedResponse Error = "malformed response"
)
