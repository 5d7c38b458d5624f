package tuya

import "encoding/json"

// response is the envelope of every tuya cloud API answer.
type response struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Msg     string          `json:"msg"`
	T       int64           `json:"t"`
	Result  json.RawMessage `json:"result"`
}

type tokenResult struct {
	AccessToken  string `json:"access_token"`
	ExpireTime   int64  `json:"expire_time"`
	RefreshToken string `json:"refresh_token"`
	UID          string `json:"uid"`
}

type deviceResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Online *bool  `json:"online"`
}

func (r response) hasResult() bool {
	return len(r.Result) > 0 && string(r.Result) != "null"
}
