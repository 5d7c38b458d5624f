package tuya

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const signMethod = "HMAC-SHA256"

// emptyBodyHash is hex(sha256("")). Every request this service makes has no body.
const emptyBodyHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// Signature is what tuya expects in the sign and t headers.
type Signature struct {
	Sign      string
	Timestamp string
}

// Signer computes request signatures for the tuya cloud API.
type Signer struct {
	clientID string
	secret   []byte

	now func() time.Time
}

func NewSigner(clientID, secret string) Signer {
	return Signer{clientID: clientID, secret: []byte(secret), now: time.Now}
}

// Sign signs a request. Token is empty when requesting a new token. Path
// must contain the query string exactly as it is sent.
func (s Signer) Sign(method, path, token string, body []byte) Signature {
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)

	contentHash := emptyBodyHash
	if len(body) > 0 {
		sum := sha256.Sum256(body)
		contentHash = hex.EncodeToString(sum[:])
	}

	var sb strings.Builder
	sb.WriteString(s.clientID)
	sb.WriteString(token)
	sb.WriteString(ts)
	sb.WriteString(strings.ToUpper(method))
	sb.WriteString("\n")
	sb.WriteString(contentHash)
	// no signed headers
	sb.WriteString("\n\n")
	sb.WriteString(path)

	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(sb.String()))

	return Signature{
		Sign:      strings.ToUpper(hex.EncodeToString(mac.Sum(nil))),
		Timestamp: ts,
	}
}
