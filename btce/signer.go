package btce

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// SignedPayload is the authenticated form of one private call.
// Body is the exact string that was signed and must be sent unchanged as the POST body.
type SignedPayload struct {
	Params url.Values
	Body   string
	Sign   string
	Key    string
}

// Headers returns the authentication headers of the payload.
func (p *SignedPayload) Headers() map[string]string {
	return map[string]string{
		headerSign: p.Sign,
		headerKey:  p.Key,
	}
}

// Signer issues nonces and signs private requests for one key pair.
// It is safe for concurrent use; nonces are strictly increasing for the lifetime of the Signer.
type Signer struct {
	key    string
	secret string

	now func() time.Time

	mu        sync.Mutex
	lastNonce int64
}

func NewSigner(key, secret string) *Signer {
	return &Signer{
		key:    key,
		secret: secret,
		now:    time.Now,
	}
}

// NextNonce returns the nonce for the next private call. The value follows the wall clock in
// 100ms ticks; two calls within one tick get consecutive values instead of the same one.
func (s *Signer) NextNonce() int64 {
	ms := s.now().UnixNano() / int64(time.Millisecond)
	n := (ms+nonceTickMs/2)/nonceTickMs - nonceOffset

	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= s.lastNonce {
		n = s.lastNonce + 1
	}
	s.lastNonce = n
	return n
}

// BuildSignedPayload merges method and a fresh nonce into params and signs the encoded result.
// params is not modified; caller supplied "method" or "nonce" values are overridden.
func (s *Signer) BuildSignedPayload(params url.Values, method string) (*SignedPayload, error) {
	if s.key == "" || s.secret == "" {
		return nil, ErrNoCredentials
	}
	if method == "" {
		return nil, errors.Wrap(ErrInvalidParam, "empty api method")
	}

	merged := make(url.Values, len(params)+2)
	for k, v := range params {
		merged[k] = append([]string(nil), v...)
	}
	merged.Set("method", method)
	merged.Set("nonce", strconv.FormatInt(s.NextNonce(), 10))

	body := merged.Encode()
	return &SignedPayload{
		Params: merged,
		Body:   body,
		Sign:   s.sign(body),
		Key:    s.key,
	}, nil
}

func (s *Signer) sign(payload string) string {
	mac := hmac.New(sha512.New, []byte(s.secret))
	mac.Write([]byte(payload))
	return fmt.Sprintf("%x", mac.Sum(nil))
}

// String keeps the secret out of formatted output.
func (s *Signer) String() string {
	return fmt.Sprintf("btce.Signer{key: %s}", maskKey(s.key))
}

func (s *Signer) GoString() string {
	return s.String()
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
