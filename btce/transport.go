package btce

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/net/context/ctxhttp"
)

// Transport issues the HTTP calls of the client and returns the response body as JSON.
// An absent body is returned as an empty object.
type Transport interface {
	Get(ctx context.Context, rawURL string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, rawURL string, body string, headers map[string]string) (json.RawMessage, error)
}

const maxErrorBody = 512

var emptyObject = json.RawMessage(`{}`)

// HTTPTransport is the default Transport. It only talks to https endpoints and never
// disables certificate verification.
type HTTPTransport struct {
	Client *http.Client
}

func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

func (t *HTTPTransport) Get(ctx context.Context, rawURL string, query url.Values) (json.RawMessage, error) {
	if q := query.Encode(); q != "" {
		rawURL += "?" + q
	}
	req, err := t.newRequest(http.MethodGet, rawURL, "")
	if err != nil {
		return nil, err
	}
	return t.do(ctx, req)
}

func (t *HTTPTransport) Post(ctx context.Context, rawURL string, body string, headers map[string]string) (json.RawMessage, error) {
	req, err := t.newRequest(http.MethodPost, rawURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerContentType, contentTypeForm)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return t.do(ctx, req)
}

func (t *HTTPTransport) newRequest(method, rawURL, body string) (*http.Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse url")
	}
	if u.Scheme != "https" {
		return nil, errors.Errorf("refusing non-TLS url %s", u.Redacted())
	}
	var req *http.Request
	if body == "" {
		req, err = http.NewRequest(method, rawURL, nil)
	} else {
		req, err = http.NewRequest(method, rawURL, strings.NewReader(body))
	}
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (t *HTTPTransport) do(ctx context.Context, req *http.Request) (json.RawMessage, error) {
	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := ctxhttp.Do(ctx, client, req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := string(data)
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: body}
	}
	return parseBody(data)
}

func parseBody(data []byte) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return emptyObject, nil
	}
	if !json.Valid([]byte(trimmed)) {
		if len(trimmed) > maxErrorBody {
			trimmed = trimmed[:maxErrorBody]
		}
		return nil, errors.Errorf("invalid json response: %s", trimmed)
	}
	return json.RawMessage(trimmed), nil
}
