package btce

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const Name = "btce"

// EndpointConfig locates the public and private APIs.
type EndpointConfig struct {
	Host        string `json:"host"`
	PublicPath  string `json:"publicPath"`
	PrivatePath string `json:"privatePath"`
}

func DefaultEndpoint() EndpointConfig {
	return EndpointConfig{
		Host:        DefaultHost,
		PublicPath:  DefaultPublicPath,
		PrivatePath: DefaultPrivatePath,
	}
}

// Client maps every exchange endpoint to one method. Each call is an independent
// request/response; the only state shared between calls is the nonce sequence of the signer.
type Client struct {
	endpoint  EndpointConfig
	label     string
	signer    *Signer
	transport Transport
	timeout   time.Duration

	Sugar *zap.SugaredLogger
}

type Option func(*Client)

// WithHost overrides the API host, e.g. "https://wex.nz".
func WithHost(host string) Option {
	return func(c *Client) {
		if host != "" {
			c.endpoint.Host = strings.TrimRight(host, "/")
		}
	}
}

func WithPublicPath(path string) Option {
	return func(c *Client) {
		c.endpoint.PublicPath = path
	}
}

func WithPrivatePath(path string) Option {
	return func(c *Client) {
		c.endpoint.PrivatePath = path
	}
}

func WithEndpoint(e EndpointConfig) Option {
	return func(c *Client) {
		WithHost(e.Host)(c)
		if e.PublicPath != "" {
			c.endpoint.PublicPath = e.PublicPath
		}
		if e.PrivatePath != "" {
			c.endpoint.PrivatePath = e.PrivatePath
		}
	}
}

// WithTransport replaces the HTTP transport. WithTimeout has no effect on a custom transport.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithTimeout sets the overall deadline of each HTTP call made by the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithLogger(sugar *zap.SugaredLogger) Option {
	return func(c *Client) {
		if sugar != nil {
			c.Sugar = sugar
		}
	}
}

// WithLabel names the account, used by the exchange.Exchange view of the client.
func WithLabel(label string) Option {
	return func(c *Client) {
		c.label = label
	}
}

// WithClock replaces the time source of the nonce generator.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.signer.now = now
		}
	}
}

func New(key, secret string, opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint(),
		signer:   NewSigner(key, secret),
		timeout:  DefaultTimeout,
		Sugar:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(c.timeout)
	}
	return c
}

func (c *Client) Endpoint() EndpointConfig {
	return c.endpoint
}

func (c *Client) Signer() *Signer {
	return c.signer
}

func (c *Client) publicURL(path string) string {
	return c.endpoint.Host + c.endpoint.PublicPath + "/" + path
}

func (c *Client) privateURL() string {
	return c.endpoint.Host + c.endpoint.PrivatePath
}

// publicRequest issues GET host+publicPath+"/"+path and decodes the body into result.
func (c *Client) publicRequest(ctx context.Context, path string, query url.Values, result interface{}) error {
	u := c.publicURL(path)
	c.Sugar.Debugw("public request", "url", u, "query", query.Encode())

	body, err := c.transport.Get(ctx, u, query)
	if err != nil {
		return err
	}
	if err := checkBody(path, body, true); err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		c.Sugar.Debugf("raw response: %s", string(body))
		return errors.Wrapf(err, "decode %s", path)
	}
	return nil
}

// privateRequest signs params for method, posts them and decodes the "return" member into result.
// It fails before any network call when the client has no credentials.
func (c *Client) privateRequest(ctx context.Context, method string, params url.Values, result interface{}) error {
	payload, err := c.signer.BuildSignedPayload(params, method)
	if err != nil {
		return err
	}
	c.Sugar.Debugw("private request", "url", c.privateURL(), "method", method, "nonce", payload.Params.Get("nonce"))

	body, err := c.transport.Post(ctx, c.privateURL(), payload.Body, payload.Headers())
	if err != nil {
		return err
	}
	if err := checkBody(method, body, false); err != nil {
		return err
	}

	var resp privateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.Sugar.Debugf("raw response: %s", string(body))
		return errors.Wrapf(err, "decode %s", method)
	}
	if resp.Success != 1 {
		msg := resp.Error
		if msg == "" {
			msg = "request not success"
		}
		return &APIError{Method: method, Message: msg}
	}
	if result == nil || len(resp.Return) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Return, result); err != nil {
		c.Sugar.Debugf("raw response: %s", string(body))
		return errors.Wrapf(err, "decode %s result", method)
	}
	return nil
}

// checkBody turns an error-shaped body into an *APIError. A "status" member that is set and not
// "OK" is a failure; for public calls so is an explicit "success": 0.
func checkBody(where string, body json.RawMessage, checkSuccess bool) error {
	var st publicStatus
	if err := json.Unmarshal(body, &st); err != nil {
		// not an object; nothing to inspect
		return nil
	}
	if statusFailed(st.Status) {
		msg := st.Description
		if msg == "" {
			msg = st.ErrorMessage
		}
		if msg == "" {
			msg = "status " + string(st.Status)
		}
		return &APIError{Method: where, Message: msg}
	}
	if checkSuccess && st.Success != nil && *st.Success == 0 {
		msg := st.Error
		if msg == "" {
			msg = "request not success"
		}
		return &APIError{Method: where, Message: msg}
	}
	return nil
}

func statusFailed(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "false", "0", `""`, `"OK"`:
		return false
	}
	return true
}
