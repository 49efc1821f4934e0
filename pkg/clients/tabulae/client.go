package tabulae

import (
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// TokenSource supplies the current bearer token. An empty string means no
// credential is held and the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-string TokenSource, mostly useful in tests.
type StaticToken string

// Token returns the underlying string.
func (s StaticToken) Token() string { return string(s) }

// Client groups the resource clients of the Tabulae REST API behind a shared
// resty client. The cookie jar carries the HttpOnly refresh cookie the server
// manages; this code never reads it directly.
type Client struct {
	http   *resty.Client
	tokens TokenSource

	Auth       *AuthClient
	Products   *ProductsClient
	Warehouses *WarehousesClient
	Stock      *StockClient
	Movements  *MovementsClient
	Users      *UsersClient
}

// New builds a client rooted at the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetCookieJar(jar).
		SetTimeout(timeout)

	c := &Client{http: restyClient}
	c.Auth = &AuthClient{c: c}
	c.Products = &ProductsClient{c: c}
	c.Warehouses = &WarehousesClient{c: c}
	c.Stock = &StockClient{c: c}
	c.Movements = &MovementsClient{c: c}
	c.Users = &UsersClient{c: c}
	return c
}

// SetTokenSource attaches the bearer token supplier. The session manager
// implements TokenSource, so this is wired after the manager is built.
func (c *Client) SetTokenSource(tokens TokenSource) *Client {
	c.tokens = tokens
	return c
}

// request prepares an authenticated request carrying the current bearer token.
func (c *Client) request() *resty.Request {
	req := c.http.R()
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.SetAuthToken(token)
		}
	}
	return req
}
