// SPDX-License-Identifier: GPL-3.0-or-later

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/netdata/srmctl/logger"
	"github.com/netdata/srmctl/pkg/web"
)

const (
	urlPathLogin = "j_security_check"
	urlPathREST  = "REST/api/v1"

	urlPathStorageSystems = urlPathREST + "/StorageSystems/"
	urlPathVolumes        = urlPathREST + "/Volumes/"
	urlPathPools          = urlPathREST + "/Pools/"

	mediaTypeJSON = "application/json"
)

// Client is a Spectrum Control REST API client. It is not safe for concurrent use.
type Client struct {
	*logger.Logger

	request    web.RequestConfig
	httpClient *http.Client
	loggedIn   bool
}

// New creates a Client. It does not contact the server.
func New(cfg web.HTTPConfig, log *logger.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("url not set")
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid url '%s': %v", cfg.URL, err)
	}

	httpClient, err := web.NewHTTPClient(cfg.ClientConfig)
	if err != nil {
		return nil, err
	}

	return &Client{
		Logger:     log,
		request:    cfg.RequestConfig.Copy(),
		httpClient: httpClient,
	}, nil
}

// Connect creates a Client and logs in.
func Connect(ctx context.Context, cfg web.HTTPConfig, log *logger.Logger) (*Client, error) {
	c, err := New(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := c.Login(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Login establishes a session using the form based login.
func (c *Client) Login(ctx context.Context) error {
	c.loggedIn = false

	if c.request.Username == "" || c.request.Password == "" {
		return errors.New("login: username and password aren't set")
	}

	req, err := web.NewFormRequest(ctx, c.request, urlPathLogin, url.Values{
		"j_username": {c.request.Username},
		"j_password": {c.request.Password},
	})
	if err != nil {
		return fmt.Errorf("login: %v", err)
	}

	c.Debugf("logging in to %s as '%s'", req.URL, c.request.Username)

	if err := web.DoHTTP(c.httpClient).Request(req, nil); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	c.loggedIn = true
	return nil
}

// LoggedIn reports whether the last Login succeeded.
func (c *Client) LoggedIn() bool {
	return c.loggedIn
}

// Close releases idle connections. The Client must not be used after Close.
func (c *Client) Close() {
	c.loggedIn = false
	c.httpClient.CloseIdleConnections()
}

// getJSON GETs urlPath and decodes the response into in. It logs in if there is no session.
// Any status other than 200, including 401, is returned as is.
func (c *Client) getJSON(ctx context.Context, urlPath string, query url.Values, in any) error {
	if !c.loggedIn {
		if err := c.Login(ctx); err != nil {
			return err
		}
	}
	return c.doGetJSON(ctx, urlPath, query, in)
}

func (c *Client) doGetJSON(ctx context.Context, urlPath string, query url.Values, in any) error {
	req, err := web.NewRequest(ctx, c.request, urlPath, query)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", mediaTypeJSON)

	c.Debugf("GET %s", req.URL)

	return web.DoHTTP(c.httpClient).
		ExpectContentType(mediaTypeJSON).
		RequestJSON(req, in)
}
