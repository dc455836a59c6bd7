// SPDX-License-Identifier: GPL-3.0-or-later

package web

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"golang.org/x/net/http2"
	"golang.org/x/net/publicsuffix"

	"github.com/netdata/srmctl/pkg/confopt"
	"github.com/netdata/srmctl/pkg/tlscfg"
)

// ClientConfig is the transport part of HTTPConfig.
type ClientConfig struct {
	// Timeout limits each request including redirects and reading the body.
	// Zero means no timeout.
	Timeout confopt.Duration `yaml:"timeout,omitempty" json:"timeout"`

	// ProxyURL is the proxy to use. Empty means HTTP_PROXY, HTTPS_PROXY and NO_PROXY
	// from the environment.
	ProxyURL string `yaml:"proxy_url,omitempty" json:"proxy_url"`

	tlscfg.TLSConfig `yaml:",inline" json:""`

	// ForceHTTP2 uses HTTP/2 without ALPN negotiation (h2c for http:// URLs).
	ForceHTTP2 bool `yaml:"force_http2,omitempty" json:"force_http2"`
}

// NewHTTPClient returns an *http.Client with a cookie jar, so session cookies set by a
// login are sent with later requests. Redirects are followed.
func NewHTTPClient(cfg ClientConfig) (*http.Client, error) {
	tlsConfig, err := tlscfg.NewTLSConfig(cfg.TLSConfig)
	if err != nil {
		return nil, fmt.Errorf("error on creating TLS config: %v", err)
	}

	proxy, err := proxyFunc(cfg.ProxyURL)
	if err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	dialer := &net.Dialer{Timeout: cfg.Timeout.Duration()}

	var transport http.RoundTripper
	if cfg.ForceHTTP2 {
		transport = newHTTP2Transport(dialer, tlsConfig)
	} else {
		transport = &http.Transport{
			TLSClientConfig:     tlsConfig,
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: cfg.Timeout.Duration(),
			Proxy:               proxy,
		}
	}

	return &http.Client{
		Timeout:   cfg.Timeout.Duration(),
		Transport: transport,
		Jar:       jar,
	}, nil
}

func newHTTP2Transport(dialer *net.Dialer, tlsConfig *tls.Config) *http2Transport {
	return &http2Transport{
		tls: &http2.Transport{TLSClientConfig: tlsConfig},
		h2c: &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialer.DialContext(ctx, network, addr)
			},
		},
	}
}

// http2Transport speaks h2 over TLS and h2c over plain TCP.
type http2Transport struct {
	tls *http2.Transport
	h2c *http2.Transport
}

func (t *http2Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme == "https" {
		return t.tls.RoundTrip(req)
	}
	return t.h2c.RoundTrip(req)
}

func (t *http2Transport) CloseIdleConnections() {
	t.tls.CloseIdleConnections()
	t.h2c.CloseIdleConnections()
}

func proxyFunc(rawProxyURL string) (func(*http.Request) (*url.URL, error), error) {
	if rawProxyURL == "" {
		return http.ProxyFromEnvironment, nil
	}
	u, err := url.Parse(rawProxyURL)
	if err != nil {
		return nil, fmt.Errorf("error on parsing proxy URL '%s': %v", rawProxyURL, err)
	}
	return http.ProxyURL(u), nil
}
