// SPDX-License-Identifier: GPL-3.0-or-later

package web

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"

	"github.com/netdata/srmctl/pkg/buildinfo"
)

// RequestConfig is the per-request part of HTTPConfig.
type RequestConfig struct {
	// URL is the base URL of the application, e.g. https://srm.example.com:9569/srm/.
	URL string `yaml:"url" json:"url"`

	// Username and Password are the application credentials. They are posted by the
	// session login and never sent as basic authentication.
	Username string `yaml:"username,omitempty" json:"username"`
	Password string `yaml:"password,omitempty" json:"password"`

	// ProxyUsername and ProxyPassword authenticate the user agent to a proxy server.
	ProxyUsername string `yaml:"proxy_username,omitempty" json:"proxy_username"`
	ProxyPassword string `yaml:"proxy_password,omitempty" json:"proxy_password"`

	// Headers are added to every request. "Host" overrides the request host.
	Headers map[string]string `yaml:"headers,omitempty" json:"headers"`
}

// Copy makes a full copy of the RequestConfig.
func (r RequestConfig) Copy() RequestConfig {
	r.Headers = maps.Clone(r.Headers)
	return r
}

var userAgent = fmt.Sprintf("srmctl/%s", buildinfo.Version)

// NewRequest returns a GET request for urlPath relative to the base URL.
// A trailing slash in urlPath is preserved.
func NewRequest(ctx context.Context, cfg RequestConfig, urlPath string, query url.Values) (*http.Request, error) {
	req, err := newRequest(ctx, cfg, http.MethodGet, urlPath, nil)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	return req, nil
}

// NewFormRequest returns a POST request for urlPath with the form URL-encoded in the body.
func NewFormRequest(ctx context.Context, cfg RequestConfig, urlPath string, form url.Values) (*http.Request, error) {
	req, err := newRequest(ctx, cfg, http.MethodPost, urlPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

func newRequest(ctx context.Context, cfg RequestConfig, method, urlPath string, body io.Reader) (*http.Request, error) {
	u, err := url.JoinPath(cfg.URL, urlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to join URL path: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)

	if cfg.ProxyUsername != "" && cfg.ProxyPassword != "" {
		basicAuth := base64.StdEncoding.EncodeToString([]byte(cfg.ProxyUsername + ":" + cfg.ProxyPassword))
		req.Header.Set("Proxy-Authorization", "Basic "+basicAuth)
	}

	for k, v := range cfg.Headers {
		if strings.EqualFold(k, "host") {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}

	return req, nil
}
