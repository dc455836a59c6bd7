// SPDX-License-Identifier: GPL-3.0-or-later

package web

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"slices"
)

// Client executes requests built from RequestConfig and validates the responses.
//
//	var v T
//	err := web.DoHTTP(httpClient).ExpectContentType("application/json").RequestJSON(req, &v)
type Client struct {
	httpClient   *http.Client
	onNokCode    func(resp *http.Response) (bool, error)
	contentTypes []string
}

// DoHTTP returns a Client that uses the given *http.Client.
func DoHTTP(cl *http.Client) *Client {
	return &Client{httpClient: cl}
}

// OnNokCode sets a hook called for responses with a status code other than 200.
// Returning true accepts the response; a non-nil error is returned to the caller as is.
func (c *Client) OnNokCode(fn func(resp *http.Response) (bool, error)) *Client {
	c.onNokCode = fn
	return c
}

// ExpectContentType restricts accepted responses to the given media types.
// Parameters such as charset are ignored when comparing.
func (c *Client) ExpectContentType(mediaTypes ...string) *Client {
	c.contentTypes = mediaTypes
	return c
}

// RequestJSON executes the request and decodes the JSON response body into in.
func (c *Client) RequestJSON(req *http.Request, in any) error {
	return c.Request(req, func(body io.Reader) error {
		return json.NewDecoder(body).Decode(in)
	})
}

// Request executes the request and passes the response body to parse. parse may be nil.
func (c *Client) Request(req *http.Request, parse func(body io.Reader) error) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error on HTTP request to '%s': %w", req.URL, err)
	}
	defer CloseBody(resp)

	if err := c.checkResponse(req, resp); err != nil {
		return err
	}

	if parse == nil {
		return nil
	}
	if err := parse(resp.Body); err != nil {
		return fmt.Errorf("error on parsing response from '%s': %w", req.URL, err)
	}
	return nil
}

func (c *Client) checkResponse(req *http.Request, resp *http.Response) error {
	if resp.StatusCode != http.StatusOK {
		accept := false
		if c.onNokCode != nil {
			ok, err := c.onNokCode(resp)
			if err != nil {
				return err
			}
			accept = ok
		}
		if !accept {
			return &StatusError{URL: req.URL.String(), StatusCode: resp.StatusCode}
		}
	}

	if len(c.contentTypes) == 0 {
		return nil
	}

	ct := resp.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || !slices.Contains(c.contentTypes, mediaType) {
		return &ContentTypeError{URL: req.URL.String(), ContentType: ct}
	}
	return nil
}

// CloseBody drains and closes the response body so the connection can be reused.
func CloseBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
}
