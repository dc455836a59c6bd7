// SPDX-License-Identifier: GPL-3.0-or-later

package web

import "fmt"

// StatusError is returned when a response has an unexpected HTTP status code.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("'%s' returned HTTP status code: %d", e.URL, e.StatusCode)
}

// ContentTypeError is returned when a response has an unsupported Content-Type.
type ContentTypeError struct {
	URL         string
	ContentType string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("'%s' returned unsupported Content-Type: '%s'", e.URL, e.ContentType)
}
